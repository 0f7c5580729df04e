package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-dashboard/internal/analyzer"
	"resume-dashboard/internal/extract"
	"resume-dashboard/internal/requestlog"
	"resume-dashboard/internal/sessions"
	"resume-dashboard/internal/shared/metrics"
	"resume-dashboard/internal/shared/server/middleware"
	"resume-dashboard/internal/shared/telemetry"
	"resume-dashboard/internal/shared/util"
	"resume-dashboard/internal/uploads"
)

const msgUnavailable = "The service is temporarily unavailable. Please try again."

// failure is a rejected or failed analysis; Message is safe to show.
type failure struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func sessionID(c *gin.Context) string {
	return middleware.SessionIDFromContext(c)
}

// submit validates the form, optionally inspects the resume, calls the analysis API
// and stores the result in the visitor's session. Nothing leaves the process until
// validation passes.
func (h *Handler) submit(c *gin.Context) (sessions.State, *failure) {
	ctx := c.Request.Context()
	id := sessionID(c)
	start := h.now()
	entry := requestlog.Entry{
		RequestID:  middleware.RequestIDFromContext(c),
		SessionKey: util.HashKey(id),
		CreatedAt:  start,
	}

	raw, err := uploads.ReadForm(c.Request)
	entry.FileName = raw.FileName
	entry.SizeBytes = int64(len(raw.Data))
	entry.JobTitle = extract.JobTitle(raw.JobDescription)
	var upload uploads.Upload
	if err == nil {
		upload, err = uploads.Validate(raw)
	}
	if err != nil {
		msg := uploads.MsgSelectFile
		var vErr *uploads.ValidationError
		if errors.As(err, &vErr) {
			msg = vErr.Message
		}
		metrics.IncUploadRejected()
		telemetry.Info("analysis.rejected", map[string]any{
			"session_id": id,
			"reason":     msg,
			"err":        err,
		})
		entry.Status, entry.ErrorMessage = requestlog.StatusRejected, msg
		h.record(ctx, entry)
		return sessions.State{}, &failure{Status: http.StatusBadRequest, Code: "validation_error", Message: msg, Err: err}
	}
	entry.FileName = upload.FileName

	var inspection *extract.Inspection
	if h.Inspect {
		ins, err := extract.Inspect(ctx, upload.Data, upload.ContentType, upload.FileName)
		if err != nil {
			fail := &failure{Status: http.StatusInternalServerError, Code: "internal", Message: analyzer.MsgAnalyzeFailed, Err: err}
			if errors.Is(err, extract.ErrNoText) {
				fail = &failure{Status: http.StatusUnprocessableEntity, Code: "unreadable_resume", Message: extract.MsgNoText, Err: err}
			}
			metrics.IncAnalysisFailed("unreadable")
			telemetry.Warn("analysis.inspect_failed", map[string]any{
				"session_id": id,
				"filename":   upload.FileName,
				"err":        err,
			})
			entry.Status, entry.ErrorMessage = requestlog.StatusFailed, fail.Message
			h.record(ctx, entry)
			return sessions.State{}, fail
		}
		inspection = &ins
	}

	metrics.IncAnalysisStarted()
	h.Progress.Set(id, 0)
	defer h.Progress.Clear(id)

	result, err := h.Analyzer.Analyze(ctx, analyzer.Submission{
		FileName:       upload.FileName,
		ContentType:    upload.ContentType,
		Data:           upload.Data,
		JobDescription: upload.JobDescription,
	}, h.Progress.Reporter(id))
	elapsed := float64(h.now().Sub(start).Microseconds()) / 1000.0
	entry.DurationMs = elapsed
	if err != nil {
		msg := analyzer.UserMessage(err, analyzer.MsgAnalyzeFailed)
		metrics.IncAnalysisFailed(failureReason(err))
		telemetry.Warn("analysis.failed", map[string]any{
			"session_id":  id,
			"filename":    upload.FileName,
			"duration_ms": elapsed,
			"err":         err,
		})
		entry.Status, entry.ErrorMessage = requestlog.StatusFailed, msg
		h.record(ctx, entry)
		return sessions.State{}, &failure{Status: http.StatusBadGateway, Code: "analysis_failed", Message: msg, Err: err}
	}

	state := sessions.State{
		FileName:   upload.FileName,
		JobTitle:   entry.JobTitle,
		Result:     &result,
		Inspection: inspection,
		CreatedAt:  start,
	}
	if err := h.Sessions.Put(ctx, id, state); err != nil {
		telemetry.Error("session.put_failed", map[string]any{"session_id": id, "err": err})
		return sessions.State{}, &failure{Status: http.StatusInternalServerError, Code: "session_error", Message: msgUnavailable, Err: err}
	}

	score := result.MatchScore.Clamped()
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(elapsed)
	telemetry.Info("analysis.completed", map[string]any{
		"session_id":     id,
		"filename":       upload.FileName,
		"match_score":    score,
		"recommendation": string(result.Recommendation),
		"duration_ms":    elapsed,
	})
	entry.Status, entry.MatchScore = requestlog.StatusCompleted, &score
	h.record(ctx, entry)
	return state, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, analyzer.ErrRemote):
		return "remote"
	default:
		return "internal"
	}
}

// record appends to the request log; failures are logged and otherwise ignored.
func (h *Handler) record(ctx context.Context, entry requestlog.Entry) {
	if h.Requests == nil {
		return
	}
	if err := h.Requests.Append(ctx, entry); err != nil {
		telemetry.Warn("requestlog.append_failed", map[string]any{
			"request_id": entry.RequestID,
			"err":        err,
		})
	}
}

func (h *Handler) reset(c *gin.Context) error {
	id := sessionID(c)
	h.Progress.Clear(id)
	if err := h.Sessions.Delete(c.Request.Context(), id); err != nil {
		return err
	}
	telemetry.Info("session.reset", map[string]any{"session_id": id})
	return nil
}

// loadResult returns the session state, or sessions.ErrNotFound when there is nothing to show.
func (h *Handler) loadResult(c *gin.Context) (sessions.State, error) {
	state, err := h.Sessions.Get(c.Request.Context(), sessionID(c))
	if err != nil {
		return sessions.State{}, err
	}
	if !state.HasResult() {
		return state, sessions.ErrNotFound
	}
	return state, nil
}
