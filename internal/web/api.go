package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-dashboard/internal/analyzer"
	"resume-dashboard/internal/dashboard"
	"resume-dashboard/internal/reports"
	"resume-dashboard/internal/requestlog"
	"resume-dashboard/internal/sessions"
	"resume-dashboard/internal/shared/server/respond"
)

const defaultRequestsLimit = 50

func (h *Handler) analyzeAPI(c *gin.Context) {
	state, fail := h.submit(c)
	if fail != nil {
		respond.Error(c, fail.Status, fail.Code, fail.Message, nil)
		return
	}
	respond.OK(c, gin.H{
		"success":    true,
		"analysis":   state.Result,
		"filename":   state.FileName,
		"inspection": state.Inspection,
	})
}

func (h *Handler) dashboardAPI(c *gin.Context) {
	state, err := h.loadResult(c)
	if err != nil {
		h.noResultAPI(c, err)
		return
	}
	tab := dashboard.ParseTab(c.Query("tab"))
	c.Set("dashboardTab", string(tab))
	view := dashboard.Build(*state.Result, tab, dashboard.ParseExpand(c.Query("expand")))
	view.FileName = state.FileName
	respond.OK(c, view)
}

func (h *Handler) exportAPI(c *gin.Context) {
	state, err := h.loadResult(c)
	if err != nil {
		h.noResultAPI(c, err)
		return
	}
	report, err := h.Reports.Export(c.Request.Context(), state.Result)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "export_failed", analyzer.UserMessage(err, analyzer.MsgExportFailed), nil)
		return
	}
	sendReport(c, report)
}

func (h *Handler) resetAPI(c *gin.Context) {
	if err := h.reset(c); err != nil {
		respond.Error(c, http.StatusInternalServerError, "session_error", msgUnavailable, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) requestsAPI(c *gin.Context) {
	limit := defaultRequestsLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > requestlog.MaxEntries {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be between 1 and 1000", nil)
			return
		}
		limit = n
	}
	entries := []requestlog.Entry{}
	if h.Requests != nil {
		found, err := h.Requests.Recent(c.Request.Context(), limit)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to list requests", nil)
			return
		}
		entries = found
	}
	respond.OK(c, gin.H{"requests": entries})
}

func (h *Handler) noResultAPI(c *gin.Context, err error) {
	if errors.Is(err, sessions.ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "no_result", "no analysis in this session", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "session_error", msgUnavailable, nil)
}

func sendReport(c *gin.Context, report reports.Report) {
	respond.Attachment(c, reports.ContentTypePDF, report.FileName, report.Data)
}
