package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"resume-dashboard/internal/analyzer"
	"resume-dashboard/internal/dashboard"
	"resume-dashboard/internal/sessions"
	"resume-dashboard/internal/shared/telemetry"
	"resume-dashboard/internal/uploads"
)

const pageTitle = "AI-Powered Resume Analyzer"

type page struct {
	Title string
	// Error is the analysis banner with its "Try Again" action.
	Error string
	// Notice is a one-shot message that leaves the current result in place.
	Notice    string
	MaxFileMB int
	State     *sessions.State
	View      *dashboard.View
}

func newPage() page {
	return page{Title: pageTitle, MaxFileMB: uploads.MaxFileSize >> 20}
}

func (h *Handler) home(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := h.loadResult(c); err == nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	p := newPage()
	if msg, err := sessions.TakeFlash(ctx, h.Sessions, sessionID(c)); err == nil {
		p.Error = msg
	}
	c.HTML(http.StatusOK, "upload", p)
}

func (h *Handler) analyzePage(c *gin.Context) {
	if _, fail := h.submit(c); fail != nil {
		p := newPage()
		p.Error = fail.Message
		c.HTML(fail.Status, "upload", p)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) dashboardPage(c *gin.Context) {
	state, err := h.loadResult(c)
	if err != nil {
		h.noResultPage(c, err)
		return
	}
	tab := dashboard.ParseTab(c.Query("tab"))
	c.Set("dashboardTab", string(tab))

	view := dashboard.Build(*state.Result, tab, dashboard.ParseExpand(c.Query("expand")))
	view.FileName = state.FileName

	p := newPage()
	p.Title = "Resume Analysis Results"
	p.State = &state
	p.View = &view
	if state.Flash != "" {
		if msg, err := sessions.TakeFlash(c.Request.Context(), h.Sessions, sessionID(c)); err == nil {
			p.Notice = msg
		}
	}
	c.HTML(http.StatusOK, "dashboard", p)
}

func (h *Handler) exportPage(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.loadResult(c)
	if err != nil {
		h.noResultPage(c, err)
		return
	}
	report, err := h.Reports.Export(ctx, state.Result)
	if err != nil {
		telemetry.Warn("report.export_failed", map[string]any{"session_id": sessionID(c), "err": err})
		if ferr := sessions.SetFlash(ctx, h.Sessions, sessionID(c), analyzer.UserMessage(err, analyzer.MsgExportFailed)); ferr != nil {
			telemetry.Error("session.flash_failed", map[string]any{"session_id": sessionID(c), "err": ferr})
		}
		target := "/dashboard"
		if tab := dashboard.ParseTab(c.PostForm("tab")); tab != dashboard.TabOverview {
			target += "?tab=" + url.QueryEscape(string(tab))
		}
		c.Redirect(http.StatusSeeOther, target)
		return
	}
	sendReport(c, report)
}

func (h *Handler) resetPage(c *gin.Context) {
	if err := h.reset(c); err != nil {
		telemetry.Error("session.reset_failed", map[string]any{"session_id": sessionID(c), "err": err})
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// noResultPage sends visitors without a result back to the upload form.
func (h *Handler) noResultPage(c *gin.Context, err error) {
	if errors.Is(err, sessions.ErrNotFound) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	telemetry.Error("session.get_failed", map[string]any{"session_id": sessionID(c), "err": err})
	p := newPage()
	p.Error = msgUnavailable
	c.HTML(http.StatusInternalServerError, "upload", p)
}
