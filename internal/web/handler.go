package web

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"resume-dashboard/internal/analysis"
	"resume-dashboard/internal/analyzer"
	"resume-dashboard/internal/reports"
	"resume-dashboard/internal/requestlog"
	"resume-dashboard/internal/sessions"
	"resume-dashboard/internal/shared/server/respond"
)

// Analyzer submits a resume to the analysis API.
type Analyzer interface {
	Analyze(ctx context.Context, sub analyzer.Submission, progress analyzer.ProgressFunc) (analysis.Result, error)
}

// ReportExporter turns a stored result into a downloadable PDF.
type ReportExporter interface {
	Export(ctx context.Context, result *analysis.Result) (reports.Report, error)
}

// Handler serves the upload form, the dashboard and their JSON twins.
type Handler struct {
	Analyzer Analyzer
	Reports  ReportExporter
	Sessions sessions.Store
	Progress *sessions.Progress
	Requests requestlog.Repo
	// Inspect runs local text extraction before anything is sent out.
	Inspect bool
	// ExposeRequests enables GET /api/v1/requests.
	ExposeRequests bool
	// Limit guards the routes that call the analysis API.
	Limit gin.HandlerFunc
	Now   func() time.Time
}

// RegisterRoutes attaches page and API routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	if h.Progress == nil {
		h.Progress = sessions.NewProgress()
	}
	limit := h.Limit
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}

	r.GET("/", h.home)
	r.POST("/analyze", limit, h.analyzePage)
	r.GET("/analyze/progress", h.progress)
	r.GET("/dashboard", h.dashboardPage)
	r.POST("/export", limit, h.exportPage)
	r.POST("/reset", h.resetPage)

	api := r.Group("/api/v1")
	api.POST("/analyze", limit, h.analyzeAPI)
	api.GET("/dashboard", h.dashboardAPI)
	api.POST("/export", limit, h.exportAPI)
	api.DELETE("/session", h.resetAPI)
	if h.ExposeRequests {
		api.GET("/requests", h.requestsAPI)
	}
}

func (h *Handler) now() time.Time {
	if h.Now == nil {
		return time.Now().UTC()
	}
	return h.Now().UTC()
}

func (h *Handler) progress(c *gin.Context) {
	pct, active := h.Progress.Get(sessionID(c))
	respond.OK(c, gin.H{"progress": pct, "active": active})
}
