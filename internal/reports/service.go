package reports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"resume-dashboard/internal/analysis"
	"resume-dashboard/internal/shared/metrics"
	"resume-dashboard/internal/shared/storage/object"
	"resume-dashboard/internal/shared/telemetry"
)

const (
	ContentTypePDF = "application/pdf"
	archivePrefix  = "reports/"
)

var ErrNoResult = errors.New("no analysis result to export")

// Exporter renders a result into a PDF report.
type Exporter interface {
	Export(ctx context.Context, result analysis.Result) ([]byte, error)
}

// Report is a generated PDF ready for download.
type Report struct {
	FileName   string
	Data       []byte
	ArchiveKey string
}

// Service proxies report generation and optionally archives each report.
type Service struct {
	Exporter Exporter
	Store    object.Store
	Archive  bool
	Now      func() time.Time
}

func NewService(exporter Exporter, store object.Store, archive bool) *Service {
	return &Service{Exporter: exporter, Store: store, Archive: archive, Now: time.Now}
}

// DownloadFileName is the attachment name for a report exported at t.
func DownloadFileName(t time.Time) string {
	return fmt.Sprintf("resume_analysis_report_%s.pdf", t.UTC().Format("2006-01-02"))
}

// ArchiveKey is the object store key for a report exported at t.
func ArchiveKey(t time.Time) string {
	return fmt.Sprintf("%sresume_analysis_report_%s.pdf", archivePrefix, t.UTC().Format("20060102_150405"))
}

// Export generates the PDF for result. Archive failures are logged and never fail the export.
func (s *Service) Export(ctx context.Context, result *analysis.Result) (Report, error) {
	if result == nil {
		return Report{}, ErrNoResult
	}
	data, err := s.Exporter.Export(ctx, *result)
	if err != nil {
		metrics.IncExport("failed")
		return Report{}, fmt.Errorf("export report: %w", err)
	}
	now := s.now()
	report := Report{FileName: DownloadFileName(now), Data: data}
	metrics.IncExport("ok")

	if !s.Archive || s.Store == nil {
		return report, nil
	}
	key := ArchiveKey(now)
	size, err := s.Store.Put(ctx, key, ContentTypePDF, bytes.NewReader(data))
	if err != nil {
		metrics.IncExport("archive_failed")
		telemetry.Error("report.archive_failed", map[string]any{
			"key": key,
			"err": err,
		})
		return report, nil
	}
	telemetry.Info("report.archived", map[string]any{
		"key":        key,
		"size_bytes": size,
	})
	report.ArchiveKey = key
	return report, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}
