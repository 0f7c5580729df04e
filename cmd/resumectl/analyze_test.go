package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-dashboard/internal/analysis"
	"resume-dashboard/internal/analyzer"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF\n")

type stubClient struct {
	result analysis.Result
	err    error
	calls  int
	got    analyzer.Submission
}

func (s *stubClient) Analyze(ctx context.Context, sub analyzer.Submission, progress analyzer.ProgressFunc) (analysis.Result, error) {
	s.calls++
	s.got = sub
	if progress != nil {
		for _, pct := range []int{10, 30, 60, 100} {
			progress(pct)
		}
	}
	return s.result, s.err
}

func (s *stubClient) Export(ctx context.Context, result analysis.Result) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func (s *stubClient) Health(ctx context.Context) error { return nil }

func sampleResult() analysis.Result {
	return analysis.Result{
		MatchScore:      72,
		MatchedSkills:   []string{"Go", "PostgreSQL"},
		MissingSkills:   []string{"Kubernetes"},
		ATSIssues:       []string{"Tables detected"},
		MissingSections: []string{"Summary"},
		ExperienceMatch: analysis.ExperienceMatch{RequiredYears: analysis.YearsOf(5), CandidateYears: analysis.YearsOf(4), MatchPercentage: 80},
		EducationMatch:  analysis.EducationMatch{Required: "BSc", Candidate: "BSc", Match: true},
		Suggestions:     []string{"Add a professional summary", "Quantify achievements"},
		Recommendation:  analysis.Consider,
	}
}

func TestAnalyzeFileRejectsBeforeSending(t *testing.T) {
	stub := &stubClient{}
	var progress bytes.Buffer

	_, err := analyzeFile(context.Background(), stub, "cv.txt", []byte("hello"), "Go engineer", false, &progress)

	require.Error(t, err)
	assert.Equal(t, "Please upload only PDF or DOCX files (max 16MB)", err.Error())
	assert.Zero(t, stub.calls)
}

func TestAnalyzeFileRequiresJobDescription(t *testing.T) {
	stub := &stubClient{}

	_, err := analyzeFile(context.Background(), stub, "cv.pdf", samplePDF, "  ", false, &bytes.Buffer{})

	require.Error(t, err)
	assert.Equal(t, "Please provide a job description", err.Error())
	assert.Zero(t, stub.calls)
}

func TestAnalyzeFileSendsNormalizedUpload(t *testing.T) {
	stub := &stubClient{result: sampleResult()}
	var progress bytes.Buffer

	res, err := analyzeFile(context.Background(), stub, "cv.pdf", samplePDF, "Backend Engineer", false, &progress)

	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "application/pdf", stub.got.ContentType)
	assert.Equal(t, "Backend Engineer", stub.got.JobDescription)
	assert.Equal(t, analysis.Score(72), res.MatchScore)
	assert.Equal(t, "uploading... 30%\nuploading... 60%\nuploading... 100%\n", progress.String())
}

func TestAnalyzeFileSurfacesRemoteMessage(t *testing.T) {
	stub := &stubClient{err: &analyzer.RemoteError{Op: "analyze", Status: 400, Message: "Resume is empty"}}

	_, err := analyzeFile(context.Background(), stub, "cv.pdf", samplePDF, "Backend Engineer", false, &bytes.Buffer{})

	require.Error(t, err)
	assert.Equal(t, "Resume is empty", err.Error())
}

func TestReadJobDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Senior Go Engineer"), 0o600))

	got, err := readJobDescription(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer", got)

	got, err = readJobDescription("", "inline")
	require.NoError(t, err)
	assert.Equal(t, "inline", got)

	_, err = readJobDescription(path, "inline")
	assert.Error(t, err)
}

func TestSummaryWrite(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, summarize("cv.pdf", sampleResult()).write(&out))

	text := out.String()
	assert.Contains(t, text, "Match score: 72% (Good Match)")
	assert.Contains(t, text, "Missing skills: Kubernetes")
	assert.Contains(t, text, "ATS score: 85%")
	assert.Contains(t, text, "  1. Add a professional summary")
	assert.Contains(t, text, "Add Missing Skills")
}
