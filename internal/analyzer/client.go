package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"resume-dashboard/internal/analysis"
	"resume-dashboard/internal/shared/telemetry"
)

const (
	maxResponseBytes = 1 << 20
	maxReportBytes   = 64 << 20
	defaultTimeout   = 60 * time.Second
	userAgent        = "resume-dashboard/1.0"
)

// OAuthOptions enables the client-credentials grant against TokenURL.
type OAuthOptions struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	OAuth   *OAuthOptions
	// HTTPClient overrides the transport; tests point it at httptest servers.
	HTTPClient *http.Client
}

// Client talks to the remote analysis API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Submission is one resume plus job description to analyze.
type Submission struct {
	FileName       string
	ContentType    string
	Data           []byte
	JobDescription string
}

// New constructs a client. OAuth takes precedence over a static API key.
func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("ANALYSIS_API_URL is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if opts.OAuth != nil && opts.OAuth.TokenURL != "" && opts.OAuth.ClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     opts.OAuth.ClientID,
			ClientSecret: opts.OAuth.ClientSecret,
			TokenURL:     opts.OAuth.TokenURL,
			Scopes:       opts.OAuth.Scopes,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = cc.Client(ctx)
	} else {
		copied := *httpClient
		httpClient = &copied
	}
	httpClient.Timeout = timeout

	return &Client{
		baseURL:    base,
		apiKey:     strings.TrimSpace(opts.APIKey),
		httpClient: httpClient,
	}, nil
}

// Analyze posts the resume and job description as multipart form data to /analyze.
// progress, if non-nil, is called as the request body is sent.
func (c *Client) Analyze(ctx context.Context, sub Submission, progress ProgressFunc) (analysis.Result, error) {
	body, contentType, err := encodeSubmission(sub)
	if err != nil {
		return analysis.Result{}, err
	}

	total := int64(body.Len())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", newProgressReader(body, total, progress))
	if err != nil {
		return analysis.Result{}, fmt.Errorf("build analyze request: %w", err)
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	c.decorate(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return analysis.Result{}, &RemoteError{Op: "analyze", Message: MsgAnalyzeFailed, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return analysis.Result{}, &RemoteError{Op: "analyze", Status: resp.StatusCode, Message: MsgAnalyzeFailed, Err: err}
	}
	telemetry.Info("analyzer.response", map[string]any{
		"status":      resp.StatusCode,
		"bytes":       len(raw),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	var env analysis.Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := MsgAnalyzeFailed
		if decodeErr == nil && strings.TrimSpace(env.Error) != "" {
			msg = env.Error
		}
		return analysis.Result{}, &RemoteError{Op: "analyze", Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return analysis.Result{}, &RemoteError{Op: "analyze", Status: resp.StatusCode, Message: MsgAnalyzeFailed, Err: decodeErr}
	}
	if !env.Success {
		msg := MsgAnalysisFailed
		if strings.TrimSpace(env.Error) != "" {
			msg = env.Error
		}
		return analysis.Result{}, &RemoteError{Op: "analyze", Status: resp.StatusCode, Message: msg}
	}

	res, err := analysis.Decode(env.Analysis)
	if err != nil {
		return analysis.Result{}, &RemoteError{Op: "analyze", Status: resp.StatusCode, Message: MsgAnalyzeFailed, Err: err}
	}
	return res, nil
}

// Export asks the API to render result as a PDF report and returns its bytes.
func (c *Client) Export(ctx context.Context, result analysis.Result) ([]byte, error) {
	payload, err := json.Marshal(struct {
		Analysis analysis.Result `json:"analysis"`
	}{Analysis: result})
	if err != nil {
		return nil, fmt.Errorf("encode export request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/export-report", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build export request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")
	c.decorate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteError{Op: "export", Message: MsgExportFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &RemoteError{Op: "export", Status: resp.StatusCode, Message: MsgExportFailed, Err: errors.New(remoteErrorText(raw))}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReportBytes+1))
	if err != nil {
		return nil, &RemoteError{Op: "export", Status: resp.StatusCode, Message: MsgExportFailed, Err: err}
	}
	if len(data) == 0 {
		return nil, &RemoteError{Op: "export", Status: resp.StatusCode, Message: MsgExportFailed, Err: errors.New("empty report")}
	}
	if len(data) > maxReportBytes {
		return nil, &RemoteError{Op: "export", Status: resp.StatusCode, Message: MsgExportFailed, Err: errors.New("report too large")}
	}
	return data, nil
}

// Health checks GET /health on the analysis API.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	c.decorate(req)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteError{Op: "health", Message: "analysis api unreachable", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Op: "health", Status: resp.StatusCode, Message: "analysis api unhealthy"}
	}
	return nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
}

func encodeSubmission(sub Submission) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, sub.FileName))
	ct := sub.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	header.Set("Content-Type", ct)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create resume part: %w", err)
	}
	if _, err := part.Write(sub.Data); err != nil {
		return nil, "", fmt.Errorf("write resume part: %w", err)
	}
	if err := w.WriteField("job_description", sub.JobDescription); err != nil {
		return nil, "", fmt.Errorf("write job description: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func remoteErrorText(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	text := strings.TrimSpace(string(raw))
	if len(text) > 200 {
		text = text[:200]
	}
	if text == "" {
		return "no response body"
	}
	return text
}
