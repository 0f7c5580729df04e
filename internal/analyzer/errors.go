package analyzer

import (
	"errors"
	"fmt"
)

// User-facing messages shown when the analysis API fails without its own text.
const (
	MsgAnalyzeFailed  = "Failed to analyze resume. Please try again."
	MsgAnalysisFailed = "Analysis failed"
	MsgExportFailed   = "Failed to export report. Please try again."
)

var ErrRemote = errors.New("analysis api error")

// RemoteError describes a failed call to the analysis API.
// Message is safe to show to the user.
type RemoteError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: status=%d: %s: %v", e.Op, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: status=%d: %s", e.Op, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// UserMessage extracts the user-facing text from err, falling back to fallback.
func UserMessage(err error, fallback string) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Message != "" {
		return remote.Message
	}
	return fallback
}
