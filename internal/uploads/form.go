package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Form field names shared with the analysis API.
const (
	FieldResume         = "resume"
	FieldJobDescription = "job_description"
)

// maxFormBytes leaves room for the job description and multipart framing.
const maxFormBytes = MaxFileSize + 1<<20

// ReadForm pulls the resume file and job description out of a multipart request.
// Files over MaxFileSize are rejected without being buffered in full.
func ReadForm(r *http.Request) (Upload, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return Upload{}, &ValidationError{Field: FieldResume, Message: MsgFileType}
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return Upload{}, &ValidationError{Field: FieldResume, Message: MsgSelectFile}
		}
		return Upload{}, fmt.Errorf("parse multipart form: %w", err)
	}

	u := Upload{JobDescription: r.FormValue(FieldJobDescription)}
	file, header, err := r.FormFile(FieldResume)
	if errors.Is(err, http.ErrMissingFile) {
		return u, nil
	}
	if err != nil {
		return Upload{}, fmt.Errorf("read resume part: %w", err)
	}
	defer file.Close()

	if header.Size > MaxFileSize {
		return Upload{}, &ValidationError{Field: FieldResume, Message: MsgFileType}
	}
	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return Upload{}, fmt.Errorf("read resume: %w", err)
	}
	u.FileName = header.Filename
	u.Data = data
	return u, nil
}
