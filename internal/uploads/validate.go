package uploads

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"resume-dashboard/internal/shared/util"
)

// MaxFileSize is the largest resume accepted, in bytes.
const MaxFileSize = 16 << 20

const (
	MsgSelectFile     = "Please select a resume file"
	MsgFileType       = "Please upload only PDF or DOCX files (max 16MB)"
	MsgJobDescription = "Please provide a job description"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrInvalidUpload = errors.New("invalid upload")

// ValidationError is a rejected upload; Message is shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidUpload
}

// Upload is a resume file plus the job description it is matched against.
type Upload struct {
	FileName       string `validate:"required,resume_ext"`
	ContentType    string
	Data           []byte `validate:"min=1,max=16777216"`
	JobDescription string `validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("resume_ext", func(fl validator.FieldLevel) bool {
		switch extension(fl.Field().String()) {
		case ".pdf", ".docx":
			return true
		}
		return false
	})
	return v
}

// Validate checks u before anything leaves the process and returns a normalized copy
// with a sanitized file name and the sniffed content type.
func Validate(u Upload) (Upload, error) {
	if strings.TrimSpace(u.FileName) == "" && len(u.Data) == 0 {
		return Upload{}, &ValidationError{Field: "resume", Message: MsgSelectFile}
	}
	checked := u
	checked.JobDescription = strings.TrimSpace(u.JobDescription)

	if err := validate.Struct(checked); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Upload{}, err
		}
		return Upload{}, firstViolation(fieldErrs)
	}

	name, err := util.SanitizeFileName(checked.FileName)
	if err != nil {
		return Upload{}, &ValidationError{Field: "resume", Message: MsgFileType}
	}
	contentType, ok := sniff(checked.Data, extension(name))
	if !ok {
		return Upload{}, &ValidationError{Field: "resume", Message: MsgFileType}
	}

	checked.FileName = name
	checked.ContentType = contentType
	checked.JobDescription = u.JobDescription
	return checked, nil
}

// firstViolation reports file problems before job description problems.
func firstViolation(errs validator.ValidationErrors) error {
	var jobErr error
	for _, fe := range errs {
		switch fe.StructField() {
		case "FileName", "Data":
			return &ValidationError{Field: "resume", Message: MsgFileType}
		case "JobDescription":
			jobErr = &ValidationError{Field: "job_description", Message: MsgJobDescription}
		}
	}
	if jobErr != nil {
		return jobErr
	}
	return &ValidationError{Field: "resume", Message: MsgFileType}
}

func sniff(data []byte, ext string) (string, bool) {
	detected := mimetype.Detect(data)
	switch ext {
	case ".pdf":
		if detected.Is(ContentTypePDF) {
			return ContentTypePDF, true
		}
	case ".docx":
		for m := detected; m != nil; m = m.Parent() {
			if m.Is(ContentTypeDOCX) || m.Is("application/zip") {
				return ContentTypeDOCX, true
			}
		}
	}
	return "", false
}

func extension(name string) string {
	return strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
}
