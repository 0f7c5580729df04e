package uploads

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

func docxBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/document.xml":   `<w:document><w:body><w:p><w:r><w:t>Hello</w:t></w:r></w:p></w:body></w:document>`,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func messageOf(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidUpload), "got %v", err)
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	return vErr.Message
}

func TestValidateAcceptsPDF(t *testing.T) {
	got, err := Validate(Upload{FileName: "CV.PDF", Data: pdfBytes, JobDescription: "  Go engineer  "})
	require.NoError(t, err)
	assert.Equal(t, ContentTypePDF, got.ContentType)
	assert.Equal(t, "CV.PDF", got.FileName)
	assert.Equal(t, "  Go engineer  ", got.JobDescription)
}

func TestValidateAcceptsDOCX(t *testing.T) {
	got, err := Validate(Upload{FileName: "resume.docx", Data: docxBytes(t), JobDescription: "Go engineer"})
	require.NoError(t, err)
	assert.Equal(t, ContentTypeDOCX, got.ContentType)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		in   Upload
		want string
	}{
		{name: "no file", in: Upload{JobDescription: "jd"}, want: MsgSelectFile},
		{name: "wrong extension", in: Upload{FileName: "resume.txt", Data: pdfBytes, JobDescription: "jd"}, want: MsgFileType},
		{name: "legacy doc", in: Upload{FileName: "resume.doc", Data: pdfBytes, JobDescription: "jd"}, want: MsgFileType},
		{name: "empty file", in: Upload{FileName: "resume.pdf", Data: []byte{}, JobDescription: "jd"}, want: MsgFileType},
		{name: "too large", in: Upload{FileName: "resume.pdf", Data: make([]byte, MaxFileSize+1), JobDescription: "jd"}, want: MsgFileType},
		{name: "pdf extension with text body", in: Upload{FileName: "resume.pdf", Data: []byte("plain text"), JobDescription: "jd"}, want: MsgFileType},
		{name: "docx extension with pdf body", in: Upload{FileName: "resume.docx", Data: pdfBytes, JobDescription: "jd"}, want: MsgFileType},
		{name: "blank job description", in: Upload{FileName: "resume.pdf", Data: pdfBytes, JobDescription: " \n\t "}, want: MsgJobDescription},
		{name: "file error wins over job description", in: Upload{FileName: "resume.txt", Data: pdfBytes}, want: MsgFileType},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.in)
			assert.Equal(t, tt.want, messageOf(t, err))
		})
	}
}

func TestValidateAcceptsExactlyMaxSize(t *testing.T) {
	data := make([]byte, MaxFileSize)
	copy(data, pdfBytes)
	_, err := Validate(Upload{FileName: "big.pdf", Data: data, JobDescription: "jd"})
	assert.NoError(t, err)
}
