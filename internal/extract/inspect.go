package extract

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// MsgNoText is shown when a resume yields no extractable text.
const MsgNoText = "Could not extract text from the resume. Please ensure the file is not corrupted."

var ErrNoText = errors.New("no extractable text")

// Inspection summarizes what could be read out of a resume locally.
type Inspection struct {
	Text      string      `json:"-"`
	Lines     int         `json:"lines"`
	Words     int         `json:"words"`
	Contact   ContactInfo `json:"contact"`
	HasEmail  bool        `json:"hasEmail"`
	HasPhone  bool        `json:"hasPhone"`
	Truncated bool        `json:"-"`
}

// ContactInfo lists the contact details found in resume text.
type ContactInfo struct {
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
	URLs     []string `json:"urls"`
	LinkedIn []string `json:"linkedin"`
	GitHub   []string `json:"github"`
}

// Inspect extracts and cleans the resume text and detects contact details.
// It returns ErrNoText when nothing readable comes out of the file.
func Inspect(ctx context.Context, data []byte, contentType, fileName string) (Inspection, error) {
	raw, err := ExtractTextFromBytes(ctx, data, contentType, fileName)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Inspection{}, ctxErr
		}
		return Inspection{}, errors.Join(ErrNoText, err)
	}
	text := CleanText(raw)
	if text == "" {
		return Inspection{}, ErrNoText
	}
	contact := FindContactInfo(text)
	return Inspection{
		Text:     text,
		Lines:    strings.Count(text, "\n") + 1,
		Words:    len(strings.Fields(text)),
		Contact:  contact,
		HasEmail: len(contact.Emails) > 0,
		HasPhone: len(contact.Phones) > 0,
	}, nil
}

// CleanText collapses runs of whitespace within each line and drops empty lines.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if cleaned := strings.Join(strings.Fields(line), " "); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return strings.Join(out, "\n")
}

var (
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.]?\d{4}`),
	}
	urlPattern      = regexp.MustCompile(`https?://[^\s<>"']+`)
	linkedInPattern = regexp.MustCompile(`linkedin\.com/in/[a-z0-9-]+`)
	gitHubPattern   = regexp.MustCompile(`github\.com/[a-z0-9-]+`)
)

// FindContactInfo detects emails, phone numbers, URLs and LinkedIn/GitHub profiles.
func FindContactInfo(text string) ContactInfo {
	lower := strings.ToLower(text)
	var phones []string
	for _, p := range phonePatterns {
		phones = appendUnique(phones, p.FindAllString(text, -1)...)
	}
	return ContactInfo{
		Emails:   appendUnique(nil, emailPattern.FindAllString(text, -1)...),
		Phones:   phones,
		URLs:     appendUnique(nil, urlPattern.FindAllString(text, -1)...),
		LinkedIn: appendUnique(nil, linkedInPattern.FindAllString(lower, -1)...),
		GitHub:   appendUnique(nil, gitHubPattern.FindAllString(lower, -1)...),
	}
}

// JobTitle returns the first non-empty line of a job description, at most 100 runes.
func JobTitle(jobDescription string) string {
	for _, line := range strings.Split(jobDescription, "\n") {
		if title := strings.Join(strings.Fields(line), " "); title != "" {
			runes := []rune(title)
			if len(runes) > 100 {
				return string(runes[:100])
			}
			return title
		}
	}
	return "Not specified"
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		dup := false
		for _, existing := range dst {
			if existing == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	if dst == nil {
		return []string{}
	}
	return dst
}
