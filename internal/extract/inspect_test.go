package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanText(t *testing.T) {
	in := "  Jane   Doe \n\n\n\t Go\tEngineer  \n   \nBerlin"
	want := "Jane Doe\nGo Engineer\nBerlin"
	if got := CleanText(in); got != want {
		t.Fatalf("CleanText() = %q, want %q", got, want)
	}
	if got := CleanText(" \n \n"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestFindContactInfo(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe - jane@example.com, jane@example.com",
		"Phone: (555) 123-4567 / 555.987.6543",
		"Portfolio https://jane.dev/work",
		"LinkedIn: https://www.LinkedIn.com/in/Jane-Doe",
		"GitHub: github.com/janedoe",
	}, "\n")

	got := FindContactInfo(text)
	if !reflect.DeepEqual(got.Emails, []string{"jane@example.com"}) {
		t.Fatalf("emails = %v", got.Emails)
	}
	if len(got.Phones) != 2 {
		t.Fatalf("phones = %v", got.Phones)
	}
	if len(got.URLs) != 2 {
		t.Fatalf("urls = %v", got.URLs)
	}
	if !reflect.DeepEqual(got.LinkedIn, []string{"linkedin.com/in/jane-doe"}) {
		t.Fatalf("linkedin = %v", got.LinkedIn)
	}
	if !reflect.DeepEqual(got.GitHub, []string{"github.com/janedoe"}) {
		t.Fatalf("github = %v", got.GitHub)
	}
}

func TestFindContactInfoEmpty(t *testing.T) {
	got := FindContactInfo("no contact here")
	if got.Emails == nil || len(got.Emails) != 0 || len(got.Phones) != 0 {
		t.Fatalf("expected empty non-nil lists, got %+v", got)
	}
}

func TestJobTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "\n\n  Senior   Go Engineer \nWe build things", want: "Senior Go Engineer"},
		{in: "   ", want: "Not specified"},
		{in: strings.Repeat("a", 150), want: strings.Repeat("a", 100)},
	}
	for _, tt := range tests {
		if got := JobTitle(tt.in); got != tt.want {
			t.Fatalf("JobTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
