package object

import (
	"errors"
	"testing"
)

func TestCleanKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "simple", key: "reports/a.pdf", want: "reports/a.pdf"},
		{name: "dot segments", key: "reports/./x/../a.pdf", want: "reports/a.pdf"},
		{name: "backslashes", key: `reports\a.pdf`, want: "reports/a.pdf"},
		{name: "traversal", key: "../etc/passwd", wantErr: true},
		{name: "absolute", key: "/etc/passwd", wantErr: true},
		{name: "empty", key: "  ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanKey(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidKey) {
					t.Fatalf("CleanKey(%q) err = %v, want ErrInvalidKey", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CleanKey(%q): %v", tt.key, err)
			}
			if got != tt.want {
				t.Fatalf("CleanKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
