package requestlog

import (
	"context"
	"fmt"
	"testing"
)

func TestMemoryRepoKeepsNewestEntries(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	for i := 0; i < MaxEntries+5; i++ {
		if err := repo.Append(ctx, Entry{RequestID: fmt.Sprintf("r%d", i), Status: StatusCompleted}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	all, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(all) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(all))
	}
	if all[0].RequestID != fmt.Sprintf("r%d", MaxEntries+4) {
		t.Fatalf("expected newest first, got %s", all[0].RequestID)
	}
	if all[len(all)-1].RequestID != "r5" {
		t.Fatalf("expected oldest kept to be r5, got %s", all[len(all)-1].RequestID)
	}
}

func TestMemoryRepoRecentLimitAndTruncation(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	long := ""
	for i := 0; i < 120; i++ {
		long += "é"
	}
	_ = repo.Append(ctx, Entry{RequestID: "a", JobTitle: long})
	_ = repo.Append(ctx, Entry{RequestID: "b"})

	got, err := repo.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0].RequestID != "b" {
		t.Fatalf("unexpected entries: %+v", got)
	}

	got, _ = repo.Recent(ctx, 5)
	if n := len([]rune(got[1].JobTitle)); n != 100 {
		t.Fatalf("expected job title truncated to 100 runes, got %d", n)
	}
	if got[1].CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be stamped")
	}
}
