package sessions

import (
	"context"
	"errors"
	"time"

	"resume-dashboard/internal/analysis"
	"resume-dashboard/internal/extract"
)

var ErrNotFound = errors.New("session not found")

// DefaultTTL bounds how long an idle session keeps its result.
const DefaultTTL = 30 * time.Minute

// State is everything the dashboard remembers for one visitor.
type State struct {
	FileName   string              `json:"fileName,omitempty"`
	JobTitle   string              `json:"jobTitle,omitempty"`
	Result     *analysis.Result    `json:"result,omitempty"`
	Inspection *extract.Inspection `json:"inspection,omitempty"`
	// Flash is a one-shot error banner, cleared once shown.
	Flash     string    `json:"flash,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasResult reports whether an analysis is available to render.
func (s State) HasResult() bool {
	return s.Result != nil
}

// Store persists session state keyed by session ID.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Put(ctx context.Context, id string, state State) error
	Delete(ctx context.Context, id string) error
}

// TakeFlash returns the pending banner for id and clears it.
func TakeFlash(ctx context.Context, store Store, id string) (string, error) {
	state, err := store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	if state.Flash == "" {
		return "", nil
	}
	msg := state.Flash
	state.Flash = ""
	if err := store.Put(ctx, id, state); err != nil {
		return "", err
	}
	return msg, nil
}

// SetFlash records a banner for id, keeping any stored result.
func SetFlash(ctx context.Context, store Store, id, msg string) error {
	state, err := store.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	if state.CreatedAt.IsZero() {
		state.CreatedAt = time.Now().UTC()
	}
	state.Flash = msg
	return store.Put(ctx, id, state)
}
