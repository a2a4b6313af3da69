// Package repository persists tailoring profiles in the local SQLite
// store: the profile row plus its selection and value override rows.
// This is the tool's own storage, not an XCCDF serialization.
package repository

import (
	"context"
	"time"

	"github.com/scaptail/scaptail/internal/xccdf"
)

// StoredProfile is the persisted summary of one tailoring profile.
type StoredProfile struct {
	ID          string
	BenchmarkID string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TailoringRepo stores and retrieves tailoring profiles.
type TailoringRepo interface {
	// Save upserts the profile and replaces its override rows.
	Save(ctx context.Context, benchmarkID string, profile *xccdf.Profile) error

	// Load reconstructs a saved profile. Returns ErrNotFound when no
	// profile with the id exists.
	Load(ctx context.Context, id string) (*xccdf.Profile, error)

	// List returns summaries of all saved profiles, newest first.
	List(ctx context.Context) ([]StoredProfile, error)

	// Delete removes a saved profile and its overrides. Deleting an
	// unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a profile with the id is stored.
	Exists(ctx context.Context, id string) (bool, error)
}
