// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned by SpatialIndex.Get when the user has never reported a location.
var ErrLocationNotFound = errors.New("location not found")

// SpatialIndex is the authoritative userID -> location mapping with a secondary geohash ordering.
// Each user is the sole writer of their own record; reads are unrestricted.
type SpatialIndex interface {
	// Upsert replaces the user's record, recomputing its geohash.
	// Writes are last-write-wins on LastUpdated: an older record is ignored and applied is false.
	// A write either fully applies or not at all.
	Upsert(ctx context.Context, record *entity.UserLocationRecord) (applied bool, err error)

	// SetSharing flips the ghost mode flag of an existing record. A missing record is not an error.
	SetSharing(ctx context.Context, userID string, enabled bool) error

	// RangeQuery returns the sharing-enabled records whose geohash lies in [lower, upper).
	// Result order is unspecified.
	RangeQuery(ctx context.Context, lower, upper string) ([]*entity.UserLocationRecord, error)

	// Get returns the user's record or ErrLocationNotFound.
	Get(ctx context.Context, userID string) (*entity.UserLocationRecord, error)
}
