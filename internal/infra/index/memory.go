// Package index holds the SpatialIndex backends that live outside Postgres.
package index

import (
	"context"
	"sync"

	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/domain/repository"

	"github.com/google/btree"
)

const btreeDegree = 32

type geoKey struct {
	geohash string
	userID  string
}

func lessGeoKey(a, b geoKey) bool {
	if a.geohash != b.geohash {
		return a.geohash < b.geohash
	}

	return a.userID < b.userID
}

// MemoryIndex keeps every record in process: a map for point lookups and a B-tree ordered by
// (geohash, userID) for prefix range scans. One RWMutex guards both, so a reader never observes
// a record in one structure but not the other.
type MemoryIndex struct {
	mu        sync.RWMutex
	precision int
	records   map[string]*entity.UserLocationRecord
	tree      *btree.BTreeG[geoKey]
}

// NewMemoryIndex creates an empty index that hashes records at precision.
func NewMemoryIndex(precision int) *MemoryIndex {
	return &MemoryIndex{
		precision: precision,
		records:   make(map[string]*entity.UserLocationRecord),
		tree:      btree.NewG(btreeDegree, lessGeoKey),
	}
}

func (m *MemoryIndex) Upsert(ctx context.Context, record *entity.UserLocationRecord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	next := record.Clone()
	next.Rehash(m.precision)

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.records[next.UserID]; ok {
		if next.LastUpdated.Before(prev.LastUpdated) {
			return false, nil
		}
		m.tree.Delete(geoKey{geohash: prev.Geohash, userID: prev.UserID})
	}

	m.records[next.UserID] = next
	m.tree.ReplaceOrInsert(geoKey{geohash: next.Geohash, userID: next.UserID})

	return true, nil
}

func (m *MemoryIndex) SetSharing(ctx context.Context, userID string, enabled bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if rec, ok := m.records[userID]; ok {
		// records are never handed out, so flipping the stored copy is safe
		rec.SharingEnabled = enabled
	}

	return nil
}

func (m *MemoryIndex) RangeQuery(ctx context.Context, lower, upper string) ([]*entity.UserLocationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*entity.UserLocationRecord
	m.tree.AscendRange(geoKey{geohash: lower}, geoKey{geohash: upper}, func(key geoKey) bool {
		rec := m.records[key.userID]
		if rec != nil && rec.SharingEnabled {
			out = append(out, rec.Clone())
		}

		return true
	})

	return out, nil
}

func (m *MemoryIndex) Get(ctx context.Context, userID string) (*entity.UserLocationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[userID]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return rec.Clone(), nil
}

// Len returns the number of indexed users.
func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}

var _ repository.SpatialIndex = (*MemoryIndex)(nil)
