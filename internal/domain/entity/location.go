package entity

import (
	"time"

	"github.com/46h1/buzzer/internal/geo"
)

// UserLocationRecord is one user's current geospatial state in the spatial index.
// Geohash is always the encoding of (Latitude, Longitude) at the storage precision.
type UserLocationRecord struct {
	UserID         string    `json:"user_id"`         // Opaque user identifier, unique key.
	Latitude       float64   `json:"latitude"`        // [-90, 90]
	Longitude      float64   `json:"longitude"`       // [-180, 180]
	Accuracy       float64   `json:"accuracy"`        // Reported horizontal accuracy in meters, 0 when unknown.
	Geohash        string    `json:"geohash"`         // Derived, never set by callers.
	SharingEnabled bool      `json:"sharing_enabled"` // false = ghost mode, hidden from other users' queries.
	LastUpdated    time.Time `json:"last_updated"`    // Timestamp the report was taken, used for last-write-wins.
}

// NewUserLocationRecord builds a record and derives its geohash at the given precision.
func NewUserLocationRecord(userID string, lat, lon, accuracy float64, sharing bool, at time.Time, precision int) *UserLocationRecord {
	return &UserLocationRecord{
		UserID:         userID,
		Latitude:       lat,
		Longitude:      lon,
		Accuracy:       accuracy,
		Geohash:        geo.Encode(lat, lon, precision),
		SharingEnabled: sharing,
		LastUpdated:    at,
	}
}

// Rehash recomputes Geohash from the coordinates. Index backends call it on every write.
func (r *UserLocationRecord) Rehash(precision int) {
	r.Geohash = geo.Encode(r.Latitude, r.Longitude, precision)
}

// Clone returns a copy that callers may mutate freely.
func (r *UserLocationRecord) Clone() *UserLocationRecord {
	if r == nil {
		return nil
	}
	cp := *r

	return &cp
}

// RadiusClass is a user-selectable search distance tier.
type RadiusClass string

const (
	RadiusSmall  RadiusClass = "small"  // 100m
	RadiusMedium RadiusClass = "medium" // 1km
	RadiusLarge  RadiusClass = "large"  // 10km
)

// Meters returns the radius in meters and whether the class is known.
func (r RadiusClass) Meters() (float64, bool) {
	switch r {
	case RadiusSmall:
		return 100, true
	case RadiusMedium:
		return 1000, true
	case RadiusLarge:
		return 10000, true
	default:
		return 0, false
	}
}

// ProximityResult is one nearby user, produced per query and never persisted.
type ProximityResult struct {
	UserID         string              `json:"user_id"`
	DistanceMeters float64             `json:"distance_meters"`
	Location       *UserLocationRecord `json:"location"` // Snapshot at query time.
}
