package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChatID_OrderIndependent(t *testing.T) {
	assert.Equal(t, "alice_bob", ChatID("alice", "bob"))
	assert.Equal(t, "alice_bob", ChatID("bob", "alice"))
	assert.Equal(t, ChatID("uid-9", "uid-10"), ChatID("uid-10", "uid-9"))
}

func TestBuzzStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to BuzzStatus
		want     bool
	}{
		{BuzzStatusPending, BuzzStatusAccepted, true},
		{BuzzStatusPending, BuzzStatusDeclined, true},
		{BuzzStatusPending, BuzzStatusPending, false},
		{BuzzStatusAccepted, BuzzStatusDeclined, false},
		{BuzzStatusDeclined, BuzzStatusAccepted, false},
		{BuzzStatusAccepted, BuzzStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRadiusClass_Meters(t *testing.T) {
	for class, want := range map[RadiusClass]float64{RadiusSmall: 100, RadiusMedium: 1000, RadiusLarge: 10000} {
		got, ok := class.Meters()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := RadiusClass("huge").Meters()
	assert.False(t, ok)
}

func TestNewUserLocationRecord_DerivesGeohash(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rec := NewUserLocationRecord("u1", 37.7749, -122.4194, 5, true, at, 7)

	assert.Equal(t, "9q8yyk8", rec.Geohash)

	rec.Latitude, rec.Longitude = 40.7128, -74.0060
	rec.Rehash(7)
	assert.Equal(t, "dr5regw", rec.Geohash)

	cp := rec.Clone()
	cp.Latitude = 0
	assert.Equal(t, 40.7128, rec.Latitude)
}
