package usecase

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/stream"
)

// NearbyQuery asks for the users within Radius of a point. The requester is never part of the result.
type NearbyQuery struct {
	RequesterID string             `json:"requester_id"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Radius      entity.RadiusClass `json:"radius"`
}

// NearbySubscription streams nearby results for one watch.
type NearbySubscription = stream.Subscription[[]*entity.ProximityResult]

// ProximityUsecase answers "who is near me" queries against the spatial index.
type ProximityUsecase interface {
	// FindNearby returns sharing users within the query radius, nearest first.
	FindNearby(ctx context.Context, query *NearbyQuery) ([]*entity.ProximityResult, error)

	// WatchNearby re-runs the query every proximity.watchInterval and streams each result.
	// The query is validated up front; the watch ends when ctx is done or the subscription is closed.
	WatchNearby(ctx context.Context, query *NearbyQuery) (*NearbySubscription, error)
}
