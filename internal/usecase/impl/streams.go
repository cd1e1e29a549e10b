package impl

import (
	"context"

	"github.com/46h1/buzzer/config"
	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/stream"

	"go.uber.org/fx"
)

// NewPendingHub provides the hub of per-user pending buzz lists.
func NewPendingHub(lc fx.Lifecycle, cfg *config.Config) *stream.Hub[[]*entity.BuzzInvite] {
	return newHub[[]*entity.BuzzInvite](lc, cfg)
}

// NewChatListHub provides the hub of per-user chat lists.
func NewChatListHub(lc fx.Lifecycle, cfg *config.Config) *stream.Hub[[]*entity.ChatThread] {
	return newHub[[]*entity.ChatThread](lc, cfg)
}

// NewNearbyHub provides the hub of nearby watches, keyed per watch.
func NewNearbyHub(lc fx.Lifecycle, cfg *config.Config) *stream.Hub[[]*entity.ProximityResult] {
	return newHub[[]*entity.ProximityResult](lc, cfg)
}

func newHub[T any](lc fx.Lifecycle, cfg *config.Config) *stream.Hub[T] {
	hub := stream.NewHub[T](cfg.Stream.BufferSize)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})

	return hub
}
