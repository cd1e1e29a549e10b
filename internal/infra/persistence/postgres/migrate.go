package postgres

import (
	"context"
	"log/slog"

	"github.com/46h1/buzzer/internal/errors"
	"github.com/46h1/buzzer/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// MigrateParams defines the dependencies of Migrate
type MigrateParams struct {
	fx.In

	Lc     fx.Lifecycle
	DB     *gorm.DB
	Logger *slog.Logger
}

// Models lists every table the service owns, in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.UserLocationModel{},
		&model.BuzzModel{},
		&model.ChatModel{},
		&model.ChatParticipantModel{},
		&model.ChatMessageModel{},
		&model.UserDeviceModel{},
	}
}

// Migrate brings the schema up to date on start. It runs after the connection ping hook.
func Migrate(params MigrateParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.DB.WithContext(ctx).AutoMigrate(Models()...); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}
			params.Logger.Info("Database schema migrated", slog.Int("tables", len(Models())))

			return nil
		},
	})
}
