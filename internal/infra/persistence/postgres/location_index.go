package postgres

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/entity"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationIndex implements repository.SpatialIndex on the user_locations table.
type locationIndex struct {
	db        *gorm.DB
	precision int
}

// NewLocationIndex is the constructor for the Postgres spatial index.
func NewLocationIndex(db *gorm.DB, precision int) repository.SpatialIndex {
	return &locationIndex{
		db:        db,
		precision: precision,
	}
}

// Upsert inserts or replaces the row; the conflict update only fires when the stored row is not newer.
func (idx *locationIndex) Upsert(ctx context.Context, record *entity.UserLocationRecord) (bool, error) {
	next := record.Clone()
	next.Rehash(idx.precision)
	locM := fromLocationDomain(next)

	result := idx.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"latitude", "longitude", "accuracy", "geohash", "sharing_enabled", "last_updated",
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "user_locations.last_updated <= excluded.last_updated"},
			}},
		}).
		Create(locM)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to upsert user location")
	}

	return result.RowsAffected > 0, nil
}

// SetSharing flips the ghost mode flag; zero affected rows means the user has no location yet.
func (idx *locationIndex) SetSharing(ctx context.Context, userID string, enabled bool) error {
	if err := idx.db.WithContext(ctx).
		Model(&model.UserLocationModel{}).
		Where("user_id = ?", userID).
		Update("sharing_enabled", enabled).Error; err != nil {
		return errors.Wrap(err, "failed to update location sharing")
	}

	return nil
}

// RangeQuery scans the geohash index between lower (inclusive) and upper (exclusive).
func (idx *locationIndex) RangeQuery(ctx context.Context, lower, upper string) ([]*entity.UserLocationRecord, error) {
	var locModels []*model.UserLocationModel

	if err := idx.db.WithContext(ctx).
		Where("geohash >= ? AND geohash < ? AND sharing_enabled = ?", lower, upper, true).
		Find(&locModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query locations by geohash range")
	}

	records := make([]*entity.UserLocationRecord, 0, len(locModels))
	for _, locM := range locModels {
		records = append(records, toLocationDomain(locM))
	}

	return records, nil
}

func (idx *locationIndex) Get(ctx context.Context, userID string) (*entity.UserLocationRecord, error) {
	var locM model.UserLocationModel

	if err := idx.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&locM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find user location")
	}

	return toLocationDomain(&locM), nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.UserLocationModel) *entity.UserLocationRecord {
	if data == nil {
		return nil
	}

	return &entity.UserLocationRecord{
		UserID:         data.UserID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		Geohash:        data.Geohash,
		SharingEnabled: data.SharingEnabled,
		LastUpdated:    data.LastUpdated,
	}
}

func fromLocationDomain(data *entity.UserLocationRecord) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		UserID:         data.UserID,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Accuracy:       data.Accuracy,
		Geohash:        data.Geohash,
		SharingEnabled: data.SharingEnabled,
		LastUpdated:    data.LastUpdated,
	}
}
