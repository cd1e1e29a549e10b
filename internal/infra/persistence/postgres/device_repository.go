// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository stores the push targets of buzz notifications, one row per app install.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates the gorm-backed device store.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice stores a newly registered install.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	row := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).Create(row).Error
	switch {
	case err == nil:
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateDevice
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token, device_id and platform are required")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "insert push device")
	}

	device.ID = row.ID
	device.CreatedAt = row.CreatedAt
	device.UpdatedAt = row.UpdatedAt

	return nil
}

// FindDeviceByID loads one install. Retired installs are not found.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.UserDeviceModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load push device %s", id)
	}

	return toDeviceDomain(&row), nil
}

// FindDevicesByUser lists every install of the user, newest first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	return repo.devicesOf(ctx, userID, false)
}

// FindActiveDevicesByUser lists the installs a buzz push should reach.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	return repo.devicesOf(ctx, userID, true)
}

func (repo *deviceRepository) devicesOf(ctx context.Context, userID string, activeOnly bool) ([]*entity.UserDevice, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active")
	}

	var rows []*model.UserDeviceModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "list push devices of %s", userID)
	}

	devices := make([]*entity.UserDevice, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, toDeviceDomain(row))
	}

	return devices, nil
}

// UpdateFCMToken swaps in a refreshed token and makes the install a push target again.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{"fcm_token": fcmToken, "is_active": true})

	switch {
	case result.Error != nil && isUniqueConstraintViolation(result.Error):
		return repository.ErrDuplicateDevice
	case result.Error != nil:
		return errors.Wrapf(result.Error, "refresh token of push device %s", deviceID)
	case result.RowsAffected == 0:
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice retires an install. The row is soft deleted, so it stops receiving buzzes.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "retire push device %s", id)
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomain(row *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        row.ID,
		UserID:    row.UserID,
		FCMToken:  row.FCMToken,
		DeviceID:  row.DeviceID,
		Platform:  row.Platform,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func fromDeviceDomain(device *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        device.ID,
		UserID:    device.UserID,
		FCMToken:  device.FCMToken,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}
