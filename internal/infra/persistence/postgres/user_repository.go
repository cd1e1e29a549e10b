// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateIfAbsent inserts the profile and leaves an existing row untouched.
func (repo *userRepository) CreateIfAbsent(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, bool, error) {
	userM := fromUserDomain(profile)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(userM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return nil, false, domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create profile")
	}

	if result.RowsAffected > 0 {
		return toUserDomain(userM), true, nil
	}

	existing, err := repo.FindByID(ctx, profile.UID)
	if err != nil {
		return nil, false, err
	}

	return existing, false, nil
}

// FindByID retrieves a profile by uid.
func (repo *userRepository) FindByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by uid")
	}

	return toUserDomain(&userM), nil
}

// FindByIDs retrieves the existing profiles among uids.
func (repo *userRepository) FindByIDs(ctx context.Context, uids []string) (map[string]*entity.UserProfile, error) {
	profiles := make(map[string]*entity.UserProfile, len(uids))
	if len(uids) == 0 {
		return profiles, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("uid IN ?", uids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by uids")
	}

	for _, userM := range userModels {
		profiles[userM.UID] = toUserDomain(userM)
	}

	return profiles, nil
}

// UpdateDisplayName changes the display name.
func (repo *userRepository) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	return repo.updateColumn(ctx, uid, "display_name", displayName)
}

// UpdateProfilePicture stores the picture download URL.
func (repo *userRepository) UpdateProfilePicture(ctx context.Context, uid, url string) error {
	return repo.updateColumn(ctx, uid, "profile_picture_url", url)
}

// UpdateLocationSharing toggles ghost mode.
func (repo *userRepository) UpdateLocationSharing(ctx context.Context, uid string, enabled bool) error {
	return repo.updateColumn(ctx, uid, "is_location_sharing_enabled", enabled)
}

func (repo *userRepository) updateColumn(ctx context.Context, uid, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("uid = ?", uid).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain UserProfile entity.
func toUserDomain(data *model.UserModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UID:                      data.UID,
		DisplayName:              data.DisplayName,
		Email:                    data.Email,
		ProfilePictureURL:        data.ProfilePictureURL,
		IsLocationSharingEnabled: data.IsLocationSharingEnabled,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

// fromUserDomain converts a domain UserProfile entity to a GORM UserModel.
func fromUserDomain(data *entity.UserProfile) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		UID:                      data.UID,
		DisplayName:              data.DisplayName,
		Email:                    data.Email,
		ProfilePictureURL:        data.ProfilePictureURL,
		IsLocationSharingEnabled: data.IsLocationSharingEnabled,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}
