package postgres

import (
	"context"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// buzzRepository implements the repository.BuzzRepository interface.
type buzzRepository struct {
	db *gorm.DB
}

// NewBuzzRepository is the constructor for buzzRepository.
func NewBuzzRepository(db *gorm.DB) repository.BuzzRepository {
	return &buzzRepository{
		db: db,
	}
}

// CreateBuzz persists a new pending buzz. The partial unique index rejects a second pending
// buzz for the same ordered pair.
func (repo *buzzRepository) CreateBuzz(ctx context.Context, buzz *entity.BuzzInvite) error {
	if buzz.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate buzz id")
		}
		buzz.ID = id
	}
	buzzM := fromBuzzDomain(buzz)

	if err := repo.db.WithContext(ctx).Create(buzzM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePendingBuzz
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buzz")
	}

	buzz.CreatedAt = buzzM.CreatedAt

	return nil
}

// FindBuzzByID retrieves a buzz by its ID.
func (repo *buzzRepository) FindBuzzByID(ctx context.Context, id uuid.UUID) (*entity.BuzzInvite, error) {
	var buzzM model.BuzzModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&buzzM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuzzNotFound
		}

		return nil, errors.Wrap(err, "failed to find buzz by ID")
	}

	return toBuzzDomain(&buzzM), nil
}

// FindPendingBuzz returns the pending buzz from sender to receiver.
func (repo *buzzRepository) FindPendingBuzz(ctx context.Context, senderID, receiverID string) (*entity.BuzzInvite, error) {
	var buzzM model.BuzzModel

	if err := repo.db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, string(entity.BuzzStatusPending)).
		First(&buzzM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuzzNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending buzz")
	}

	return toBuzzDomain(&buzzM), nil
}

// FindPendingByReceiver returns the receiver's pending buzzes, newest first.
func (repo *buzzRepository) FindPendingByReceiver(ctx context.Context, receiverID string) ([]*entity.BuzzInvite, error) {
	var buzzModels []*model.BuzzModel

	if err := repo.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", receiverID, string(entity.BuzzStatusPending)).
		Order("created_at DESC").
		Find(&buzzModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending buzzes by receiver")
	}

	return toBuzzDomains(buzzModels), nil
}

// FindByParticipant returns every buzz the user sent or received, newest first.
func (repo *buzzRepository) FindByParticipant(ctx context.Context, userID string) ([]*entity.BuzzInvite, error) {
	var buzzModels []*model.BuzzModel

	if err := repo.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&buzzModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find buzzes by participant")
	}

	return toBuzzDomains(buzzModels), nil
}

// TransitionStatus is a conditional update guarded by status = 'pending'. When no row matches,
// a second read tells a missing buzz apart from one that was already answered.
func (repo *buzzRepository) TransitionStatus(ctx context.Context, id uuid.UUID, next entity.BuzzStatus, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BuzzModel{}).
		Where("id = ? AND status = ?", id, string(entity.BuzzStatusPending)).
		Updates(map[string]any{
			"status":       string(next),
			"responded_at": at,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update buzz status")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindBuzzByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrBuzzNotPending
}

// --- Mapper Functions ---

func toBuzzDomains(buzzModels []*model.BuzzModel) []*entity.BuzzInvite {
	buzzes := make([]*entity.BuzzInvite, 0, len(buzzModels))
	for _, buzzM := range buzzModels {
		buzzes = append(buzzes, toBuzzDomain(buzzM))
	}

	return buzzes
}

// toBuzzDomain converts a GORM BuzzModel to a domain BuzzInvite entity.
func toBuzzDomain(data *model.BuzzModel) *entity.BuzzInvite {
	if data == nil {
		return nil
	}

	return &entity.BuzzInvite{
		ID:                 data.ID,
		SenderID:           data.SenderID,
		ReceiverID:         data.ReceiverID,
		Status:             entity.BuzzStatus(data.Status),
		SenderName:         data.SenderName,
		SenderProfilePic:   data.SenderProfilePic,
		ReceiverName:       data.ReceiverName,
		ReceiverProfilePic: data.ReceiverProfilePic,
		CreatedAt:          data.CreatedAt,
		RespondedAt:        data.RespondedAt,
	}
}

// fromBuzzDomain converts a domain BuzzInvite entity to a GORM BuzzModel.
func fromBuzzDomain(data *entity.BuzzInvite) *model.BuzzModel {
	if data == nil {
		return nil
	}

	return &model.BuzzModel{
		ID:                 data.ID,
		SenderID:           data.SenderID,
		ReceiverID:         data.ReceiverID,
		Status:             string(data.Status),
		SenderName:         data.SenderName,
		SenderProfilePic:   data.SenderProfilePic,
		ReceiverName:       data.ReceiverName,
		ReceiverProfilePic: data.ReceiverProfilePic,
		CreatedAt:          data.CreatedAt,
		RespondedAt:        data.RespondedAt,
	}
}
