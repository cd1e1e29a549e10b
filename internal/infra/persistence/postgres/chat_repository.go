package postgres

import (
	"context"
	"slices"
	"time"

	"github.com/46h1/buzzer/internal/domain/entity"
	domainerrors "github.com/46h1/buzzer/internal/domain/errors"
	"github.com/46h1/buzzer/internal/domain/repository"
	"github.com/46h1/buzzer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// chatRepository implements the repository.ChatRepository interface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// CreateChatIfAbsent inserts the thread and its participants with ON CONFLICT DO NOTHING,
// so concurrent creators of the same pair end up with a single thread.
func (repo *chatRepository) CreateChatIfAbsent(ctx context.Context, chat *entity.ChatThread) (*entity.ChatThread, bool, error) {
	chatM, participants := fromChatDomain(chat)

	var created bool
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(chatM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		created = true

		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&participants).Error
	})
	if err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to create chat")
	}

	stored, err := repo.FindChatByID(ctx, chat.ID)
	if err != nil {
		return nil, false, err
	}

	return stored, created, nil
}

// FindChatByID retrieves a thread with its participants.
func (repo *chatRepository) FindChatByID(ctx context.Context, chatID string) (*entity.ChatThread, error) {
	var chatM model.ChatModel

	if err := repo.db.WithContext(ctx).
		Preload("Participants").
		Where("id = ?", chatID).
		First(&chatM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat by ID")
	}

	return toChatDomain(&chatM), nil
}

// FindChatsByParticipant returns the user's threads, most recent message first.
func (repo *chatRepository) FindChatsByParticipant(ctx context.Context, userID string) ([]*entity.ChatThread, error) {
	var chatModels []*model.ChatModel

	if err := repo.db.WithContext(ctx).
		Preload("Participants").
		Where("id IN (?)", repo.db.Model(&model.ChatParticipantModel{}).Select("chat_id").Where("user_id = ?", userID)).
		Order("last_message_at DESC NULLS LAST").
		Order("created_at DESC").
		Find(&chatModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find chats by participant")
	}

	chats := make([]*entity.ChatThread, 0, len(chatModels))
	for _, chatM := range chatModels {
		chats = append(chats, toChatDomain(chatM))
	}

	return chats, nil
}

// AppendMessage stores the message, moves the thread's last message and bumps unread counters
// of the other participants in one transaction.
func (repo *chatRepository) AppendMessage(ctx context.Context, message *entity.ChatMessage) error {
	if message.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate message id")
		}
		message.ID = id
	}
	msgM := fromMessageDomain(message)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ChatModel{}).
			Where("id = ?", message.ChatID).
			Updates(map[string]any{
				"last_message_text": message.Text,
				"last_message_at":   message.Timestamp,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrChatNotFound
		}

		if err := tx.Create(msgM).Error; err != nil {
			return err
		}

		return tx.Model(&model.ChatParticipantModel{}).
			Where("chat_id = ? AND user_id <> ?", message.ChatID, message.SenderID).
			Update("unread_count", gorm.Expr("unread_count + 1")).Error
	})
	if errors.Is(err, repository.ErrChatNotFound) {
		return err
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append message")
	}

	return nil
}

// FindMessages returns up to limit messages older than before (zero means now), oldest first.
// A non-positive limit returns the whole thread.
func (repo *chatRepository) FindMessages(ctx context.Context, chatID string, limit int, before time.Time) ([]*entity.ChatMessage, error) {
	var msgModels []*model.ChatMessageModel

	query := repo.db.WithContext(ctx).Where("chat_id = ?", chatID)
	if !before.IsZero() {
		query = query.Where("timestamp < ?", before)
	}
	if limit > 0 {
		// newest page first, reversed below
		query = query.Order("timestamp DESC").Limit(limit)
	} else {
		query = query.Order("timestamp ASC")
	}

	if err := query.Find(&msgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find chat messages")
	}
	if limit > 0 {
		slices.Reverse(msgModels)
	}

	messages := make([]*entity.ChatMessage, 0, len(msgModels))
	for _, msgM := range msgModels {
		messages = append(messages, toMessageDomain(msgM))
	}

	return messages, nil
}

// MarkRead marks the other participants' messages as read and clears userID's unread count.
func (repo *chatRepository) MarkRead(ctx context.Context, chatID, userID string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ChatMessageModel{}).
			Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, userID, false).
			Update("is_read", true).Error; err != nil {
			return err
		}

		return tx.Model(&model.ChatParticipantModel{}).
			Where("chat_id = ? AND user_id = ?", chatID, userID).
			Update("unread_count", 0).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark chat read")
	}

	return nil
}

// --- Mapper Functions ---

func toChatDomain(data *model.ChatModel) *entity.ChatThread {
	if data == nil {
		return nil
	}

	chat := &entity.ChatThread{
		ID:              data.ID,
		Participants:    make([]string, 0, len(data.Participants)),
		ParticipantInfo: make(map[string]entity.ParticipantInfo, len(data.Participants)),
		LastMessageText: data.LastMessageText,
		UnreadCount:     make(map[string]int, len(data.Participants)),
		CreatedAt:       data.CreatedAt,
	}
	if data.LastMessageAt != nil {
		chat.LastMessageTimestamp = *data.LastMessageAt
	}

	for _, p := range data.Participants {
		chat.Participants = append(chat.Participants, p.UserID)
		chat.ParticipantInfo[p.UserID] = entity.ParticipantInfo{
			DisplayName:       p.DisplayName,
			ProfilePictureURL: p.ProfilePictureURL,
		}
		chat.UnreadCount[p.UserID] = p.UnreadCount
	}
	slices.Sort(chat.Participants)

	return chat
}

func fromChatDomain(data *entity.ChatThread) (*model.ChatModel, []model.ChatParticipantModel) {
	chatM := &model.ChatModel{
		ID:              data.ID,
		LastMessageText: data.LastMessageText,
		CreatedAt:       data.CreatedAt,
	}
	if !data.LastMessageTimestamp.IsZero() {
		at := data.LastMessageTimestamp
		chatM.LastMessageAt = &at
	}

	participants := make([]model.ChatParticipantModel, 0, len(data.Participants))
	for _, uid := range data.Participants {
		info := data.ParticipantInfo[uid]
		participants = append(participants, model.ChatParticipantModel{
			ChatID:            data.ID,
			UserID:            uid,
			DisplayName:       info.DisplayName,
			ProfilePictureURL: info.ProfilePictureURL,
			UnreadCount:       data.UnreadCount[uid],
		})
	}

	return chatM, participants
}

func toMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	if data == nil {
		return nil
	}

	return &entity.ChatMessage{
		ID:        data.ID,
		ChatID:    data.ChatID,
		SenderID:  data.SenderID,
		Text:      data.Text,
		Timestamp: data.Timestamp,
		IsRead:    data.IsRead,
	}
}

func fromMessageDomain(data *entity.ChatMessage) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:        data.ID,
		ChatID:    data.ChatID,
		SenderID:  data.SenderID,
		Text:      data.Text,
		Timestamp: data.Timestamp,
		IsRead:    data.IsRead,
	}
}
