package postgres

import (
	"context"

	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// conversationRepository implements the repository.ConversationRepository interface using GORM.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// Create persists a new conversation.
func (repo *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	conversationM := fromConversationDomain(conversation)

	if err := repo.db.WithContext(ctx).Create(conversationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create conversation")
	}

	conversation.ID = conversationM.ID
	conversation.StartedAt = conversationM.StartedAt

	return nil
}

// FindByID retrieves one conversation.
func (repo *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by id")
	}

	return toConversationDomain(&conversationM), nil
}

// ListByUser retrieves the conversations in which the user appears on
// either side, most recent first.
func (repo *conversationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("usuario1_id = ? OR usuario2_id = ?", userID, userID).
		Order("fecha_inicio DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conversations by user")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// CreateMessage appends one message to a conversation.
func (repo *conversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConversationNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.SentAt = messageM.SentAt

	return nil
}

// ListMessages retrieves a conversation's messages in the order they were sent.
func (repo *conversationRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversacion_id = ?", conversationID).
		Order("fecha_envio ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkMessageRead flags one message as read and returns the updated record.
func (repo *conversationRepository) MarkMessageRead(ctx context.Context, messageID uuid.UUID) (*entity.Message, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("id = ?", messageID).
		Update("leido", true)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark message read")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrMessageNotFound
	}

	var messageM model.MessageModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", messageID).
		First(&messageM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload message")
	}

	return toMessageDomain(&messageM), nil
}

// toConversationDomain converts a GORM ConversationModel to a domain Conversation entity.
func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:        data.ID,
		UserID1:   data.UserID1,
		UserID2:   data.UserID2,
		StartedAt: data.StartedAt,
	}
}

// fromConversationDomain converts a domain Conversation entity to a GORM ConversationModel.
func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	if data == nil {
		return nil
	}

	return &model.ConversationModel{
		ID:        data.ID,
		UserID1:   data.UserID1,
		UserID2:   data.UserID2,
		StartedAt: data.StartedAt,
	}
}

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Content:        data.Content,
		SongID:         data.SongID,
		Read:           data.Read,
		SentAt:         data.SentAt,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:             data.ID,
		ConversationID: data.ConversationID,
		SenderID:       data.SenderID,
		Content:        data.Content,
		SongID:         data.SongID,
		Read:           data.Read,
		SentAt:         data.SentAt,
	}
}
