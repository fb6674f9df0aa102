package impl

import (
	"context"
	"log/slog"

	deliverycontext "hifybe/internal/delivery/context"
	"hifybe/internal/domain/entity"
	domainerrors "hifybe/internal/domain/errors"
	"hifybe/internal/domain/repository"
	"hifybe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// conversationService implements the ConversationUsecase interface.
type conversationService struct {
	conversationRepo repository.ConversationRepository
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// ConversationServiceParams holds dependencies for conversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	ConversationRepo repository.ConversationRepository
	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewConversationService is the constructor for conversationService.
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	return &conversationService{
		conversationRepo: params.ConversationRepo,
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

func (srv *conversationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartConversation creates a new thread between two users.
func (srv *conversationService) StartConversation(ctx context.Context, input *usecase.StartConversationInput) (*usecase.ConversationOutput, error) {
	if input.UserID1 == input.UserID2 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cannot start a conversation with yourself")
	}

	for _, userID := range []uuid.UUID{input.UserID1, input.UserID2} {
		if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUserNotFound
			}

			return nil, errors.Wrap(err, "failed to find participant")
		}
	}

	conversation := &entity.Conversation{
		UserID1: input.UserID1,
		UserID2: input.UserID2,
	}

	if err := srv.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, errors.Wrap(err, "failed to create conversation")
	}

	srv.log(ctx).Info("Conversation started", slog.Any("conversationID", conversation.ID))

	return usecase.NewConversationOutput(conversation), nil
}

// ListConversations returns the threads in which the user participates.
func (srv *conversationService) ListConversations(ctx context.Context, userID uuid.UUID) ([]*usecase.ConversationOutput, error) {
	conversations, err := srv.conversationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	out := make([]*usecase.ConversationOutput, 0, len(conversations))
	for _, conversation := range conversations {
		out = append(out, usecase.NewConversationOutput(conversation))
	}

	return out, nil
}

// ListMessages returns a conversation's messages in the order sent.
func (srv *conversationService) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*usecase.MessageOutput, error) {
	if _, err := srv.conversationRepo.FindByID(ctx, conversationID); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	messages, err := srv.conversationRepo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	out := make([]*usecase.MessageOutput, 0, len(messages))
	for _, message := range messages {
		out = append(out, usecase.NewMessageOutput(message))
	}

	return out, nil
}

// SendMessage appends a message to a conversation. The sender must be one
// of the two participants; the other side gets a notification.
func (srv *conversationService) SendMessage(ctx context.Context, conversationID uuid.UUID, input *usecase.SendMessageInput) (*usecase.MessageOutput, error) {
	conversation, err := srv.conversationRepo.FindByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	if input.SenderID != conversation.UserID1 && input.SenderID != conversation.UserID2 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("sender is not a participant of the conversation")
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       input.SenderID,
		Content:        input.Content,
		SongID:         input.SongID,
	}

	if err := srv.conversationRepo.CreateMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	recipientID := conversation.UserID1
	if recipientID == input.SenderID {
		recipientID = conversation.UserID2
	}

	notification := &entity.Notification{
		UserID:  recipientID,
		Content: "Tienes un mensaje nuevo.",
	}
	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		srv.log(ctx).Warn("Failed to notify message recipient",
			slog.Any("conversationID", conversationID), slog.Any("error", err))
	}

	return usecase.NewMessageOutput(message), nil
}

// MarkMessageRead flags one message as read.
func (srv *conversationService) MarkMessageRead(ctx context.Context, messageID uuid.UUID) (*usecase.MessageOutput, error) {
	message, err := srv.conversationRepo.MarkMessageRead(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to mark message read")
	}

	return usecase.NewMessageOutput(message), nil
}
