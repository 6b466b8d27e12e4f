package services

import (
	"context"
	"time"

	"cnapp/apperrors"
	"cnapp/models"
	"cnapp/repository"
)

type SendInput struct {
	Text     *string
	Audio    *string
	Sender   string
	Receiver string
	Reply    *models.Reply
}

type MessageService struct {
	messages repository.MessageRepository
	now      func() time.Time
}

func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages, now: time.Now}
}

func (s *MessageService) Send(ctx context.Context, in SendInput) (*models.Message, error) {
	if in.Sender == "" || in.Receiver == "" {
		return nil, apperrors.Invalid("sender and receiver are required")
	}

	msg := &models.Message{
		Text:     in.Text,
		Audio:    in.Audio,
		Sender:   in.Sender,
		Receiver: in.Receiver,
		Reply:    in.Reply,
		// BSON dates carry milliseconds; truncate so the returned record equals the stored one.
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListAll returns every stored message, oldest first.
func (s *MessageService) ListAll(ctx context.Context) ([]models.Message, error) {
	messages, err := s.messages.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}
