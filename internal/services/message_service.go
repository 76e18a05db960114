package services

import (
	"context"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/domain/ports"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
	"github.com/jfotso/immogest-backend/internal/domain/valueobjects"
)

// MessageService gerencia o mural interno de mensagens
type MessageService struct {
	messageRepo repositories.MessageRepository
	feed        ports.FeedPublisher
	logger      ports.Logger
}

// NewMessageService cria um novo MessageService.
// feed pode ser nil quando não há assinantes websocket.
func NewMessageService(
	messageRepo repositories.MessageRepository,
	feed ports.FeedPublisher,
	logger ports.Logger,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		feed:        feed,
		logger:      logger,
	}
}

// PostMessageInput representa uma mensagem a publicar no mural
type PostMessageInput struct {
	ToEmail    string
	Subject    string
	Body       string
	IsFeedback bool
}

// Post publica uma mensagem. O remetente é sempre o email registrado
// do chamador, nunca um campo do request.
func (s *MessageService) Post(ctx context.Context, fromEmail string, input PostMessageInput) (*entities.Message, error) {
	to, err := valueobjects.NewEmail(input.ToEmail)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	msg := &entities.Message{
		FromEmail:  fromEmail,
		ToEmail:    to.String(),
		Subject:    input.Subject,
		Body:       input.Body,
		IsFeedback: input.IsFeedback,
	}

	if err := msg.Validate(); err != nil {
		return nil, errors.ErrInvalidInput
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Publish(msg)
	}

	return msg, nil
}

// List retorna todas as mensagens, da mais recente para a mais antiga
func (s *MessageService) List(ctx context.Context) ([]*entities.Message, error) {
	return s.messageRepo.List(ctx)
}
