package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
)

// MessageRepository implementa repositories.MessageRepository
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository cria um novo MessageRepository
func NewMessageRepository(db *gorm.DB) repositories.MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, msg *entities.Message) error {
	model := r.toModel(msg)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	msg.ID = model.ID
	msg.SentAt = model.SentAt
	return nil
}

func (r *MessageRepository) List(ctx context.Context) ([]*entities.Message, error) {
	var models []*MessageModel

	err := r.getDB(ctx).Order("sent_at DESC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*entities.Message, len(models))
	for i, model := range models {
		messages[i] = r.toEntity(model)
	}
	return messages, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *MessageRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *MessageRepository) toModel(msg *entities.Message) *MessageModel {
	return &MessageModel{
		ID:         msg.ID,
		FromEmail:  msg.FromEmail,
		ToEmail:    msg.ToEmail,
		Subject:    msg.Subject,
		Body:       msg.Body,
		SentAt:     msg.SentAt,
		IsRead:     msg.IsRead,
		IsFeedback: msg.IsFeedback,
	}
}

func (r *MessageRepository) toEntity(model *MessageModel) *entities.Message {
	return &entities.Message{
		ID:         model.ID,
		FromEmail:  model.FromEmail,
		ToEmail:    model.ToEmail,
		Subject:    model.Subject,
		Body:       model.Body,
		SentAt:     model.SentAt,
		IsRead:     model.IsRead,
		IsFeedback: model.IsFeedback,
	}
}
