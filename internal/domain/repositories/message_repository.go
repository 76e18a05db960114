package repositories

import (
	"context"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
)

// MessageRepository define a interface para o mural interno (append-only)
type MessageRepository interface {
	Create(ctx context.Context, msg *entities.Message) error
	// List retorna todas as mensagens, da mais recente para a mais antiga
	List(ctx context.Context) ([]*entities.Message, error)
}
