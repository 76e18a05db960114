package ports

import "github.com/jfotso/immogest-backend/internal/domain/entities"

// FeedPublisher notifica assinantes do mural sobre mensagens novas.
// A publicação é best-effort: falha de entrega não afeta a gravação.
type FeedPublisher interface {
	Publish(msg *entities.Message)
}
