package dto

import (
	"time"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/services"
)

// MessageRequest representa a publicação de uma mensagem no mural.
// O remetente nunca é aceito do cliente.
type MessageRequest struct {
	ToEmail    string `json:"to_email" binding:"required,email"`
	Subject    string `json:"subject" binding:"required,max=200"`
	Body       string `json:"body" binding:"required"`
	IsFeedback bool   `json:"is_feedback"`
}

// ToInput converte a requisição para o input do serviço
func (r *MessageRequest) ToInput() services.PostMessageInput {
	return services.PostMessageInput{
		ToEmail:    r.ToEmail,
		Subject:    r.Subject,
		Body:       r.Body,
		IsFeedback: r.IsFeedback,
	}
}

// MessageResponse representa a resposta de uma mensagem
type MessageResponse struct {
	ID         uint      `json:"id"`
	FromEmail  string    `json:"from_email"`
	ToEmail    string    `json:"to_email"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
	IsRead     bool      `json:"is_read"`
	IsFeedback bool      `json:"is_feedback"`
}

// ToMessageResponse converte uma entidade Message para MessageResponse
func ToMessageResponse(msg *entities.Message) MessageResponse {
	return MessageResponse{
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

// ToMessageResponses converte uma lista de mensagens
func ToMessageResponses(messages []*entities.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = ToMessageResponse(msg)
	}
	return responses
}
