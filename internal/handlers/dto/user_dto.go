package dto

import (
	"time"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/services"
)

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Locale    string    `json:"langue"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      string(user.Role),
		Locale:    user.Locale,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de usuários
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// SettingsRequest é a atualização parcial de preferências.
// Campos ausentes não mudam nada.
type SettingsRequest struct {
	Theme              *string `json:"theme" binding:"omitempty,oneof=light dark"`
	Langue             *string `json:"langue" binding:"omitempty,max=5"`
	AutoLogout         *int    `json:"auto_logout" binding:"omitempty,min=1,max=480"`
	NotificationsEmail *bool   `json:"notifications_email"`
	ImageMaxWidth      *int    `json:"image_max_width" binding:"omitempty,min=100,max=8000"`
	ImageMaxHeight     *int    `json:"image_max_height" binding:"omitempty,min=100,max=8000"`
	ImageQuality       *int    `json:"image_quality" binding:"omitempty,min=1,max=100"`
}

// ToInput converte a requisição para o input do serviço
func (r *SettingsRequest) ToInput() services.UpdateSettingsInput {
	return services.UpdateSettingsInput{
		Theme:              r.Theme,
		Locale:             r.Langue,
		AutoLogout:         r.AutoLogout,
		EmailNotifications: r.NotificationsEmail,
		ImageMaxWidth:      r.ImageMaxWidth,
		ImageMaxHeight:     r.ImageMaxHeight,
		ImageQuality:       r.ImageQuality,
	}
}

// SettingsResponse representa as preferências do usuário
type SettingsResponse struct {
	Theme              string `json:"theme"`
	NotificationsEmail bool   `json:"notifications_email"`
	ImageMaxWidth      int    `json:"image_max_width"`
	ImageMaxHeight     int    `json:"image_max_height"`
	ImageQuality       int    `json:"image_quality"`
}

// ToSettingsResponse converte uma entidade UserSettings
func ToSettingsResponse(settings *entities.UserSettings) SettingsResponse {
	return SettingsResponse{
		Theme:              settings.Theme,
		NotificationsEmail: settings.EmailNotifications,
		ImageMaxWidth:      settings.ImageMaxWidth,
		ImageMaxHeight:     settings.ImageMaxHeight,
		ImageQuality:       settings.ImageQuality,
	}
}
