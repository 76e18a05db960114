package entities

import (
	"errors"
	"time"

	"github.com/jfotso/immogest-backend/internal/domain/valueobjects"
)

// Temas suportados pelas preferências do usuário
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User representa um usuário do portal (agente, gestor ou admin)
type User struct {
	ID           string
	Username     string
	Email        valueobjects.Email
	FirstName    string
	LastName     string
	Phone        string
	AvatarURL    *string
	PasswordHash string
	Role         Role
	Locale       string
	AutoLogout   int // minutos de inatividade antes de expirar o token
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserSettings guarda as preferências de exibição e de upload de imagens
type UserSettings struct {
	ID                 uint
	UserID             string
	Theme              string
	EmailNotifications bool
	ImageMaxWidth      int
	ImageMaxHeight     int
	ImageQuality       int
}

// DefaultSettings cria as preferências padrão de um usuário recém-criado
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:             userID,
		Theme:              ThemeDark,
		EmailNotifications: true,
		ImageMaxWidth:      1920,
		ImageMaxHeight:     1080,
		ImageQuality:       85,
	}
}

// DisplayName retorna o primeiro nome, ou o username quando não há nome
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

// TokenTTL retorna a validade do token derivada do auto-logout do usuário
func (u *User) TokenTTL() time.Duration {
	minutes := u.AutoLogout
	if minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if !u.Role.Valid() {
		return errors.New("invalid role")
	}

	return nil
}
