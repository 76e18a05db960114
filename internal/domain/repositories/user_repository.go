package repositories

import (
	"context"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	List(ctx context.Context) ([]*entities.User, error)

	GetSettings(ctx context.Context, userID string) (*entities.UserSettings, error)
	SaveSettings(ctx context.Context, settings *entities.UserSettings) error
}
