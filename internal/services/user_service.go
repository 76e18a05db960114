package services

import (
	"context"
	"io"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/domain/ports"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
)

// UserService gerencia o diretório de usuários e as preferências
type UserService struct {
	userRepo repositories.UserRepository
	blobs    ports.BlobStore
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	blobs ports.BlobStore,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		blobs:    blobs,
		logger:   logger,
	}
}

// List lista todos os usuários (diretório do gestor)
func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.List(ctx)
}

// GetSettings retorna as preferências do usuário, criando as padrão
// quando ainda não existem.
func (s *UserService) GetSettings(ctx context.Context, userID string) (*entities.UserSettings, error) {
	settings, err := s.userRepo.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entities.DefaultSettings(userID)
		if err := s.userRepo.SaveSettings(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput são as preferências editáveis. Campos nil não mudam.
type UpdateSettingsInput struct {
	Theme              *string
	Locale             *string
	AutoLogout         *int
	EmailNotifications *bool
	ImageMaxWidth      *int
	ImageMaxHeight     *int
	ImageQuality       *int
}

// UpdateSettings aplica uma atualização parcial de preferências.
// Locale e auto-logout moram no usuário; o resto nas settings.
func (s *UserService) UpdateSettings(ctx context.Context, userID string, input UpdateSettingsInput) (*entities.UserSettings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Theme != nil {
		if *input.Theme != entities.ThemeLight && *input.Theme != entities.ThemeDark {
			return nil, errors.ErrInvalidInput
		}
		settings.Theme = *input.Theme
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.ImageMaxWidth != nil {
		settings.ImageMaxWidth = *input.ImageMaxWidth
	}
	if input.ImageMaxHeight != nil {
		settings.ImageMaxHeight = *input.ImageMaxHeight
	}
	if input.ImageQuality != nil {
		settings.ImageQuality = *input.ImageQuality
	}

	if err := s.userRepo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	if input.Locale != nil || input.AutoLogout != nil {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, errors.ErrUserNotFound
		}
		if input.Locale != nil {
			user.Locale = *input.Locale
		}
		if input.AutoLogout != nil && *input.AutoLogout > 0 {
			user.AutoLogout = *input.AutoLogout
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateAvatar grava o avatar no blob storage e aponta o usuário para ele
func (s *UserService) UpdateAvatar(ctx context.Context, userID, fileName string, reader io.Reader, size int64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	_, url, err := s.blobs.Upload(ctx, "avatars/"+userID, fileName, reader, size)
	if err != nil {
		return nil, err
	}

	user.AvatarURL = &url
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
