package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
	"github.com/jfotso/immogest-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := r.getDB(ctx)
	return db.Save(model).Error
}

func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var models []*UserModel

	err := r.getDB(ctx).Order("created_at DESC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(models))
	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *UserRepository) GetSettings(ctx context.Context, userID string) (*entities.UserSettings, error) {
	var model UserSettingsModel

	db := r.getDB(ctx)
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.UserSettings{
		ID:                 model.ID,
		UserID:             model.UserID,
		Theme:              model.Theme,
		EmailNotifications: model.EmailNotifications,
		ImageMaxWidth:      model.ImageMaxWidth,
		ImageMaxHeight:     model.ImageMaxHeight,
		ImageQuality:       model.ImageQuality,
	}, nil
}

func (r *UserRepository) SaveSettings(ctx context.Context, settings *entities.UserSettings) error {
	model := &UserSettingsModel{
		ID:                 settings.ID,
		UserID:             settings.UserID,
		Theme:              settings.Theme,
		EmailNotifications: settings.EmailNotifications,
		ImageMaxWidth:      settings.ImageMaxWidth,
		ImageMaxHeight:     settings.ImageMaxHeight,
		ImageQuality:       settings.ImageQuality,
	}

	db := r.getDB(ctx)
	if err := db.Save(model).Error; err != nil {
		return err
	}

	settings.ID = model.ID
	return nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email.String(),
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Phone:        user.Phone,
		AvatarURL:    user.AvatarURL,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Locale:       user.Locale,
		AutoLogout:   user.AutoLogout,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        email,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Phone:        model.Phone,
		AvatarURL:    model.AvatarURL,
		PasswordHash: model.PasswordHash,
		Role:         entities.Role(model.Role),
		Locale:       model.Locale,
		AutoLogout:   model.AutoLogout,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}
