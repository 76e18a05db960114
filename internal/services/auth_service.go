package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/errors"
	"github.com/jfotso/immogest-backend/internal/domain/ports"
	"github.com/jfotso/immogest-backend/internal/domain/repositories"
	"github.com/jfotso/immogest-backend/internal/domain/valueobjects"
)

// AuthService autentica usuários e emite bearer tokens
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   ports.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterInput representa os dados de criação de conta
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      entities.Role
	Password  string
}

// Login autentica por username e senha e emite um token com a validade
// derivada do auto-logout do usuário. Usuário desconhecido e senha errada
// produzem exatamente o mesmo erro: a resposta não revela qual dos dois.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entities.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}, user.TokenTTL())
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user logged in", "user", user.ID, "role", user.Role)
	return user, token, nil
}

// Register cria a conta, as preferências padrão e já emite um token.
// O role é restrito ao enum declarado; nada além disso vem do cliente.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, string, error) {
	if !input.Role.Valid() {
		return nil, "", errors.ErrInvalidInput
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, "", errors.ErrInvalidEmail
	}

	existing, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", errors.ErrUsernameTaken
	}

	existing, err = s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &entities.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         input.Role,
		Locale:       "fr",
		AutoLogout:   30,
	}

	if err := user.Validate(); err != nil {
		return nil, "", errors.ErrInvalidInput
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	if err := s.userRepo.SaveSettings(ctx, entities.DefaultSettings(user.ID)); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(ports.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}, user.TokenTTL())
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user registered", "user", user.ID, "role", user.Role)
	return user, token, nil
}

// GetUser busca um usuário por ID
func (s *AuthService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}
