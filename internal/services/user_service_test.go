package services

import (
	"context"
	errs "errors"
	"strings"
	"testing"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	"github.com/jfotso/immogest-backend/internal/domain/errors"
)

func newUserService(env *testEnv, blobs *fakeBlobStore) *UserService {
	return NewUserService(env.userRepo, blobs, noopLogger{})
}

func registerUser(t *testing.T, env *testEnv) *entities.User {
	t.Helper()
	user, _, err := newAuthService(env).Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("erro no registro: %v", err)
	}
	return user
}

func TestUserService_GetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("cria as preferências padrão quando não existem", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newUserService(env, &fakeBlobStore{})
		user := registerUser(t, env)

		// Apagar as settings criadas no registro simula um usuário antigo
		if err := env.db.Exec("DELETE FROM user_settings WHERE user_id = ?", user.ID).Error; err != nil {
			t.Fatalf("erro ao limpar settings: %v", err)
		}

		settings, err := svc.GetSettings(ctx, user.ID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if settings.Theme != entities.ThemeDark {
			t.Errorf("tema padrão deveria ser dark, obteve '%s'", settings.Theme)
		}
		if settings.ImageMaxWidth != 1920 || settings.ImageQuality != 85 {
			t.Errorf("padrões de imagem inesperados: %+v", settings)
		}
	})
}

func TestUserService_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("atualização parcial: campos nil não mudam", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newUserService(env, &fakeBlobStore{})
		user := registerUser(t, env)

		theme := entities.ThemeLight
		settings, err := svc.UpdateSettings(ctx, user.ID, UpdateSettingsInput{Theme: &theme})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if settings.Theme != entities.ThemeLight {
			t.Errorf("tema não atualizado: '%s'", settings.Theme)
		}
		if settings.ImageMaxWidth != 1920 {
			t.Errorf("campo não enviado mudou: %d", settings.ImageMaxWidth)
		}
	})

	t.Run("tema fora do enum é recusado", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newUserService(env, &fakeBlobStore{})
		user := registerUser(t, env)

		theme := "solarized"
		_, err := svc.UpdateSettings(ctx, user.ID, UpdateSettingsInput{Theme: &theme})
		if !errs.Is(err, errors.ErrInvalidInput) {
			t.Errorf("esperava ErrInvalidInput, obteve %v", err)
		}
	})

	t.Run("locale e auto-logout moram no usuário", func(t *testing.T) {
		env := newTestEnv(t)
		svc := newUserService(env, &fakeBlobStore{})
		user := registerUser(t, env)

		locale := "en"
		autoLogout := 60
		if _, err := svc.UpdateSettings(ctx, user.ID, UpdateSettingsInput{Locale: &locale, AutoLogout: &autoLogout}); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		updated, err := env.userRepo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("erro ao reler usuário: %v", err)
		}
		if updated.Locale != "en" {
			t.Errorf("locale não atualizado: '%s'", updated.Locale)
		}
		if updated.AutoLogout != 60 {
			t.Errorf("auto-logout não atualizado: %d", updated.AutoLogout)
		}
	})
}

func TestUserService_UpdateAvatar(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	blobs := &fakeBlobStore{}
	svc := newUserService(env, blobs)
	user := registerUser(t, env)

	updated, err := svc.UpdateAvatar(ctx, user.ID, "photo.png", strings.NewReader("img"), 3)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if updated.AvatarURL == nil || *updated.AvatarURL == "" {
		t.Fatal("avatar_url deveria apontar para o blob")
	}
	if len(blobs.uploads) != 1 {
		t.Errorf("esperava 1 upload, obteve %d", len(blobs.uploads))
	}
}
