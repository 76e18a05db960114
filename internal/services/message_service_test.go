package services

import (
	"context"
	errs "errors"
	"testing"

	"github.com/jfotso/immogest-backend/internal/domain/errors"
)

func messageInput() PostMessageInput {
	return PostMessageInput{
		ToEmail: "gestion@immogest.cm",
		Subject: "Visite reportée",
		Body:    "La visite de la villa est reportée à jeudi.",
	}
}

func TestMessageService_Post(t *testing.T) {
	ctx := context.Background()

	t.Run("o remetente é sempre o chamador", func(t *testing.T) {
		env := newTestEnv(t)
		svc := NewMessageService(env.messageRepo, nil, noopLogger{})

		msg, err := svc.Post(ctx, "agent@immogest.cm", messageInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if msg.FromEmail != "agent@immogest.cm" {
			t.Errorf("remetente deveria ser o chamador, obteve '%s'", msg.FromEmail)
		}
		if msg.ID == 0 {
			t.Error("mensagem deveria ter id persistido")
		}
	})

	t.Run("publica no mural depois de gravar", func(t *testing.T) {
		env := newTestEnv(t)
		feed := &fakeFeed{}
		svc := NewMessageService(env.messageRepo, feed, noopLogger{})

		msg, err := svc.Post(ctx, "agent@immogest.cm", messageInput())
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if len(feed.published) != 1 || feed.published[0].ID != msg.ID {
			t.Errorf("mensagem não publicada no mural: %v", feed.published)
		}
	})

	t.Run("destinatário inválido recusa a mensagem", func(t *testing.T) {
		env := newTestEnv(t)
		svc := NewMessageService(env.messageRepo, nil, noopLogger{})

		input := messageInput()
		input.ToEmail = "pas-un-email"
		_, err := svc.Post(ctx, "agent@immogest.cm", input)
		if !errs.Is(err, errors.ErrInvalidEmail) {
			t.Errorf("esperava ErrInvalidEmail, obteve %v", err)
		}
	})

	t.Run("corpo vazio recusa a mensagem", func(t *testing.T) {
		env := newTestEnv(t)
		svc := NewMessageService(env.messageRepo, nil, noopLogger{})

		input := messageInput()
		input.Body = ""
		_, err := svc.Post(ctx, "agent@immogest.cm", input)
		if !errs.Is(err, errors.ErrInvalidInput) {
			t.Errorf("esperava ErrInvalidInput, obteve %v", err)
		}
	})
}

func TestMessageService_List(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc := NewMessageService(env.messageRepo, nil, noopLogger{})

	first := messageInput()
	first.Subject = "Première"
	if _, err := svc.Post(ctx, "a@immogest.cm", first); err != nil {
		t.Fatalf("erro na primeira: %v", err)
	}

	second := messageInput()
	second.Subject = "Seconde"
	if _, err := svc.Post(ctx, "b@immogest.cm", second); err != nil {
		t.Fatalf("erro na segunda: %v", err)
	}

	messages, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("erro ao listar: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("esperava 2 mensagens, obteve %d", len(messages))
	}
	if messages[0].Subject != "Seconde" {
		t.Error("a mais recente deveria vir primeiro")
	}
}
