package chat

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"drjackson/internal/models"
	"drjackson/internal/persona"
	"drjackson/internal/session"
)

func newTestService() (*Service, *session.Session) {
	responder := persona.NewResponder(rand.New(rand.NewSource(7)))
	return NewService(responder), session.NewStore(time.Hour).Create()
}

func TestRespondAppendsBothMessages(t *testing.T) {
	svc, sess := newTestService()

	turn, err := svc.Respond(sess, "I have trouble sleeping and feel fatigued", nil)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	candidates := persona.CandidateResponses("sleep")
	found := false
	for _, c := range candidates {
		if turn.Reply.Content == c {
			found = true
		}
	}
	if !found {
		t.Fatalf("reply not drawn from sleep candidates: %q", turn.Reply.Content)
	}
	if turn.Priority != persona.PriorityMedium {
		t.Fatalf("expected default priority, got %s", turn.Priority)
	}

	history := sess.History()
	if len(history) != 2 {
		t.Fatalf("expected user+assistant messages, got %d", len(history))
	}
	if history[0].Role != models.RoleUser || history[1].Role != models.RoleAssistant {
		t.Fatalf("unexpected ordering: %v then %v", history[0].Role, history[1].Role)
	}
}

func TestRespondStreamsWholeReply(t *testing.T) {
	svc, sess := newTestService()

	var streamed strings.Builder
	turn, err := svc.Respond(sess, "questions about my diet", func(chunk string) error {
		streamed.WriteString(chunk)
		return nil
	})
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if streamed.String() != turn.Reply.Content {
		t.Fatalf("streamed chunks differ from stored reply:\n%q\n%q", streamed.String(), turn.Reply.Content)
	}
}

func TestRespondRejectsEmptyContent(t *testing.T) {
	svc, sess := newTestService()
	if _, err := svc.Respond(sess, "   ", nil); err == nil {
		t.Fatalf("expected error for blank content")
	}
	if len(sess.History()) != 0 {
		t.Fatalf("blank input must not be stored")
	}
}

func TestRespondCallbackErrorAbortsReply(t *testing.T) {
	svc, sess := newTestService()
	wantErr := errors.New("client gone")
	_, err := svc.Respond(sess, "wellness check", func(string) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected callback error, got %v", err)
	}
	history := sess.History()
	if len(history) != 1 || history[0].Role != models.RoleUser {
		t.Fatalf("expected only the user message to persist, got %d messages", len(history))
	}
}

func TestClearHistory(t *testing.T) {
	svc, sess := newTestService()
	if _, err := svc.Respond(sess, "stress at work", nil); err != nil {
		t.Fatalf("respond: %v", err)
	}
	svc.ClearHistory(sess)
	if len(sess.History()) != 0 {
		t.Fatalf("expected empty history after clear")
	}
}
