package chat

import (
	"errors"
	"strings"

	"drjackson/internal/models"
	"drjackson/internal/persona"
	"drjackson/internal/session"
)

// Service runs one chat turn: store the user message, classify it, pick a
// canned reply, store that too. The reply can be streamed word by word
// through the chunk callback.
type Service struct {
	responder *persona.Responder
}

// NewService builds a chat service around the responder.
func NewService(responder *persona.Responder) *Service {
	return &Service{responder: responder}
}

// Turn is the outcome of one exchange.
type Turn struct {
	UserMessage models.ChatMessage
	Reply       models.ChatMessage
	Priority    persona.PriorityLevel
}

// Respond appends the user message, selects a response, and appends the
// assistant message. chunkFn, when set, receives the reply word by word; a
// callback error aborts the turn before the reply is stored.
func (s *Service) Respond(sess *session.Session, content string, chunkFn func(string) error) (*Turn, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("content cannot be empty")
	}

	userMsg := sess.AppendMessage(models.RoleUser, content)
	priority := persona.Prioritize(content)
	response := s.responder.ChatResponse(content)

	if chunkFn != nil {
		words := strings.Fields(response)
		for i, word := range words {
			chunk := word
			if i < len(words)-1 {
				chunk += " "
			}
			if err := chunkFn(chunk); err != nil {
				return nil, err
			}
		}
	}

	reply := sess.AppendMessage(models.RoleAssistant, response)
	return &Turn{UserMessage: userMsg, Reply: reply, Priority: priority}, nil
}

// ClearHistory drops the whole transcript.
func (s *Service) ClearHistory(sess *session.Session) {
	sess.ClearHistory()
}
