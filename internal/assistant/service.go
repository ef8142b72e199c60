// Package assistant implements the conversational guide. User input is
// translated into English, sent through the NLU boundary with the
// clinic's system prompt, and the reply is translated back into the
// selected locale. NLU failures become a canned reply; the history is
// never rolled back.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"ayursutra-server/internal/nlu"
)

const (
	fallbackReply     = "I'm having trouble connecting right now. Please try again."
	emptyReply        = "Sorry, I couldn't process that."
	englishLocale     = "en-US"
	disclaimerClause  = `"This is AI-generated advice. Please consult your Vaidya (doctor) for any medical decisions."`
	systemPromptShape = `You are "AyurSutra Assistant," a specialized AI for a patient named %s.
Your purpose is to provide helpful, safe, and supportive guidance based on Ayurvedic principles in English.
%s's current treatment plan includes Abhyanga, Shirodhara, and Herbal Steam Baths.
Their primary goals are stress reduction and improving digestion.

RULES:
1. Always be gentle, empathetic, and encouraging. Your response MUST be in English.
2. Crucially, you must ALWAYS include this disclaimer at the end of your response: ` + disclaimerClause + `
3. Keep responses concise (2-4 sentences).`
)

// Message is one chat turn.
type Message struct {
	Role string    `json:"role"` // "user" or "model"
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Service holds per-session chat histories.
type Service struct {
	client     nlu.Client
	translator Translator
	log        *zap.Logger

	mu        sync.Mutex
	histories map[string][]Message
}

// NewService creates an assistant service.
func NewService(client nlu.Client, translator Translator, log *zap.Logger) *Service {
	return &Service{
		client:     client,
		translator: translator,
		log:        log,
		histories:  make(map[string][]Message),
	}
}

// Send records the user's message, asks the NLU service for a reply in
// the selected locale, records the reply, and returns it. A failing
// NLU call yields the canned fallback reply instead of an error
// response; prior history is always preserved.
func (s *Service) Send(ctx context.Context, sessionKey, patientName, input, locale string) (Message, error) {
	userMsg := Message{Role: "user", Text: input, At: time.Now()}
	s.append(sessionKey, userMsg)

	query := input
	if !strings.HasPrefix(locale, "en") {
		translated, err := s.translator.Translate(ctx, input, englishLocale)
		if err == nil {
			query = translated
		}
	}

	raw, err := s.client.GenerateText(ctx, nlu.Request{
		System: fmt.Sprintf(systemPromptShape, patientName, patientName),
		Prompt: query,
	})

	var replyText string
	var sendErr error
	switch {
	case err == nil:
		replyText = raw
	case nlu.KindOf(err) == nlu.KindEmpty:
		replyText = emptyReply
	default:
		s.log.Warn("assistant reply failed", zap.String("kind", string(nlu.KindOf(err))), zap.Error(err))
		replyText = fallbackReply
		sendErr = err
	}

	if sendErr == nil && !strings.HasPrefix(locale, "en") {
		translated, terr := s.translator.Translate(ctx, replyText, locale)
		if terr == nil {
			replyText = translated
		}
	}

	modelMsg := Message{Role: "model", Text: replyText, At: time.Now()}
	s.append(sessionKey, modelMsg)
	return modelMsg, sendErr
}

// History returns a copy of the chat history for a session.
func (s *Service) History(sessionKey string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.histories[sessionKey]...)
}

func (s *Service) append(sessionKey string, msg Message) {
	s.mu.Lock()
	s.histories[sessionKey] = append(s.histories[sessionKey], msg)
	s.mu.Unlock()
}
