package assistant

import (
	"context"
	"strings"
)

// Translator converts text between the assistant's working language
// (English) and the user's selected locale.
type Translator interface {
	Translate(ctx context.Context, text, targetLocale string) (string, error)
}

// SimulatedTranslator stands in for a real translation API. English
// targets pass through untouched; any other locale gets its language
// code prefixed so the round-trip is visible in the conversation.
type SimulatedTranslator struct{}

// Translate implements Translator.
func (SimulatedTranslator) Translate(_ context.Context, text, targetLocale string) (string, error) {
	if strings.HasPrefix(targetLocale, "en") {
		return text, nil
	}
	lang, _, _ := strings.Cut(targetLocale, "-")
	return "[" + lang + "] " + text, nil
}
