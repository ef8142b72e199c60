// Package voice models the speech I/O boundary. Capability is checked
// at call time; absence degrades to a typed error the UI can turn into
// a visible notice, never a crash.
package voice

import (
	"errors"
	"fmt"
)

var (
	// ErrCapabilityMissing is returned when the host has no speech
	// capability at all.
	ErrCapabilityMissing = errors.New("voice capability is not available")

	// ErrLocaleUnsupported is returned for a locale the speech engine
	// cannot handle. It is distinguishable from a generic failure so
	// the caller can suggest switching languages.
	ErrLocaleUnsupported = errors.New("selected locale is not supported")
)

// SupportedLocales lists the locales the assistant offers for speech
// input and output.
var SupportedLocales = []string{"en-US", "hi-IN", "ta-IN", "te-IN", "bn-IN"}

// Gateway is the capability surface for speech-to-text and
// text-to-speech.
type Gateway struct {
	available bool
}

// NewGateway creates a voice gateway. available reflects whether the
// host environment exposes a speech engine.
func NewGateway(available bool) *Gateway {
	return &Gateway{available: available}
}

// CheckLocale verifies that speaking or listening in the given locale
// can proceed. The selected locale is passed through to both
// directions of the speech engine, so one check covers both.
func (g *Gateway) CheckLocale(locale string) error {
	if !g.available {
		return ErrCapabilityMissing
	}
	for _, l := range SupportedLocales {
		if l == locale {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrLocaleUnsupported, locale)
}
