package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckLocaleWithoutCapability(t *testing.T) {
	g := NewGateway(false)
	assert.ErrorIs(t, g.CheckLocale("en-US"), ErrCapabilityMissing)
}

func TestCheckLocaleSupported(t *testing.T) {
	g := NewGateway(true)
	for _, locale := range SupportedLocales {
		assert.NoError(t, g.CheckLocale(locale))
	}
}

func TestCheckLocaleUnsupported(t *testing.T) {
	g := NewGateway(true)
	err := g.CheckLocale("fr-FR")
	assert.ErrorIs(t, err, ErrLocaleUnsupported)
}
