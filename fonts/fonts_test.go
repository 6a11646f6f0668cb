package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{HUD, HUDSmall, Bold, Title} {
		assert.NotNil(t, name.Get(), string(name))
	}
	assert.Greater(t, Title.Get().Metrics().Height, HUD.Get().Metrics().Height)
}

func TestBadFont(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("nope"), 10))
	assert.Panics(t, func() { FontName("broken").Get() })
}
