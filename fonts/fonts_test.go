package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(20))
	assert.NotNil(t, Label.Get())
	assert.NotNil(t, HUD.Get())
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("nope").Get() })
}

func TestNewFaceRejectsGarbage(t *testing.T) {
	_, err := NewFace([]byte("not a font"), 12)
	assert.Error(t, err)
}
