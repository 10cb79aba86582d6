package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "CRANE", Normalize("  crane "))
	assert.Equal(t, "AÑEJO", Normalize("añejo"))
	// 結合文字 (N + U+0303) は Ñ に合成される
	assert.Equal(t, "AÑEJO", Normalize("an\u0303ejo"))
	assert.Equal(t, []string{"ALLOY", "SPEED"}, NormalizeAll([]string{"alloy", " Speed"}))
}

func TestAlphabet_Contains(t *testing.T) {
	a := NewAlphabet("abcdefghijklmnñopqrstuvwxyzáéíóúü")

	assert.True(t, a.Contains("CRANE"))
	assert.True(t, a.Contains("AÑEJO"))
	assert.True(t, a.Contains("CAMIÓN"))
	assert.False(t, a.Contains(""))
	assert.False(t, a.Contains("CRAN3"))
	assert.False(t, a.Contains("CRA NE"))
	assert.False(t, a.Contains("ÇA"))
}
