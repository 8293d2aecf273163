package domain

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wittyName = regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`)

func TestRandomProjectName(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		name := RandomProjectName(rng)
		assert.Regexp(t, wittyName, name)
	}
}

func TestRandomProjectNameIsDeterministic(t *testing.T) {
	a := RandomProjectName(rand.New(rand.NewSource(7)))
	b := RandomProjectName(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestRandomColorStaysInPalette(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		assert.True(t, ValidColor(RandomColor(rng)))
	}
}

func TestValidColor(t *testing.T) {
	require.Len(t, Colors, 10)
	for _, c := range Colors {
		assert.True(t, ValidColor(c), c)
	}
	assert.False(t, ValidColor("#000000"))
	assert.False(t, ValidColor(""))
	assert.False(t, ValidColor("6366f1"))
}
