package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var namePattern = regexp.MustCompile(`^\d+-\d+\.jpg$`)

func TestUniqueImageName(t *testing.T) {
	name := UniqueImageName("photo.jpg")
	assert.Regexp(t, namePattern, name)
}

func TestUniqueImageNamePreservesExtension(t *testing.T) {
	assert.Regexp(t, `\.png$`, UniqueImageName("shot.png"))
	assert.Regexp(t, `\.JPEG$`, UniqueImageName("SHOT.JPEG"))
	// No extension on the original means none on the stored name either.
	assert.Regexp(t, `^\d+-\d+$`, UniqueImageName("raw"))
}

func TestUniqueImageNameCollisionResistance(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := UniqueImageName("a.jpg")
		assert.False(t, seen[n], "duplicate generated name %s", n)
		seen[n] = true
	}
}
