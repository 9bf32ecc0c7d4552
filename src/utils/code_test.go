package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJoinCode(t *testing.T) {
	t.Run("FixedLengthUppercaseAlphanumeric", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			code := GenerateJoinCode()
			assert.Len(t, code, CodeLength)
			for _, ch := range code {
				assert.Contains(t, codeAlphabet, string(ch))
			}
			assert.Equal(t, strings.ToUpper(code), code)
		}
	})

	t.Run("SpreadsAcrossCodeSpace", func(t *testing.T) {
		// Not a uniqueness guarantee (the DB index provides that), just a
		// sanity check that the generator is not stuck.
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			seen[GenerateJoinCode()] = true
		}
		assert.Greater(t, len(seen), 95)
	})
}

func TestNormalizeJoinCode(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeJoinCode("abc123"))
	assert.Equal(t, "ABC123", NormalizeJoinCode("ABC123"))
	assert.Equal(t, "ABC123", NormalizeJoinCode("  ABC123  "))
	assert.Equal(t, "ABC123", NormalizeJoinCode("\tabc123\n"))
	assert.Equal(t, "", NormalizeJoinCode("   "))
}
