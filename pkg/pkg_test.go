package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "senior-go-engineer", GenerateSlug("Senior Go Engineer!"))
	assert.Equal(t, "qa", GenerateSlug("  QA  "))
	assert.Equal(t, "untitled-job", GenerateSlug("***"))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "secret123"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
