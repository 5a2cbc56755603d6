package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashTokenStableHex(t *testing.T) {
	assert.Equal(t,
		"2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae",
		HashToken("foo"))
	assert.NotEqual(t, HashToken("foo"), HashToken("bar"))
}

func TestGenerateAndExtractSubject(t *testing.T) {
	token, err := GenerateToken("prov-1", "p@example.com", time.Hour)
	require.NoError(t, err)
	sub, err := ExtractSubjectFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "prov-1", sub)
}

func TestExtractSubjectRejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken("prov-1", "p@example.com", -time.Hour)
	require.NoError(t, err)
	_, err = ExtractSubjectFromToken(token)
	assert.Error(t, err)
}
