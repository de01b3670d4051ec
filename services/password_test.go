package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotContains(t, hash, "correct horse")
	assert.Len(t, strings.Split(hash, "$"), 2)

	other, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salts should differ")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		stored   string
		provided string
		want     bool
		wantErr  error
	}{
		{"match", hash, "correct horse", true, nil},
		{"mismatch", hash, "battery staple", false, nil},
		{"case sensitive", hash, "Correct horse", false, nil},
		{"empty provided", hash, "", false, nil},
		{"no separator", "plaintext", "plaintext", false, ErrInvalidHash},
		{"bad salt encoding", "!!!$" + strings.Split(hash, "$")[1], "correct horse", false, ErrInvalidHash},
		{"empty hash part", strings.Split(hash, "$")[0] + "$", "anything", false, ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword(tt.stored, tt.provided)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
		})
	}
}
