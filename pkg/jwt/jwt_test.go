package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret")
	id := uuid.New()

	token, err := m.GenerateToken(id, "admin@example.com", "Admin", []string{"order:create"})
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, []string{"order:create"}, claims.Privileges)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := NewManager("one").GenerateToken(uuid.New(), "a@b.c", "A", nil)
	require.NoError(t, err)

	_, err = NewManager("two").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewManager("two").ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)
}
