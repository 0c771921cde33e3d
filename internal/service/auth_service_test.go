package service

import (
	"testing"

	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"
	"github.com/vpriyankaa/sales-admin-sub000/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginByEmailOrPhone(t *testing.T) {
	f := newFixture(t)
	users := repository.NewUserRepo(f.db)
	require.NoError(t, repository.NewPrivilegeRepo(f.db).SeedDefaults())

	user := &model.User{Email: "clerk@example.com", Phone: "9111111111", FullName: "Clerk", IsActive: true,
		Privileges: []model.Privilege{}}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, users.Create(user))
	privileges, err := repository.NewPrivilegeRepo(f.db).FindByCodes([]string{"order:create"})
	require.NoError(t, err)
	require.NoError(t, users.UpdatePrivileges(user.ID, privileges))

	auth := NewAuthService(users, jwt.NewManager("test-secret"))

	resp, err := auth.Login(" Clerk@Example.com ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, []string{"order:create"}, resp.Privileges)
	assert.Equal(t, "Clerk", resp.User.FullName)

	resp, err = auth.Login("9111111111", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	validated, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, validated.User.ID)

	_, err = auth.Login("9111111111", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPassword(t *testing.T) {
	f := newFixture(t)
	users := repository.NewUserRepo(f.db)
	user := &model.User{Email: "owner@example.com", FullName: "Owner", IsActive: true}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, users.Create(user))
	auth := NewAuthService(users, jwt.NewManager("test-secret"))

	assert.ErrorIs(t, auth.ResetPassword("owner@example.com", "nope", "newsecret"), ErrWrongPassword)
	assert.ErrorIs(t, auth.ResetPassword("owner@example.com", "secret123", "123"), ErrValidation)
	assert.ErrorIs(t, auth.ResetPassword("ghost@example.com", "secret123", "newsecret"), ErrUserNotFound)

	require.NoError(t, auth.ResetPassword("owner@example.com", "secret123", "newsecret"))
	_, err := auth.Login("owner@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login("owner@example.com", "newsecret")
	assert.NoError(t, err)
}
