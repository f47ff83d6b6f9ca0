package services

import (
	"path/filepath"
	"testing"

	"gemini-portal/app/db"
	"gemini-portal/app/models"
	"gemini-portal/app/repo"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *UserService {
	t.Helper()
	gdb, err := db.Connect(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}))
	return NewUserService(repo.NewUserRepository(gdb))
}

func TestRegisterThenAuthenticate(t *testing.T) {
	s := newTestService(t)

	u, err := s.Register("alice", "secret1")
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.Len(t, u.PasswordHash, 96)
	require.NotContains(t, u.PasswordHash, "secret1")

	got, err := s.Authenticate("alice", "secret1")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	s := newTestService(t)
	_, err := s.Register("alice", "secret1")
	require.NoError(t, err)

	_, err = s.Authenticate("alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	s := newTestService(t)

	// unknown user and wrong password must be indistinguishable
	_, err := s.Authenticate("nobody", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicate(t *testing.T) {
	s := newTestService(t)
	_, err := s.Register("alice", "secret1")
	require.NoError(t, err)

	_, err = s.Register("alice", "secret2")
	require.ErrorIs(t, err, ErrDuplicateUsername)

	users, err := s.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
}
