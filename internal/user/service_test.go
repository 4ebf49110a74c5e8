package user

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*User{}}
}

func (f *fakeUserRepo) Create(u *User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *User) error {
	f.byEmail[u.Email] = u
	return nil
}

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "service-test-secret")
	auth.Init()
	os.Exit(m.Run())
}

func TestRegister(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	ctx := context.Background()

	t.Run("CreatesUser", func(t *testing.T) {
		resp, err := svc.Register(ctx, RegisterDTO{Email: "Ada@Example.com", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.Equal(t, "user", resp.Role)
	})

	t.Run("RejectsDuplicateEmail", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterDTO{Email: "ada@example.com", Password: "s3cret"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("RejectsMissingFields", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterDTO{Email: "", Password: "s3cret"})
		assert.ErrorIs(t, err, ErrCredentialsMissing)
	})

	t.Run("RejectsShortPassword", func(t *testing.T) {
		_, err := svc.Register(ctx, RegisterDTO{Email: "bob@example.com", Password: "abc"})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})
}

func TestLoginAndRefresh(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterDTO{Email: "ada@example.com", Password: "s3cret"})
	require.NoError(t, err)

	t.Run("ValidCredentials", func(t *testing.T) {
		tokens, err := svc.Login(ctx, LoginDTO{Email: "ada@example.com", Password: "s3cret"})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.Access)
		assert.NotEmpty(t, tokens.Refresh)

		claims, err := auth.ValidateJWT(tokens.Access)
		require.NoError(t, err)
		assert.Equal(t, repo.byEmail["ada@example.com"].ID.String(), claims.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginDTO{Email: "ada@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginDTO{Email: "ghost@example.com", Password: "s3cret"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("RefreshIssuesNewPair", func(t *testing.T) {
		tokens, err := svc.Login(ctx, LoginDTO{Email: "ada@example.com", Password: "s3cret"})
		require.NoError(t, err)

		renewed, err := svc.Refresh(ctx, tokens.Refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, renewed.Access)
	})

	t.Run("AccessTokenIsNotARefreshToken", func(t *testing.T) {
		tokens, err := svc.Login(ctx, LoginDTO{Email: "ada@example.com", Password: "s3cret"})
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, tokens.Access)
		assert.ErrorIs(t, err, ErrInvalidRefresh)
	})
}
