package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/akashadev/akasha-api/internal/application/auth"
	"github.com/akashadev/akasha-api/internal/application/dto"
	"github.com/akashadev/akasha-api/internal/domain"
	"github.com/akashadev/akasha-api/internal/domain/entity"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(user *entity.User) error {
	if _, ok := r.users[user.Email]; ok {
		return domain.ErrDuplicate
	}
	user.ID = int64(len(r.users) + 1)
	r.users[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

func newAuthUC(t *testing.T, status string) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &memUserRepo{users: map[string]*entity.User{
		"ana@akasha.dev": {
			ID:           1,
			FullName:     "Ana Pérez",
			Email:        "ana@akasha.dev",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Status:       status,
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "akasha-api-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthUC(t, "activo")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@akasha.dev", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, int64(1), out.User.ID)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC(t, "activo")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@akasha.dev", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(t, "activo")

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@akasha.dev", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc := newAuthUC(t, "inactivo")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@akasha.dev", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_EntradaVacia(t *testing.T) {
	uc := newAuthUC(t, "activo")

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
