package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockypocky/sp-api/internal/application/auth"
	"github.com/stockypocky/sp-api/internal/application/dto"
	"github.com/stockypocky/sp-api/internal/domain"
	"github.com/stockypocky/sp-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users map[string]*entity.User // key: id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByName(name string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "stockypocky-test",
	})
	return uc, repo
}

func TestSignup_CreaUsuarioConPasswordHasheado(t *testing.T) {
	uc, repo := buildAuthUC()

	user, err := uc.Signup(dto.SignupRequest{
		Email: "pocky@example.com", Password: "super-secreta", Name: "pocky",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID, "el ID debe ser un UUID generado")
	assert.Equal(t, "pocky", user.Name)

	stored, err := repo.GetByEmail("pocky@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secreta", stored.PasswordHash,
		"el password nunca se guarda en texto plano")
}

func TestSignup_NombreDuplicado_RetornaError(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Signup(dto.SignupRequest{Email: "a@example.com", Password: "12345678", Name: "pocky"})
	require.NoError(t, err)

	_, err = uc.Signup(dto.SignupRequest{Email: "b@example.com", Password: "12345678", Name: "pocky"})
	assert.ErrorIs(t, err, domain.ErrNameAlreadyExists)
}

func TestSignup_EmailDuplicado_RetornaError(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Signup(dto.SignupRequest{Email: "a@example.com", Password: "12345678", Name: "pocky"})
	require.NoError(t, err)

	_, err = uc.Signup(dto.SignupRequest{Email: "a@example.com", Password: "12345678", Name: "rocky"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_DevuelveTokenConPrefijoBearer(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Signup(dto.SignupRequest{Email: "a@example.com", Password: "12345678", Name: "pocky"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "a@example.com", Password: "12345678"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Token, "Bearer "),
		"el token del login debe llevar el prefijo Bearer")
	assert.Equal(t, "pocky", out.Name)
}

func TestLogin_UsuarioInexistente_RetornaErrUserNotFound(t *testing.T) {
	uc, _ := buildAuthUC()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecto_RetornaErrUnauthorized(t *testing.T) {
	uc, _ := buildAuthUC()
	_, err := uc.Signup(dto.SignupRequest{Email: "a@example.com", Password: "12345678", Name: "pocky"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
