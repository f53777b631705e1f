package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"khabar/config"
	"khabar/domain"
	"khabar/mocks"
	"khabar/usecase/auth_usecase"
)

func adminClaims() *auth_usecase.Claims {
	return &auth_usecase.Claims{UserID: "u1", Name: "Desk Admin", Role: "admin"}
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour, Issuer: "khabar-backend"}
}

func newAuthHandler(users *mocks.MockUserPort) *AuthHandler {
	return NewAuthHandler(auth_usecase.NewAuthUsecase(users, testAuthConfig()))
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserPort(ctrl)
	handler := newAuthHandler(users)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	users.EXPECT().
		FetchUserByEmail(gomock.Any(), "desk@example.com").
		Return(&domain.User{ID: "u1", Email: "desk@example.com", PasswordHash: string(hash), Role: domain.RoleAdmin}, nil)

	c, rec := newContext(http.MethodPost, "/v1/auth/login", `{"email":"desk@example.com","password":"s3cret"}`)
	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
	assert.NotContains(t, rec.Body.String(), string(hash))
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserPort(ctrl)
	handler := newAuthHandler(users)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	users.EXPECT().
		FetchUserByEmail(gomock.Any(), "desk@example.com").
		Return(&domain.User{ID: "u1", PasswordHash: string(hash)}, nil)

	c, rec := newContext(http.MethodPost, "/v1/auth/login", `{"email":"desk@example.com","password":"wrong"}`)
	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserPort(ctrl)
	handler := newAuthHandler(users)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleEditor, user.Role)
			assert.Equal(t, "reporter@example.com", user.Email)
			user.ID = "u2"
			return user, nil
		})

	body := `{"name":"Reporter","email":"Reporter@Example.com","password":"s3cret"}`
	c, rec := newContext(http.MethodPost, "/v1/auth/register", body)
	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserPort(ctrl)
	handler := newAuthHandler(users)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateEmail)

	body := `{"name":"Reporter","email":"desk@example.com","password":"s3cret"}`
	c, rec := newContext(http.MethodPost, "/v1/auth/register", body)
	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestAuthHandler_MeWithoutClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := newAuthHandler(mocks.NewMockUserPort(ctrl))

	c, rec := newContext(http.MethodGet, "/v1/auth/me", "")
	require.NoError(t, handler.Me(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserPort(ctrl)
	handler := newAuthHandler(users)

	users.EXPECT().
		FetchUserByID(gomock.Any(), "u1").
		Return(&domain.User{ID: "u1", Name: "Desk Admin"}, nil)

	c, rec := newContext(http.MethodGet, "/v1/auth/me", "")
	c.Set("auth_claims", adminClaims())
	require.NoError(t, handler.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Desk Admin")
}

func TestAuthHandler_UpdateMeIgnoresRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserPort(ctrl)
	handler := newAuthHandler(users)

	users.EXPECT().
		UpdateUser(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update domain.UserUpdate) (*domain.User, error) {
			assert.Nil(t, update.Role)
			require.NotNil(t, update.Name)
			assert.Equal(t, "New Name", *update.Name)
			return &domain.User{ID: "u1", Name: *update.Name}, nil
		})

	body := `{"name":"New Name","role":"admin"}`
	c, rec := newContext(http.MethodPut, "/v1/auth/me", body)
	c.Set("auth_claims", &auth_usecase.Claims{UserID: "u1", Name: "Reporter", Role: "editor"})
	require.NoError(t, handler.UpdateMe(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_UpdateUserChangesRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserPort(ctrl)
	handler := newAuthHandler(users)

	users.EXPECT().
		UpdateUser(gomock.Any(), "u2", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update domain.UserUpdate) (*domain.User, error) {
			require.NotNil(t, update.Role)
			assert.Equal(t, domain.RoleAdmin, *update.Role)
			return &domain.User{ID: "u2", Role: *update.Role}, nil
		})

	c, rec := newContext(http.MethodPut, "/", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("u2")
	require.NoError(t, handler.UpdateUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_DeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserPort(ctrl)
	handler := newAuthHandler(users)

	users.EXPECT().DeleteUser(gomock.Any(), "u2").Return(nil)

	c, rec := newContext(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("u2")
	require.NoError(t, handler.DeleteUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User deleted")
}
