package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"khabar/domain"
	"khabar/middleware"
	"khabar/usecase/auth_usecase"
)

// AuthHandler serves login and team account management.
type AuthHandler struct {
	auth *auth_usecase.AuthUsecase
}

func NewAuthHandler(auth *auth_usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	user, err := h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return handleError(c, err, "register user")
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return handleError(c, err, "login")
	}
	return c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no token, authorization denied"})
	}
	user, err := h.auth.Me(c.Request().Context(), claims.UserID)
	if err != nil {
		return handleError(c, err, "fetch account")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateMe(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no token, authorization denied"})
	}
	return h.updateUser(c, claims.UserID, false)
}

func (h *AuthHandler) Team(c echo.Context) error {
	users, err := h.auth.Team(c.Request().Context())
	if err != nil {
		return handleError(c, err, "list team")
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) UpdateUser(c echo.Context) error {
	return h.updateUser(c, c.Param("id"), true)
}

func (h *AuthHandler) DeleteUser(c echo.Context) error {
	if err := h.auth.DeleteAccount(c.Request().Context(), c.Param("id")); err != nil {
		return handleError(c, err, "delete user")
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}

// updateUser applies a partial account edit. Only admins may change roles;
// self-service edits drop the role field silently.
func (h *AuthHandler) updateUser(c echo.Context, id string, allowRole bool) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	update := domain.UserUpdate{Name: req.Name, Email: req.Email}
	if allowRole && req.Role != nil {
		role := domain.Role(*req.Role)
		update.Role = &role
	}
	user, err := h.auth.UpdateAccount(c.Request().Context(), id, update, req.Password)
	if err != nil {
		return handleError(c, err, "update user")
	}
	return c.JSON(http.StatusOK, user)
}
