package auth_usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"khabar/config"
	"khabar/domain"
	"khabar/port/user_port"
	appErrors "khabar/utils/errors"
	"khabar/utils/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the JWT payload issued at login. Role rides along so the
// middleware can gate admin routes without a database read.
type Claims struct {
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthUsecase covers login, token verification, and team account management.
type AuthUsecase struct {
	users user_port.UserPort
	cfg   config.AuthConfig
	now   func() time.Time
}

func NewAuthUsecase(users user_port.UserPort, cfg config.AuthConfig) *AuthUsecase {
	return &AuthUsecase{users: users, cfg: cfg, now: time.Now}
}

// Register creates a team account. Passwords are stored as bcrypt hashes
// only.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return nil, appErrors.ValidationError("name, email and password are required", nil)
	}
	if role == "" {
		role = domain.RoleEditor
	}
	if !domain.ValidRole(role) {
		return nil, appErrors.ValidationError("invalid role", map[string]interface{}{"role": string(role)})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, errors.New("failed to hash password")
	}

	return u.users.CreateUser(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
}

// Login verifies credentials and issues a signed token. Wrong email and
// wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.users.FetchUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to sign token", "error", err)
		return "", nil, errors.New("failed to sign token")
	}

	return token, user, nil
}

func (u *AuthUsecase) issueToken(user *domain.User) (string, error) {
	now := u.now()
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    u.cfg.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.cfg.TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
}

// VerifyToken parses and validates a bearer token, returning its claims.
func (u *AuthUsecase) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(u.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, appErrors.UnauthorizedError("invalid or expired token", err)
	}
	return claims, nil
}

// Me returns the account behind a verified token.
func (u *AuthUsecase) Me(ctx context.Context, userID string) (*domain.User, error) {
	return u.users.FetchUserByID(ctx, userID)
}

// Team lists every account for the admin dashboard.
func (u *AuthUsecase) Team(ctx context.Context) ([]*domain.User, error) {
	return u.users.ListUsers(ctx)
}

// UpdateAccount applies a partial account edit. A new password is hashed
// before it is handed to storage.
func (u *AuthUsecase) UpdateAccount(ctx context.Context, id string, update domain.UserUpdate, newPassword string) (*domain.User, error) {
	if update.Role != nil && !domain.ValidRole(*update.Role) {
		return nil, appErrors.ValidationError("invalid role", map[string]interface{}{"role": string(*update.Role)})
	}
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to hash password", "error", err)
			return nil, errors.New("failed to hash password")
		}
		hashStr := string(hash)
		update.PasswordHash = &hashStr
	}
	return u.users.UpdateUser(ctx, id, update)
}

// DeleteAccount removes a team member.
func (u *AuthUsecase) DeleteAccount(ctx context.Context, id string) error {
	return u.users.DeleteUser(ctx, id)
}
