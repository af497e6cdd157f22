package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	autherrors "github.com/haiphamkd/quanlynhansu/internal/auth/errors"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"
	"github.com/haiphamkd/quanlynhansu/internal/shared/vnstring"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Service interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, resp AccountResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AccountResponse, err error)
	GetMe(ctx context.Context, userID string) (*AccountResponse, error)
	CreateAccount(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	// ProvisionAccount creates a staff login for a newly hired employee with
	// a generated username and the default password.
	ProvisionAccount(ctx context.Context, employeeID, fullName string) (AccountResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	ListAccounts(ctx context.Context) ([]AccountResponse, error)
	DeleteAccount(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (string, string, AccountResponse, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return "", "", AccountResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", "", AccountResponse{}, autherrors.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AccountResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(user, accessTokenTTL)
	if err != nil {
		return "", "", AccountResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(user, refreshTokenTTL)
	if err != nil {
		return "", "", AccountResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("username", user.Username), zap.String("role", user.Role))
	return accessToken, refreshToken, mapToAccountResponse(*user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AccountResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AccountResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AccountResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AccountResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AccountResponse{}, autherrors.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AccountResponse{}, autherrors.ErrUserNotFound
	}
	if !user.IsActive {
		return "", "", AccountResponse{}, autherrors.ErrAccountDisabled
	}

	newAccess, err := s.generateToken(user, accessTokenTTL)
	if err != nil {
		return "", "", AccountResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefresh, err := s.generateToken(user, refreshTokenTTL)
	if err != nil {
		return "", "", AccountResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccess, newRefresh, mapToAccountResponse(*user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AccountResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToAccountResponse(*user)
	return &resp, nil
}

func (s *service) CreateAccount(ctx context.Context, req CreateAccountRequest) (AccountResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AccountResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = rbac.RoleStaff
	}

	user := &User{
		ID:         uuid.New(),
		Username:   req.Username,
		Password:   string(hashed),
		FullName:   req.FullName,
		Role:       role,
		EmployeeID: req.EmployeeID,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return AccountResponse{}, autherrors.ErrUsernameTaken
		}
		s.logger.Error("create account failed", zap.String("username", req.Username), zap.Error(err))
		return AccountResponse{}, err
	}

	s.logger.Info("account created", zap.String("username", user.Username), zap.String("role", user.Role))
	return mapToAccountResponse(*user), nil
}

func (s *service) ProvisionAccount(ctx context.Context, employeeID, fullName string) (AccountResponse, error) {
	base := vnstring.GenerateUsername(fullName)
	if base == "" {
		base = employeeID
	}

	username := base
	if taken, err := s.repo.CountByUsernamePrefix(ctx, base); err == nil && taken > 0 {
		username = fmt.Sprintf("%s%d", base, taken+1)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return AccountResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		Username:   username,
		Password:   string(hashed),
		FullName:   fullName,
		Role:       rbac.RoleStaff,
		EmployeeID: employeeID,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return AccountResponse{}, err
	}

	s.logger.Info("staff account provisioned",
		zap.String("username", user.Username),
		zap.String("employee_id", employeeID),
	)
	return mapToAccountResponse(*user), nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return autherrors.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return autherrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return autherrors.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.repo.Update(ctx, user)
}

func (s *service) ListAccounts(ctx context.Context) ([]AccountResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]AccountResponse, len(rows))
	for i, u := range rows {
		resp[i] = mapToAccountResponse(u)
	}
	return resp, nil
}

func (s *service) DeleteAccount(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return autherrors.ErrUserNotFound
	}
	if _, err := s.repo.GetByID(ctx, uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, uid)
}

func (s *service) generateToken(user *User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"username":    user.Username,
		"role":        user.Role,
		"employee_id": user.EmployeeID,
		"exp":         time.Now().Add(ttl).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToAccountResponse(u User) AccountResponse {
	return AccountResponse{
		ID:         u.ID.String(),
		Username:   u.Username,
		FullName:   u.FullName,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		IsActive:   u.IsActive,
	}
}
