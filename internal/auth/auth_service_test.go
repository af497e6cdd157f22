package auth

import (
	"context"
	"strings"
	"testing"

	autherrors "github.com/haiphamkd/quanlynhansu/internal/auth/errors"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memRepo struct {
	byUsername map[string]*User
}

func newMemRepo() *memRepo { return &memRepo{byUsername: make(map[string]*User)} }

func (m *memRepo) Create(_ context.Context, user *User) error {
	m.byUsername[user.Username] = user
	return nil
}

func (m *memRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	u, ok := m.byUsername[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	for _, u := range m.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) FindAll(context.Context) ([]User, error) {
	var out []User
	for _, u := range m.byUsername {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, user *User) error {
	m.byUsername[user.Username] = user
	return nil
}

func (m *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	for name, u := range m.byUsername {
		if u.ID == id {
			delete(m.byUsername, name)
			return nil
		}
	}
	return nil
}

func (m *memRepo) CountByUsernamePrefix(_ context.Context, prefix string) (int64, error) {
	var count int64
	for name := range m.byUsername {
		if strings.HasPrefix(name, prefix) {
			count++
		}
	}
	return count, nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return &service{repo: repo, logger: zap.NewNop()}
}

func seedUser(t *testing.T, repo *memRepo, username, password, role string) *User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &User{
		ID:       uuid.New(),
		Username: username,
		Password: string(hashed),
		FullName: "Nguyễn Văn An",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLogin_Success(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(t, repo)
	seedUser(t, repo, "annv", "123456", rbac.RoleStaff)

	access, refresh, user, err := svc.Login(context.Background(), "annv", "123456")
	require.NoError(t, err)

	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "annv", user.Username)
	assert.Equal(t, rbac.RoleStaff, user.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(t, repo)
	seedUser(t, repo, "annv", "123456", rbac.RoleStaff)

	_, _, _, err := svc.Login(context.Background(), "annv", "sai-mat-khau")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc := newTestService(t, newMemRepo())

	_, _, _, err := svc.Login(context.Background(), "khongtontai", "123456")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(t, repo)
	user := seedUser(t, repo, "annv", "123456", rbac.RoleStaff)
	user.IsActive = false

	_, _, _, err := svc.Login(context.Background(), "annv", "123456")
	assert.ErrorIs(t, err, autherrors.ErrAccountDisabled)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(t, repo)
	seedUser(t, repo, "annv", "123456", rbac.RoleManager)

	_, refresh, _, err := svc.Login(context.Background(), "annv", "123456")
	require.NoError(t, err)

	access, newRefresh, user, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, rbac.RoleManager, user.Role)
}

func TestRefreshToken_Garbage(t *testing.T) {
	svc := newTestService(t, newMemRepo())

	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestProvisionAccount_GeneratesVietnameseUsername(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(t, repo)

	resp, err := svc.ProvisionAccount(context.Background(), "NV001", "Nguyễn Văn An")
	require.NoError(t, err)

	assert.Equal(t, "annv", resp.Username)
	assert.Equal(t, rbac.RoleStaff, resp.Role)
	assert.Equal(t, "NV001", resp.EmployeeID)

	// Default password must be usable for the first login.
	_, _, _, err = svc.Login(context.Background(), "annv", DefaultPassword)
	require.NoError(t, err)
}

func TestProvisionAccount_SuffixesDuplicates(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(t, repo)

	first, err := svc.ProvisionAccount(context.Background(), "NV001", "Nguyễn Văn An")
	require.NoError(t, err)
	second, err := svc.ProvisionAccount(context.Background(), "NV002", "Ngô Viết Ân")
	require.NoError(t, err)

	assert.Equal(t, "annv", first.Username)
	assert.Equal(t, "annv2", second.Username)
}

func TestChangePassword(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(t, repo)
	user := seedUser(t, repo, "annv", "123456", rbac.RoleStaff)

	err := svc.ChangePassword(context.Background(), user.ID.String(), ChangePasswordRequest{
		OldPassword: "sai", NewPassword: "matkhaumoi",
	})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), user.ID.String(), ChangePasswordRequest{
		OldPassword: "123456", NewPassword: "matkhaumoi",
	})
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "annv", "matkhaumoi")
	require.NoError(t, err)
}
