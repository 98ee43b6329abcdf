package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/home4paws/home4paws/internal/application/dto"
	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/internal/infrastructure/crypto"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

// memUserRepo is an in-memory UserRepository for service tests.
type memUserRepo struct {
	byUsername map[string]*models.User
	nextID     uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: map[string]*models.User{}, nextID: 1}
}

func (m *memUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := m.byUsername[username]; ok {
		return user, nil
	}
	return nil, errors.ErrResourceNotFound("user", username)
}

func (m *memUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	for _, user := range m.byUsername {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, errors.ErrResourceNotFound("user", id)
}

func (m *memUserRepo) FindAll(ctx context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, user := range m.byUsername {
		out = append(out, user)
	}
	return out, nil
}

func (m *memUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := m.byUsername[username]
	return ok, nil
}

func (m *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, user := range m.byUsername {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) Save(ctx context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.byUsername[user.Username] = user
	return nil
}

func (m *memUserRepo) Update(ctx context.Context, user *models.User) error {
	m.byUsername[user.Username] = user
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id uint) error {
	for name, user := range m.byUsername {
		if user.ID == id {
			delete(m.byUsername, name)
			return nil
		}
	}
	return errors.ErrResourceNotFound("user", id)
}

func (m *memUserRepo) EnsureRole(ctx context.Context, name models.Role) (*models.RoleRecord, error) {
	return &models.RoleRecord{Name: string(name)}, nil
}

func (m *memUserRepo) AssignRole(ctx context.Context, userID uint, name models.Role) error {
	for _, user := range m.byUsername {
		if user.ID == userID {
			user.Roles = append(user.Roles, models.RoleRecord{Name: string(name)})
			return nil
		}
	}
	return errors.ErrResourceNotFound("user", userID)
}

func newAuthFixture(t *testing.T) (*AuthService, *memUserRepo) {
	t.Helper()
	repo := newMemUserRepo()
	hasher := crypto.NewPasswordHasher()
	codec := crypto.NewTokenCodec("auth-service-test-secret", time.Hour, logger.NewNoopLogger())
	return NewAuthService(repo, hasher, codec, logger.NewNoopLogger()), repo
}

func registerUser(t *testing.T, svc *AuthService, username, password string, admin bool) {
	t.Helper()
	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
	})
	require.NoError(t, err)
	if admin {
		require.NoError(t, svc.users.AssignRole(context.Background(), user.ID, models.RoleAdmin))
	}
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerUser(t, svc, "alice", "Secret123", false)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "Secret123",
	})
	assert.ErrorIs(t, err, errors.ErrConflict)
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerUser(t, svc, "alice", "Secret123", false)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "Secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, []string{"ROLE_USER"}, resp.Roles)
}

func TestLogin_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerUser(t, svc, "alice", "Secret123", false)

	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "whatever"})
	_, errWrongPw := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)

	// Same sentinel, same status, same message: nothing distinguishes an
	// unknown account from a wrong password.
	appUnknown, ok := errors.AsAppError(errUnknown)
	require.True(t, ok)
	appWrongPw, ok := errors.AsAppError(errWrongPw)
	require.True(t, ok)
	assert.Equal(t, appUnknown.Status, appWrongPw.Status)
	assert.Equal(t, appUnknown.Message, appWrongPw.Message)
	assert.Equal(t, appUnknown.Code, appWrongPw.Code)
}

func TestLogin_DisabledAccountRejected(t *testing.T) {
	svc, repo := newAuthFixture(t)
	registerUser(t, svc, "alice", "Secret123", false)
	repo.byUsername["alice"].Enabled = false

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "Secret123"})
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestAdminLogin_NonAdminGetsAccessDeniedMessage(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerUser(t, svc, "alice", "Secret123", false)

	_, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{Username: "alice", Password: "Secret123"})
	require.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.Status)
	assert.Equal(t, "Access denied. Admin privileges required.", appErr.Message)
}

func TestAdminLogin_AdminSucceeds(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerUser(t, svc, "root", "Secret123", true)

	resp, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{Username: "root", Password: "Secret123"})
	require.NoError(t, err)
	assert.Contains(t, resp.Roles, "ROLE_ADMIN")
}

func TestAdminLogin_BadCredentialStillGeneric(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerUser(t, svc, "root", "Secret123", true)

	// Wrong password on an admin account must yield the generic credential
	// error, not the admin-privileges message.
	_, err := svc.AdminLogin(context.Background(), &dto.LoginRequest{Username: "root", Password: "wrong"})
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}
