package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"moviweb/internal/database"
	"moviweb/internal/domain"
	"moviweb/internal/repository"
)

type stubJWT struct{}

func (stubJWT) GenerateToken(actorID int64, role string) (string, error) {
	return fmt.Sprintf("token-%s-%d", role, actorID), nil
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	db := testDB(t)
	return NewService(
		repository.NewUserRepository(db),
		repository.NewAdminRepository(db),
		stubJWT{},
	)
}

func TestRegisterUser_And_Login(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, err := svc.RegisterUser(ctx, RegisterUserRequest{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
	assert.NoError(t,
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))

	result, err := svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, result.Profile.Role)
	assert.Equal(t, fmt.Sprintf("token-user-%d", user.ID), result.Token)
}

func TestLogin_ChecksAdminTableFirst(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	admin, err := svc.RegisterAdmin(ctx, RegisterAdminRequest{
		Name:     "Boss",
		Email:    "boss@example.com",
		Password: "admin-password",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, LoginRequest{Email: "boss@example.com", Password: "admin-password"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, result.Profile.Role)
	assert.Equal(t, fmt.Sprintf("token-admin-%d", admin.ID), result.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.RegisterUser(ctx, RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_EmailUniqueAcrossRoles(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.RegisterAdmin(ctx, RegisterAdminRequest{
		Name:     "Boss",
		Email:    "shared@example.com",
		Password: "admin-password",
	})
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, RegisterUserRequest{
		Name:     "Alice",
		Email:    "Shared@Example.com",
		Password: "user-password",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegisterUser_InvalidEmailReportsFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.RegisterUser(ctx, RegisterUserRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "secret-password",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Fields["Email"])
}

func TestRegisterAdmin_InvalidEmailReportsFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.RegisterAdmin(ctx, RegisterAdminRequest{
		Name:     "Boss",
		Email:    "nope",
		Password: "admin-password",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "Email")
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	req := RegisterUserRequest{Name: "Alice", Email: "alice@example.com", Password: "secret-password"}
	_, err := svc.RegisterUser(ctx, req)
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUpdateProfile_PasswordRehashed(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, err := svc.RegisterUser(ctx, RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "old-password",
	})
	require.NoError(t, err)
	require.Nil(t, user.PasswordUpdatedAt)

	newPassword := "new-password"
	before := time.Now().Add(-time.Second)
	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{Password: &newPassword})
	require.NoError(t, err)

	require.NotNil(t, updated.PasswordUpdatedAt)
	assert.True(t, updated.PasswordUpdatedAt.After(before))

	_, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "new-password"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "old-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, err := svc.RegisterUser(ctx, RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
		Gender:   "female",
	})
	require.NoError(t, err)

	name := "Alicia"
	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "female", updated.Gender)
}

func TestProfile_ByRole(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, err := svc.RegisterUser(ctx, RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	admin, err := svc.RegisterAdmin(ctx, RegisterAdminRequest{
		Name:     "Boss",
		Email:    "boss@example.com",
		Password: "admin-password",
	})
	require.NoError(t, err)

	p, err := svc.Profile(ctx, domain.Actor{ID: user.ID, Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)

	p, err = svc.Profile(ctx, domain.Actor{ID: admin.ID, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "Boss", p.Name)
}

func TestSetProfilePicture(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, err := svc.RegisterUser(ctx, RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	updated, err := svc.SetProfilePicture(ctx, user.ID, "/static/uploads/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/abc.png", updated.ProfilePicture)
}
