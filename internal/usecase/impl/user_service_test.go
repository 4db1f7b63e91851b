package impl

import (
	"context"
	"testing"

	domainerrors "hbnb/internal/domain/errors"
	"hbnb/internal/errors"
	"hbnb/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateUser_Success(t *testing.T) {
	f := createTestCatalogService(t, false)
	ctx := context.Background()

	user := f.mustCreateUser(t, "jane@example.com")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.Empty(t, user.Password)
	assert.Equal(t, user, f.service.GetUser(ctx, user.ID))
}

func TestCatalogService_CreateUser_ValidationError(t *testing.T) {
	f := createTestCatalogService(t, false)
	ctx := context.Background()

	_, err := f.service.CreateUser(ctx, &usecase.CreateUserInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "not-an-email",
	})

	requireValidationError(t, err, "email")
	assert.Empty(t, f.service.GetAllUsers(ctx))
}

func TestCatalogService_GetUserByEmail_CaseInsensitive(t *testing.T) {
	f := createTestCatalogService(t, false)
	ctx := context.Background()

	jane := f.mustCreateUser(t, "jane@example.com")

	found := f.service.GetUserByEmail(ctx, "  JANE@EXAMPLE.COM ")
	require.NotNil(t, found)
	assert.Equal(t, jane.ID, found.ID)

	assert.Nil(t, f.service.GetUserByEmail(ctx, "john@example.com"))
}

func TestCatalogService_CreateUser_DuplicateEmailAdvisory(t *testing.T) {
	f := createTestCatalogService(t, false)

	f.mustCreateUser(t, "jane@example.com")
	f.mustCreateUser(t, "JANE@EXAMPLE.COM")

	assert.Len(t, f.service.GetAllUsers(context.Background()), 2)
}

func TestCatalogService_CreateUser_DuplicateEmailStrict(t *testing.T) {
	f := createTestCatalogService(t, true)
	ctx := context.Background()

	f.mustCreateUser(t, "jane@example.com")
	_, err := f.service.CreateUser(ctx, &usecase.CreateUserInput{
		FirstName: "Other",
		LastName:  "Jane",
		Email:     "JANE@example.com",
	})

	var conflictErr *domainerrors.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, "USER_EMAIL_ALREADY_EXISTS", conflictErr.ErrorCode())
	assert.Len(t, f.service.GetAllUsers(ctx), 1)
}

func TestCatalogService_CreateUser_HashesPassword(t *testing.T) {
	f := createTestCatalogService(t, false)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret").Return("hashed-s3cret", nil).Once()

	user, err := f.service.CreateUser(ctx, &usecase.CreateUserInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed-s3cret", user.Password)
}

func TestCatalogService_CreateUser_BlankPassword(t *testing.T) {
	f := createTestCatalogService(t, false)
	ctx := context.Background()

	_, err := f.service.CreateUser(ctx, &usecase.CreateUserInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "   ",
	})

	requireValidationError(t, err, "password")
	f.hasher.AssertNotCalled(t, "Hash", "   ")
}

func TestCatalogService_CreateUser_HashFailure(t *testing.T) {
	f := createTestCatalogService(t, false)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret").Return("", errors.New("hasher down")).Once()

	user, err := f.service.CreateUser(ctx, &usecase.CreateUserInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "s3cret",
	})

	assert.Nil(t, user)
	assert.ErrorContains(t, err, "hasher down")
	assert.Empty(t, f.service.GetAllUsers(ctx))
}

func TestCatalogService_UpdateUser(t *testing.T) {
	f := createTestCatalogService(t, false)
	ctx := context.Background()

	jane := f.mustCreateUser(t, "jane@example.com")

	updated, err := f.service.UpdateUser(ctx, jane.ID, &usecase.UpdateUserInput{
		FirstName: ptr("Janet"),
		Email:     ptr("Janet@Example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, "Doe", updated.LastName)
	assert.Equal(t, "janet@example.com", updated.Email)
	assert.False(t, updated.UpdatedAt.Before(jane.UpdatedAt))
}

func TestCatalogService_UpdateUser_NotFound(t *testing.T) {
	f := createTestCatalogService(t, false)

	user, err := f.service.UpdateUser(context.Background(), "missing", &usecase.UpdateUserInput{FirstName: ptr("X")})

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestCatalogService_UpdateUser_ValidationLeavesUser(t *testing.T) {
	f := createTestCatalogService(t, false)
	ctx := context.Background()

	jane := f.mustCreateUser(t, "jane@example.com")

	_, err := f.service.UpdateUser(ctx, jane.ID, &usecase.UpdateUserInput{
		FirstName: ptr("Janet"),
		LastName:  ptr(""),
	})

	requireValidationError(t, err, "last_name")
	assert.Equal(t, jane, f.service.GetUser(ctx, jane.ID))
}

func TestCatalogService_UpdateUser_StrictEmail(t *testing.T) {
	f := createTestCatalogService(t, true)
	ctx := context.Background()

	jane := f.mustCreateUser(t, "jane@example.com")
	john := f.mustCreateUser(t, "john@example.com")

	_, err := f.service.UpdateUser(ctx, john.ID, &usecase.UpdateUserInput{Email: ptr("Jane@example.com")})
	var conflictErr *domainerrors.ConflictError
	require.True(t, errors.As(err, &conflictErr))

	_, err = f.service.UpdateUser(ctx, jane.ID, &usecase.UpdateUserInput{Email: ptr("JANE@example.com")})
	assert.NoError(t, err)
}

func TestCatalogService_UpdateUser_ClearsPassword(t *testing.T) {
	f := createTestCatalogService(t, false)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret").Return("hashed", nil).Once()
	user, err := f.service.CreateUser(ctx, &usecase.CreateUserInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "s3cret",
	})
	require.NoError(t, err)

	updated, err := f.service.UpdateUser(ctx, user.ID, &usecase.UpdateUserInput{Password: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Password)
}
