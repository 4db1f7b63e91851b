package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_CreateUser(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(t, e, http.MethodPost, "/users",
		`{"first_name":"Jane","last_name":"Doe","email":" Jane@Example.COM ","password":"secret","id":"forced"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret")

	var user UserResponse
	decodeData(t, rec, &user)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "forced", user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestUserHandler_CreateUser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{
			name:   "invalid email",
			body:   `{"first_name":"Jane","last_name":"Doe","email":"not-an-email"}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "missing first name",
			body:   `{"last_name":"Doe","email":"jane@example.com"}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "wrong type",
			body:   `{"first_name":42,"last_name":"Doe","email":"jane@example.com"}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "body is not an object",
			body:   `[1, 2]`,
			status: http.StatusBadRequest,
			code:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)

			rec := doRequest(t, e, http.MethodPost, "/users", tt.body)
			requireErrorCode(t, rec, tt.status, tt.code)
		})
	}
}

func TestUserHandler_CreateUser_DuplicateEmail(t *testing.T) {
	e := newTestEcho(t)
	createUser(t, e, "jane@example.com")

	rec := doRequest(t, e, http.MethodPost, "/users",
		`{"first_name":"Other","last_name":"Person","email":"JANE@example.com"}`)
	requireErrorCode(t, rec, http.StatusConflict, "USER_EMAIL_ALREADY_EXISTS")
}

func TestUserHandler_GetUser(t *testing.T) {
	e := newTestEcho(t)
	created := createUser(t, e, "jane@example.com")

	rec := doRequest(t, e, http.MethodGet, "/users/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var user UserResponse
	decodeData(t, rec, &user)
	assert.Equal(t, created, user)

	rec = doRequest(t, e, http.MethodGet, "/users/missing", "")
	requireErrorCode(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
}

func TestUserHandler_ListUsers(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(t, e, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []UserResponse
	decodeData(t, rec, &users)
	assert.Empty(t, users)
	assert.NotNil(t, users)

	first := createUser(t, e, "a@example.com")
	second := createUser(t, e, "b@example.com")

	rec = doRequest(t, e, http.MethodGet, "/users", "")
	decodeData(t, rec, &users)
	require.Len(t, users, 2)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, []string{users[0].ID, users[1].ID})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	e := newTestEcho(t)
	jane := createUser(t, e, "jane@example.com")
	other := createUser(t, e, "other@example.com")

	t.Run("partial update keeps other fields", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/users/"+jane.ID, `{"first_name":"Janet"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var user UserResponse
		decodeData(t, rec, &user)
		assert.Equal(t, "Janet", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
		assert.Equal(t, jane.Email, user.Email)
		assert.False(t, user.UpdatedAt.Before(jane.UpdatedAt))
	})

	t.Run("own email is not a conflict", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/users/"+jane.ID, `{"email":"JANE@example.com"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("email of another user", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/users/"+jane.ID, `{"email":"`+other.Email+`"}`)
		requireErrorCode(t, rec, http.StatusConflict, "USER_EMAIL_ALREADY_EXISTS")
	})

	t.Run("invalid value", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/users/"+jane.ID, `{"last_name":""}`)
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("missing user", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/users/missing", `{"first_name":"Janet"}`)
		requireErrorCode(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
	})
}
