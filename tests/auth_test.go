package tests

/*
FEATURE: Registration and Authentication
DOMAIN: Accounts

ACCEPTANCE CRITERIA:
===================

AC-AUTH-001: Register Account
  GIVEN no account exists for an email
  WHEN a user registers with name, email, and password
  THEN a 201 response returns the public identity
  AND the password hash is never echoed

AC-AUTH-002: Duplicate Registration
  GIVEN an account exists for an email
  WHEN a second registration uses the same email
  THEN the request fails with a 400 validation error

AC-AUTH-003: Login
  GIVEN a registered account
  WHEN the user logs in with the correct password
  THEN a 200 response returns a bearer token that validates

AC-AUTH-004: Credential Probing
  GIVEN a registered account
  WHEN login fails with a wrong password or an unknown email
  THEN both failures return identical 401 responses

AC-AUTH-005: Current User
  GIVEN a valid bearer token
  WHEN the user requests /api/users/current
  THEN the identity embedded in the token is echoed without a store hit

AC-AUTH-006: Expired Token
  GIVEN an expired bearer token
  WHEN any protected route is requested
  THEN a 401 response reports the expiry
*/

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialbook/contacts/api/internal/model"
	"github.com/dialbook/contacts/api/internal/testing/fixtures"
	"github.com/dialbook/contacts/api/internal/testing/helpers"
	"github.com/dialbook/contacts/api/internal/testing/testdb"
)

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestAuth_Register(t *testing.T) {
	// AC-AUTH-001: Register Account
	tdb := testdb.New(t)
	defer tdb.Close()
	srv := newTestServer(t, tdb)

	req := helpers.NewRequest(t, http.MethodPost, "/api/users/register").
		WithBody(registerBody{Name: "Ada", Email: "ada@example.com", Password: "pw123456"}).
		Build()
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var body map[string]interface{}
	helpers.DecodeResponse(t, rr, &body)
	assert.Equal(t, "Ada", body["name"])
	assert.Equal(t, "ada@example.com", body["email"])
	assert.NotEmpty(t, body["id"])
	assert.NotContains(t, body, "hash")
	assert.NotContains(t, body, "password")
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	// AC-AUTH-002: Duplicate Registration
	tdb := testdb.New(t)
	defer tdb.Close()
	srv := newTestServer(t, tdb)

	first := helpers.NewRequest(t, http.MethodPost, "/api/users/register").
		WithBody(registerBody{Name: "Ada", Email: "ada@example.com", Password: "pw123456"}).
		Build()
	firstRR := httptest.NewRecorder()
	srv.ServeHTTP(firstRR, first)
	require.Equal(t, http.StatusCreated, firstRR.Code)

	second := helpers.NewRequest(t, http.MethodPost, "/api/users/register").
		WithBody(registerBody{Name: "Imposter", Email: "ada@example.com", Password: "other"}).
		Build()
	secondRR := httptest.NewRecorder()
	srv.ServeHTTP(secondRR, second)

	helpers.AssertClassifiedError(t, secondRR, http.StatusBadRequest)
}

func TestAuth_Register_MissingFields(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	srv := newTestServer(t, tdb)

	req := helpers.NewRequest(t, http.MethodPost, "/api/users/register").
		WithBody(registerBody{Name: "Ada"}).
		Build()
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	helpers.AssertClassifiedError(t, rr, http.StatusBadRequest)
}

func TestAuth_Login(t *testing.T) {
	// AC-AUTH-003: Login
	tdb := testdb.New(t)
	defer tdb.Close()
	srv := newTestServer(t, tdb)

	register := helpers.NewRequest(t, http.MethodPost, "/api/users/register").
		WithBody(registerBody{Name: "Ada", Email: "ada@example.com", Password: "pw123456"}).
		Build()
	registerRR := httptest.NewRecorder()
	srv.ServeHTTP(registerRR, register)
	require.Equal(t, http.StatusCreated, registerRR.Code)

	login := helpers.NewRequest(t, http.MethodPost, "/api/users/login").
		WithBody(loginBody{Email: "ada@example.com", Password: "pw123456"}).
		Build()
	loginRR := httptest.NewRecorder()
	srv.ServeHTTP(loginRR, login)

	require.Equal(t, http.StatusOK, loginRR.Code, loginRR.Body.String())

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	helpers.DecodeResponse(t, loginRR, &body)
	require.NotEmpty(t, body.AccessToken)

	claims, err := helpers.NewTestTokenService().Validate(body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
}

func TestAuth_Login_FailuresIndistinguishable(t *testing.T) {
	// AC-AUTH-004: Credential Probing
	tdb := testdb.New(t)
	defer tdb.Close()
	srv := newTestServer(t, tdb)

	register := helpers.NewRequest(t, http.MethodPost, "/api/users/register").
		WithBody(registerBody{Name: "Ada", Email: "ada@example.com", Password: "pw123456"}).
		Build()
	registerRR := httptest.NewRecorder()
	srv.ServeHTTP(registerRR, register)
	require.Equal(t, http.StatusCreated, registerRR.Code)

	wrong := helpers.NewRequest(t, http.MethodPost, "/api/users/login").
		WithBody(loginBody{Email: "ada@example.com", Password: "nope"}).
		Build()
	wrongRR := httptest.NewRecorder()
	srv.ServeHTTP(wrongRR, wrong)

	unknown := helpers.NewRequest(t, http.MethodPost, "/api/users/login").
		WithBody(loginBody{Email: "nobody@example.com", Password: "pw123456"}).
		Build()
	unknownRR := httptest.NewRecorder()
	srv.ServeHTTP(unknownRR, unknown)

	helpers.AssertClassifiedError(t, wrongRR, http.StatusUnauthorized)
	helpers.AssertClassifiedError(t, unknownRR, http.StatusUnauthorized)

	var wrongBody, unknownBody model.ErrorResponse
	helpers.DecodeResponse(t, wrongRR, &wrongBody)
	helpers.DecodeResponse(t, unknownRR, &unknownBody)
	assert.Equal(t, wrongBody.Message, unknownBody.Message,
		"wrong password and unknown email must be indistinguishable")
}

func TestAuth_CurrentUser(t *testing.T) {
	// AC-AUTH-005: Current User
	tdb := testdb.New(t)
	defer tdb.Close()
	srv := newTestServer(t, tdb)

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)

	req := helpers.NewRequest(t, http.MethodGet, "/api/users/current").
		WithAuth(user).
		Build()
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var claims model.TokenClaims
	helpers.DecodeResponse(t, rr, &claims)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Email, claims.Email)
}

func TestAuth_ProtectedRoute_NoToken(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	srv := newTestServer(t, tdb)

	req := helpers.NewRequest(t, http.MethodGet, "/api/users/current").Build()
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	helpers.AssertClassifiedError(t, rr, http.StatusUnauthorized)
}

func TestAuth_ProtectedRoute_ExpiredToken(t *testing.T) {
	// AC-AUTH-006: Expired Token
	tdb := testdb.New(t)
	defer tdb.Close()
	srv := newTestServer(t, tdb)

	f := fixtures.New(tdb.DB)
	user := f.CreateUser(t)

	req := helpers.NewRequest(t, http.MethodGet, "/api/users/current").
		WithHeader("Authorization", "Bearer "+helpers.GenerateExpiredToken(t, user)).
		Build()
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	helpers.AssertClassifiedError(t, rr, http.StatusUnauthorized)

	var body model.ErrorResponse
	helpers.DecodeResponse(t, rr, &body)
	assert.Equal(t, "token expired", body.Message)
}

func TestAuth_ProtectedRoute_GarbageToken(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()
	srv := newTestServer(t, tdb)

	req := helpers.NewRequest(t, http.MethodGet, "/api/users/current").
		WithHeader("Authorization", "Bearer not-a-token").
		Build()
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	helpers.AssertClassifiedError(t, rr, http.StatusUnauthorized)
}
