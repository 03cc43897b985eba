package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/slangstash/slang-service/internal/middleware"
	"github.com/slangstash/slang-service/internal/mocks"
	"github.com/slangstash/slang-service/internal/token"
	"github.com/slangstash/slang-service/internal/user/domain"
	"github.com/slangstash/slang-service/internal/user/handler"
	"github.com/slangstash/slang-service/internal/user/service"
	"github.com/slangstash/slang-service/pkg/constant"
)

type userFixture struct {
	app    *fiber.App
	repo   *mocks.MockUserRepository
	tokens *mocks.MockTokenGenerator
	mailer *mocks.MockMailer
	store  *mocks.MockCache
}

func newUserFixture(t *testing.T, ctrl *gomock.Controller) *userFixture {
	t.Helper()

	repo := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenGenerator(ctrl)
	mailer := mocks.NewMockMailer(ctrl)
	store := mocks.NewMockCache(ctrl)

	// Every rate-limited route consumes one slot per request.
	store.EXPECT().IncrementWindow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(1), nil).AnyTimes()

	app := fiber.New()
	h := handler.NewUserHandler(service.NewUserService(repo, tokens, mailer), tokens)
	handler.RegisterRoutes(app, h, store, middleware.Authenticate(tokens))

	return &userFixture{app: app, repo: repo, tokens: tokens, mailer: mailer, store: store}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func responseMsg(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	msg, _ := body["msg"].(string)
	return msg
}

func TestUserHandlerRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("creates the user and reports the mail", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().GetByUsernameOrEmail(gomock.Any(), "denise", "denise@example.com").Return(nil, nil)
		f.tokens.EXPECT().GenerateEmailToken("denise@example.com").Return("email-token", nil)
		f.mailer.EXPECT().SendVerificationEmail("denise@example.com", "email-token").Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := f.app.Test(jsonRequest("POST", "/register",
			`{"username":"denise","email":"denise@example.com","password":"sup3rsecret"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "user created successfully", body["msg"])
		assert.Equal(t, "verification mail sent (Valid only for 4 hours)", body["mail"])
	})

	t.Run("rejects a short password before touching the store", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		resp, err := f.app.Test(jsonRequest("POST", "/register",
			`{"username":"denise","email":"denise@example.com","password":"short"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate account", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().GetByUsernameOrEmail(gomock.Any(), "denise", "denise@example.com").
			Return(&domain.User{Username: "denise"}, nil)

		resp, err := f.app.Test(jsonRequest("POST", "/register",
			`{"username":"denise","email":"denise@example.com","password":"sup3rsecret"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "user with this email or username already exist", responseMsg(t, resp))
	})
}

func TestUserHandlerLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("sets the session cookie", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().GetByUsernameOrEmail(gomock.Any(), "denise", "").Return(&domain.User{
			ID:           "b71a2f6e-0c2f-4a27-9f0f-1f8f3f9b2c11",
			Username:     "denise",
			PasswordHash: string(hashed),
			Role:         constant.RoleUser,
			IsVerified:   true,
		}, nil)
		f.tokens.EXPECT().
			GenerateSessionToken("denise", "b71a2f6e-0c2f-4a27-9f0f-1f8f3f9b2c11", constant.RoleUser).
			Return("session-token", nil)
		f.tokens.EXPECT().SessionExpiry().Return(6 * time.Hour)

		resp, err := f.app.Test(jsonRequest("POST", "/login",
			`{"username":"denise","password":"sup3rsecret"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "logged in successfully", responseMsg(t, resp))

		var sessionCookie *http.Cookie
		for _, cookie := range resp.Cookies() {
			if cookie.Name == constant.SessionCookieName {
				sessionCookie = cookie
			}
		}
		require.NotNil(t, sessionCookie)
		assert.Equal(t, "session-token", sessionCookie.Value)
		assert.True(t, sessionCookie.HttpOnly)
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().GetByUsernameOrEmail(gomock.Any(), "ghost", "").Return(nil, nil)

		resp, err := f.app.Test(jsonRequest("POST", "/login",
			`{"username":"ghost","password":"sup3rsecret"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "user not found with this email or username", responseMsg(t, resp))
	})

	t.Run("unverified account", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().GetByUsernameOrEmail(gomock.Any(), "denise", "").Return(&domain.User{
			Username:     "denise",
			PasswordHash: string(hashed),
			IsVerified:   false,
		}, nil)

		resp, err := f.app.Test(jsonRequest("POST", "/login",
			`{"username":"denise","password":"sup3rsecret"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "please verify your mail to proceed", responseMsg(t, resp))
	})
}

func TestUserHandlerVerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("verifies the account named in the token", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.tokens.EXPECT().VerifyEmailToken("email-token").
			Return(&token.EmailClaims{Email: "denise@example.com"}, nil)
		f.repo.EXPECT().GetByEmail(gomock.Any(), "denise@example.com").
			Return(&domain.User{Username: "denise", Email: "denise@example.com"}, nil)
		f.repo.EXPECT().MarkVerified(gomock.Any(), "denise@example.com").Return(nil)

		resp, err := f.app.Test(httptest.NewRequest("GET", "/verify-email?token=email-token", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "email of denise is verified successfully", responseMsg(t, resp))
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.tokens.EXPECT().VerifyEmailToken("garbage").Return(nil, assert.AnError)

		resp, err := f.app.Test(httptest.NewRequest("GET", "/verify-email?token=garbage", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "token invalid", responseMsg(t, resp))
	})
}

func TestUserHandlerResetFlows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("reset request mails a token", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().GetByEmail(gomock.Any(), "denise@example.com").
			Return(&domain.User{Email: "denise@example.com", IsVerified: true}, nil)
		f.tokens.EXPECT().GenerateEmailToken("denise@example.com").Return("reset-token", nil)
		f.mailer.EXPECT().SendResetPasswordEmail("denise@example.com", "reset-token").Return(nil)

		resp, err := f.app.Test(jsonRequest("POST", "/reset-request",
			`{"email":"denise@example.com"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Reset email sent successfully (Valid only for 4 hours)", responseMsg(t, resp))
	})

	t.Run("reset password stores the new hash", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.tokens.EXPECT().VerifyEmailToken("reset-token").
			Return(&token.EmailClaims{Email: "denise@example.com"}, nil)
		f.repo.EXPECT().GetByEmail(gomock.Any(), "denise@example.com").
			Return(&domain.User{Email: "denise@example.com"}, nil)
		f.repo.EXPECT().UpdatePassword(gomock.Any(), "denise@example.com", gomock.Any()).Return(nil)

		resp, err := f.app.Test(jsonRequest("PUT", "/reset-password?token=reset-token",
			`{"newPassword":"n3wsecret"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "password reset successfully", responseMsg(t, resp))
	})

	t.Run("reset password with an expired token", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.tokens.EXPECT().VerifyEmailToken("expired").Return(nil, assert.AnError)

		resp, err := f.app.Test(jsonRequest("PUT", "/reset-password?token=expired",
			`{"newPassword":"n3wsecret"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid or expired token", responseMsg(t, resp))
	})
}

func TestUserHandlerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withSession := func(f *userFixture, req *http.Request) *http.Request {
		f.tokens.EXPECT().VerifySessionToken("session").Return(&token.SessionClaims{
			Username: "denise",
			UserID:   "b71a2f6e-0c2f-4a27-9f0f-1f8f3f9b2c11",
			Role:     constant.RoleUser,
		}, nil)
		req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: "session"})
		return req
	}

	t.Run("requires a session", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		resp, err := f.app.Test(jsonRequest("PUT", "/update", `{"username":"deedee"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("patches the account", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		f.repo.EXPECT().GetByUsername(gomock.Any(), "denise").
			Return(&domain.User{Username: "denise", Email: "denise@example.com"}, nil)
		f.repo.EXPECT().UpdateByUsername(gomock.Any(), "denise", gomock.Any()).Return(nil)

		resp, err := f.app.Test(withSession(f, jsonRequest("PUT", "/update", `{"username":"deedee"}`)))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "updated", responseMsg(t, resp))
	})

	t.Run("same username", func(t *testing.T) {
		f := newUserFixture(t, ctrl)

		resp, err := f.app.Test(withSession(f, jsonRequest("PUT", "/update", `{"username":"denise"}`)))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "username cannot be same.", responseMsg(t, resp))
	})
}

func TestUserHandlerDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)

	f := newUserFixture(t, ctrl)
	f.tokens.EXPECT().VerifySessionToken("session").Return(&token.SessionClaims{
		Username: "denise",
		UserID:   "b71a2f6e-0c2f-4a27-9f0f-1f8f3f9b2c11",
		Role:     constant.RoleUser,
	}, nil)
	f.repo.EXPECT().GetByEmail(gomock.Any(), "denise@example.com").
		Return(&domain.User{Username: "denise", Email: "denise@example.com", PasswordHash: string(hashed)}, nil)
	f.repo.EXPECT().DeleteByEmail(gomock.Any(), "denise@example.com").Return(nil)

	req := jsonRequest("DELETE", "/delete", `{"email":"denise@example.com","password":"sup3rsecret"}`)
	req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: "session"})
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "denise deleted successfully", responseMsg(t, resp))
}

func TestUserHandlerList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUserFixture(t, ctrl)
	f.tokens.EXPECT().VerifySessionToken("session").Return(&token.SessionClaims{
		Username: "denise",
		UserID:   "b71a2f6e-0c2f-4a27-9f0f-1f8f3f9b2c11",
		Role:     constant.RoleUser,
	}, nil)
	f.repo.EXPECT().List(gomock.Any()).Return([]domain.User{
		{Username: "denise", Email: "denise@example.com", IsVerified: true},
	}, nil)

	req := httptest.NewRequest("GET", "/user", nil)
	req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: "session"})
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		User []struct {
			Username   string `json:"username"`
			Email      string `json:"email"`
			IsVerified bool   `json:"isVerified"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.User, 1)
	assert.Equal(t, "denise", body.User[0].Username)
	assert.True(t, body.User[0].IsVerified)
}
