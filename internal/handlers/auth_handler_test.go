package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turadmin/internal/models"
	"turadmin/internal/session"
	"turadmin/internal/views"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthAPI struct {
	loginResp    *models.AuthResponse
	registerResp *models.AuthResponse
	err          error
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (*models.AuthResponse, error) {
	return f.loginResp, f.err
}

func (f *fakeAuthAPI) Register(context.Context, string, string, string) (*models.AuthResponse, error) {
	return f.registerResp, f.err
}

func (f *fakeAuthAPI) CurrentUser(context.Context, string) (*models.User, error) {
	return nil, errors.New("not logged in")
}

func newAuthRouter(t *testing.T, apiFake *fakeAuthAPI) *gin.Engine {
	t.Helper()
	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	r := gin.New()
	r.HTMLRender = renderer

	sess := session.New(apiFake, zerolog.Nop())
	h := NewAuthHandler(apiFake, sess, zerolog.Nop())

	r.GET("/auth/login", h.ShowLogin)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/register", h.ShowRegister)
	r.POST("/auth/register", h.Register)
	r.GET("/logout", h.Logout)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginHandler(t *testing.T) {
	t.Run("success sets cookie and redirects to dashboard", func(t *testing.T) {
		r := newAuthRouter(t, &fakeAuthAPI{loginResp: &models.AuthResponse{Token: "tok-123"}})

		rec := postForm(r, "/auth/login", url.Values{
			"email": {"a@x.com"}, "password": {"secret"},
		})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Equal(t, "tok-123", cookies[0].Value)
	})

	t.Run("rejection re-renders with api message", func(t *testing.T) {
		r := newAuthRouter(t, &fakeAuthAPI{loginResp: &models.AuthResponse{Message: "Invalid credentials"}})

		rec := postForm(r, "/auth/login", url.Values{
			"email": {"a@x.com"}, "password": {"wrong"},
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("transport failure is a generic message", func(t *testing.T) {
		r := newAuthRouter(t, &fakeAuthAPI{err: errors.New("dial tcp: refused")})

		rec := postForm(r, "/auth/login", url.Values{
			"email": {"a@x.com"}, "password": {"secret"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Login failed")
	})
}

func TestRegisterHandler(t *testing.T) {
	t.Run("message-only success goes to login", func(t *testing.T) {
		r := newAuthRouter(t, &fakeAuthAPI{registerResp: &models.AuthResponse{Message: registeredMessage}})

		rec := postForm(r, "/auth/register", url.Values{
			"name": {"A"}, "email": {"a@x.com"}, "password": {"secret"},
		})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/auth/login?registered=1", rec.Header().Get("Location"))
	})

	t.Run("token response logs straight in", func(t *testing.T) {
		r := newAuthRouter(t, &fakeAuthAPI{registerResp: &models.AuthResponse{Token: "tok-9"}})

		rec := postForm(r, "/auth/register", url.Values{
			"name": {"A"}, "email": {"a@x.com"}, "password": {"secret"},
		})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})
}

func TestLogoutHandler(t *testing.T) {
	r := newAuthRouter(t, &fakeAuthAPI{})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
}
