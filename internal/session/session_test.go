package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turadmin/internal/models"
)

type fakeUsers struct {
	user  *models.User
	err   error
	calls int
}

func (f *fakeUsers) CurrentUser(_ context.Context, _ string) (*models.User, error) {
	f.calls++
	return f.user, f.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRefresh(t *testing.T) {
	profile := &models.User{ID: 1, Name: "A", Email: "a@x.com", Roles: []models.Role{{Name: "Admin"}}}

	t.Run("token present yields profile", func(t *testing.T) {
		f := &fakeUsers{user: profile}
		s := New(f, zerolog.Nop())

		got := s.Refresh(context.Background(), "opaque-token")
		require.NotNil(t, got)
		assert.Equal(t, profile, got)
		assert.Equal(t, 1, f.calls)
	})

	t.Run("no token yields anonymous", func(t *testing.T) {
		f := &fakeUsers{user: profile}
		s := New(f, zerolog.Nop())

		assert.Nil(t, s.Refresh(context.Background(), ""))
		assert.Zero(t, f.calls, "no network call without a token")
	})

	t.Run("api failure yields anonymous", func(t *testing.T) {
		f := &fakeUsers{err: errors.New("boom")}
		s := New(f, zerolog.Nop())

		assert.Nil(t, s.Refresh(context.Background(), "opaque-token"))
	})

	t.Run("expired jwt skips the fetch", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})
		tok, err := expired.SignedString([]byte("irrelevant"))
		require.NoError(t, err)

		f := &fakeUsers{user: profile}
		s := New(f, zerolog.Nop())

		assert.Nil(t, s.Refresh(context.Background(), tok))
		assert.Zero(t, f.calls)
	})
}

func TestCookieLifecycle(t *testing.T) {
	s := New(&fakeUsers{}, zerolog.Nop())

	t.Run("login persists lax cookie on path /", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		s.Login(c, "tok-123")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.Equal(t, "tok-123", cookies[0].Value)
		assert.Equal(t, "/", cookies[0].Path)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("logout then refresh is anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		s.Logout(c)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].MaxAge < 0, "cookie must expire immediately")

		// следующий запрос уже без cookie
		next := httptest.NewRequest(http.MethodGet, "/", nil)
		if cookies[0].MaxAge >= 0 {
			next.AddCookie(cookies[0])
		}
		c2, _ := gin.CreateTestContext(httptest.NewRecorder())
		c2.Request = next

		tok, ok := s.Token(c2)
		assert.False(t, ok)
		assert.Nil(t, s.Refresh(context.Background(), tok))
	})
}
