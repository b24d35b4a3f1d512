package session

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"turadmin/internal/models"
)

// CookieName — cookie с bearer-токеном. path=/, SameSite=Lax.
const CookieName = "token"

// UserFetcher — то, что сессии нужно от API-клиента.
type UserFetcher interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// Session — состояние аутентификации процесса. Два состояния:
// Anonymous (user == nil) и Authenticated. Профиль — эфемерный кэш,
// переспрашивается у API на каждый Refresh.
type Session struct {
	users UserFetcher
	log   zerolog.Logger
}

func New(users UserFetcher, log zerolog.Logger) *Session {
	return &Session{users: users, log: log}
}

// Token читает bearer-токен из cookie запроса.
func (s *Session) Token(c *gin.Context) (string, bool) {
	tok, err := c.Cookie(CookieName)
	if err != nil || tok == "" {
		return "", false
	}
	return tok, true
}

// Refresh — вывод текущего пользователя из токена. Пустой токен,
// истёкший токен или любая ошибка API дают Anonymous (nil): ошибка
// сессии не алертится, её разрулит RouteGuard.
func (s *Session) Refresh(ctx context.Context, token string) *models.User {
	if token == "" {
		return nil
	}
	if expiredByClaims(token) {
		s.log.Debug().Msg("session: token expired by claims, skipping user fetch")
		return nil
	}
	user, err := s.users.CurrentUser(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("session: current user fetch failed")
		return nil
	}
	return user
}

// Login сохраняет токен в cookie. Профиль подтянет следующий Refresh.
func (s *Session) Login(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, 0, "/", "", false, true)
}

// Logout немедленно гасит cookie.
func (s *Session) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// expiredByClaims — подглядываем exp без проверки подписи: подпись
// проверяет только сервер, здесь лишь экономим заведомо мёртвый запрос.
// Непарсящийся токен считаем непрозрачным и отдаём на суд API.
func expiredByClaims(token string) bool {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
