package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"turadmin/internal/session"
)

// RouteGuard — редирект на страницу логина для защищённых путей без
// cookie-токена. Какие пути защищены — конфигурация, не логика:
// allow-list префиксов приходит снаружи. Валидность токена здесь не
// проверяется, это дело API; отсутствие cookie == не залогинен.
func RouteGuard(loginPath string, guarded []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isGuarded(c.Request.URL.Path, guarded) {
			c.Next()
			return
		}
		if _, ok := tokenFromRequest(c); !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) (string, bool) {
	tok, err := c.Cookie(session.CookieName)
	if err != nil || tok == "" {
		return "", false
	}
	return tok, true
}

// isGuarded — "/" матчится только точно, остальные паттерны — как
// префикс сегмента пути.
func isGuarded(path string, guarded []string) bool {
	for _, p := range guarded {
		if p == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
