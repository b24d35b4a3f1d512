package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turadmin/internal/models"
)

// ThemeCookie — единственное локальное состояние кроме токена:
// предпочтение светлой/тёмной темы.
const ThemeCookie = "theme"

func themeFrom(c *gin.Context) string {
	t, err := c.Cookie(ThemeCookie)
	if err != nil || t != "dark" {
		return "light"
	}
	return "dark"
}

// page — общие данные layout (navbar/sidebar) + данные страницы.
func page(c *gin.Context, user *models.User, title string, extra gin.H) gin.H {
	data := gin.H{
		"Theme": themeFrom(c),
		"User":  user,
		"Title": title,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// ToggleTheme — POST /theme, переключает cookie и возвращает назад.
func ToggleTheme(c *gin.Context) {
	next := "dark"
	if themeFrom(c) == "dark" {
		next = "light"
	}
	c.SetCookie(ThemeCookie, next, 365*24*3600, "/", "", false, false)

	back := c.Request.Referer()
	if back == "" {
		back = "/"
	}
	c.Redirect(http.StatusFound, back)
}
