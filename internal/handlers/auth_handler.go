package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"turadmin/internal/models"
	"turadmin/internal/session"
)

// registeredMessage — так API сообщает об успешной регистрации,
// когда не выдаёт токен сразу.
const registeredMessage = "User created successfully"

// AuthAPI — то, что формам логина/регистрации нужно от API-клиента.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error)
}

type AuthHandler struct {
	api     AuthAPI
	session *session.Session
	log     zerolog.Logger
}

func NewAuthHandler(api AuthAPI, s *session.Session, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{api: api, session: s, log: log}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	data := page(c, nil, "Login", gin.H{"Email": ""})
	if c.Query("registered") == "1" {
		data["Notice"] = "Registration successful! Please log in."
	}
	c.HTML(http.StatusOK, "login", data)
}

// Login — POST /auth/login: токен в cookie и на /dashboard; Refresh
// сделает уже следующая страница.
func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	resp, err := h.api.Login(c.Request.Context(), email, password)
	if err != nil {
		h.log.Error().Err(err).Str("email", email).Msg("login request failed")
		c.HTML(http.StatusOK, "login", page(c, nil, "Login", gin.H{
			"Error": "Login failed", "Email": email,
		}))
		return
	}
	if resp.Token == "" {
		msg := resp.Message
		if msg == "" {
			msg = "Login failed"
		}
		c.HTML(http.StatusUnauthorized, "login", page(c, nil, "Login", gin.H{
			"Error": msg, "Email": email,
		}))
		return
	}

	h.session.Login(c, resp.Token)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register", page(c, nil, "Register", gin.H{"Name": "", "Email": ""}))
}

// Register — POST /auth/register. API может вернуть либо токен
// (сразу логиним), либо message об успехе (отправляем на логин).
func (h *AuthHandler) Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	resp, err := h.api.Register(c.Request.Context(), name, email, password)
	if err != nil {
		h.log.Error().Err(err).Str("email", email).Msg("register request failed")
		c.HTML(http.StatusOK, "register", page(c, nil, "Register", gin.H{
			"Error": "Registration failed", "Name": name, "Email": email,
		}))
		return
	}

	switch {
	case resp.Token != "":
		h.session.Login(c, resp.Token)
		c.Redirect(http.StatusSeeOther, "/dashboard")
	case resp.Message == registeredMessage:
		c.Redirect(http.StatusSeeOther, "/auth/login?registered=1")
	default:
		msg := resp.Message
		if msg == "" {
			msg = "Registration failed"
		}
		c.HTML(http.StatusOK, "register", page(c, nil, "Register", gin.H{
			"Error": msg, "Name": name, "Email": email,
		}))
	}
}

// Logout — гасим cookie и на страницу логина.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.Logout(c)
	c.Redirect(http.StatusFound, "/auth/login")
}
