package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"turadmin/internal/models"
	"turadmin/internal/session"
)

// PagesHandler — домашняя, дашборд и профиль: только показ профиля
// из сессии, никакой своей логики.
type PagesHandler struct {
	session *session.Session
	log     zerolog.Logger
}

func NewPagesHandler(s *session.Session, log zerolog.Logger) *PagesHandler {
	return &PagesHandler{session: s, log: log}
}

func (h *PagesHandler) currentUser(c *gin.Context) *models.User {
	token, _ := h.session.Token(c)
	return h.session.Refresh(c.Request.Context(), token)
}

func (h *PagesHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", page(c, h.currentUser(c), "Home", gin.H{}))
}

func (h *PagesHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard", page(c, h.currentUser(c), "Dashboard", gin.H{}))
}

func (h *PagesHandler) Profile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile", page(c, h.currentUser(c), "Profile", gin.H{}))
}
