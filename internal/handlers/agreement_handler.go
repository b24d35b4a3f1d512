package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"turadmin/internal/authz"
	"turadmin/internal/export"
	"turadmin/internal/forms"
	"turadmin/internal/models"
	"turadmin/internal/pdf"
	"turadmin/internal/session"
)

// AgreementAPI — то, что страницам договоров нужно от API-клиента.
type AgreementAPI interface {
	forms.AgreementWriter
	ListAgreements(ctx context.Context, token string) ([]models.Agreement, error)
	GetAgreement(ctx context.Context, token string, id int) (*models.Agreement, error)
	ListUsers(ctx context.Context, token string) ([]models.UserOption, error)
}

type AgreementHandler struct {
	api     AgreementAPI
	session *session.Session
	pdf     pdf.Generator
	log     zerolog.Logger
}

func NewAgreementHandler(api AgreementAPI, s *session.Session, gen pdf.Generator, log zerolog.Logger) *AgreementHandler {
	return &AgreementHandler{api: api, session: s, pdf: gen, log: log}
}

var roomTypes = []string{models.RoomDouble, models.RoomTriple, models.RoomQuad}

// List — GET /agreements: весь список одним запросом, без пагинации.
// ?expand=<id> раскрывает длинный комментарий строки.
func (h *AgreementHandler) List(c *gin.Context) {
	token, _ := h.session.Token(c)
	user := h.session.Refresh(c.Request.Context(), token)

	data := gin.H{"Agreements": []models.Agreement{}, "Expanded": map[int]bool{}}

	list, err := h.api.ListAgreements(c.Request.Context(), token)
	if err != nil {
		h.log.Error().Err(err).Msg("list agreements failed")
		data["Error"] = "Error fetching agreements"
	} else {
		data["Agreements"] = list
	}

	if id, err := strconv.Atoi(c.Query("expand")); err == nil {
		data["Expanded"] = map[int]bool{id: true}
	}

	c.HTML(http.StatusOK, "agreements", page(c, user, "Agreements", data))
}

func (h *AgreementHandler) ShowCreate(c *gin.Context) {
	token, _ := h.session.Token(c)
	user := h.session.Refresh(c.Request.Context(), token)
	f := forms.NewCreate(h.api)
	h.renderForm(c, user, f.Form, formView{ActionURL: "/agreements/create"})
}

// Create — POST /agreements/create. Кнопки add_phone/remove_phone
// гоняют форму через редьюсер без сети; submit валидирует и шлёт POST.
func (h *AgreementHandler) Create(c *gin.Context) {
	token, _ := h.session.Token(c)
	user := h.session.Refresh(c.Request.Context(), token)

	f := forms.NewCreate(h.api)
	populateForm(f.Form, c)
	view := formView{ActionURL: "/agreements/create"}

	if applyListAction(f.Form, c.PostForm("action")) {
		h.renderForm(c, user, f.Form, view)
		return
	}

	if err := f.Submit(c.Request.Context(), token); err != nil {
		h.renderForm(c, user, f.Form, view.withError(err))
		return
	}
	c.Redirect(http.StatusSeeOther, "/agreements")
}

func (h *AgreementHandler) ShowEdit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/agreements")
		return
	}
	token, _ := h.session.Token(c)
	user := h.session.Refresh(c.Request.Context(), token)

	current, err := h.api.GetAgreement(c.Request.Context(), token, id)
	if err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("fetch agreement failed")
		c.Redirect(http.StatusFound, "/agreements")
		return
	}

	f := forms.NewEdit(h.api, id, current)
	h.renderForm(c, user, f.Form, formView{
		IsEdit:    true,
		ActionURL: "/agreements/edit/" + strconv.Itoa(id),
	})
}

// Edit — POST /agreements/edit/:id, полная замена записи.
func (h *AgreementHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/agreements")
		return
	}
	token, _ := h.session.Token(c)
	user := h.session.Refresh(c.Request.Context(), token)

	f := forms.NewEdit(h.api, id, &models.Agreement{})
	populateForm(f.Form, c)
	view := formView{IsEdit: true, ActionURL: "/agreements/edit/" + strconv.Itoa(id)}

	if applyListAction(f.Form, c.PostForm("action")) {
		h.renderForm(c, user, f.Form, view)
		return
	}

	if err := f.Submit(c.Request.Context(), token); err != nil {
		h.renderForm(c, user, f.Form, view.withError(err))
		return
	}
	c.Redirect(http.StatusSeeOther, "/agreements")
}

// PDF — GET /agreements/:id/pdf, печатная форма договора.
func (h *AgreementHandler) PDF(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/agreements")
		return
	}
	token, _ := h.session.Token(c)

	a, err := h.api.GetAgreement(c.Request.Context(), token, id)
	if err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("fetch agreement for pdf failed")
		c.Redirect(http.StatusFound, "/agreements")
		return
	}

	var buf bytes.Buffer
	if err := h.pdf.RenderAgreement(a, &buf); err != nil {
		h.log.Error().Err(err).Int("id", id).Msg("render pdf failed")
		c.Redirect(http.StatusFound, "/agreements")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shartnoma_`+strconv.Itoa(id)+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// Export — GET /agreements/export, список как xlsx.
func (h *AgreementHandler) Export(c *gin.Context) {
	token, _ := h.session.Token(c)

	list, err := h.api.ListAgreements(c.Request.Context(), token)
	if err != nil {
		h.log.Error().Err(err).Msg("list agreements for export failed")
		c.Redirect(http.StatusFound, "/agreements")
		return
	}

	var buf bytes.Buffer
	if err := export.AgreementsXLSX(list, &buf); err != nil {
		h.log.Error().Err(err).Msg("xlsx export failed")
		c.Redirect(http.StatusFound, "/agreements")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="agreements.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// formView — параметры рендера страницы формы.
type formView struct {
	IsEdit    bool
	ActionURL string
	Error     string
}

func (v formView) withError(err error) formView {
	var ve *forms.ValidationError
	if errors.As(err, &ve) {
		v.Error = ve.Message
	} else {
		v.Error = "Failed to submit agreement. Please try again."
	}
	return v
}

func (h *AgreementHandler) renderForm(c *gin.Context, user *models.User, f *forms.Form, view formView) {
	options, err := h.api.ListUsers(c.Request.Context(), mustToken(h.session, c))
	if err != nil {
		h.log.Warn().Err(err).Msg("fetch users for selector failed")
	}

	// в режиме правки менять ответственного могут только Admin/Manager
	canPick := !view.IsEdit || authz.IsAdminOrManager(user)

	title := "Shartnoma yaratish"
	if view.IsEdit {
		title = "Shartnomani o'zgartirish"
	}

	c.HTML(http.StatusOK, "agreement_form", page(c, user, title, gin.H{
		"Form":               f,
		"IsEdit":             view.IsEdit,
		"ActionURL":          view.ActionURL,
		"Error":              view.Error,
		"UserOptions":        options,
		"CanPickResponsible": canPick,
		"RoomTypes":          roomTypes,
	}))
}

func mustToken(s *session.Session, c *gin.Context) string {
	token, _ := s.Token(c)
	return token
}

// populateForm — значения POST в форму через действия редьюсера.
func populateForm(f *forms.Form, c *gin.Context) {
	for _, name := range []string{
		"flight_date", "duration_of_stay", "client_name", "client_relatives",
		"tariff_name", "room_type", "transportation", "total_price",
		"payment_paid", "responsible_user_id", "comments",
	} {
		if value, ok := c.GetPostForm(name); ok {
			f.Apply(forms.SetField{Name: name, Value: value})
		}
	}
	if raw, ok := c.GetPostForm("exchange_rate"); ok {
		f.Apply(forms.SetExchangeRate{Raw: raw})
	}

	if phones := c.PostFormArray("phone_numbers"); len(phones) > 0 {
		f.PhoneNumbers = f.PhoneNumbers[:0]
		for i, p := range phones {
			if i == 0 {
				f.PhoneNumbers = append(f.PhoneNumbers, p)
				continue
			}
			f.Apply(forms.AddPhone{})
			f.Apply(forms.SetPhone{Index: i, Value: p})
		}
	}

	f.Apply(forms.SetTakenAway{Value: c.PostForm("previous_agreement_taken_away") != ""})
}

// applyListAction — add_phone / remove_phone:<i>; true, если это было
// действие над списком, а не submit.
func applyListAction(f *forms.Form, action string) bool {
	switch {
	case action == "add_phone":
		f.Apply(forms.AddPhone{})
		return true
	case strings.HasPrefix(action, "remove_phone:"):
		if i, err := strconv.Atoi(strings.TrimPrefix(action, "remove_phone:")); err == nil {
			f.Apply(forms.RemovePhone{Index: i})
		}
		return true
	}
	return false
}
