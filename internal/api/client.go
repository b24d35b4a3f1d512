package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"turadmin/internal/models"
)

// Client — клиент удалённого REST API. Вся бизнес-логика и проверка
// токена живут на той стороне; здесь только запросы с Bearer-заголовком.
type Client struct {
	routes Routes
	http   *http.Client
	log    zerolog.Logger
}

func NewClient(routes Routes, log zerolog.Logger) *Client {
	return &Client{
		routes: routes,
		http:   &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

// NewClientWithHTTP — для тестов и нестандартных транспортов.
func NewClientWithHTTP(routes Routes, hc *http.Client, log zerolog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{routes: routes, http: hc, log: log}
}

func (c *Client) Routes() Routes { return c.routes }

// Login — POST /api/login. Ответ API: {token} при успехе, {message} при отказе;
// различаем по полю, а не по статусу — сервер авторитетен.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, c.routes.Login(), "", models.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		var se *StatusError
		// тело с message уже разобрано в StatusError — отдаём его как ответ
		if errors.As(err, &se) && se.Message != "" {
			return &models.AuthResponse{Message: se.Message}, nil
		}
		return nil, err
	}
	return &out, nil
}

// Register — POST /api/register, та же семантика ответа, что и у Login.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, http.MethodPost, c.routes.Register(), "", models.RegisterRequest{Name: name, Email: email, Password: password}, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Message != "" {
			return &models.AuthResponse{Message: se.Message}, nil
		}
		return nil, err
	}
	return &out, nil
}

// CurrentUser — GET /api/user с токеном из cookie.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, c.routes.User(), token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers — GET /api/users, наполняет селектор ответственного.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.UserOption, error) {
	var opts []models.UserOption
	if err := c.do(ctx, http.MethodGet, c.routes.Users(), token, nil, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// ListAgreements — GET /api/agreements, список целиком, без пагинации.
func (c *Client) ListAgreements(ctx context.Context, token string) ([]models.Agreement, error) {
	var list []models.Agreement
	if err := c.do(ctx, http.MethodGet, c.routes.Agreements(), token, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetAgreement — GET /api/agreements/{id}. Деталь приходит обёрнутой в {"data": ...}.
func (c *Client) GetAgreement(ctx context.Context, token string, id int) (*models.Agreement, error) {
	var wrapper struct {
		Data models.Agreement `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, c.routes.AgreementDetail(id), token, nil, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Data, nil
}

// CreateAgreement — POST /api/agreements. id назначает сервер.
func (c *Client) CreateAgreement(ctx context.Context, token string, a models.Agreement) (*models.Agreement, error) {
	var created models.Agreement
	if err := c.do(ctx, http.MethodPost, c.routes.Agreements(), token, a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAgreement — PUT /api/agreements/{id}, полная замена записи.
func (c *Client) UpdateAgreement(ctx context.Context, token string, id int, a models.Agreement) error {
	return c.do(ctx, http.MethodPut, c.routes.AgreementDetail(id), token, a, nil)
}

func (c *Client) do(ctx context.Context, method, url, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("url", url).Msg("api request failed")
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{StatusCode: resp.StatusCode, Message: extractMessage(raw)}
		c.log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("api returned non-2xx")
		return se
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// extractMessage — достаёт message/error из тела ошибки, если оно JSON.
func extractMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
