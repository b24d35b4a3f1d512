package api

import (
	"fmt"
	"strings"
)

// Routes — статическая таблица эндпоинтов удалённого API.
// Базовый URL приходит из конфига (API_URL).
type Routes struct {
	base string
}

const defaultBaseURL = "http://localhost:8000"

func NewRoutes(baseURL string) Routes {
	b := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if b == "" {
		b = defaultBaseURL
	}
	return Routes{base: b}
}

func (r Routes) Base() string     { return r.base }
func (r Routes) Login() string    { return r.base + "/api/login" }
func (r Routes) Register() string { return r.base + "/api/register" }
func (r Routes) User() string     { return r.base + "/api/user" }

// Users — список {id, name} для селектора ответственного.
func (r Routes) Users() string { return r.base + "/api/users" }

func (r Routes) Agreements() string { return r.base + "/api/agreements" }

func (r Routes) AgreementDetail(id int) string {
	return fmt.Sprintf("%s/api/agreements/%d", r.base, id)
}

// Ролевые эндпоинты — часть таблицы, используются ролевыми страницами API.
func (r Routes) Admin() string        { return r.base + "/api/admin" }
func (r Routes) Manager() string      { return r.base + "/api/manager" }
func (r Routes) SaleOperator() string { return r.base + "/api/sale-operator" }
func (r Routes) Specialist() string   { return r.base + "/api/specialist" }
