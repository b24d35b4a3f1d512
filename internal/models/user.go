package models

// Role — роль из профиля (/api/user), сравниваем по имени.
type Role struct {
	Name string `json:"name"`
}

// User — профиль текущего пользователя. Источник истины — API,
// здесь только кэш на время сессии.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Roles []Role `json:"roles"`
}

// UserOption — элемент списка для селектора ответственного.
type UserOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse — ответ login/register: token при успехе, message при отказе.
type AuthResponse struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}
