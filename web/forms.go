package web

import (
	"regexp"
	"strings"
)

// Валидация форм до обращения к базе: при ошибках форма
// рендерится заново с поэлементными сообщениями

var formEmailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
var usernameRx = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type registerForm struct {
	Username string
	Email    string
	Password string
	Errors   map[string]string
}

func (f *registerForm) Validate() bool {
	f.Errors = map[string]string{}

	username := strings.TrimSpace(f.Username)
	switch {
	case len(username) < 3:
		f.Errors["username"] = "имя пользователя должно содержать минимум 3 символа"
	case len(username) > 50:
		f.Errors["username"] = "имя пользователя не должно превышать 50 символов"
	case !usernameRx.MatchString(username):
		f.Errors["username"] = "имя пользователя может содержать только буквы, цифры, подчеркивание и дефис"
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		f.Errors["email"] = "email не может быть пустым"
	case len(email) > 255:
		f.Errors["email"] = "email не должен превышать 255 символов"
	case !formEmailRx.MatchString(email):
		f.Errors["email"] = "некорректный email адрес"
	}

	switch {
	case len(f.Password) < 6:
		f.Errors["password"] = "пароль должен содержать минимум 6 символов"
	case len(f.Password) > 128:
		f.Errors["password"] = "пароль не должен превышать 128 символов"
	}

	return len(f.Errors) == 0
}

type loginForm struct {
	Email    string
	Password string
	Errors   map[string]string
}

func (f *loginForm) Validate() bool {
	f.Errors = map[string]string{}

	if strings.TrimSpace(f.Email) == "" {
		f.Errors["email"] = "email не может быть пустым"
	}
	if f.Password == "" {
		f.Errors["password"] = "пароль не может быть пустым"
	}

	return len(f.Errors) == 0
}

type postForm struct {
	Title   string
	Content string
	Errors  map[string]string
}

func (f *postForm) Validate() bool {
	f.Errors = map[string]string{}

	title := strings.TrimSpace(f.Title)
	switch {
	case len(title) < 5:
		f.Errors["title"] = "заголовок должен содержать минимум 5 символов"
	case len(title) > 200:
		f.Errors["title"] = "заголовок не должен превышать 200 символов"
	}

	content := strings.TrimSpace(f.Content)
	switch {
	case len(content) == 0:
		f.Errors["content"] = "содержимое поста не может быть пустым"
	case len(content) > 10000:
		f.Errors["content"] = "содержимое поста не должно превышать 10000 символов"
	}

	return len(f.Errors) == 0
}
