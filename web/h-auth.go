package web

import (
	"errors"
	"net/http"

	"blog/internal/database"
)

func (app *app) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Регистрация",
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	form := &registerForm{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	app.infoLog.Printf("Attempting to register user: username=%q email=%q", form.Username, form.Email)

	if !form.Validate() {
		data := &HTMLData{
			Title:      "Регистрация",
			FormErrors: form.Errors,
			FormData: map[string]string{
				"username": form.Username,
				"email":    form.Email,
			},
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	user, err := app.UserService.CreateUser(form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, database.ErrUserCreateFailed) || errors.Is(err, database.ErrPasswordHashFailed) {
			app.ServerError(w, err)
			return
		}

		// Конфликт уникальности показываем как ошибку соответствующего поля
		switch err {
		case database.ErrUsernameExists:
			form.Errors["username"] = err.Error()
		case database.ErrEmailExists:
			form.Errors["email"] = err.Error()
		}

		data := &HTMLData{
			Title:      "Регистрация",
			FormError:  err.Error(),
			FormErrors: form.Errors,
			FormData: map[string]string{
				"username": form.Username,
				"email":    form.Email,
			},
		}
		app.RenderHTML(w, r, "register.page.html", data)
		return
	}

	app.infoLog.Printf("Successfully registered user: %q (ID %d)", user.Username, user.ID)

	app.setFlash(w, "Регистрация прошла успешно, теперь войдите")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (app *app) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title: "Вход",
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	form := &loginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if !form.Validate() {
		data := &HTMLData{
			Title:      "Вход",
			FormErrors: form.Errors,
			FormData: map[string]string{
				"email": form.Email,
			},
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	app.infoLog.Printf("Attempting to login user: email=%q", form.Email)

	id, username, err := app.UserService.VerifyUser(form.Email, form.Password)
	if err != nil {
		if err != database.ErrEmailNotFound && err != database.ErrIncorrectPassword {
			app.ServerError(w, err)
			return
		}

		data := &HTMLData{
			Title:     "Вход",
			FormError: "Неверный email или пароль",
			FormData: map[string]string{
				"email": form.Email,
			},
		}
		app.RenderHTML(w, r, "login.page.html", data)
		return
	}

	app.infoLog.Printf("Login successful: id=%d, username=%q", id, username)

	// Создаем сессию
	session, err := app.SessionService.CreateSession(id)
	if err != nil {
		app.errorLog.Printf("Failed to create session for user %d: %v", id, err)
		app.ServerError(w, err)
		return
	}

	app.setSessionCookie(w, session.Token)

	app.infoLog.Printf("Session created for user %q", username)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *app) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	token := app.getSessionToken(r)
	if token != "" {
		if err := app.SessionService.DeleteSession(token); err != nil {
			app.errorLog.Printf("Failed to delete session: %v", err)
		}
	}

	app.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
