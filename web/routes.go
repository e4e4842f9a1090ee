package web

import (
	"net/http"
	"regexp"
)

func (app *app) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir(app.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	mux.HandleFunc("/", app.home)

	// Маршруты только для гостей (неавторизованных)
	mux.HandleFunc("/register", app.requireGuest(app.register))
	mux.HandleFunc("/login", app.requireGuest(app.login))

	// Маршруты только для авторизованных пользователей
	mux.HandleFunc("/logout", app.requireAuth(app.logout))
	mux.HandleFunc("/post/create", app.requireAuth(app.createPost))

	mux.HandleFunc("/post/", app.handlePostRoutes)

	return mux
}

// handlePostRoutes обрабатывает динамические маршруты постов
func (app *app) handlePostRoutes(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	// /post/{id}
	if matches := regexp.MustCompile(`^/post/(\d+)$`).FindStringSubmatch(path); matches != nil {
		app.viewPost(w, r)
		return
	}

	// /post/{id}/edit
	if matches := regexp.MustCompile(`^/post/(\d+)/edit$`).FindStringSubmatch(path); matches != nil {
		app.editPost(w, r)
		return
	}

	// /post/{id}/delete
	if matches := regexp.MustCompile(`^/post/(\d+)/delete$`).FindStringSubmatch(path); matches != nil {
		app.deletePost(w, r)
		return
	}

	app.NotFound(w)
}
