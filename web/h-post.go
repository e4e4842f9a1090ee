package web

import (
	"net/http"
	"strconv"
	"strings"

	"blog/internal/database"
	"blog/internal/models"
)

func (app *app) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		app.NotFound(w)
		return
	}
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	user := app.getCurrentUser(r)

	posts, err := app.PostService.GetAllPosts()
	if err != nil {
		app.errorLog.Printf("Failed to get posts: %v", err)
		posts = []*models.Post{} // пустой слайс при ошибке
	}

	data := &HTMLData{
		Title:       "Главная",
		CurrentUser: user,
		Posts:       posts,
	}

	app.RenderHTML(w, r, "home.page.html", data)
}

// viewPost показывает отдельный пост
func (app *app) viewPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/post/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		app.NotFound(w)
		return
	}

	post, err := app.PostService.GetPost(id)
	if err != nil {
		if err == database.ErrPostNotFound {
			// Страница рендерится и для несуществующего поста, просто без него
			data := &HTMLData{
				Title:       "Пост не найден",
				CurrentUser: app.getCurrentUser(r),
			}
			app.RenderHTML(w, r, "view-post.page.html", data)
			return
		}
		app.ServerError(w, err)
		return
	}

	data := &HTMLData{
		Title:       post.Title,
		CurrentUser: app.getCurrentUser(r),
		Post:        post,
	}

	app.RenderHTML(w, r, "view-post.page.html", data)
}

// createPost создает новый пост
func (app *app) createPost(w http.ResponseWriter, r *http.Request) {
	user := app.getCurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title:       "Создать пост",
			CurrentUser: user,
		}
		app.RenderHTML(w, r, "create-post.page.html", data)
		return
	}

	form := &postForm{
		Title:   strings.TrimSpace(r.FormValue("title")),
		Content: strings.TrimSpace(r.FormValue("content")),
	}

	if !form.Validate() {
		data := &HTMLData{
			Title:       "Создать пост",
			FormErrors:  form.Errors,
			CurrentUser: user,
			FormData: map[string]string{
				"title":   form.Title,
				"content": form.Content,
			},
		}
		app.RenderHTML(w, r, "create-post.page.html", data)
		return
	}

	post, err := app.PostService.CreatePost(form.Title, form.Content, user.ID)
	if err != nil {
		data := &HTMLData{
			Title:       "Создать пост",
			FormError:   err.Error(),
			CurrentUser: user,
			FormData: map[string]string{
				"title":   form.Title,
				"content": form.Content,
			},
		}
		app.RenderHTML(w, r, "create-post.page.html", data)
		return
	}

	app.infoLog.Printf("Post created: ID=%d, Title=%q, Author=%q",
		post.ID, post.Title, user.Username)

	app.setFlash(w, "Пост создан")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// editPost редактирует пост
func (app *app) editPost(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/post/")
	idStr = strings.TrimSuffix(idStr, "/edit")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		app.NotFound(w)
		return
	}

	user := app.getCurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	post, err := app.PostService.GetPost(id)
	if err != nil {
		if err == database.ErrPostNotFound {
			app.NotFound(w)
			return
		}
		app.ServerError(w, err)
		return
	}

	// Редактировать может только автор
	if post.UserID != user.ID {
		app.setFlash(w, "Редактировать пост может только его автор")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method != http.MethodPost {
		data := &HTMLData{
			Title:       "Редактировать пост",
			CurrentUser: user,
			Post:        post,
			FormData: map[string]string{
				"title":   post.Title,
				"content": post.Content,
			},
		}
		app.RenderHTML(w, r, "edit-post.page.html", data)
		return
	}

	form := &postForm{
		Title:   strings.TrimSpace(r.FormValue("title")),
		Content: strings.TrimSpace(r.FormValue("content")),
	}

	if !form.Validate() {
		data := &HTMLData{
			Title:       "Редактировать пост",
			FormErrors:  form.Errors,
			CurrentUser: user,
			Post:        post,
			FormData: map[string]string{
				"title":   form.Title,
				"content": form.Content,
			},
		}
		app.RenderHTML(w, r, "edit-post.page.html", data)
		return
	}

	err = app.PostService.UpdatePost(id, form.Title, form.Content, user.ID)
	if err != nil {
		data := &HTMLData{
			Title:       "Редактировать пост",
			FormError:   err.Error(),
			CurrentUser: user,
			Post:        post,
			FormData: map[string]string{
				"title":   form.Title,
				"content": form.Content,
			},
		}
		app.RenderHTML(w, r, "edit-post.page.html", data)
		return
	}

	app.infoLog.Printf("Post updated: ID=%d, Title=%q, Author=%q",
		id, form.Title, user.Username)

	http.Redirect(w, r, "/post/"+strconv.Itoa(id), http.StatusSeeOther)
}

// deletePost удаляет пост
func (app *app) deletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.MethodNotAllowed(w, []string{"GET"})
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/post/")
	idStr = strings.TrimSuffix(idStr, "/delete")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		app.NotFound(w)
		return
	}

	user := app.getCurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	err = app.PostService.DeletePost(id, user.ID)
	switch err {
	case nil:
		app.infoLog.Printf("Post deleted: ID=%d, Author=%q", id, user.Username)
		app.setFlash(w, "Пост удален")
	case database.ErrPostNotFound:
		app.NotFound(w)
		return
	case database.ErrNotPostAuthor:
		// Чужой пост не трогаем
		app.setFlash(w, "Удалить пост может только его автор")
	default:
		app.errorLog.Printf("Failed to delete post %d: %v", id, err)
		app.ServerError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
