package web

import (
	"encoding/base64"
	"net/http"
)

const FlashCookieName = "flash"

// setFlash сохраняет одноразовое сообщение, переживающее редирект.
// Значение кодируется в base64, т.к. в cookie нельзя класть произвольный текст
func (app *app) setFlash(w http.ResponseWriter, message string) {
	cookie := &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

// popFlash читает сообщение и сразу удаляет cookie
func (app *app) popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}
