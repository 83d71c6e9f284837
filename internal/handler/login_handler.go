package handler

import (
	"errors"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/shui00cc/watchlist/internal/repository"
	"github.com/shui00cc/watchlist/internal/templates"
)

type LoginHandler struct {
	base
	tmpl *template.Template
}

func NewLoginHandler(b base) *LoginHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "login.html"))
	return &LoginHandler{base: b, tmpl: tmpl}
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, h.tmpl, h.pageData(w, r))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		h.sessions.Flash(w, r, "Invalid input.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.users.GetByUsername(username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.serverError(w, "look up user", err)
		return
	}
	if err != nil || !user.ValidatePassword(password) {
		h.log.Info("login failed", zap.String("username", username))
		h.sessions.Flash(w, r, "Invalid username or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		h.serverError(w, "save session", err)
		return
	}

	h.log.Info("login success", zap.Int("user_id", user.ID))
	h.sessions.Flash(w, r, "Login success.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		h.serverError(w, "clear session", err)
		return
	}
	h.sessions.Flash(w, r, "Goodbye.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
