package handler

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/shui00cc/watchlist/internal/templates"
)

type SettingsHandler struct {
	base
	tmpl *template.Template
}

func NewSettingsHandler(b base) *SettingsHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "settings.html"))
	return &SettingsHandler{base: b, tmpl: tmpl}
}

// Settings updates the display name of the signed-in user. The route is
// behind RequireAuth, so CurrentUser always resolves here.
func (h *SettingsHandler) Settings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, h.tmpl, h.pageData(w, r))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" || tooLong(name, 5) {
		h.sessions.Flash(w, r, "Invalid input.")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	user, _ := h.sessions.CurrentUser(r)
	if err := h.users.UpdateName(user.ID, name); err != nil {
		h.serverError(w, "update name", err)
		return
	}

	h.log.Info("settings updated", zap.Int("user_id", user.ID), zap.String("name", name))
	h.sessions.Flash(w, r, "Settings updated.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
