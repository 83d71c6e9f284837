package handler

import (
	"html/template"
	"net/http"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/shui00cc/watchlist/internal/auth"
	"github.com/shui00cc/watchlist/internal/repository"
	"github.com/shui00cc/watchlist/internal/templates"
)

// base carries the dependencies shared by every handler. The user
// repository is here because every page shows the owner account.
type base struct {
	sessions *auth.Manager
	users    *repository.UserRepository
	log      *zap.Logger
}

var tmpl404 = template.Must(template.ParseFS(templates.FS, "404.html"))

// pageData builds the context every template receives: the displayed user
// (the authenticated one, or the owner row for anonymous visitors), whether
// a session exists, and the pending flashes.
func (b base) pageData(w http.ResponseWriter, r *http.Request) map[string]interface{} {
	user, loggedIn := b.sessions.CurrentUser(r)
	if !loggedIn {
		if owner, err := b.users.Owner(); err == nil {
			user = owner
		}
	}

	return map[string]interface{}{
		"User":     user,
		"LoggedIn": loggedIn,
		"Flashes":  b.sessions.Flashes(w, r),
	}
}

func (b base) render(w http.ResponseWriter, t *template.Template, data map[string]interface{}) {
	if err := t.Execute(w, data); err != nil {
		b.log.Error("render template", zap.Error(err))
	}
}

func (b base) notFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := tmpl404.Execute(w, nil); err != nil {
		b.log.Error("render 404", zap.Error(err))
	}
}

func (b base) serverError(w http.ResponseWriter, msg string, err error) {
	b.log.Error(msg, zap.Error(err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// tooLong counts characters, not bytes; names are usually CJK.
func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
