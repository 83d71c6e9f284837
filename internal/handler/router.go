package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/shui00cc/watchlist/internal/auth"
	"github.com/shui00cc/watchlist/internal/middleware"
	"github.com/shui00cc/watchlist/internal/repository"
)

// NewRouter wires every route of the app onto a mux router. Search stays
// public; everything that mutates sits behind RequireAuth.
func NewRouter(db *sqlx.DB, sessions *auth.Manager, log *zap.Logger) *mux.Router {
	users := repository.NewUserRepository(db)
	students := repository.NewStudentRepository(db)
	infos := repository.NewStudentInfoRepository(db)

	b := base{sessions: sessions, users: users, log: log}

	index := NewIndexHandler(b, students)
	login := NewLoginHandler(b)
	settings := NewSettingsHandler(b)
	student := NewStudentHandler(b, students)
	info := NewInfoHandler(b, infos, students)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(sessions, h)
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(b.notFound)

	r.HandleFunc("/", index.Index).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/login", login.Login).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/logout", protected(login.Logout)).Methods(http.MethodGet)
	r.Handle("/settings", protected(settings.Settings)).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/student/edit/{id}", protected(student.Edit)).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/student/delete/{id}", protected(student.Delete)).Methods(http.MethodPost)
	r.HandleFunc("/info", info.Info).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/stuInfo/edit/{stuNo}", protected(info.Edit)).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/stuInfo/delete/{stuNo}", protected(info.Delete)).Methods(http.MethodPost)

	return r
}
