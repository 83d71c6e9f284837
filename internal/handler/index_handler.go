package handler

import (
	"errors"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/shui00cc/watchlist/internal/entity"
	"github.com/shui00cc/watchlist/internal/repository"
	"github.com/shui00cc/watchlist/internal/templates"
)

// IndexHandler serves "/": the student listing, the name search and the
// create form, all on one route.
type IndexHandler struct {
	base
	students *repository.StudentRepository
	tmpl     *template.Template
}

func NewIndexHandler(b base, students *repository.StudentRepository) *IndexHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "index.html"))
	return &IndexHandler{base: b, students: students, tmpl: tmpl}
}

func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		// A non-empty search box means search; anything else on POST is a
		// create request.
		if content := r.FormValue("content"); content != "" {
			students, err := h.students.SearchByName(content)
			if err != nil {
				h.serverError(w, "search students", err)
				return
			}
			h.renderList(w, r, students)
			return
		}

		h.create(w, r)
		return
	}

	students, err := h.students.All()
	if err != nil {
		h.serverError(w, "list students", err)
		return
	}
	h.renderList(w, r, students)
}

func (h *IndexHandler) create(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.CurrentUser(r); !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	temper := r.FormValue("temper")
	stuNo := r.FormValue("stuNo")

	if name == "" || temper == "" || stuNo == "" ||
		tooLong(name, 5) || tooLong(temper, 6) || tooLong(stuNo, 13) {
		h.sessions.Flash(w, r, "Invalid input.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := h.students.Create(entity.Student{Name: name, Temper: temper, StuNo: stuNo})
	if errors.Is(err, repository.ErrDuplicate) {
		h.sessions.Flash(w, r, "Student Exist.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.serverError(w, "create student", err)
		return
	}

	h.log.Info("student created", zap.Int("id", id), zap.String("name", name))
	h.sessions.Flash(w, r, "Item created.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *IndexHandler) renderList(w http.ResponseWriter, r *http.Request, students []entity.Student) {
	data := h.pageData(w, r)
	data["Students"] = students
	h.render(w, h.tmpl, data)
}
