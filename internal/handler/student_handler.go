package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/shui00cc/watchlist/internal/entity"
	"github.com/shui00cc/watchlist/internal/repository"
	"github.com/shui00cc/watchlist/internal/templates"
)

// StudentHandler serves the edit and delete routes for single students.
type StudentHandler struct {
	base
	students *repository.StudentRepository
	tmpl     *template.Template
}

func NewStudentHandler(b base, students *repository.StudentRepository) *StudentHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "edit.html"))
	return &StudentHandler{base: b, students: students, tmpl: tmpl}
}

func (h *StudentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.notFound(w, r)
		return
	}

	student, err := h.students.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, "load student", err)
		return
	}

	if r.Method != http.MethodPost {
		data := h.pageData(w, r)
		data["Student"] = student
		h.render(w, h.tmpl, data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	temper := r.FormValue("temper")
	stuNo := r.FormValue("stuNo")

	editURL := fmt.Sprintf("/student/edit/%d", id)
	if name == "" || temper == "" || stuNo == "" ||
		tooLong(name, 5) || tooLong(temper, 6) || tooLong(stuNo, 13) {
		h.sessions.Flash(w, r, "Invalid input.")
		http.Redirect(w, r, editURL, http.StatusSeeOther)
		return
	}

	err = h.students.Update(entity.Student{ID: id, Name: name, Temper: temper, StuNo: stuNo})
	if errors.Is(err, repository.ErrDuplicate) {
		h.sessions.Flash(w, r, "Student Exist.")
		http.Redirect(w, r, editURL, http.StatusSeeOther)
		return
	}
	if err != nil {
		h.serverError(w, "update student", err)
		return
	}

	h.log.Info("student updated", zap.Int("id", id))
	h.sessions.Flash(w, r, "Item updated.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.notFound(w, r)
		return
	}

	err = h.students.Delete(id)
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, "delete student", err)
		return
	}

	h.log.Info("student deleted", zap.Int("id", id))
	h.sessions.Flash(w, r, "Item deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
