package handler

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/shui00cc/watchlist/internal/entity"
	"github.com/shui00cc/watchlist/internal/repository"
	"github.com/shui00cc/watchlist/internal/templates"
)

// InfoHandler serves /info and the per-row edit/delete routes for the
// class/teacher assignments.
type InfoHandler struct {
	base
	infos    *repository.StudentInfoRepository
	students *repository.StudentRepository
	tmpl     *template.Template
	editTmpl *template.Template
}

// pair is one /info listing row: the assignment plus the first student
// carrying that number, when one exists.
type pair struct {
	Info    entity.StudentInfo
	Student *entity.Student
}

func NewInfoHandler(b base, infos *repository.StudentInfoRepository, students *repository.StudentRepository) *InfoHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "info.html"))
	editTmpl := template.Must(template.ParseFS(templates.FS, "editInfo.html"))
	return &InfoHandler{base: b, infos: infos, students: students, tmpl: tmpl, editTmpl: editTmpl}
}

func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		if contentNo := r.FormValue("contentNo"); contentNo != "" {
			infos, err := h.infos.SearchByStuNo(contentNo)
			if err != nil {
				h.serverError(w, "search stu_info", err)
				return
			}
			h.renderList(w, r, infos)
			return
		}

		h.create(w, r)
		return
	}

	infos, err := h.infos.All()
	if err != nil {
		h.serverError(w, "list stu_info", err)
		return
	}
	h.renderList(w, r, infos)
}

func (h *InfoHandler) create(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.CurrentUser(r); !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	stuNo := r.FormValue("stuNo")
	stuClass := r.FormValue("stuClass")
	teacher := r.FormValue("teacher")

	if stuNo == "" || stuClass == "" || teacher == "" ||
		tooLong(stuNo, 13) || tooLong(stuClass, 3) || tooLong(teacher, 4) {
		h.sessions.Flash(w, r, "Invalid input.")
		http.Redirect(w, r, "/info", http.StatusSeeOther)
		return
	}

	err := h.infos.Create(entity.StudentInfo{StuNo: stuNo, StuClass: stuClass, Teacher: teacher})
	if errors.Is(err, repository.ErrDuplicate) {
		h.sessions.Flash(w, r, "StuInfo Exist.")
		http.Redirect(w, r, "/info", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.serverError(w, "create stu_info", err)
		return
	}

	h.log.Info("stu_info created", zap.String("stu_no", stuNo))
	h.sessions.Flash(w, r, "Item created.")
	http.Redirect(w, r, "/info", http.StatusSeeOther)
}

func (h *InfoHandler) Edit(w http.ResponseWriter, r *http.Request) {
	oldNo := mux.Vars(r)["stuNo"]

	info, err := h.infos.Get(oldNo)
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, "load stu_info", err)
		return
	}

	if r.Method != http.MethodPost {
		data := h.pageData(w, r)
		data["Info"] = info
		h.render(w, h.editTmpl, data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	stuNo := r.FormValue("stuNo")
	stuClass := r.FormValue("stuClass")
	teacher := r.FormValue("teacher")

	editURL := "/stuInfo/edit/" + oldNo
	if stuNo == "" || stuClass == "" || teacher == "" ||
		tooLong(stuNo, 13) || tooLong(stuClass, 3) || tooLong(teacher, 4) {
		h.sessions.Flash(w, r, "Invalid input.")
		http.Redirect(w, r, editURL, http.StatusSeeOther)
		return
	}

	err = h.infos.Update(oldNo, entity.StudentInfo{StuNo: stuNo, StuClass: stuClass, Teacher: teacher})
	if errors.Is(err, repository.ErrDuplicate) {
		h.sessions.Flash(w, r, "StuInfo Exist.")
		http.Redirect(w, r, editURL, http.StatusSeeOther)
		return
	}
	if err != nil {
		h.serverError(w, "update stu_info", err)
		return
	}

	h.log.Info("stu_info updated", zap.String("old", oldNo), zap.String("new", stuNo))
	h.sessions.Flash(w, r, "Item updated.")
	http.Redirect(w, r, "/info", http.StatusSeeOther)
}

func (h *InfoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	stuNo := mux.Vars(r)["stuNo"]

	err := h.infos.Delete(stuNo)
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, "delete stu_info", err)
		return
	}

	h.log.Info("stu_info deleted", zap.String("stu_no", stuNo))
	h.sessions.Flash(w, r, "Item deleted.")
	http.Redirect(w, r, "/info", http.StatusSeeOther)
}

func (h *InfoHandler) renderList(w http.ResponseWriter, r *http.Request, infos []entity.StudentInfo) {
	pairs := make([]pair, 0, len(infos))
	for _, info := range infos {
		p := pair{Info: info}
		if student, err := h.students.FirstByStuNo(info.StuNo); err == nil {
			s := student
			p.Student = &s
		}
		pairs = append(pairs, p)
	}

	data := h.pageData(w, r)
	data["Pairs"] = pairs
	h.render(w, h.tmpl, data)
}
