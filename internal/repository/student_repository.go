package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/shui00cc/watchlist/internal/entity"
)

type StudentRepository struct {
	db *sqlx.DB
}

func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) All() ([]entity.Student, error) {
	var students []entity.Student
	err := r.db.Select(&students, `
		SELECT id, name, temper, stu_no FROM student ORDER BY id
	`)
	return students, err
}

func (r *StudentRepository) GetByID(id int) (entity.Student, error) {
	var s entity.Student
	err := r.db.Get(&s, `
		SELECT id, name, temper, stu_no FROM student WHERE id = ?
	`, id)
	return s, translate(err)
}

// SearchByName returns the students whose name contains pattern,
// case-sensitive. An empty pattern matches everything.
func (r *StudentRepository) SearchByName(pattern string) ([]entity.Student, error) {
	var students []entity.Student
	err := r.db.Select(&students, `
		SELECT id, name, temper, stu_no FROM student
		WHERE instr(name, ?) > 0 OR ? = ''
		ORDER BY id
	`, pattern, pattern)
	return students, err
}

// FirstByStuNo returns the first student carrying the given student number.
// Duplicate numbers are possible; callers get the oldest row.
func (r *StudentRepository) FirstByStuNo(stuNo string) (entity.Student, error) {
	var s entity.Student
	err := r.db.Get(&s, `
		SELECT id, name, temper, stu_no FROM student WHERE stu_no = ? ORDER BY id LIMIT 1
	`, stuNo)
	return s, translate(err)
}

func (r *StudentRepository) Create(s entity.Student) (int, error) {
	res, err := r.db.Exec(`
		INSERT INTO student (name, temper, stu_no) VALUES (?, ?, ?)
	`, s.Name, s.Temper, s.StuNo)
	if err != nil {
		return 0, translate(err)
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (r *StudentRepository) Update(s entity.Student) error {
	res, err := r.db.Exec(`
		UPDATE student SET name = ?, temper = ?, stu_no = ? WHERE id = ?
	`, s.Name, s.Temper, s.StuNo, s.ID)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *StudentRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM student WHERE id = ?`, id)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
