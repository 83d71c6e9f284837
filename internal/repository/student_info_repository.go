package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/shui00cc/watchlist/internal/entity"
)

type StudentInfoRepository struct {
	db *sqlx.DB
}

func NewStudentInfoRepository(db *sqlx.DB) *StudentInfoRepository {
	return &StudentInfoRepository{db: db}
}

func (r *StudentInfoRepository) All() ([]entity.StudentInfo, error) {
	var infos []entity.StudentInfo
	err := r.db.Select(&infos, `
		SELECT stu_no, stu_class, teacher FROM stu_info ORDER BY rowid
	`)
	return infos, err
}

func (r *StudentInfoRepository) Get(stuNo string) (entity.StudentInfo, error) {
	var info entity.StudentInfo
	err := r.db.Get(&info, `
		SELECT stu_no, stu_class, teacher FROM stu_info WHERE stu_no = ?
	`, stuNo)
	return info, translate(err)
}

// SearchByStuNo returns the rows whose student number contains pattern,
// case-sensitive. An empty pattern matches everything.
func (r *StudentInfoRepository) SearchByStuNo(pattern string) ([]entity.StudentInfo, error) {
	var infos []entity.StudentInfo
	err := r.db.Select(&infos, `
		SELECT stu_no, stu_class, teacher FROM stu_info
		WHERE instr(stu_no, ?) > 0 OR ? = ''
		ORDER BY rowid
	`, pattern, pattern)
	return infos, err
}

func (r *StudentInfoRepository) Create(info entity.StudentInfo) error {
	_, err := r.db.Exec(`
		INSERT INTO stu_info (stu_no, stu_class, teacher) VALUES (?, ?, ?)
	`, info.StuNo, info.StuClass, info.Teacher)
	return translate(err)
}

// Update rewrites the row keyed by oldNo, including the key itself when the
// form changed it.
func (r *StudentInfoRepository) Update(oldNo string, info entity.StudentInfo) error {
	res, err := r.db.Exec(`
		UPDATE stu_info SET stu_no = ?, stu_class = ?, teacher = ? WHERE stu_no = ?
	`, info.StuNo, info.StuClass, info.Teacher, oldNo)
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

func (r *StudentInfoRepository) Delete(stuNo string) error {
	res, err := r.db.Exec(`DELETE FROM stu_info WHERE stu_no = ?`, stuNo)
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
