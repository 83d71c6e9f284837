package entity

// Student is one roster entry: a name, the day's temperature reading and
// the student number that points at a StudentInfo row. The temperature is
// kept as entered (e.g. "37.2℃"), not parsed.
type Student struct {
	ID     int    `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Temper string `db:"temper" json:"temper"`
	StuNo  string `db:"stu_no" json:"stuNo"`
}

// StudentInfo is the class/teacher assignment for a student number. StuNo
// is the natural key; Student rows reference it by value only, nothing is
// enforced or cascaded.
type StudentInfo struct {
	StuNo    string `db:"stu_no" json:"stuNo"`
	StuClass string `db:"stu_class" json:"stuClass"`
	Teacher  string `db:"teacher" json:"teacher"`
}
