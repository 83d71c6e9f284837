package repository

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/shui00cc/watchlist/internal/database"
	"github.com/shui00cc/watchlist/internal/entity"
)

func newDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db, false); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestStudentCRUD(t *testing.T) {
	students := NewStudentRepository(newDB(t))

	id, err := students.Create(entity.Student{Name: "曹小晨", Temper: "37.2℃", StuNo: "2021141530001"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := students.GetByID(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "曹小晨" || got.Temper != "37.2℃" || got.StuNo != "2021141530001" {
		t.Errorf("unexpected student: %+v", got)
	}

	got.Temper = "36.8℃"
	if err := students.Update(got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = students.GetByID(id)
	if got.Temper != "36.8℃" {
		t.Errorf("temper = %q, want 36.8℃", got.Temper)
	}

	all, err := students.All()
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len(all) = %d, want 1", len(all))
	}

	if err := students.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := students.GetByID(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
	if err := students.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestStudentDuplicateName(t *testing.T) {
	students := NewStudentRepository(newDB(t))

	if _, err := students.Create(entity.Student{Name: "Ann", Temper: "37.0℃", StuNo: "1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := students.Create(entity.Student{Name: "Ann", Temper: "36.5℃", StuNo: "2"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate create = %v, want ErrDuplicate", err)
	}

	all, _ := students.All()
	if len(all) != 1 {
		t.Errorf("len(all) = %d after rejected insert, want 1", len(all))
	}
}

func TestStudentUpdateToExistingName(t *testing.T) {
	students := NewStudentRepository(newDB(t))

	students.Create(entity.Student{Name: "Ann", Temper: "37.0℃", StuNo: "1"})
	id, _ := students.Create(entity.Student{Name: "Bob", Temper: "37.0℃", StuNo: "2"})

	err := students.Update(entity.Student{ID: id, Name: "Ann", Temper: "37.0℃", StuNo: "2"})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("update to taken name = %v, want ErrDuplicate", err)
	}
}

func TestSearchByName(t *testing.T) {
	students := NewStudentRepository(newDB(t))

	for _, s := range []entity.Student{
		{Name: "Ann", Temper: "37.0℃", StuNo: "1"},
		{Name: "ann", Temper: "37.1℃", StuNo: "2"},
		{Name: "Bob", Temper: "37.2℃", StuNo: "3"},
	} {
		if _, err := students.Create(s); err != nil {
			t.Fatalf("create %s: %v", s.Name, err)
		}
	}

	// Case-sensitive substring.
	got, err := students.SearchByName("An")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ann" {
		t.Errorf("search An = %+v, want just Ann", got)
	}

	// Empty pattern means no filter.
	got, err = students.SearchByName("")
	if err != nil {
		t.Fatalf("search empty: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("empty search returned %d rows, want 3", len(got))
	}

	got, _ = students.SearchByName("zzz")
	if len(got) != 0 {
		t.Errorf("no-match search returned %d rows, want 0", len(got))
	}
}

func TestFirstByStuNo(t *testing.T) {
	students := NewStudentRepository(newDB(t))

	first, _ := students.Create(entity.Student{Name: "Ann", Temper: "37.0℃", StuNo: "2021141530001"})
	students.Create(entity.Student{Name: "Bob", Temper: "37.5℃", StuNo: "2021141530001"})

	got, err := students.FirstByStuNo("2021141530001")
	if err != nil {
		t.Fatalf("first by stu_no: %v", err)
	}
	if got.ID != first {
		t.Errorf("got id %d, want oldest row %d", got.ID, first)
	}

	if _, err := students.FirstByStuNo("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing stu_no = %v, want ErrNotFound", err)
	}
}

func TestStudentInfoCRUD(t *testing.T) {
	infos := NewStudentInfoRepository(newDB(t))

	info := entity.StudentInfo{StuNo: "2021141530006", StuClass: "106", Teacher: "TWY"}
	if err := infos.Create(info); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := infos.Create(info); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate create = %v, want ErrDuplicate", err)
	}

	got, err := infos.Get("2021141530006")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StuClass != "106" || got.Teacher != "TWY" {
		t.Errorf("unexpected info: %+v", got)
	}

	// Updating may rewrite the key itself.
	err = infos.Update("2021141530006", entity.StudentInfo{StuNo: "2021141530007", StuClass: "103", Teacher: "GX"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := infos.Get("2021141530006"); !errors.Is(err, ErrNotFound) {
		t.Errorf("old key still present: %v", err)
	}
	got, err = infos.Get("2021141530007")
	if err != nil {
		t.Fatalf("get new key: %v", err)
	}
	if got.StuClass != "103" {
		t.Errorf("stu_class = %q, want 103", got.StuClass)
	}

	if err := infos.Delete("2021141530007"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := infos.Delete("2021141530007"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestSearchByStuNo(t *testing.T) {
	infos := NewStudentInfoRepository(newDB(t))

	infos.Create(entity.StudentInfo{StuNo: "2021141530001", StuClass: "106", Teacher: "TWY"})
	infos.Create(entity.StudentInfo{StuNo: "2021141530005", StuClass: "103", Teacher: "GX"})
	infos.Create(entity.StudentInfo{StuNo: "9900000000001", StuClass: "101", Teacher: "LL"})

	got, err := infos.SearchByStuNo("202114153")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("search returned %d rows, want 2", len(got))
	}
}

func TestUserRepository(t *testing.T) {
	users := NewUserRepository(newDB(t))

	if _, err := users.Owner(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("owner of empty table = %v, want ErrNotFound", err)
	}

	if err := users.Upsert("admin", "hash-one"); err != nil {
		t.Fatalf("upsert create: %v", err)
	}
	u, err := users.GetByUsername("admin")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if u.PasswordHash != "hash-one" || u.Name != "Admin" {
		t.Errorf("unexpected user: %+v", u)
	}

	// Second upsert rewrites credentials, keeps the row.
	if err := users.Upsert("root", "hash-two"); err != nil {
		t.Fatalf("upsert update: %v", err)
	}
	owner, err := users.Owner()
	if err != nil {
		t.Fatalf("owner: %v", err)
	}
	if owner.ID != u.ID || owner.Username != "root" || owner.PasswordHash != "hash-two" {
		t.Errorf("unexpected owner after upsert: %+v", owner)
	}

	if err := users.UpdateName(owner.ID, "CC"); err != nil {
		t.Fatalf("update name: %v", err)
	}
	owner, _ = users.GetByID(owner.ID)
	if owner.Name != "CC" {
		t.Errorf("name = %q, want CC", owner.Name)
	}

	if err := users.UpdateName(999, "X"); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing user = %v, want ErrNotFound", err)
	}
}
