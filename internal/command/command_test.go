package command

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/shui00cc/watchlist/internal/database"
	"github.com/shui00cc/watchlist/internal/repository"
)

func newDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAdminCreatesAndUpdates(t *testing.T) {
	db := newDB(t)

	if err := Admin(db, "admin", "secret"); err != nil {
		t.Fatalf("admin: %v", err)
	}

	users := repository.NewUserRepository(db)
	u, err := users.GetByUsername("admin")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if !u.ValidatePassword("secret") {
		t.Error("password was not hashed correctly")
	}

	// Running again resets the credentials on the same row.
	if err := Admin(db, "admin", "changed"); err != nil {
		t.Fatalf("second admin run: %v", err)
	}
	updated, err := users.GetByUsername("admin")
	if err != nil {
		t.Fatalf("get updated admin: %v", err)
	}
	if updated.ID != u.ID {
		t.Errorf("admin row id changed: %d -> %d", u.ID, updated.ID)
	}
	if updated.ValidatePassword("secret") || !updated.ValidatePassword("changed") {
		t.Error("password was not rotated")
	}
}

func TestAdminRequiresCredentials(t *testing.T) {
	if err := Admin(newDB(t), "", ""); err == nil {
		t.Error("empty credentials accepted")
	}
}

func TestForge(t *testing.T) {
	db := newDB(t)

	if err := Forge(db); err != nil {
		t.Fatalf("forge: %v", err)
	}

	owner, err := repository.NewUserRepository(db).Owner()
	if err != nil {
		t.Fatalf("owner: %v", err)
	}
	if owner.Name != "CC" {
		t.Errorf("owner name = %q, want CC", owner.Name)
	}

	students, err := repository.NewStudentRepository(db).All()
	if err != nil {
		t.Fatalf("students: %v", err)
	}
	if len(students) != 5 {
		t.Errorf("len(students) = %d, want 5", len(students))
	}

	infos, err := repository.NewStudentInfoRepository(db).All()
	if err != nil {
		t.Fatalf("infos: %v", err)
	}
	if len(infos) != 5 {
		t.Errorf("len(infos) = %d, want 5", len(infos))
	}
}
