// Package command implements the maintenance commands of the binary:
// schema init, admin account setup and demo fixtures.
package command

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/shui00cc/watchlist/internal/database"
	"github.com/shui00cc/watchlist/internal/entity"
	"github.com/shui00cc/watchlist/internal/repository"
)

// InitDB applies the schema migrations, dropping existing tables first when
// drop is set.
func InitDB(db *sqlx.DB, drop bool) error {
	return database.Migrate(db, drop)
}

// Admin creates the admin account, or resets its username and password when
// one already exists.
func Admin(db *sqlx.DB, username, password string) error {
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}

	if err := database.Migrate(db, false); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return repository.NewUserRepository(db).Upsert(username, string(hash))
}

// Forge loads the demo fixture rows: the owner name and a small roster.
func Forge(db *sqlx.DB) error {
	if err := database.Migrate(db, false); err != nil {
		return err
	}

	users := repository.NewUserRepository(db)
	students := repository.NewStudentRepository(db)
	infos := repository.NewStudentInfoRepository(db)

	if _, err := users.Owner(); errors.Is(err, repository.ErrNotFound) {
		if _, err := users.Create(entity.User{Name: "CC"}); err != nil {
			return fmt.Errorf("create owner: %w", err)
		}
	} else if err != nil {
		return err
	}

	fixtures := []entity.Student{
		{Name: "曹小晨", Temper: "37.2℃", StuNo: "2021141530001"},
		{Name: "田小义", Temper: "37.3℃", StuNo: "2021141530002"},
		{Name: "银小旭", Temper: "37.4℃", StuNo: "2021141530003"},
		{Name: "陶小然", Temper: "37.5℃", StuNo: "2021141530004"},
		{Name: "陶大然", Temper: "37.8℃", StuNo: "2021141530005"},
	}
	for _, s := range fixtures {
		if _, err := students.Create(s); err != nil {
			return fmt.Errorf("create student %s: %w", s.Name, err)
		}
	}

	infoFixtures := []entity.StudentInfo{
		{StuNo: "2021141530001", StuClass: "106", Teacher: "TWY"},
		{StuNo: "2021141530002", StuClass: "106", Teacher: "TWY"},
		{StuNo: "2021141530003", StuClass: "106", Teacher: "TWY"},
		{StuNo: "2021141530004", StuClass: "106", Teacher: "TWY"},
		{StuNo: "2021141530005", StuClass: "103", Teacher: "GX"},
	}
	for _, info := range infoFixtures {
		if err := infos.Create(info); err != nil {
			return fmt.Errorf("create stu_info %s: %w", info.StuNo, err)
		}
	}

	return nil
}
