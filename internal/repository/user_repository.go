package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/shui00cc/watchlist/internal/entity"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id int) (entity.User, error) {
	var u entity.User
	err := r.db.Get(&u, `
		SELECT id, name, username, password_hash FROM user WHERE id = ?
	`, id)
	return u, translate(err)
}

func (r *UserRepository) GetByUsername(username string) (entity.User, error) {
	var u entity.User
	err := r.db.Get(&u, `
		SELECT id, name, username, password_hash FROM user WHERE username = ?
	`, username)
	return u, translate(err)
}

// Owner returns the account shown on every page. With a single admin row
// this is simply that row.
func (r *UserRepository) Owner() (entity.User, error) {
	var u entity.User
	err := r.db.Get(&u, `
		SELECT id, name, username, password_hash FROM user ORDER BY id LIMIT 1
	`)
	return u, translate(err)
}

func (r *UserRepository) Create(u entity.User) (int, error) {
	res, err := r.db.Exec(`
		INSERT INTO user (name, username, password_hash) VALUES (?, ?, ?)
	`, u.Name, u.Username, u.PasswordHash)
	if err != nil {
		return 0, translate(err)
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (r *UserRepository) UpdateName(id int, name string) error {
	res, err := r.db.Exec(`UPDATE user SET name = ? WHERE id = ?`, name, id)
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

// Upsert creates the admin account, or rewrites its username and password
// hash when one already exists. Used by the admin command only.
func (r *UserRepository) Upsert(username, passwordHash string) error {
	owner, err := r.Owner()
	if err == ErrNotFound {
		u := entity.User{Name: "Admin", Username: username, PasswordHash: passwordHash}
		_, err = r.Create(u)
		return err
	}
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		UPDATE user SET username = ?, password_hash = ? WHERE id = ?
	`, username, passwordHash, owner.ID)
	return translate(err)
}
