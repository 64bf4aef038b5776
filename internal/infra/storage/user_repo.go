package storage

import (
	"context"
	"database/sql"
)

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) CreateUser(ctx context.Context, username string) (User, error) {
	u := User{Username: username}
	err := r.db.QueryRowContext(ctx, `
INSERT INTO users (username) VALUES ($1) RETURNING id
`, username).Scan(&u.ID)
	return u, err
}

func (r *UserRepo) GetUser(ctx context.Context, id int) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
SELECT id, username FROM users WHERE id = $1
`, id).Scan(&u.ID, &u.Username)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}

// GetUserByUsername: el username es único por convención, no por constraint;
// nos quedamos con el primero que exista.
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
SELECT id, username FROM users WHERE username = $1 ORDER BY id ASC LIMIT 1
`, username).Scan(&u.ID, &u.Username)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}
