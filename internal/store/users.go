package store

import (
	"context"
	"fmt"
)

// User is one row of the users table.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Users returns every user in insertion order.
func (s *Store) Users(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email
		FROM users
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// InsertUser adds a user through a prepared statement with bound parameters
// and returns the new row id.
func (s *Store) InsertUser(ctx context.Context, name, email string) (int64, error) {
	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO users (name, email) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert user: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, name, email)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user: last insert id: %w", err)
	}
	return id, nil
}
