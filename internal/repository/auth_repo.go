package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"ac_learner/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ Operators = (*UserRepository)(nil)

const (
	insertOperatorSQL           = `INSERT INTO users (username, password_hash, configs) VALUES (?, ?, ?)`
	selectOperatorByUsernameSQL = `SELECT id, username, password_hash, configs FROM users WHERE username = ?`
)

// Create stores an operator together with its config scope and returns
// its ID.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	scope, err := encodeScope(u.Configs)
	if err != nil {
		return 0, fmt.Errorf("encode config scope of %q: %w", u.Username, err)
	}
	res, err := r.db.ExecContext(ctx, insertOperatorSQL, u.Username, u.PasswordHash, scope)
	if err != nil {
		return 0, fmt.Errorf("insert operator %q: %w", u.Username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id for operator %q: %w", u.Username, err)
	}
	return int(id), nil
}

// GetByUsername returns (nil, nil) when no such operator exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var (
		u     models.User
		scope string
	)
	err := r.db.QueryRowContext(ctx, selectOperatorByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &scope)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select operator %q: %w", username, err)
	}
	if u.Configs, err = decodeScope(scope); err != nil {
		return nil, fmt.Errorf("config scope of %q: %w", username, err)
	}
	return &u, nil
}

// The scope column holds a JSON array of config names; "[]" means all.
func encodeScope(configs []string) (string, error) {
	if len(configs) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(configs)
	return string(b), err
}

func decodeScope(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var configs []string
	if err := json.Unmarshal([]byte(s), &configs); err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, nil
	}
	return configs, nil
}
