package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/userdir/internal/common"
)

const pgUniqueViolation = "23505"

// PostgresRepository persists the directory in PostgreSQL. Uniqueness is
// delegated to the UNIQUE constraint on the login column, so concurrent
// registration races resolve inside the database.
type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// translateCreateError maps a unique-constraint violation on the login
// column to the sentinel duplicate-login error; anything else is wrapped
// as an sql failure.
func translateCreateError(err error, login string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", common.ErrorLoginAlreadyExists, login)
	}
	return fmt.Errorf("error performing sql request: %w", err)
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	meta, err := json.Marshal(user.Meta)
	if err != nil {
		return nil, fmt.Errorf("error encoding meta: %w", err)
	}

	query :=
		`INSERT INTO users (id, first_name, last_name, login, email, phone, salt, password_hash, access_code, meta, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 `

	_, err = r.db.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Login, user.Email, user.Phone,
		user.Salt, user.PasswordHash, user.AccessCode, meta, user.CreatedAt)

	if err != nil {
		return nil, translateCreateError(err, user.Login)
	}

	return user, nil
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*User, error) {
	query :=
		`SELECT id, first_name, last_name, login, email, phone, salt, password_hash, access_code, meta, created_at
		 FROM users
		 WHERE login = $1
		 `

	user := &User{}
	var meta []byte
	err := r.db.QueryRowContext(ctx, query, login).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Login, &user.Email, &user.Phone,
		&user.Salt, &user.PasswordHash, &user.AccessCode, &meta, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if err := json.Unmarshal(meta, &user.Meta); err != nil {
		return nil, fmt.Errorf("error decoding meta: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *User) error {
	query :=
		`UPDATE users
		 SET password_hash = $2, access_code = $3
		 WHERE login = $1
		 `

	res, err := r.db.ExecContext(ctx, query, user.Login, user.PasswordHash, user.AccessCode)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*User, error) {
	query :=
		`SELECT id, first_name, last_name, login, email, phone, salt, password_hash, access_code, meta, created_at
		 FROM users
		 ORDER BY login
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var out []*User
	for rows.Next() {
		user := &User{}
		var meta []byte
		err := rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.Login, &user.Email, &user.Phone,
			&user.Salt, &user.PasswordHash, &user.AccessCode, &meta, &user.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if err := json.Unmarshal(meta, &user.Meta); err != nil {
			return nil, fmt.Errorf("error decoding meta: %w", err)
		}
		out = append(out, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `TRUNCATE TABLE users`)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}
