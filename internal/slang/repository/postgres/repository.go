package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/slangstash/slang-service/internal/errors"
	"github.com/slangstash/slang-service/internal/slang/domain"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresSlangRepository struct {
	db DB
}

func NewPostgresSlangRepository(db DB) *PostgresSlangRepository {
	return &PostgresSlangRepository{db: db}
}

func (r *PostgresSlangRepository) FindByTerm(ctx context.Context, term string) (*domain.SlangWithSubmitter, error) {
	query := `
		SELECT s.id, s.term, s.definition, s.context, s.origin, s.likes, s.user_id,
		       s.created_at, s.updated_at, u.username, u.role
		FROM slangs s
		JOIN users u ON u.id = s.user_id
		WHERE s.term = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, term)

	var s domain.SlangWithSubmitter
	err := row.Scan(&s.ID, &s.Term, &s.Definition, &s.Context, &s.Origin, &s.Likes,
		&s.UserID, &s.CreatedAt, &s.UpdatedAt, &s.SubmitterUsername, &s.SubmitterRole)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get slang by term: %w", err)
	}

	return &s, nil
}

func (r *PostgresSlangRepository) Exists(ctx context.Context, term string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM slangs WHERE term = $1)`, term).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slang existence: %w", err)
	}
	return exists, nil
}

func (r *PostgresSlangRepository) Create(ctx context.Context, slang *domain.Slang) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO slangs (id, term, definition, context, origin, likes, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, slang.ID, slang.Term, slang.Definition, slang.Context, slang.Origin,
		slang.Likes, slang.UserID, slang.CreatedAt, slang.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrTermAlreadyExists
		}
		return fmt.Errorf("failed to create slang: %w", err)
	}

	return nil
}
