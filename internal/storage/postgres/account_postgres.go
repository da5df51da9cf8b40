package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karla-codes/rest-api/internal/app_errors"
	"github.com/karla-codes/rest-api/internal/models"
)

type AccountPostgres struct {
	db *pgxpool.Pool
}

func NewAccountPostgres(db *pgxpool.Pool) *AccountPostgres {
	return &AccountPostgres{db: db}
}

func (r *AccountPostgres) CreateAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (first_name, last_name, email_address, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, account.FirstName, account.LastName, account.EmailAddress, account.PasswordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if ok := errors.As(err, &pgErr); ok && pgErr.Code == "23505" {
			return nil, app_errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}
	account.ID = id

	return &account, nil
}

func (r *AccountPostgres) AccountByEmail(ctx context.Context, emailAddress string) (*models.Account, error) {
	query := `
		SELECT id, first_name, last_name, email_address, password
		FROM accounts
		WHERE email_address = $1
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, emailAddress))
}

// AccountByEmailFold matches the email address case-insensitively. The
// unique constraint is still case-sensitive, so this picks an arbitrary
// row if two addresses differ only in case.
func (r *AccountPostgres) AccountByEmailFold(ctx context.Context, emailAddress string) (*models.Account, error) {
	query := `
		SELECT id, first_name, last_name, email_address, password
		FROM accounts
		WHERE LOWER(email_address) = LOWER($1)
		LIMIT 1
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, emailAddress))
}

func (r *AccountPostgres) scanAccount(row pgx.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(&account.ID, &account.FirstName, &account.LastName, &account.EmailAddress, &account.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
