package account

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/karla-codes/rest-api/internal/app_errors"
	"github.com/karla-codes/rest-api/internal/models"
	"github.com/karla-codes/rest-api/pkg/logger"
)

type Repo interface {
	CreateAccount(ctx context.Context, account models.Account) (*models.Account, error)
	AccountByEmail(ctx context.Context, emailAddress string) (*models.Account, error)
	AccountByEmailFold(ctx context.Context, emailAddress string) (*models.Account, error)
}

type Options struct {
	// BcryptCost for new password hashes; zero means bcrypt.DefaultCost.
	BcryptCost int
	// CaseInsensitiveEmail folds case when resolving the email address
	// during verification. Exact match is the default.
	CaseInsensitiveEmail bool
}

type Service struct {
	log  logger.Log
	repo Repo
	opts Options
}

func NewService(l logger.Log, repo Repo, opts Options) *Service {
	return &Service{
		log:  l,
		repo: repo,
		opts: opts,
	}
}

// Register hashes the plaintext password and persists the account.
func (s *Service) Register(ctx context.Context, account models.Account, password string) (*models.Account, error) {
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = hash

	created, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Verify resolves the account for the claimed email address and checks the
// plaintext password against the stored hash. It has no side effects and
// is safe to call once per request.
func (s *Service) Verify(ctx context.Context, emailAddress, password string) (*models.Account, error) {
	var (
		account *models.Account
		err     error
	)
	if s.opts.CaseInsensitiveEmail {
		account, err = s.repo.AccountByEmailFold(ctx, emailAddress)
	} else {
		account, err = s.repo.AccountByEmail(ctx, emailAddress)
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, app_errors.ErrCredentialMismatch
		}
		return nil, err
	}

	return account, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	cost := s.opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}
