package users

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/notify"
)

// Registry owns the login→user directory and orchestrates registration,
// login, bulk import, and the access-code lifecycle. It is constructed
// once during application wiring and passed by reference; there is no
// package-level state.
type Registry struct {
	repo     Repository
	notifier notify.Notifier
	logger   logging.Logger
}

func NewRegistry(repo Repository, notifier notify.Notifier, logger logging.Logger) *Registry {
	return &Registry{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "registry"),
	}
}

// RegisterUser creates an email-keyed account with a user-chosen password.
// The full name carries at most a first and a last name. Fails with
// common.ErrorLoginAlreadyExists when the lowercased email is taken.
func (s *Registry) RegisterUser(ctx context.Context, fullName, email, password string) (*User, error) {
	u, err := NewUser(EmailRegistration{FullName: fullName, Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	u, err = s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "registered user", "login", u.Login, "auth", u.Meta["auth"])
	return u, nil
}

// RegisterUserByPhone creates a phone-keyed account. The initial password
// is a generated access code, handed to the notifier for delivery.
func (s *Registry) RegisterUserByPhone(ctx context.Context, fullName, rawPhone string) (*User, error) {
	// Normalize up front so a malformed number fails before any account
	// state is touched.
	if _, err := NormalizePhone(rawPhone); err != nil {
		return nil, err
	}

	u, err := NewUser(PhoneRegistration{FullName: fullName, RawPhone: rawPhone})
	if err != nil {
		return nil, err
	}

	u, err = s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	s.notifyAccessCode(ctx, u.Phone, u.AccessCode)
	s.logger.Info(ctx, "registered user", "login", u.Login, "auth", u.Meta["auth"])
	return u, nil
}

// LoginUser returns the account summary for a matching login/password
// pair. Unknown logins and wrong passwords are indistinguishable: both
// return ok=false without an error, so callers cannot probe which logins
// exist.
func (s *Registry) LoginUser(ctx context.Context, login, password string) (string, bool, error) {
	normalized, err := NormalizeLogin(login)
	if err != nil {
		return "", false, err
	}

	u, err := s.repo.GetByLogin(ctx, normalized)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	if !u.CheckPassword(password) {
		return "", false, nil
	}

	return u.Info(), true, nil
}

// ChangePassword verifies oldPass and installs newPass for the account
// under the given login. Fails with common.ErrorNotFound for an unknown
// login and common.ErrorPasswordMismatch when oldPass does not match.
func (s *Registry) ChangePassword(ctx context.Context, login, oldPass, newPass string) error {
	normalized, err := NormalizeLogin(login)
	if err != nil {
		return err
	}

	u, err := s.repo.GetByLogin(ctx, normalized)
	if err != nil {
		return err
	}

	if err := u.ChangePassword(oldPass, newPass); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Info(ctx, "password changed", "login", u.Login)
	return nil
}

// RequestAccessCode rotates the access code of a phone-registered account
// and hands the fresh code to the notifier. Accounts that are unknown or
// have no pending access code are left alone without an error, mirroring
// the login flow's refusal to leak which logins exist.
func (s *Registry) RequestAccessCode(ctx context.Context, login string) error {
	normalized, err := NormalizeLogin(login)
	if err != nil {
		return err
	}

	u, err := s.repo.GetByLogin(ctx, normalized)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return err
	}

	code, err := u.RotateAccessCode()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	s.notifyAccessCode(ctx, u.Phone, code)
	s.logger.Info(ctx, "access code rotated", "login", u.Login)
	return nil
}

// ImportUsers reads semicolon-delimited records from r, one per line:
//
//	fullName;email-or-empty;salt:hash;phone-or-empty
//
// Each valid row is created through the imported-credentials path.
// Uniqueness is enforced against the full registry: a row whose login is
// already taken is reported and skipped, never silently overwritten.
// Successfully imported users are returned together with the combined
// per-row errors.
func (s *Registry) ImportUsers(ctx context.Context, r io.Reader) ([]*User, error) {
	scanner := bufio.NewScanner(r)

	var imported []*User
	var errs error
	line := 0
	failed := 0

	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}

		u, err := parseImportRow(row)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("row %d: %w", line, err))
			failed++
			continue
		}

		u, err = s.repo.Create(ctx, u)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("row %d: %w", line, err))
			failed++
			continue
		}

		imported = append(imported, u)
	}

	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("error reading import data: %w", err))
	}

	s.logger.Info(ctx, "import finished", "imported", len(imported), "failed", failed)
	return imported, errs
}

// List returns every account ordered by login.
func (s *Registry) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Clear empties the directory. Test and admin reset only.
func (s *Registry) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// notifyAccessCode hands the code off for delivery. Delivery failure does
// not fail the surrounding operation; the reference behavior is to log.
func (s *Registry) notifyAccessCode(ctx context.Context, phone, code string) {
	if err := s.notifier.Notify(ctx, phone, code); err != nil {
		s.logger.Warn(ctx, "access code delivery failed", "phone", phone, "error", err.Error())
	}
}

func parseImportRow(row string) (*User, error) {
	fields := strings.Split(row, ";")
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected 4 semicolon-delimited fields, got %d", common.ErrorValidation, len(fields))
	}

	salt, hash, ok := strings.Cut(strings.TrimSpace(fields[2]), ":")
	if !ok {
		return nil, fmt.Errorf("%w: credentials field must be salt:hash", common.ErrorValidation)
	}

	return NewUser(ImportedCredentials{
		FullName:     strings.TrimSpace(fields[0]),
		Email:        strings.TrimSpace(fields[1]),
		RawPhone:     strings.TrimSpace(fields[3]),
		Salt:         []byte(salt),
		PasswordHash: hash,
	})
}
