// Package users implements the user directory core: the account entity,
// login normalization, the repository interfaces, and the registry service
// that orchestrates registration, login, and bulk import.
package users

import (
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/credentials"
)

// User is a single directory account.
//
// Login is the canonical unique key: the lowercased email or the
// normalized '+'-prefixed phone digit string. Salt and PasswordHash are
// owned by the entity; the registry owns the collection and the
// uniqueness constraint. AccessCode, when non-empty, always equals the
// last code issued and is cleared or replaced only through the
// password-change flow.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Login        string
	Email        string
	Phone        string
	Salt         []byte
	PasswordHash string
	AccessCode   string
	Meta         map[string]string
	CreatedAt    time.Time

	// mu guards Salt, PasswordHash, and AccessCode. The in-memory
	// repository hands out the shared pointer, so password checks and
	// credential rotation may run concurrently.
	mu sync.RWMutex
}

// Registration is the tagged input of the user factory. Exactly one
// concrete variant is passed per call.
type Registration interface {
	registration()
}

// EmailRegistration creates an account keyed by email with a user-chosen
// password.
type EmailRegistration struct {
	FullName string
	Email    string
	Password string
}

// PhoneRegistration creates an account keyed by phone number. The initial
// password is a generated access code; the caller is responsible for
// delivering it to the holder.
type PhoneRegistration struct {
	FullName string
	RawPhone string
}

// ImportedCredentials creates an account from a bulk-import record
// carrying a pre-derived salt and digest. Salt and digest are stored
// verbatim, never re-derived.
type ImportedCredentials struct {
	FullName     string
	Email        string
	RawPhone     string
	Salt         []byte
	PasswordHash string
}

func (EmailRegistration) registration()   {}
func (PhoneRegistration) registration()   {}
func (ImportedCredentials) registration() {}

// NewUser validates and constructs a User from one registration variant.
func NewUser(reg Registration) (*User, error) {
	switch r := reg.(type) {
	case EmailRegistration:
		if strings.TrimSpace(r.Password) == "" {
			return nil, fmt.Errorf("%w: password must not be blank", common.ErrorValidation)
		}
		u, err := newUser(r.FullName, r.Email, "", map[string]string{"auth": "password"})
		if err != nil {
			return nil, err
		}
		salt := credentials.GenerateSalt()
		u.Salt = salt
		u.PasswordHash = credentials.Hash(r.Password, salt)
		return u, nil

	case PhoneRegistration:
		u, err := newUser(r.FullName, "", r.RawPhone, map[string]string{"auth": "sms"})
		if err != nil {
			return nil, err
		}
		code, err := credentials.GenerateAccessCode()
		if err != nil {
			return nil, err
		}
		salt := credentials.GenerateSalt()
		u.Salt = salt
		u.PasswordHash = credentials.Hash(code, salt)
		u.AccessCode = code
		return u, nil

	case ImportedCredentials:
		if len(r.Salt) == 0 || r.PasswordHash == "" {
			return nil, fmt.Errorf("%w: imported salt and password hash must not be empty", common.ErrorValidation)
		}
		u, err := newUser(r.FullName, r.Email, r.RawPhone, map[string]string{"src": "csv"})
		if err != nil {
			return nil, err
		}
		u.Salt = r.Salt
		u.PasswordHash = r.PasswordHash
		return u, nil

	default:
		return nil, fmt.Errorf("%w: unknown registration variant %T", common.ErrorValidation, reg)
	}
}

// newUser runs the field validation shared by every registration variant
// and derives the canonical login.
func newUser(fullName, email, rawPhone string, meta map[string]string) (*User, error) {
	first, last, err := SplitFullName(fullName)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(first) == "" {
		return nil, fmt.Errorf("%w: first name must not be blank", common.ErrorValidation)
	}

	email = strings.TrimSpace(email)
	hasEmail := email != ""
	hasPhone := strings.TrimSpace(rawPhone) != ""
	if hasEmail == hasPhone {
		return nil, fmt.Errorf("%w: exactly one of email or phone must be provided", common.ErrorValidation)
	}

	u := &User{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  last,
		Meta:      meta,
		CreatedAt: time.Now(),
	}

	if hasPhone {
		phone, err := NormalizePhone(rawPhone)
		if err != nil {
			return nil, err
		}
		u.Phone = phone
		u.Login = phone
	} else {
		u.Email = email
		u.Login = strings.ToLower(email)
	}

	return u, nil
}

// CheckPassword reports whether candidate matches the stored credential.
func (u *User) CheckPassword(candidate string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.checkPassword(candidate)
}

// checkPassword is the unlocked variant for callers already holding u.mu.
func (u *User) checkPassword(candidate string) bool {
	return credentials.Verify(candidate, u.Salt, u.PasswordHash)
}

// ChangePassword verifies oldPass and rehashes newPass under the existing
// salt. A user-chosen password clears any pending access code: the account
// graduates to password auth. When oldPass does not match, nothing is
// mutated and ErrorPasswordMismatch is returned.
func (u *User) ChangePassword(oldPass, newPass string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.checkPassword(oldPass) {
		return common.ErrorPasswordMismatch
	}
	u.PasswordHash = credentials.Hash(newPass, u.Salt)
	u.AccessCode = ""
	return nil
}

// RotateAccessCode issues a fresh access code and installs it as both the
// stored access code and the current password. It fails with
// ErrorNotFound when the account has no pending access code.
func (u *User) RotateAccessCode() (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.AccessCode == "" {
		return "", common.ErrorNotFound
	}
	code, err := credentials.GenerateAccessCode()
	if err != nil {
		return "", err
	}
	u.PasswordHash = credentials.Hash(code, u.Salt)
	u.AccessCode = code
	return code, nil
}

// FullName returns the display name with the first letter of each part
// capitalized. Already-capitalized input is left alone.
func (u *User) FullName() string {
	parts := u.nameParts()
	for i, p := range parts {
		parts[i] = capitalizeFirst(p)
	}
	return strings.Join(parts, " ")
}

// Initials returns the uppercase first letters of the name parts,
// space-separated.
func (u *User) Initials() string {
	parts := u.nameParts()
	for i, p := range parts {
		r := []rune(p)
		parts[i] = string(unicode.ToUpper(r[0]))
	}
	return strings.Join(parts, " ")
}

func (u *User) nameParts() []string {
	parts := []string{u.FirstName}
	if u.LastName != "" {
		parts = append(parts, u.LastName)
	}
	return parts
}

func capitalizeFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	if unicode.IsLower(r[0]) {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

// Info renders the human-readable account summary.
func (u *User) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "firstName: %s\n", u.FirstName)
	fmt.Fprintf(&b, "lastName: %s\n", u.LastName)
	fmt.Fprintf(&b, "login: %s\n", u.Login)
	fmt.Fprintf(&b, "fullName: %s\n", u.FullName())
	fmt.Fprintf(&b, "initials: %s\n", u.Initials())
	fmt.Fprintf(&b, "email: %s\n", u.Email)
	fmt.Fprintf(&b, "phone: %s\n", u.Phone)
	fmt.Fprintf(&b, "meta: %v", u.Meta)
	return b.String()
}
