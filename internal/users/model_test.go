package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/credentials"
)

func TestNewUser_EmailRegistration(t *testing.T) {
	u, err := NewUser(EmailRegistration{
		FullName: "Ivan Ivanov",
		Email:    "IVAN@test.com",
		Password: "pass123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ivan", u.FirstName)
	assert.Equal(t, "Ivanov", u.LastName)
	assert.Equal(t, "ivan@test.com", u.Login)
	assert.Equal(t, "IVAN@test.com", u.Email)
	assert.Empty(t, u.Phone)
	assert.Empty(t, u.AccessCode)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, u.Salt)
	assert.NotEmpty(t, u.PasswordHash)
	assert.Equal(t, map[string]string{"auth": "password"}, u.Meta)

	assert.True(t, u.CheckPassword("pass123"))
	assert.False(t, u.CheckPassword("pass1234"))
}

func TestNewUser_PhoneRegistration(t *testing.T) {
	u, err := NewUser(PhoneRegistration{
		FullName: "Ivan Ivanov",
		RawPhone: "+7 (999) 765-43-21",
	})
	require.NoError(t, err)

	assert.Equal(t, "+79997654321", u.Login)
	assert.Equal(t, "+79997654321", u.Phone)
	assert.Empty(t, u.Email)
	assert.Len(t, u.AccessCode, 6)
	assert.Equal(t, map[string]string{"auth": "sms"}, u.Meta)

	// the access code is the initial password
	assert.True(t, u.CheckPassword(u.AccessCode))
}

func TestNewUser_ImportedCredentials(t *testing.T) {
	salt := []byte("somesalt")
	digest := credentials.Hash("imported-pass", salt)

	u, err := NewUser(ImportedCredentials{
		FullName:     "Evgenii Onegin",
		Email:        "onegin@test.com",
		Salt:         salt,
		PasswordHash: digest,
	})
	require.NoError(t, err)

	// salt and hash are taken verbatim, not re-derived
	assert.Equal(t, salt, u.Salt)
	assert.Equal(t, digest, u.PasswordHash)
	assert.Equal(t, map[string]string{"src": "csv"}, u.Meta)
	assert.True(t, u.CheckPassword("imported-pass"))
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		reg     Registration
		wantErr error
	}{
		{
			name:    "three name tokens",
			reg:     EmailRegistration{FullName: "a b c", Email: "abc@test.com", Password: "p"},
			wantErr: common.ErrorInvalidFullName,
		},
		{
			name:    "blank full name",
			reg:     EmailRegistration{FullName: "   ", Email: "abc@test.com", Password: "p"},
			wantErr: common.ErrorInvalidFullName,
		},
		{
			name:    "blank password",
			reg:     EmailRegistration{FullName: "Ivan Ivanov", Email: "abc@test.com", Password: " "},
			wantErr: common.ErrorValidation,
		},
		{
			name:    "blank email",
			reg:     EmailRegistration{FullName: "Ivan Ivanov", Email: "", Password: "p"},
			wantErr: common.ErrorValidation,
		},
		{
			name:    "invalid phone",
			reg:     PhoneRegistration{FullName: "Ivan Ivanov", RawPhone: "12345"},
			wantErr: common.ErrorInvalidPhoneFormat,
		},
		{
			name: "imported row with both contacts",
			reg: ImportedCredentials{
				FullName: "Ivan Ivanov", Email: "a@b.c", RawPhone: "+79997654321",
				Salt: []byte("s"), PasswordHash: "h",
			},
			wantErr: common.ErrorValidation,
		},
		{
			name: "imported row without credentials",
			reg: ImportedCredentials{
				FullName: "Ivan Ivanov", Email: "a@b.c",
			},
			wantErr: common.ErrorValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.reg)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := NewUser(EmailRegistration{FullName: "Ivan Ivanov", Email: "ivan@test.com", Password: "old"})
	require.NoError(t, err)
	oldHash := u.PasswordHash
	oldSalt := u.Salt

	err = u.ChangePassword("wrong", "new")
	assert.ErrorIs(t, err, common.ErrorPasswordMismatch)
	assert.Equal(t, oldHash, u.PasswordHash, "failed change must not mutate the hash")

	require.NoError(t, u.ChangePassword("old", "new"))
	assert.True(t, u.CheckPassword("new"))
	assert.False(t, u.CheckPassword("old"))
	assert.Equal(t, oldSalt, u.Salt, "salt is reused across password changes")
}

func TestUser_ChangePassword_ClearsAccessCode(t *testing.T) {
	u, err := NewUser(PhoneRegistration{FullName: "Ivan Ivanov", RawPhone: "+79997654321"})
	require.NoError(t, err)
	code := u.AccessCode

	require.NoError(t, u.ChangePassword(code, "chosen-password"))
	assert.Empty(t, u.AccessCode, "account graduates to password auth")
	assert.True(t, u.CheckPassword("chosen-password"))
}

func TestUser_RotateAccessCode(t *testing.T) {
	u, err := NewUser(PhoneRegistration{FullName: "Ivan Ivanov", RawPhone: "+79997654321"})
	require.NoError(t, err)
	first := u.AccessCode

	code, err := u.RotateAccessCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Equal(t, code, u.AccessCode)
	assert.True(t, u.CheckPassword(code))
	if first != code {
		assert.False(t, u.CheckPassword(first))
	}
}

func TestUser_RotateAccessCode_NoPendingCode(t *testing.T) {
	u, err := NewUser(EmailRegistration{FullName: "Ivan Ivanov", Email: "ivan@test.com", Password: "p"})
	require.NoError(t, err)

	_, err = u.RotateAccessCode()
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUser_FullNameAndInitials(t *testing.T) {
	tests := []struct {
		name         string
		fullName     string
		wantFullName string
		wantInitials string
	}{
		{"lowercase pair", "ivan petrov", "Ivan Petrov", "I P"},
		{"already capitalized", "Ivan Petrov", "Ivan Petrov", "I P"},
		{"single token", "madonna", "Madonna", "M"},
		{"mixed case kept", "McDonald", "McDonald", "M"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := NewUser(EmailRegistration{FullName: tc.fullName, Email: "x@test.com", Password: "p"})
			require.NoError(t, err)
			assert.Equal(t, tc.wantFullName, u.FullName())
			assert.Equal(t, tc.wantInitials, u.Initials())
		})
	}
}

func TestUser_Info(t *testing.T) {
	u, err := NewUser(EmailRegistration{FullName: "ivan petrov", Email: "Ivan@test.com", Password: "p"})
	require.NoError(t, err)

	info := u.Info()
	assert.Contains(t, info, "firstName: ivan")
	assert.Contains(t, info, "login: ivan@test.com")
	assert.Contains(t, info, "fullName: Ivan Petrov")
	assert.Contains(t, info, "initials: I P")
	assert.Contains(t, info, "auth:password")
}
