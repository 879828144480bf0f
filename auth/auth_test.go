package auth

import (
	"strings"
	"testing"
	"time"

	"tauthy/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "sawasdee-krub-2024"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))
	req.False(NeedsRehash(hash))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("wrong-password-1", hash)
	req.NoError(err)
	req.False(match)

	other, err := HashPassword(password)
	req.NoError(err)
	req.NotEqual(hash, other, "salt must differ")
}

func TestComparePassword_LegacyBcrypt(t *testing.T) {
	req := require.New(t)
	legacy, err := bcrypt.GenerateFromPassword([]byte("old-password-1"), bcrypt.MinCost)
	req.NoError(err)
	req.True(NeedsRehash(string(legacy)))

	match, err := ComparePassword("old-password-1", string(legacy))
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("not-it-2", string(legacy))
	req.NoError(err)
	req.False(match)
}

func TestComparePassword_Malformed(t *testing.T) {
	for _, hash := range []string{"", "plain", "$argon2id$v=19$m=1$x", "$scrypt$a$b$c$d"} {
		_, err := ComparePassword("anything1", hash)
		require.Error(t, err, hash)
	}
}

func TestRegistrationValidation(t *testing.T) {
	valid := RegisterRequest{FirstName: "Somchai", LastName: "Jaidee", Username: "somchai99", Password: "password1"}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr bool
	}{
		{"valid without email", func(r *RegisterRequest) {}, false},
		{"valid with email", func(r *RegisterRequest) { r.Email = "s@example.com" }, false},
		{"invalid email", func(r *RegisterRequest) { r.Email = "notanemail" }, true},
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "  " }, true},
		{"username too short", func(r *RegisterRequest) { r.Username = "ab" }, true},
		{"username with symbols", func(r *RegisterRequest) { r.Username = "som chai!" }, true},
		{"password too short", func(r *RegisterRequest) { r.Password = "abc1" }, true},
		{"password without digit", func(r *RegisterRequest) { r.Password = "onlyletters" }, true},
		{"password without letter", func(r *RegisterRequest) { r.Password = "1234567890" }, true},
		{"password too long", func(r *RegisterRequest) { r.Password = strings.Repeat("a1", 37) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := ValidateRegister(r)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidRegistration)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	req := require.New(t)
	issuer, err := NewTokenIssuer(testSecret, time.Hour)
	req.NoError(err)

	token, err := issuer.Issue("user-1", "somchai")
	req.NoError(err)

	claims, err := issuer.Validate(token)
	req.NoError(err)
	req.Equal("user-1", claims.UserID)
	req.Equal("somchai", claims.Username)
	req.Equal("tauthy", claims.Issuer)
}

func TestTokenIssuer_RejectsBadTokens(t *testing.T) {
	req := require.New(t)
	issuer, err := NewTokenIssuer(testSecret, time.Hour)
	req.NoError(err)

	other, err := NewTokenIssuer(strings.Repeat("z", 40), time.Hour)
	req.NoError(err)
	foreign, err := other.Issue("user-1", "somchai")
	req.NoError(err)
	_, err = issuer.Validate(foreign)
	req.Error(err)

	expired, err := NewTokenIssuer(testSecret, time.Minute)
	req.NoError(err)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	stale, err := expired.Issue("user-1", "somchai")
	req.NoError(err)
	_, err = issuer.Validate(stale)
	req.ErrorIs(err, jwt.ErrTokenExpired)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	req.NoError(err)
	_, err = issuer.Validate(unsigned)
	req.Error(err)

	_, err = issuer.Validate("garbage")
	req.Error(err)
}

func TestNewTokenIssuer_Validation(t *testing.T) {
	_, err := NewTokenIssuer("short", time.Hour)
	require.Error(t, err)
	_, err = NewTokenIssuer(testSecret, 0)
	require.Error(t, err)
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("a-long-password-for-benchmarks-123")
	}
}
