package password_test

import (
	"hotelier/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "registration minimum", password: "secret"},
		{name: "bcrypt maximum", password: strings.Repeat("a", 72)},
		{name: "unicode", password: "kamar-tidur-🛏"},
		{name: "empty", password: "", wantErr: password.ErrEmptyPassword},
		{name: "over 72 bytes", password: strings.Repeat("a", 73), wantErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"), "unexpected hash format %q", hash)
			assert.NotContains(t, hash, tt.password)
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("secret1")
	require.NoError(t, err)

	second, err := password.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "secret1", hash: hash},
		{name: "wrong password", password: "secret2", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "case differs", password: "SECRET1", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "no stored hash", password: "secret1", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "corrupt hash", password: "secret1", hash: hash[:10], wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDummyVerify(t *testing.T) {
	for _, pwd := range []string{"", "secret1", strings.Repeat("a", 100)} {
		assert.ErrorIs(t, password.DummyVerify(pwd), password.ErrInvalidPassword)
	}
}
