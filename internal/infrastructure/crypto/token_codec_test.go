package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/home4paws/home4paws/internal/domain/models"
	"github.com/home4paws/home4paws/pkg/errors"
	"github.com/home4paws/home4paws/pkg/logger"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestIssueVerify_RoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour, logger.NewNoopLogger())

	token, err := codec.Issue("demo", []models.Role{models.RoleUser})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "demo", claims.Subject)
	assert.Equal(t, []models.Role{models.RoleUser}, claims.Roles)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestVerify_Expired(t *testing.T) {
	// Issue at a fixed instant, verify two hours later: a one-hour token
	// must report expiry.
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	now := func() time.Time { return clock }

	codec := NewTokenCodecWithClock(testSecret, time.Hour, now, logger.NewNoopLogger())

	token, err := codec.Issue("demo", []models.Role{models.RoleUser})
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "demo", claims.Subject)

	clock = issuedAt.Add(2 * time.Hour)
	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, errors.ErrTokenExpired)
}

func TestVerify_CorruptedSignature(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour, logger.NewNoopLogger())

	token, err := codec.Issue("demo", []models.Role{models.RoleUser})
	require.NoError(t, err)

	// Flip a byte in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, errors.ErrTokenSignatureInvalid)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec(testSecret, time.Hour, logger.NewNoopLogger())
	verifier := NewTokenCodec("a-different-secret", time.Hour, logger.NewNoopLogger())

	token, err := issuer.Issue("demo", []models.Role{models.RoleUser})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, errors.ErrTokenSignatureInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour, logger.NewNoopLogger())

	for _, bad := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := codec.Verify(bad)
		assert.ErrorIs(t, err, errors.ErrTokenMalformed, "input %q", bad)
	}
}

func TestVerify_UnknownRolesDropped(t *testing.T) {
	codec := NewTokenCodec(testSecret, time.Hour, logger.NewNoopLogger())

	token, err := codec.Issue("demo", []models.Role{models.RoleUser, models.Role("ROLE_BOGUS")})
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, []models.Role{models.RoleUser}, claims.Roles)
}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("Demo123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Demo123!", hash)

	assert.True(t, hasher.Verify("Demo123!", hash))
	assert.False(t, hasher.Verify("wrong-password", hash))
}
