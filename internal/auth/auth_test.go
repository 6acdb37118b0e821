package auth

import (
	"testing"
	"time"

	"github.com/campusforge/ideabank/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotContains(t, hash, "correct horse")

	ok, err := hasher.Verify("correct horse battery staple", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong password", hash)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Salts are random, so the same password never hashes the same way twice.
	again, err := hasher.Hash("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestPasswordVerifyRejectsGarbage(t *testing.T) {
	hasher := NewPasswordHasher()

	_, err := hasher.Verify("anything", "not-an-encoded-hash")
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test_secret", time.Hour)
	user := &model.User{
		ID:    uuid.New(),
		Name:  "Ada Student",
		Email: "ada@example.com",
		Role:  model.RoleStudent,
	}

	token, err := tm.Generate(user)
	assert.NoError(t, err)

	claims, err := tm.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.RoleStudent, claims.Role)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewTokenManager("one_secret", time.Hour).Generate(&model.User{ID: uuid.New()})
	assert.NoError(t, err)

	_, err = NewTokenManager("another_secret", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenExpiryEnforced(t *testing.T) {
	tm := NewTokenManager("test_secret", -time.Minute)
	token, err := tm.Generate(&model.User{ID: uuid.New()})
	assert.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}
