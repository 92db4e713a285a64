package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword_VerifyRoundTrip(t *testing.T) {
	p, err := PasswordFromClearText("secret1", bcrypt.MinCost)
	assert.NoError(t, err)

	assert.True(t, p.Verify("secret1"))
	assert.False(t, p.Verify("wrong"))
	assert.NotEqual(t, "secret1", p.Hash())
}

func TestPasswordFromHash(t *testing.T) {
	p, err := PasswordFromClearText("secret1", bcrypt.MinCost)
	assert.NoError(t, err)

	restored := PasswordFromHash(p.Hash())
	assert.True(t, restored.Verify("secret1"))
	assert.False(t, restored.Verify("secret2"))
}

func TestPassword_StringNeverExposesHash(t *testing.T) {
	p, err := PasswordFromClearText("secret1", bcrypt.MinCost)
	assert.NoError(t, err)

	assert.Equal(t, "********", p.String())
	assert.NotContains(t, p.String(), p.Hash())
}
