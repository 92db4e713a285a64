package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Password wraps a bcrypt hash. The clear text is hashed on construction
// and never retained.
type Password struct {
	hash string
}

// PasswordFromClearText hashes the given clear text with the given bcrypt
// cost factor.
func PasswordFromClearText(clearText string, cost int) (Password, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(clearText), cost)
	if err != nil {
		return Password{}, err
	}
	return Password{hash: string(hashed)}, nil
}

// PasswordFromHash wraps an already-hashed password loaded from storage.
func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

// Verify checks a candidate clear text against the stored hash.
func (p Password) Verify(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(candidate)) == nil
}

// Hash returns the stored hash for persistence.
func (p Password) Hash() string {
	return p.hash
}

// String masks the hash so a Password can never leak through logging.
func (p Password) String() string {
	return "********"
}
