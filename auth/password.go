// Package auth provides password hashing, session token issuance and the
// request-scoped identity carried through a GraphQL execution.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost the stored digests were created with.
const bcryptCost = 10

// HashPassword returns the bcrypt digest of the given plaintext.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
