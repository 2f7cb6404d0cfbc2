package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the fixed work factor for password hashes. Hashes embed the
// cost and salt, so it can be raised later without re-hashing old rows.
const BcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash. A malformed hash
// is a mismatch, never an error.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
