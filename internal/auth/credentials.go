package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor applied to every stored password.
const hashCost = 10

// HashPassword turns a plaintext password into a salted bcrypt digest.
// Callers invoke it explicitly before handing a record to the repository;
// nothing hashes implicitly on write.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext attempt matches the stored
// digest, using bcrypt's own constant-time comparison.
func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
