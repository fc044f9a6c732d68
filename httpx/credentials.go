package httpx

import "golang.org/x/crypto/bcrypt"

// The form access secret is stored as a bcrypt hash, never in the clear.
// bcrypt's comparison is constant-time by construction.

func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifySecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
