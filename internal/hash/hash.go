package hash

import "golang.org/x/crypto/bcrypt"

// Token returns a bcrypt hash of the shared trigger token, suitable for the
// TRIGGER_TOKEN_HASH config value.
func Token(token string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckToken reports whether the presented token matches the stored hash.
// An empty hash never matches.
func CheckToken(hashed, token string) bool {
	if hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(token)) == nil
}
