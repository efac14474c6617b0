package auth

import "golang.org/x/crypto/bcrypt"

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CompareDummy burns the same work as a real bcrypt compare. Used on login
// for unknown usernames to prevent timing-based user enumeration.
func CompareDummy(password string) {
	_, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
