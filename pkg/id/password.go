package id

import (
	"crypto/rand"
	"math/big"
)

const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TempPasswordLength is the length of provisioned one-time secrets.
const TempPasswordLength = 16

// GenerateTempPassword creates a random alphanumeric secret for first-time
// partner logins. Minimum length is 12; shorter requests are bumped up.
func GenerateTempPassword(length int) (string, error) {
	if length < 12 {
		length = 12
	}
	out := make([]byte, length)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[idx.Int64()]
	}
	return string(out), nil
}
