package id

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GeneratePartnerCode derives a human-readable referral code from a company
// name: the name uppercased, stripped to ASCII letters and digits, truncated
// to 6 characters, followed by a hyphen and a 4-character random alphanumeric
// suffix. The prefix may be empty for names with no ASCII alphanumerics; the
// suffix guarantees a non-empty code. Callers must retry on a
// unique-constraint violation since the suffix alone carries the randomness.
// Example: "Acme Corp!!" -> "ACMECO-x7Qp".
func GeneratePartnerCode(companyName string) string {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(companyName) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			prefix.WriteRune(r)
			if prefix.Len() == 6 {
				break
			}
		}
	}
	return prefix.String() + "-" + randomAlnum(4)
}

func randomAlnum(n int) string {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			panic(err)
		}
		out[i] = codeAlphabet[idx.Int64()]
	}
	return string(out)
}
