package leadpipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature_RoundTrip(t *testing.T) {
	body := []byte(`{"name":"Jane","email":"jane@x.com"}`)
	secret := "whsec_test"

	sig := Sign(body, secret)
	assert.True(t, VerifySignature(body, sig, secret))
}

func TestVerifySignature_SingleByteMutations(t *testing.T) {
	body := []byte(`{"name":"Jane"}`)
	secret := "whsec_test"
	sig := Sign(body, secret)

	t.Run("mutated body", func(t *testing.T) {
		mutated := append([]byte(nil), body...)
		mutated[0] ^= 0x01
		assert.False(t, VerifySignature(mutated, sig, secret))
	})

	t.Run("mutated secret", func(t *testing.T) {
		assert.False(t, VerifySignature(body, sig, "whsec_tesu"))
	})

	t.Run("mutated signature", func(t *testing.T) {
		mutated := []byte(sig)
		if mutated[0] == 'a' {
			mutated[0] = 'b'
		} else {
			mutated[0] = 'a'
		}
		assert.False(t, VerifySignature(body, string(mutated), secret))
	})
}

func TestVerifySignature_MalformedHeaderNeverPanics(t *testing.T) {
	body := []byte("payload")
	secret := "s"

	// Shorter, longer, and non-hex headers must all fail cleanly.
	for _, header := range []string{"", "ab", "zzzz", "deadbeef", Sign(body, secret) + "00"} {
		assert.False(t, VerifySignature(body, header, secret), "header %q", header)
	}
}

func TestVerifySignature_MissingSecretOrHeader(t *testing.T) {
	body := []byte("payload")

	assert.False(t, VerifySignature(body, Sign(body, "s"), ""))
	assert.False(t, VerifySignature(body, "", "s"))
	assert.False(t, VerifySignature(body, "", ""))
}

func TestVerifySignature_EmptyBody(t *testing.T) {
	secret := "s"
	assert.True(t, VerifySignature(nil, Sign(nil, secret), secret))
}
