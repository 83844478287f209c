// Package keygen produces random alphanumeric secrets for service account
// API keys.
package keygen

import "crypto/rand"

// alphabet is the character set keys are drawn from. 62 characters give a
// little under 6 bits of entropy per character.
var alphabet = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// NewKey returns a random string of the given length drawn uniformly from
// the alphabet. Random bytes above the largest multiple of the alphabet
// size are discarded to avoid modulo bias.
func NewKey(length int) string {
	if length <= 0 {
		return ""
	}

	// 255 rounded down to a multiple of len(alphabet), minus one.
	maxAccepted := byte(256/len(alphabet)*len(alphabet) - 1)

	out := make([]byte, 0, length)
	buf := make([]byte, length*2)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("keygen: reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if b > maxAccepted {
				continue
			}

			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				return string(out)
			}
		}
	}
}
