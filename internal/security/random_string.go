package security

import (
	"crypto/rand"
	"errors"
)

var (
	ErrBadLength   = errors.New("length must be non-negative")
	ErrBadAlphabet = errors.New("alphabet must have between 1 and 255 characters")
)

// RandomString draws length characters uniformly from alphabet using the
// crypto source. Bytes above the largest multiple of the alphabet size
// are rejected and redrawn, so no character is favored.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", ErrBadLength
	}
	if len(alphabet) == 0 || len(alphabet) > 255 {
		return "", ErrBadAlphabet
	}
	if length == 0 {
		return "", nil
	}

	// Zero means every byte value is usable without modulo bias.
	ceiling := byte(256 - 256%len(alphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, raw := range buf {
			if ceiling != 0 && raw >= ceiling {
				continue
			}
			out = append(out, alphabet[int(raw)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
