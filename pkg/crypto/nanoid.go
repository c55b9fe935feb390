package crypto

import (
	"crypto/rand"
	"math"
)

const (
	idAlphabet string = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	idSize     int    = 22 // 22 * 6 = 132 bits (uuid is 128 bits) of entropy
)

// idMask covers the 64-character alphabet exactly
const idMask = 63

// NewID returns a random URL-safe identifier with 132 bits of entropy,
// suitable for collision-resistant storage keys.
func NewID() (string, error) {
	alphabetLen := len(idAlphabet)
	step := int(math.Ceil(1.6 * float64(idMask*idSize) / float64(alphabetLen)))

	id := make([]byte, idSize)
	buffer := make([]byte, step)

	for position := 0; position < idSize; {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}

		// Map random bytes to alphabet characters
		for i := 0; i < step && position < idSize; i++ {
			index := buffer[i] & byte(idMask)
			if int(index) < alphabetLen {
				id[position] = idAlphabet[index]
				position++
			}
		}
	}

	return string(id), nil
}
