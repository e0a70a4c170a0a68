package crypto

import (
	"crypto/rand"
	"math"
)

const (
	// URL-safe alphabet; 22 chars * 6 bits = 132 bits of entropy,
	// a shade over a uuid.
	defaultAlphabet string = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	defaultSize     int    = 22
	maxMask         int    = 255
)

// IDGenerator produces compact random identifiers for accounts and
// sessions.
type IDGenerator struct {
	alphabet string
	mask     int
}

func getMask(alphabetLen int) int {
	for i := 1; i <= 8; i++ {
		mask := (2 << uint(i)) - 1
		if mask > alphabetLen-1 {
			return mask
		}
	}
	return maxMask // Max mask for 8 bits
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		alphabet: defaultAlphabet,
		mask:     getMask(len(defaultAlphabet)),
	}
}

// Generate returns a random ID of the default size, or of the given
// length when one is provided.
func (g *IDGenerator) Generate(length ...int) (string, error) {
	size := defaultSize
	if len(length) > 0 && length[0] > 0 {
		size = length[0]
	}

	alphabetLen := len(g.alphabet)
	step := int(math.Ceil(1.6 * float64(g.mask*size) / float64(alphabetLen)))

	id := make([]byte, size)
	buffer := make([]byte, step)

	for position := 0; position < size; {
		// Generate random bytes
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}

		// Map random bytes to alphabet characters
		for i := 0; i < step && position < size; i++ {
			// Apply mask to get candidate index
			index := buffer[i] & byte(g.mask)

			// Use index if it's valid for our alphabet
			if int(index) < alphabetLen {
				id[position] = g.alphabet[index]
				position++
			}
		}
	}

	return string(id), nil
}
