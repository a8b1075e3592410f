package nanoid

import (
	"crypto/rand"
	"math"
	"math/bits"
)

const (
	defaultSize     = 21
	defaultAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// New generates a url friendly unique token suitable for flow ids,
// session tokens and assertion keys.
func New() (string, error) {
	return Generate(defaultAlphabet, defaultSize)
}

// Generate builds a token of the given size from the given alphabet using
// crypto/rand.
func Generate(alphabet string, size int) (string, error) {
	chars := []rune(alphabet)
	mask := 2<<(31-bits.LeadingZeros32(uint32((len(chars)-1)|1))) - 1
	step := int(math.Ceil(1.6 * float64(mask*size) / float64(len(chars))))

	id := make([]rune, size)
	buf := make([]byte, step)
	for j := 0; ; {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for i := 0; i < step; i++ {
			idx := int(buf[i]) & mask
			if idx < len(chars) {
				id[j] = chars[idx]
				j++
				if j == size {
					return string(id), nil
				}
			}
		}
	}
}
