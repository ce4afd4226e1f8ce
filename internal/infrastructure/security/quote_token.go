package security

import (
	"crypto/rand"
	"math/big"

	"gestao_obras/internal/usecase/interfaces"
)

const (
	quoteTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	QuoteTokenLength   = 10
)

// QuoteTokenGenerator mints the short uppercase codes suppliers type into the portal.
// 36^10 (about 3.6e15) possible codes.
type QuoteTokenGenerator struct {
	length int
}

var _ interfaces.ITokenGenerator = (*QuoteTokenGenerator)(nil)

func NewQuoteTokenGenerator() *QuoteTokenGenerator {
	return &QuoteTokenGenerator{length: QuoteTokenLength}
}

func (g *QuoteTokenGenerator) NewQuoteToken() (string, error) {
	return GenerateRandomString(g.length, quoteTokenAlphabet)
}

// GenerateRandomString draws n characters uniformly from alphabet using crypto/rand.
func GenerateRandomString(n int, alphabet string) (string, error) {
	size := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}
