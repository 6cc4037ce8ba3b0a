package password

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform random integers for sampling and shuffling.
// Implementations must return values in [0, n) for n > 0. The interface
// exists so tests can seed generation deterministically.
type Source interface {
	Intn(n int) int
}

// cryptoSource draws from crypto/rand. rand.Int is uniform over [0, n), so
// no rejection sampling is needed on top.
type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}

// CryptoSource returns the production Source backed by crypto/rand.
func CryptoSource() Source {
	return cryptoSource{}
}
