// Package random provides crypto-strength uniform randomness for reward
// rolls. Draw outcomes carry real coin value, so predictable sources are
// off the table.
package random

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

// Source yields a uniform int in [min, max]. Injectable so services can
// pin outcomes in tests.
type Source func(min, max int) (int, error)

// Int returns a uniform random integer in [min, max] using crypto/rand.
func Int(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}
