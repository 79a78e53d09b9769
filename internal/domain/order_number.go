package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber returns ASD-<last six digits of the unix millis><six
// random base-36 characters>.
func GenerateOrderNumber(now time.Time) (string, error) {
	millis := fmt.Sprintf("%06d", now.UnixMilli()%1_000_000)

	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate order number: %w", err)
		}
		suffix[i] = orderNumberAlphabet[n.Int64()]
	}

	return "ASD-" + millis + string(suffix), nil
}
