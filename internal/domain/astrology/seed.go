package astrology

import (
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// SeedModulus bounds every seed to [0, SeedModulus).
const SeedModulus = 100_000_000

var seedModulus = big.NewInt(SeedModulus)

// Seed derives a reproducible pseudo-random number from a name and birth
// date. The name is compared case-insensitively.
func Seed(name string, date time.Time) uint64 {
	key := strings.ToLower(name) + "-" + date.Format(dateLayout)
	digest := blake2b.Sum256([]byte(key))
	n := new(big.Int).SetBytes(digest[:])
	return n.Mod(n, seedModulus).Uint64()
}
