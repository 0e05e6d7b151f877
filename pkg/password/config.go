package password

import (
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Config holds the bcrypt work factor as read from the environment.
// Rounds stays a string so that a malformed value degrades to the default
// cost instead of failing startup.
type Config struct {
	Rounds string `env:"HASH_ROUNDS"`
}

// Cost resolves Rounds to a usable bcrypt cost.
func (c Config) Cost() int {
	raw := strings.TrimSpace(c.Rounds)
	if raw == "" {
		return bcrypt.DefaultCost
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return bcrypt.DefaultCost
	}
	if n < uint64(bcrypt.MinCost) || n > uint64(bcrypt.MaxCost) {
		return bcrypt.DefaultCost
	}
	return int(n)
}
