package ratelimit

import "time"

// Store backends accepted by Config.Store.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Store     string        `env:"RATELIMIT_STORE" envDefault:"memory"`         // Store is "memory" or "redis".
	Requests  int           `env:"RATELIMIT_REQUESTS" envDefault:"10"`          // Requests allowed per window and client.
	Window    time.Duration `env:"RATELIMIT_WINDOW" envDefault:"1m"`            // Window length.
	KeyPrefix string        `env:"RATELIMIT_KEY_PREFIX" envDefault:"kbooks:rl:"` // KeyPrefix namespaces Redis keys.
}
