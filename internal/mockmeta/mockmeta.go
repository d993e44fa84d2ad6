// Package mockmeta generates placeholder session metadata (IP addresses and
// token names). The values are cosmetic, they carry no security meaning and
// must never be used as authentication material.
package mockmeta

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Generator produces placeholder metadata for log entries.
type Generator interface {
	// IP returns a fake IP address.
	IP() string
	// Token returns a fake token name.
	Token() string
}

// Fixed pool of addresses the fake IPs are drawn from.
var ipPool = []string{
	"192.168.1.100",
	"192.168.1.101",
	"192.168.1.102",
	"10.0.0.50",
	"172.16.0.25",
	"203.0.113.1",
	"198.51.100.1",
}

// tokenPrefix imitates the header segment of a JWT so the fake tokens look
// familiar in listings. The suffix is random noise, not a signature.
const tokenPrefix = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9."

const tokenChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const tokenSuffixLen = 50

// GeneratorConfig is the configuration for the pool generator.
type GeneratorConfig struct {
	// Rand is the random source, seeded from the clock when nil.
	Rand *rand.Rand
}

func (c *GeneratorConfig) defaults() error {
	if c.Rand == nil {
		now := uint64(time.Now().UnixNano())
		c.Rand = rand.New(rand.NewPCG(now, now>>32))
	}
	return nil
}

// PoolGenerator draws fake IPs from a fixed pool and builds random fake
// token names.
type PoolGenerator struct {
	rand *rand.Rand
}

var _ Generator = (*PoolGenerator)(nil)

// NewGenerator creates a new pool generator.
func NewGenerator(cfg GeneratorConfig) (*PoolGenerator, error) {
	if err := cfg.defaults(); err != nil {
		return nil, err
	}

	return &PoolGenerator{rand: cfg.Rand}, nil
}

// IP returns a fake IP address from the pool.
func (g *PoolGenerator) IP() string {
	return ipPool[g.rand.IntN(len(ipPool))]
}

// Token returns a fake token name.
func (g *PoolGenerator) Token() string {
	var b strings.Builder
	b.Grow(len(tokenPrefix) + tokenSuffixLen)
	b.WriteString(tokenPrefix)
	for i := 0; i < tokenSuffixLen; i++ {
		b.WriteByte(tokenChars[g.rand.IntN(len(tokenChars))])
	}
	return b.String()
}
