package mockmeta_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/mockmeta"
)

var knownIPs = []string{
	"192.168.1.100",
	"192.168.1.101",
	"192.168.1.102",
	"10.0.0.50",
	"172.16.0.25",
	"203.0.113.1",
	"198.51.100.1",
}

func TestGeneratorIP(t *testing.T) {
	gen, err := mockmeta.NewGenerator(mockmeta.GeneratorConfig{})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		assert.Contains(t, knownIPs, gen.IP())
	}
}

func TestGeneratorToken(t *testing.T) {
	gen, err := mockmeta.NewGenerator(mockmeta.GeneratorConfig{})
	require.NoError(t, err)

	const prefix = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9."

	for i := 0; i < 50; i++ {
		token := gen.Token()
		assert.True(t, strings.HasPrefix(token, prefix))
		assert.Len(t, token, len(prefix)+50)
	}
}

func TestGeneratorDeterministicWithSeed(t *testing.T) {
	newSeeded := func() *mockmeta.PoolGenerator {
		gen, err := mockmeta.NewGenerator(mockmeta.GeneratorConfig{
			Rand: rand.New(rand.NewPCG(42, 42)),
		})
		require.NoError(t, err)
		return gen
	}

	gen1 := newSeeded()
	gen2 := newSeeded()

	for i := 0; i < 10; i++ {
		assert.Equal(t, gen1.IP(), gen2.IP())
		assert.Equal(t, gen1.Token(), gen2.Token())
	}
}
