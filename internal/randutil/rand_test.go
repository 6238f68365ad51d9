package randutil

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"

	"github.com/lox/handrank/poker"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a := poker.NewDeck(New(42))
	b := poker.NewDeck(New(42))
	c := poker.NewDeck(New(43))

	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String())
}

func TestResolve(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)

	assert.Equal(t, int64(7), Resolve(7, clock))
	assert.Equal(t, clock.Now().UnixNano(), Resolve(0, clock))

	clock.Advance(time.Second)
	assert.Equal(t, clock.Now().UnixNano(), Resolve(0, clock))
}
