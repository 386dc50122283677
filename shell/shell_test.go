package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdc-labs/d17b/cpu"
	"github.com/sdc-labs/d17b/memory"
)

func TestDispatchStep(t *testing.T) {
	s := cpu.New(memory.D17BWords, false)
	s.A = 0 // the zero word at (0,0) decodes as SHIFT sub-op 0: a no-op, but still a valid fetch

	quit, err := dispatch(s, "s")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.EqualValues(t, 1, s.CycleCount)
}

func TestDispatchQuit(t *testing.T) {
	s := cpu.New(memory.D17BWords, false)
	quit, err := dispatch(s, "q")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestDispatchMemoryPokeAndPeek(t *testing.T) {
	s := cpu.New(memory.D17BWords, false)

	_, err := dispatch(s, "m 0 5 777")
	require.NoError(t, err)
	assert.EqualValues(t, 0o777, s.Memory.Read(0, 5))
}

func TestDispatchUnknownCommand(t *testing.T) {
	s := cpu.New(memory.D17BWords, false)
	_, err := dispatch(s, "bogus")
	require.Error(t, err)
}

func TestDispatchEmptyLineIsNoOp(t *testing.T) {
	s := cpu.New(memory.D17BWords, false)
	quit, err := dispatch(s, "   ")
	require.NoError(t, err)
	assert.False(t, quit)
}
