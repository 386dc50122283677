package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdc-labs/d17b/cpu"
	"github.com/sdc-labs/d17b/memory"
)

func TestLoadWritesTriples(t *testing.T) {
	s := cpu.New(memory.D17BWords, false)
	program := strings.NewReader("# a comment\n0 0 11000001\n\n0 1 00000005\n")

	require.NoError(t, Load(s, program))

	assert.EqualValues(t, 0o11000001, s.Memory.Read(0, 0))
	assert.EqualValues(t, 5, s.Memory.Read(0, 1))
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	s := cpu.New(memory.D17BWords, false)
	err := Load(s, strings.NewReader("0 1\n"))
	require.Error(t, err)
}

func TestLoadRejectsNonOctalField(t *testing.T) {
	s := cpu.New(memory.D17BWords, false)
	err := Load(s, strings.NewReader("0 0 9\n"))
	require.Error(t, err)
}
