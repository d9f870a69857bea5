package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketNumber(t *testing.T) {
	n, err := TicketNumber()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(n, DefaultPrefix))
	body := strings.TrimPrefix(n, DefaultPrefix)
	assert.Len(t, body, DefaultLength)
	for _, r := range body {
		assert.Contains(t, Alphabet, string(r))
	}
}

func TestTicketNumberWith(t *testing.T) {
	n, err := TicketNumberWith("JOB-", 8)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(n, "JOB-"))
	assert.Len(t, n, len("JOB-")+8)
}

func TestTicketNumberWith_InvalidLength(t *testing.T) {
	_, err := TicketNumberWith("T-", 0)
	assert.ErrorContains(t, err, "idgen")
}

func TestTicketNumber_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 200 {
		n, err := TicketNumber()
		require.NoError(t, err)
		assert.False(t, seen[n], "duplicate number %s", n)
		seen[n] = true
	}
}
