package stats

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

var testItems = []wheel.Item{{ID: "a", Text: "alpha"}, {ID: "b", Text: "beta"}, {ID: "c", Text: "gamma"}}

func TestSessionCounts(t *testing.T) {
	s := NewSession(testItems)
	defer s.Stop()

	s.Record(wheel.Result{Index: 0, Item: testItems[0]})
	s.Record(wheel.Result{Index: 2, Item: testItems[2]})
	s.Record(wheel.Result{Index: 0, Item: testItems[0]})

	assert.Equal(t, int64(3), s.Spins())
	assert.Equal(t, int64(2), s.Wins("a"))
	assert.Equal(t, int64(0), s.Wins("b"))
	assert.Equal(t, int64(1), s.Wins("c"))
	assert.Equal(t, int64(0), s.Wins("unknown"))
}

func TestSessionSummary(t *testing.T) {
	s := NewSession(testItems)
	defer s.Stop()

	assert.Zero(t, s.Summary()[0].Share)

	s.Record(wheel.Result{Item: testItems[1]})
	s.Record(wheel.Result{Item: testItems[1]})
	s.Record(wheel.Result{Item: testItems[2]})
	s.Record(wheel.Result{Item: testItems[1]})

	lines := s.Summary()
	require.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0].Item.ID)
	assert.Equal(t, int64(3), lines[1].Wins)
	assert.InDelta(t, 0.75, lines[1].Share, 1e-12)
	assert.InDelta(t, 0.25, lines[2].Share, 1e-12)
}

func TestSessionLog(t *testing.T) {
	s := NewSession(testItems)
	defer s.Stop()
	s.Record(wheel.Result{Item: testItems[2]})

	var buf bytes.Buffer
	s.Log(log.New(&buf, "", 0))

	out := buf.String()
	assert.Contains(t, out, "session: 1 spins")
	assert.Contains(t, out, "c won 1 time(s) (100.0%)")
	assert.NotContains(t, out, "a won")
}
