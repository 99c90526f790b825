package wheel

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/fortune-wheel/internal/rng"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) Intn(n int) int {
	args := m.Called(n)
	return args.Int(0)
}

func (m *MockSource) Float64() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func eightItems() []Item {
	return []Item{
		{ID: "1", Text: "one"}, {ID: "2", Text: "two"}, {ID: "3", Text: "three"}, {ID: "4", Text: "four"},
		{ID: "5", Text: "five"}, {ID: "6", Text: "six"}, {ID: "7", Text: "seven"}, {ID: "8", Text: "eight"},
	}
}

func TestSpinScriptedScenario(t *testing.T) {
	src := new(MockSource)
	src.On("Intn", 8).Return(3).Once()
	src.On("Float64").Return(0.5).Once()
	src.On("Intn", 5).Return(0).Once()

	winner, final, err := Spin(src, 8, 0)

	require.NoError(t, err)
	assert.Equal(t, 3, winner)
	assert.InDelta(t, 2025.0, final, 1e-9)
	src.AssertExpectations(t)
}

func TestWheelSpinCarriesItem(t *testing.T) {
	src := new(MockSource)
	src.On("Intn", 8).Return(6).Once()
	src.On("Float64").Return(0.5).Once()
	src.On("Intn", 5).Return(4).Once()

	w, err := New(eightItems(), src)
	require.NoError(t, err)

	r, err := w.Spin(100)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Index)
	assert.Equal(t, Item{ID: "7", Text: "seven"}, r.Item)
	assert.Equal(t, 9, r.FullSpins)
	assert.InDelta(t, 360+9*360+360-6*45, r.Angle, 1e-9)
	assert.Equal(t, 6, SegmentAt(r.Angle, 8))
}

func TestSpinZeroItemsIsDomainError(t *testing.T) {
	src := new(MockSource)

	winner, final, err := Spin(src, 0, 720)

	assert.True(t, errors.Is(err, ErrNoItems))
	assert.Equal(t, 0, winner)
	assert.Equal(t, 0.0, final)
	src.AssertNotCalled(t, "Intn", mock.Anything)
	src.AssertNotCalled(t, "Float64")
}

func TestSpinBoundsAndMonotonicity(t *testing.T) {
	src := rng.NewRandomizer(1)
	for n := 1; n <= 24; n++ {
		prev := 0.0
		for i := 0; i < 200; i++ {
			winner, final, err := Spin(src, n, prev)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, winner, 0)
			assert.Less(t, winner, n)
			assert.Greater(t, final, prev)
			assert.GreaterOrEqual(t, final, prev+MinFullSpins*360)
			assert.Less(t, final, prev+(MaxFullSpins+3)*360)
			assert.Equal(t, winner, SegmentAt(final, n), "n=%d final=%f", n, final)
			prev = final
		}
	}
}

func TestSpinSameStartDiffersByTurnsAndTarget(t *testing.T) {
	const n = 6
	seg := SegmentAngle(n)
	for seed := int64(1); seed <= 50; seed++ {
		r, err := spin(rng.NewRandomizer(seed), n, 90)
		require.NoError(t, err)

		target := 360 - float64(r.Index)*seg - r.Offset
		assert.InDelta(t, 360+float64(r.FullSpins)*360+target, r.Angle, 1e-9)
		assert.GreaterOrEqual(t, r.FullSpins, MinFullSpins)
		assert.LessOrEqual(t, r.FullSpins, MaxFullSpins)
		assert.LessOrEqual(t, math.Abs(r.Offset), 0.4*seg)
		assert.GreaterOrEqual(t, r.Angle, 90.0+1800)
	}
}

func TestSpinUniformity(t *testing.T) {
	const (
		n      = 8
		trials = 80000
	)
	src := rng.NewRandomizer(99)
	counts := make([]int, n)
	for i := 0; i < trials; i++ {
		winner, _, err := Spin(src, n, 0)
		require.NoError(t, err)
		counts[winner]++
	}

	expected := float64(trials) / n
	for i, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.05, "segment %d", i)
	}
}

func TestSingleItemAlwaysWins(t *testing.T) {
	src := rng.NewRandomizer(5)
	w, err := New([]Item{{ID: "only", Text: "the only task"}}, src)
	require.NoError(t, err)

	prev := 0.0
	for i := 0; i < 100; i++ {
		r, err := w.Spin(prev)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Index)
		assert.Equal(t, 0, SegmentAt(r.Angle, 1))
		assert.Greater(t, r.Angle, prev)
		prev = r.Angle
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNoItems)
	assert.ErrorIs(t, Validate([]Item{{ID: "", Text: "x"}}), ErrEmptyID)
	assert.ErrorIs(t, Validate([]Item{{ID: "a"}, {ID: "b"}, {ID: "a"}}), ErrDuplicateID)
	assert.NoError(t, Validate(eightItems()))

	_, err := New(nil, rng.NewRandomizer(1))
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestItemsIsACopy(t *testing.T) {
	w, err := New(eightItems(), rng.NewRandomizer(1))
	require.NoError(t, err)

	items := w.Items()
	items[0].Text = "changed"
	again := w.Items()
	assert.Equal(t, "one", again[0].Text)
	assert.Len(t, again, 8)
}
