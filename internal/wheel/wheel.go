package wheel

import (
	"errors"
	"fmt"
	"math"

	"github.com/iburimskiy/fortune-wheel/internal/rng"
)

const (
	// MinFullSpins and MaxFullSpins bound the extra whole turns added to every spin.
	MinFullSpins = 5
	MaxFullSpins = 9

	// OffsetFraction is the share of a segment the landing point may wander across,
	// centered on the segment's nominal position.
	OffsetFraction = 0.8
)

var (
	ErrNoItems     = errors.New("wheel: item list is empty")
	ErrEmptyID     = errors.New("wheel: item id is empty")
	ErrDuplicateID = errors.New("wheel: duplicate item id")
)

// Item is one labeled entry on the wheel.
type Item struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// Result is the outcome of one spin.
type Result struct {
	Index     int
	Item      Item
	Angle     float64 // final cumulative rotation, degrees clockwise
	FullSpins int
	Offset    float64
}

// Spin picks a winner among n segments and returns the rotation that lands it under
// the top pointer, measured on top of previous. Turns are counted from the first
// whole turn at or after previous so the landing does not drift between spins.
func Spin(src rng.Source, n int, previous float64) (int, float64, error) {
	r, err := spin(src, n, previous)
	if err != nil {
		return 0, 0, err
	}
	return r.Index, r.Angle, nil
}

func spin(src rng.Source, n int, previous float64) (Result, error) {
	if n < 1 {
		return Result{}, ErrNoItems
	}

	winner := src.Intn(n)
	segment := SegmentAngle(n)
	offset := (src.Float64() - 0.5) * segment * OffsetFraction
	target := 360 - float64(winner)*segment - offset
	fullSpins := MinFullSpins + src.Intn(MaxFullSpins-MinFullSpins+1)

	base := math.Ceil(previous/360) * 360

	return Result{
		Index:     winner,
		Angle:     base + float64(fullSpins)*360 + target,
		FullSpins: fullSpins,
		Offset:    offset,
	}, nil
}

// Validate checks that items can be laid out on a wheel.
func Validate(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("item %d: %w", i, ErrEmptyID)
		}
		if prev, ok := seen[it.ID]; ok {
			return fmt.Errorf("item %d (%q) repeats item %d: %w", i, it.ID, prev, ErrDuplicateID)
		}
		seen[it.ID] = i
	}
	return nil
}

// Wheel binds a fixed item list to a random source.
type Wheel struct {
	items []Item
	src   rng.Source
}

func New(items []Item, src rng.Source) (*Wheel, error) {
	if err := Validate(items); err != nil {
		return nil, err
	}
	own := make([]Item, len(items))
	copy(own, items)
	return &Wheel{items: own, src: src}, nil
}

// Items returns a copy of the wheel's items in segment order.
func (w *Wheel) Items() []Item {
	out := make([]Item, len(w.items))
	copy(out, w.items)
	return out
}

// Spin runs one selection starting from the previous cumulative angle.
func (w *Wheel) Spin(previous float64) (Result, error) {
	r, err := spin(w.src, len(w.items), previous)
	if err != nil {
		return Result{}, err
	}
	r.Item = w.items[r.Index]
	return r, nil
}
