package stats

import (
	"fmt"
	"log"

	"github.com/rcrowley/go-metrics"

	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

// Session counts spins and wins for the lifetime of the process. Nothing is persisted.
type Session struct {
	registry metrics.Registry
	items    []wheel.Item
	spins    metrics.Counter
	rate     metrics.Meter
}

type Line struct {
	Item  wheel.Item
	Wins  int64
	Share float64
}

func NewSession(items []wheel.Item) *Session {
	r := metrics.NewRegistry()
	s := &Session{
		registry: r,
		items:    items,
		spins:    metrics.GetOrRegisterCounter("spins", r),
		rate:     metrics.NewMeter(),
	}
	for _, it := range items {
		metrics.GetOrRegisterCounter(winsKey(it.ID), r)
	}
	return s
}

func winsKey(id string) string { return "wins." + id }

// Record counts one revealed result.
func (s *Session) Record(res wheel.Result) {
	s.spins.Inc(1)
	s.rate.Mark(1)
	metrics.GetOrRegisterCounter(winsKey(res.Item.ID), s.registry).Inc(1)
}

func (s *Session) Spins() int64 { return s.spins.Count() }

func (s *Session) Wins(id string) int64 {
	c, ok := s.registry.Get(winsKey(id)).(metrics.Counter)
	if !ok {
		return 0
	}
	return c.Count()
}

// Summary lists every item in wheel order with its win count.
func (s *Session) Summary() []Line {
	total := s.Spins()
	lines := make([]Line, 0, len(s.items))
	for _, it := range s.items {
		l := Line{Item: it, Wins: s.Wins(it.ID)}
		if total > 0 {
			l.Share = float64(l.Wins) / float64(total)
		}
		lines = append(lines, l)
	}
	return lines
}

// Log writes the summary to logger.
func (s *Session) Log(logger *log.Logger) {
	logger.Printf("session: %d spins, mean rate %.3f spins/min", s.Spins(), s.rate.RateMean()*60)
	for _, l := range s.Summary() {
		if l.Wins == 0 {
			continue
		}
		logger.Printf("session: %s won %d time(s) (%s)", l.Item.ID, l.Wins, percent(l.Share))
	}
}

func (s *Session) Stop() {
	s.rate.Stop()
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
