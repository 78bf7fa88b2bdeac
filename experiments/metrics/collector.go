package metrics

import (
	"math"
	"time"
)

// SelectMetric describes a single move-selection pass.
type SelectMetric struct {
	Candidates  int
	Evaluations int
	BestScore   float64
	Duration    time.Duration
}

type MoveMetric struct {
	Step   int
	Player string
	SelectMetric
}

type GameMetric struct {
	Result     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(candidates int)
	AddEvaluation(score float64)
	Complete() SelectMetric
}

// Selection is strictly sequential, so the collector needs no locking.
type collector struct {
	candidates  int
	evaluations int
	bestScore   float64
	startTime   time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(candidates int) {
	c.startTime = time.Now()
	c.candidates = candidates
	c.evaluations = 0
	c.bestScore = math.Inf(-1)
}

func (c *collector) AddEvaluation(score float64) {
	c.evaluations++
	if score > c.bestScore {
		c.bestScore = score
	}
}

func (c *collector) Complete() SelectMetric {
	best := c.bestScore
	if c.evaluations == 0 {
		best = 0
	}
	return SelectMetric{
		Candidates:  c.candidates,
		Evaluations: c.evaluations,
		BestScore:   best,
		Duration:    time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for callers that do not
// want metrics.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int)              {}
func (dummyCollector) AddEvaluation(float64)  {}
func (dummyCollector) Complete() SelectMetric { return SelectMetric{} }
