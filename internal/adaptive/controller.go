package adaptive

import (
	"time"

	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
)

// Tier is a coarse difficulty band for exercise selection.
type Tier string

const (
	TierEasy   Tier = "EASY"
	TierMedium Tier = "MEDIUM"
	TierHard   Tier = "HARD"
)

// DefaultTier is where a learner with no history starts.
const DefaultTier = TierMedium

// Config tunes the difficulty controller. Zero fields take defaults
// through NewController.
type Config struct {
	WindowSize   int
	MinSamples   int     // no movement until this many outcomes are held
	EscalateAt   float64 // accuracy at or above this moves a tier up
	DeescalateAt float64 // accuracy at or below this moves a tier down
}

// DefaultConfig returns the stock tuning: a 20-outcome window, 5 samples
// before any movement, escalate at 85% accuracy, de-escalate at 50%.
func DefaultConfig() Config {
	return Config{
		WindowSize:   DefaultWindowSize,
		MinSamples:   5,
		EscalateAt:   0.85,
		DeescalateAt: 0.5,
	}
}

// Plan is the controller's recommendation for the next exercise.
type Plan struct {
	Tier     Tier
	Emphasis analyzer.Category // dominant error category, empty if none
}

// Controller derives difficulty plans from a rolling outcome window.
// Stateless: the window travels with the caller (and its repository),
// so one controller can serve many users.
type Controller struct {
	cfg Config
}

// NewController builds a controller, filling zero Config fields with
// DefaultConfig values.
func NewController(cfg Config) *Controller {
	def := DefaultConfig()
	if cfg.WindowSize < 1 {
		cfg.WindowSize = def.WindowSize
	}
	if cfg.MinSamples < 1 {
		cfg.MinSamples = def.MinSamples
	}
	if cfg.EscalateAt <= 0 {
		cfg.EscalateAt = def.EscalateAt
	}
	if cfg.DeescalateAt <= 0 {
		cfg.DeescalateAt = def.DeescalateAt
	}
	return &Controller{cfg: cfg}
}

// Config returns the effective tuning.
func (c *Controller) Config() Config { return c.cfg }

// NewWindow returns an empty window sized for this controller.
func (c *Controller) NewWindow() Window {
	return NewWindow(c.cfg.WindowSize)
}

// RecordOutcome pushes one graded answer into the window and returns the
// updated window. category is only meaningful for incorrect answers.
func (c *Controller) RecordOutcome(w Window, correct bool, category analyzer.Category, at time.Time) Window {
	if correct {
		category = ""
	}
	return w.Push(Outcome{Correct: correct, Category: category, At: at})
}

// NextDifficulty recommends the tier and category emphasis for the next
// exercise. Movement is one tier at a time and only once MinSamples
// outcomes have accumulated; below that the current tier holds.
func (c *Controller) NextDifficulty(w Window, current Tier) Plan {
	if current == "" {
		current = DefaultTier
	}
	plan := Plan{Tier: current, Emphasis: w.dominantCategory()}
	if w.Len() < c.cfg.MinSamples {
		return plan
	}
	acc := w.Accuracy()
	switch {
	case acc >= c.cfg.EscalateAt:
		plan.Tier = tierUp(current)
	case acc <= c.cfg.DeescalateAt:
		plan.Tier = tierDown(current)
	}
	return plan
}

func tierUp(t Tier) Tier {
	switch t {
	case TierEasy:
		return TierMedium
	case TierMedium:
		return TierHard
	default:
		return TierHard
	}
}

func tierDown(t Tier) Tier {
	switch t {
	case TierHard:
		return TierMedium
	case TierMedium:
		return TierEasy
	default:
		return TierEasy
	}
}
