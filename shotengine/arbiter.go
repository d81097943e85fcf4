// Package shotengine is the shot outcome engine: a pure,
// single-threaded function from a radar-derived trajectory and a
// fielding configuration to a discrete shot outcome. It has no
// persistent state and performs no I/O beyond the structured log
// records described in SPEC_FULL.md §1.1; everything else (storage,
// transport, UI) is left to callers.
package shotengine

import (
	"math"
	"time"

	"github.com/Ben536/cricket-app/internal/geom"
	"github.com/Ben536/cricket-app/internal/logx"
	"github.com/Ben536/cricket-app/internal/rng"
	"github.com/google/uuid"
)

// Delivery is the full, unvalidated input to SimulateDelivery,
// core spec §6.
type Delivery struct {
	ExitSpeed         float64
	HorizontalAngle   float64
	VerticalAngle     float64
	LandingX          float64
	LandingY          float64
	ProjectedDistance float64
	MaxHeight         float64
	Fielders          []RawFielder
	BoundaryDistance  float64 // 0 falls back to Config.DefaultBoundary
	Difficulty        DifficultyLevel
}

// Engine bundles the dependencies SimulateDelivery needs beyond its
// per-call arguments: the tunable configuration and the structured
// logger. It holds no per-delivery state, so a single Engine value
// may be shared across concurrent calls as long as each call supplies
// its own rng.Source (core spec §5).
type Engine struct {
	Config Config
	Log    *logx.Logger
}

// NewEngine returns an Engine with default tunables and a logger that
// writes to dir (or stderr if dir is empty). The level is "debug" so
// the one per-call debug summary (core spec §5) is actually emitted;
// callers that want it quieter can build an Engine directly with
// logx.New(dir, level).
func NewEngine(dir string) *Engine {
	return &Engine{Config: DefaultConfig(), Log: logx.New(dir, "debug")}
}

// SimulateDelivery is the engine's single entry point: it determines
// the discrete outcome of one cricket shot, core spec §4.7/§6.
func (e *Engine) SimulateDelivery(d Delivery, source rng.Source) Result {
	start := time.Now()
	deliveryID := uuid.NewString()

	raw := RawDelivery{
		ExitSpeed:         d.ExitSpeed,
		HorizontalAngle:   d.HorizontalAngle,
		VerticalAngle:     d.VerticalAngle,
		LandingX:          d.LandingX,
		LandingY:          d.LandingY,
		ProjectedDistance: d.ProjectedDistance,
		MaxHeight:         d.MaxHeight,
		Fielders:          d.Fielders,
		BoundaryDistance:  d.BoundaryDistance,
		Difficulty:        d.Difficulty,
	}

	c, warnings := sanitize(raw, e.Config)
	for _, w := range warnings {
		e.Log.Warn("sanitized input", "delivery_id", deliveryID, "field", w.Field, "reason", w.Reason)
	}

	traj := buildTrajectory(c, e.Config)
	aerial := isAerial(traj, c.verticalAngle)
	description := classifyShot(c.horizontalAngle, aerial)

	result := e.arbitrate(c, traj, aerial, description, source, deliveryID)
	result.DeliveryID = deliveryID

	e.Log.Debug("delivery simulated",
		"delivery_id", deliveryID,
		"outcome", string(result.Outcome),
		"runs", result.Runs,
		"elapsed", time.Since(start).String())

	return result
}

// arbitrate runs the ordered checks of core spec §4.7: six, catch,
// four, and ground fielding depend only on trajectory and boundary (or
// the catch/ground-fielding fielders, when any exist) and always run
// first; retrieval fallback is last and degenerates to a four when no
// fielder remains to retrieve the ball.
func (e *Engine) arbitrate(c clean, traj Trajectory, aerial bool, description string, source rng.Source, deliveryID string) Result {
	cfg := e.Config

	// 1. Six.
	if traj.ProjectedDistance >= c.boundaryDistance && aerial &&
		traj.HeightAtDistance(c.boundaryDistance, cfg) > cfg.SixMinHeightAtBoundary {
		return Result{
			Outcome:     Outcome6,
			Runs:        6,
			IsBoundary:  true,
			IsAerial:    aerial,
			EndPosition: boundaryPosition(traj, c.boundaryDistance),
			Description: description,
		}
	}

	// 2. Catches (first hit wins; first drop also terminates).
	if res, ok := e.tryCatches(c, traj, aerial, description, source); ok {
		return res
	}

	// 3. Four.
	if traj.ProjectedDistance >= c.boundaryDistance {
		return Result{
			Outcome:     Outcome4,
			Runs:        4,
			IsBoundary:  true,
			IsAerial:    aerial,
			EndPosition: boundaryPosition(traj, c.boundaryDistance),
			Description: description,
		}
	}

	// 4. Ground fielding.
	if res, ok := e.tryGroundFielding(c, traj, aerial, description, source); ok {
		return res
	}

	// 5. Retrieval fallback, or its degenerate replacement when there is
	// no fielder left to retrieve the ball at all.
	if len(c.fielders) == 0 {
		return Result{
			Outcome:         Outcome4,
			Runs:            4,
			IsBoundary:      true,
			IsAerial:        aerial,
			FielderInvolved: nil,
			EndPosition:     boundaryPosition(traj, c.boundaryDistance),
			Description:     description,
		}
	}
	return e.retrievalFallback(c, traj, aerial, description, source)
}

// tryCatches evaluates the catch engine and, if any fielder's roll
// resolves the shot (caught or dropped), builds the terminal Result.
func (e *Engine) tryCatches(c clean, traj Trajectory, aerial bool, description string, source rng.Source) (Result, bool) {
	cfg := e.Config
	candidates := evaluateCatches(c.fielders, traj, c.difficulty, cfg, source)

	for _, cand := range candidates {
		name := cand.fielder.Name
		if cand.caught {
			x, y, _ := traj.PositionAt(cand.intercept.t, cfg)
			analysis := cand.analysis
			return Result{
				Outcome:         OutcomeCaught,
				Runs:            0,
				IsBoundary:      false,
				IsAerial:        true,
				FielderInvolved: &name,
				FielderPosition: &Position{X: cand.fielder.X, Y: cand.fielder.Y},
				EndPosition:     Position{X: x, Y: y},
				Description:     description,
				CatchAnalysis:   &analysis,
			}, true
		}

		// Dropped: terminates the sequence regardless of whether a
		// later fielder might have caught it.
		analysis := cand.analysis
		if traj.ProjectedDistance >= c.boundaryDistance {
			return Result{
				Outcome:         OutcomeDropped,
				Runs:            4,
				IsBoundary:      true,
				IsAerial:        true,
				FielderInvolved: &name,
				FielderPosition: &Position{X: cand.fielder.X, Y: cand.fielder.Y},
				EndPosition:     boundaryPosition(traj, c.boundaryDistance),
				Description:     description,
				CatchAnalysis:   &analysis,
			}, true
		}

		runs := droppedCatchRuns(traj.ProjectedDistance, cfg, source)
		return Result{
			Outcome:         OutcomeDropped,
			Runs:            runs,
			IsBoundary:      false,
			IsAerial:        true,
			FielderInvolved: &name,
			FielderPosition: &Position{X: cand.fielder.X, Y: cand.fielder.Y},
			EndPosition:     Position{X: traj.LandingX, Y: traj.LandingY},
			Description:     description,
			CatchAnalysis:   &analysis,
		}, true
	}

	return Result{}, false
}

// tryGroundFielding evaluates the ground fielding engine over the
// ranked candidates and returns the first one with a non-null
// outcome, core spec §4.6/§4.7.
func (e *Engine) tryGroundFielding(c clean, traj Trajectory, aerial bool, description string, source rng.Source) (Result, bool) {
	cfg := e.Config
	candidates := rankGroundCandidates(c.fielders, traj, cfg)

	for _, cand := range candidates {
		attempt := attemptGroundFielding(cand.fielder, traj, cand.interceptDist, cand.lateral, c.difficulty, cfg, source)
		name := attempt.fielder.Name

		end := Position{X: attempt.fielder.X, Y: attempt.fielder.Y}
		if attempt.roll == groundEscaped {
			end = Position{X: traj.LandingX, Y: traj.LandingY}
		}

		return Result{
			Outcome:         attempt.outcome,
			Runs:            attempt.runs,
			IsBoundary:      false,
			IsAerial:        aerial,
			FielderInvolved: &name,
			FielderPosition: &Position{X: attempt.fielder.X, Y: attempt.fielder.Y},
			EndPosition:     end,
			Description:     description,
		}, true
	}

	return Result{}, false
}

// retrievalFallback handles shots outside every fielder's direct
// path: the nearest fielder to the landing point retrieves the ball,
// core spec §4.7 step 5.
func (e *Engine) retrievalFallback(c clean, traj Trajectory, aerial bool, description string, source rng.Source) Result {
	cfg := e.Config
	landing := geom.Point{X: traj.LandingX, Y: traj.LandingY}

	nearest := c.fielders[0]
	nearestDist := geom.Distance(geom.Point{X: nearest.X, Y: nearest.Y}, landing)
	for _, f := range c.fielders[1:] {
		d := geom.Distance(geom.Point{X: f.X, Y: f.Y}, landing)
		if d < nearestDist {
			nearest, nearestDist = f, d
		}
	}

	roll := rollGround(c.difficulty, cfg, source)

	ballTravelTime := traj.ProjectedDistance / avgGroundSpeed(traj.exitSpeedKmh, traj.ProjectedDistance, cfg)
	movementDuringFlight := math.Max(0, ballTravelTime-cfg.FielderReactionTime) * cfg.FielderRunSpeed
	remaining := math.Max(0, nearestDist-movementDuringFlight)
	runnerTime := remaining / cfg.FielderRunSpeed

	total := ballTravelTime + runnerTime + cfg.PickupTimeStopped + throwTime(geom.Point{X: nearest.X, Y: nearest.Y}, cfg)
	switch roll {
	case groundFumbled:
		total += cfg.FumblePenalty
	case groundEscaped:
		total += cfg.MisfieldPenalty
	}

	runs := timeToRuns(total, cfg)

	var outcome Outcome
	switch roll {
	case groundFumbled:
		outcome = OutcomeMisfield
		if runs < 1 {
			runs = 1
		}
	case groundEscaped:
		outcome = OutcomeMisfield
	default:
		if runs == 0 {
			outcome = OutcomeDot
		} else {
			outcome = runsOutcome(runs)
		}
	}

	name := nearest.Name
	end := Position{X: nearest.X, Y: nearest.Y}
	if roll == groundEscaped {
		end = Position{X: traj.LandingX, Y: traj.LandingY}
	}

	return Result{
		Outcome:         outcome,
		Runs:            runs,
		IsBoundary:      false,
		IsAerial:        aerial,
		FielderInvolved: &name,
		FielderPosition: &Position{X: nearest.X, Y: nearest.Y},
		EndPosition:     end,
		Description:     description,
	}
}

// boundaryPosition returns the point on the boundary circle along the
// trajectory's landing direction, used as EndPosition for sixes and
// fours.
func boundaryPosition(traj Trajectory, boundary float64) Position {
	return Position{X: traj.DirX * boundary, Y: traj.DirY * boundary}
}
