package shotengine

import (
	"math"

	"github.com/Ben536/cricket-app/internal/geom"
	"github.com/Ben536/cricket-app/internal/rng"
)

// groundRoll is the three-way stopped/fumbled/escaped draw, core spec
// §4.6.
type groundRoll string

const (
	groundStopped  groundRoll = "stopped"
	groundFumbled  groundRoll = "fumbled"
	groundEscaped  groundRoll = "escaped"
)

func groundProbabilities(level DifficultyLevel, cfg Config) [3]float64 {
	switch level {
	case DifficultyEasy:
		return cfg.GroundProbEasy
	case DifficultyHard:
		return cfg.GroundProbHard
	default:
		return cfg.GroundProbMedium
	}
}

func rollGround(level DifficultyLevel, cfg Config, source rng.Source) groundRoll {
	probs := groundProbabilities(level, cfg)
	u := source.NextUniform()
	if u < probs[0] {
		return groundStopped
	}
	if u < probs[0]+probs[1] {
		return groundFumbled
	}
	return groundEscaped
}

// groundFieldingEligible mirrors the catch engine's forward-hemisphere
// and segment-parameter rules, but with a range test that accounts for
// how far the fielder can close during the ball's flight, core spec
// §4.6.
func groundFieldingEligible(f Fielder, traj Trajectory, cfg Config) bool {
	fielderPt := geom.Point{X: f.X, Y: f.Y}
	landing := geom.Point{X: traj.LandingX, Y: traj.LandingY}
	dirL := geom.UnitVector(landing)

	distToBatter := geom.Distance(fielderPt, geom.Point{})
	dot := geom.Dot(fielderPt, dirL)
	threshold := 0.0
	if distToBatter < cfg.CloseFielderRange {
		threshold = cfg.RearwardDotRelaxed
	}
	if dot <= threshold {
		return false
	}

	movementDuringFlight := math.Max(0, traj.TimeOfFlight-cfg.FielderReactionTime) * cfg.FielderRunSpeed
	if distToBatter > cfg.GroundFieldingRange+movementDuringFlight {
		return false
	}

	_, _, t := geom.PointToSegment(fielderPt, geom.Point{}, landing)
	return t >= cfg.MinSegmentParam
}

// avgGroundSpeed is the friction-decayed average ground speed of the
// ball traveling to an intercept at the given distance, core spec
// §4.6 step 1.
func avgGroundSpeed(exitSpeedKmh, interceptDistance float64, cfg Config) float64 {
	speed := (exitSpeedKmh / 3.6) * math.Exp(-cfg.GroundFrictionRate*interceptDistance*0.5)
	return math.Max(cfg.MinGroundSpeed, speed)
}

// collectionTime returns the time a fielder takes to gather the ball
// given the effective lateral gap remaining once the ball arrives,
// core spec §4.6 step 3.
func collectionTime(effectiveLateral float64, cfg Config) float64 {
	switch {
	case effectiveLateral < cfg.CollectionCleanRange:
		return cfg.CollectionClean
	case effectiveLateral < cfg.CollectionMovingRange:
		return cfg.CollectionMoving
	default:
		return cfg.CollectionDive
	}
}

// throwTime returns the time to throw from fielder position f to the
// nearer of the two stump positions (0, 0) and (0, PitchLength), core
// spec §4.6 step 4.
func throwTime(f geom.Point, cfg Config) float64 {
	toStriker := geom.Distance(f, geom.Point{X: 0, Y: 0})
	toBowlerEnd := geom.Distance(f, geom.Point{X: 0, Y: cfg.PitchLength})
	d := math.Min(toStriker, toBowlerEnd)
	if d < cfg.MinThrowDistance {
		d = cfg.MinThrowDistance
	}
	return d / cfg.ThrowSpeed
}

// timeToRuns converts a total fielding time budget to a run count,
// core spec §4.6.
func timeToRuns(totalTime float64, cfg Config) int {
	if totalTime < cfg.TimeForFirstRun {
		return 0
	}
	extra := totalTime - cfg.TimeForFirstRun
	runs := 1 + int(extra/cfg.TimeForExtraRun)
	if runs > cfg.MaxGroundRuns {
		runs = cfg.MaxGroundRuns
	}
	return runs
}

// groundFieldingAttempt is the resolved outcome of one fielder's
// ground-fielding roll.
type groundFieldingAttempt struct {
	fielder Fielder
	roll    groundRoll
	runs    int
	outcome Outcome
}

// attemptGroundFielding computes the full time budget and resulting
// outcome for one fielder intercepting at (interceptDist, lateral)
// from the batter, core spec §4.6.
func attemptGroundFielding(f Fielder, traj Trajectory, interceptDist, lateral float64, level DifficultyLevel, cfg Config, source rng.Source) groundFieldingAttempt {
	roll := rollGround(level, cfg, source)

	ballTime := interceptDist / avgGroundSpeed(traj.exitSpeedKmh, interceptDist, cfg)
	effectiveLateral := math.Max(0, lateral-math.Max(0, ballTime-cfg.FielderReactionTime)*cfg.FielderRunSpeed)

	total := ballTime + collectionTime(effectiveLateral, cfg) + throwTime(geom.Point{X: f.X, Y: f.Y}, cfg)

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

	return groundFieldingAttempt{fielder: f, roll: roll, runs: runs, outcome: outcome}
}

func runsOutcome(runs int) Outcome {
	switch runs {
	case 1:
		return Outcome1
	case 2:
		return Outcome2
	default:
		return Outcome3
	}
}

// groundCandidate pairs a fielder with its ranked lateral distance for
// ground-fielding arbitration.
type groundCandidate struct {
	fielder        Fielder
	lateral        float64
	interceptDist  float64
}

// rankGroundCandidates returns eligible fielders ordered by lateral
// distance ascending, core spec §4.6.
func rankGroundCandidates(fielders []Fielder, traj Trajectory, cfg Config) []groundCandidate {
	landing := geom.Point{X: traj.LandingX, Y: traj.LandingY}
	var out []groundCandidate
	for _, f := range fielders {
		if !groundFieldingEligible(f, traj, cfg) {
			continue
		}
		fielderPt := geom.Point{X: f.X, Y: f.Y}
		dist, closest, _ := geom.PointToSegment(fielderPt, geom.Point{}, landing)
		interceptDist := geom.Distance(geom.Point{}, closest)
		out = append(out, groundCandidate{fielder: f, lateral: dist, interceptDist: interceptDist})
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].lateral < out[j-1].lateral; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
