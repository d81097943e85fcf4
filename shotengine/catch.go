package shotengine

import (
	"math"

	"github.com/Ben536/cricket-app/internal/geom"
	"github.com/Ben536/cricket-app/internal/rng"
)

// catchIntercept is the best catchable sample found for one fielder,
// or ok=false if none of the sampled points was reachable.
type catchIntercept struct {
	ok         bool
	t          float64
	lateral    float64
	z          float64
	hadOptimal bool
}

// catchEligible implements the three-part eligibility test of core
// spec §4.5: forward hemisphere (relaxed for close fielders), within
// extended range of the projected distance, and not behind the
// striker on the origin->landing segment.
func catchEligible(f Fielder, traj Trajectory, cfg Config) bool {
	fielderPt := geom.Point{X: f.X, Y: f.Y}
	landing := geom.Point{X: traj.LandingX, Y: traj.LandingY}
	dirL := geom.UnitVector(landing)

	dot := geom.Dot(fielderPt, dirL)
	distToBatter := geom.Distance(fielderPt, geom.Point{})
	threshold := 0.0
	if distToBatter < cfg.CloseFielderRange {
		threshold = cfg.RearwardDotRelaxed
	}
	if dot <= threshold {
		return false
	}

	if distToBatter > traj.ProjectedDistance+cfg.CatchExtendedRange {
		return false
	}

	_, _, t := geom.PointToSegment(fielderPt, geom.Point{}, landing)
	return t >= cfg.MinSegmentParam
}

// bestCatchIntercept performs the bounded temporal search of core spec
// §4.5: sample the trajectory every TrajectoryTimeStep from
// TrajectorySearchMin to the time of flight, keep catchable samples
// (reachable height and lateral distance), and prefer the one with the
// largest slack in the optimal height band, falling back to the
// closest-to-optimal height if no sample was optimal.
func bestCatchIntercept(f Fielder, traj Trajectory, cfg Config) catchIntercept {
	var best catchIntercept
	bestSlack := math.Inf(-1)
	bestHeightGap := math.Inf(1)

	for tSample := cfg.TrajectorySearchMin; tSample <= traj.TimeOfFlight; tSample += cfg.TrajectoryTimeStep {
		x, y, z := traj.PositionAt(tSample, cfg)
		if z < cfg.CatchHeightMin || z > cfg.CatchHeightMax {
			continue
		}

		lateral := geom.Distance(geom.Point{X: f.X, Y: f.Y}, geom.Point{X: x, Y: y})
		reach := math.Max(0, tSample-cfg.FielderReactionTime)*cfg.FielderRunSpeed + cfg.FielderDiveRange
		if lateral > reach {
			continue
		}

		optimal := z >= cfg.CatchOptimalMin && z <= cfg.CatchOptimalMax
		slack := reach - lateral

		if optimal {
			if !best.ok || !best.hadOptimal || slack > bestSlack {
				best = catchIntercept{ok: true, t: tSample, lateral: lateral, z: z, hadOptimal: true}
				bestSlack = slack
			}
		} else if !best.ok || !best.hadOptimal {
			gap := heightGap(z, cfg)
			if !best.ok || gap < bestHeightGap {
				best = catchIntercept{ok: true, t: tSample, lateral: lateral, z: z, hadOptimal: false}
				bestHeightGap = gap
			}
		}
	}

	return best
}

func heightGap(z float64, cfg Config) float64 {
	if z < cfg.CatchOptimalMin {
		return cfg.CatchOptimalMin - z
	}
	return z - cfg.CatchOptimalMax
}

// catchDifficulty scores a found intercept on [0, 1] as the weighted
// sum of four components, core spec §4.5.
func catchDifficulty(ic catchIntercept, f Fielder, traj Trajectory, cfg Config) (difficulty float64, movementRequired, movementPossible, speedAtFielder float64) {
	reactionScore := geom.Clamp(1-(ic.t-0.5)/1.5, 0, 1)

	var movementScore float64
	switch {
	case ic.lateral <= cfg.FielderStaticRange:
		movementScore = 0
	case ic.lateral <= cfg.FielderStaticRange+cfg.FielderDiveRange:
		frac := (ic.lateral - cfg.FielderStaticRange) / cfg.FielderDiveRange
		movementScore = 0.3 + frac*(0.5-0.3)
	default:
		runNeeded := ic.lateral - cfg.FielderStaticRange - cfg.FielderDiveRange
		maxRunAvailable := math.Max(0, ic.t-cfg.FielderReactionTime) * cfg.FielderRunSpeed
		frac := 1.0
		if maxRunAvailable > 0 {
			frac = geom.Clamp(runNeeded/maxRunAvailable, 0, 1)
		}
		movementScore = 0.5 + frac*(1.0-0.5)
	}

	var heightScore float64
	if ic.hadOptimal {
		heightScore = 0
	} else if ic.z < cfg.CatchOptimalMin {
		heightScore = geom.Clamp((cfg.CatchOptimalMin-ic.z)/0.7, 0, 1)
	} else {
		heightScore = geom.Clamp((ic.z-cfg.CatchOptimalMax)/1.7, 0, 1)
	}

	speedAtFielder = traj.exitSpeedKmh
	speedScore := geom.Clamp((speedAtFielder-60)/60, 0, 1)

	difficulty = cfg.WeightReaction*reactionScore +
		cfg.WeightMovement*movementScore +
		cfg.WeightHeight*heightScore +
		cfg.WeightSpeed*speedScore

	movementRequired = ic.lateral
	reach := math.Max(0, ic.t-cfg.FielderReactionTime)*cfg.FielderRunSpeed + cfg.FielderDiveRange
	movementPossible = reach

	return difficulty, movementRequired, movementPossible, speedAtFielder
}

func catchTypeFor(difficulty float64) CatchType {
	switch {
	case difficulty < 0.25:
		return CatchRegulation
	case difficulty < 0.6:
		return CatchHard
	default:
		return CatchSpectacular
	}
}

// catchProbability computes the roll probability, core spec §4.5.
func catchProbability(difficulty float64, difficultyLevel DifficultyLevel, cfg Config) float64 {
	base := cfg.CatchBaseProb - cfg.CatchSlope*difficulty
	var mod float64
	switch difficultyLevel {
	case DifficultyEasy:
		mod = cfg.CatchModEasy
	case DifficultyHard:
		mod = cfg.CatchModHard
	default:
		mod = cfg.CatchModMedium
	}
	p := base * mod
	return math.Min(p, cfg.CatchProbCap)
}

// catchCandidate is one fielder's resolved catch attempt, ranked by
// intercept distance from the batter for arbitration.
type catchCandidate struct {
	fielder        Fielder
	distFromBatter float64
	intercept      catchIntercept
	analysis       CatchAnalysis
	caught         bool
}

// evaluateCatches runs the catch engine over every eligible fielder
// and returns candidates ranked closest-to-batter first, core spec
// §4.5/§4.7. Only fielders with a reachable intercept are returned.
// Each candidate's caught/dropped roll is drawn here, one draw per
// candidate in input order before ranking; the caller acts on the
// first ranked candidate, whose roll is always decisive.
func evaluateCatches(fielders []Fielder, traj Trajectory, difficultyLevel DifficultyLevel, cfg Config, source rng.Source) []catchCandidate {
	var candidates []catchCandidate

	for _, f := range fielders {
		if !catchEligible(f, traj, cfg) {
			continue
		}
		ic := bestCatchIntercept(f, traj, cfg)
		if !ic.ok {
			continue
		}

		difficulty, movementRequired, movementPossible, speedAtFielder := catchDifficulty(ic, f, traj, cfg)
		analysis := CatchAnalysis{
			CanCatch:           true,
			Difficulty:         difficulty,
			CatchType:          catchTypeFor(difficulty),
			TimeToIntercept:    ic.t,
			MovementRequired:   movementRequired,
			MovementPossible:   movementPossible,
			BallSpeedAtFielder: speedAtFielder,
			HeightAtIntercept:  ic.z,
			ReactionTime:       cfg.FielderReactionTime,
		}

		p := catchProbability(difficulty, difficultyLevel, cfg)
		caught := source.NextUniform() < p

		ix, iy, _ := traj.PositionAt(ic.t, cfg)
		candidates = append(candidates, catchCandidate{
			fielder:        f,
			distFromBatter: geom.Distance(geom.Point{X: ix, Y: iy}, geom.Point{}),
			intercept:      ic,
			analysis:       analysis,
			caught:         caught,
		})
	}

	// Arbitration order: closest intercept distance from the batter
	// first (core spec §4.5).
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].distFromBatter < candidates[j-1].distFromBatter; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	return candidates
}

// droppedCatchRuns draws the partial-run outcome for a dropped catch
// that does not reach the boundary, core spec §4.5/§9: a calibration
// choice of small discrete tuples keyed by how deep the ball landed,
// not derived from the fielding time budget.
func droppedCatchRuns(landingDist float64, cfg Config, source rng.Source) int {
	switch {
	case landingDist < 20:
		return cfg.DroppedRunsInnerRing[int(source.NextUniform()*float64(len(cfg.DroppedRunsInnerRing)))]
	case landingDist < 45:
		return cfg.DroppedRunsMidField[int(source.NextUniform()*float64(len(cfg.DroppedRunsMidField)))]
	default:
		return cfg.DroppedRunsDeep[int(source.NextUniform()*float64(len(cfg.DroppedRunsDeep)))]
	}
}
