package shotengine

import (
	"testing"

	"github.com/Ben536/cricket-app/internal/rng"
)

// straightTrajectory builds a Trajectory flying due "forward" (negative
// Y) with hand-computable PositionAt samples, for tests that need exact
// control over reachability rather than realistic launch parameters.
func straightTrajectory(horizSpeed, vSpeed, timeOfFlight, maxHeight float64) Trajectory {
	return Trajectory{
		DirX:              0,
		DirY:              -1,
		HorizontalSpeed:   horizSpeed,
		VerticalSpeed:     vSpeed,
		TimeOfFlight:      timeOfFlight,
		MaxHeight:         maxHeight,
		ProjectedDistance: horizSpeed * timeOfFlight,
		LandingX:          0,
		LandingY:          -horizSpeed * timeOfFlight,
		exitSpeedKmh:      50,
		verticalAngleDeg:  16.7,
	}
}

func TestCatchEligibleForwardHemisphere(t *testing.T) {
	cfg := DefaultConfig()
	traj := straightTrajectory(10, 3, 0.851, 1.459)

	behind := Fielder{X: 0, Y: 10, Name: "behind"}
	if catchEligible(behind, traj, cfg) {
		t.Error("fielder directly behind the striker should not be eligible")
	}

	ahead := Fielder{X: 0, Y: -6, Name: "long off"}
	if !catchEligible(ahead, traj, cfg) {
		t.Error("fielder on the line of flight should be eligible")
	}
}

func TestCatchEligibleOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	traj := straightTrajectory(10, 3, 0.851, 1.459)

	far := Fielder{X: 0, Y: -(traj.ProjectedDistance + cfg.CatchExtendedRange + 20), Name: "deep"}
	if catchEligible(far, traj, cfg) {
		t.Error("fielder far beyond extended range should not be eligible")
	}
}

func TestBestCatchInterceptPrefersOptimalBand(t *testing.T) {
	cfg := DefaultConfig()
	traj := straightTrajectory(10, 3, 0.851, 1.459)
	// At t=0.65 the ball is at y=-6.5, height ~0.878 (inside the
	// optimal band), directly in front of this fielder.
	f := Fielder{X: 0, Y: -6.5, Name: "long off"}

	ic := bestCatchIntercept(f, traj, cfg)
	if !ic.ok {
		t.Fatal("expected a reachable intercept for a fielder on the line of flight")
	}
	if !ic.hadOptimal {
		t.Errorf("expected an optimal-height sample, got %+v", ic)
	}
	if ic.z < cfg.CatchOptimalMin || ic.z > cfg.CatchOptimalMax {
		t.Errorf("intercept marked optimal but height %v outside [%v, %v]", ic.z, cfg.CatchOptimalMin, cfg.CatchOptimalMax)
	}
}

func TestBestCatchInterceptNoneWhenUnreachable(t *testing.T) {
	cfg := DefaultConfig()
	traj := straightTrajectory(10, 3, 0.851, 1.459)
	// Far off to the side, well beyond dive range at any sample time.
	f := Fielder{X: 50, Y: -6.5, Name: "boundary rider"}

	ic := bestCatchIntercept(f, traj, cfg)
	if ic.ok {
		t.Errorf("expected no reachable intercept, got %+v", ic)
	}
}

func TestCatchDifficultyMonotonicInLateralDistance(t *testing.T) {
	cfg := DefaultConfig()
	traj := straightTrajectory(10, 3, 0.851, 1.459)

	near := catchIntercept{ok: true, t: 1.0, lateral: 0.5, z: 1.2, hadOptimal: true}
	far := catchIntercept{ok: true, t: 1.0, lateral: 5.0, z: 1.2, hadOptimal: true}

	dNear, _, _, _ := catchDifficulty(near, Fielder{}, traj, cfg)
	dFar, _, _, _ := catchDifficulty(far, Fielder{}, traj, cfg)

	if dFar <= dNear {
		t.Errorf("difficulty should increase with lateral distance: near=%v far=%v", dNear, dFar)
	}
}

func TestCatchDifficultyHigherOffOptimalHeight(t *testing.T) {
	cfg := DefaultConfig()
	traj := straightTrajectory(10, 3, 0.851, 1.459)

	inBand := catchIntercept{ok: true, t: 1.0, lateral: 1.0, z: 1.2, hadOptimal: true}
	offBand := catchIntercept{ok: true, t: 1.0, lateral: 1.0, z: 3.5, hadOptimal: false}

	dIn, _, _, _ := catchDifficulty(inBand, Fielder{}, traj, cfg)
	dOff, _, _, _ := catchDifficulty(offBand, Fielder{}, traj, cfg)

	if dOff <= dIn {
		t.Errorf("difficulty should be higher away from the optimal band: in=%v off=%v", dIn, dOff)
	}
}

func TestCatchTypeForThresholds(t *testing.T) {
	cases := []struct {
		difficulty float64
		want       CatchType
	}{
		{0.0, CatchRegulation},
		{0.24, CatchRegulation},
		{0.25, CatchHard},
		{0.59, CatchHard},
		{0.6, CatchSpectacular},
		{1.0, CatchSpectacular},
	}
	for _, tt := range cases {
		if got := catchTypeFor(tt.difficulty); got != tt.want {
			t.Errorf("catchTypeFor(%v) = %v, want %v", tt.difficulty, got, tt.want)
		}
	}
}

func TestCatchProbabilityDecreasesWithDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	easy := catchProbability(0.1, DifficultyMedium, cfg)
	hard := catchProbability(0.9, DifficultyMedium, cfg)
	if hard >= easy {
		t.Errorf("probability should fall as difficulty rises: easy=%v hard=%v", easy, hard)
	}
}

func TestCatchProbabilityRespectsLevelModifier(t *testing.T) {
	cfg := DefaultConfig()
	d := 0.4
	easyLevel := catchProbability(d, DifficultyEasy, cfg)
	hardLevel := catchProbability(d, DifficultyHard, cfg)
	if hardLevel <= easyLevel {
		t.Errorf("hard difficulty level should raise catch probability over easy: easy=%v hard=%v", easyLevel, hardLevel)
	}
}

func TestCatchProbabilityCapped(t *testing.T) {
	cfg := DefaultConfig()
	p := catchProbability(-5, DifficultyHard, cfg)
	if p > cfg.CatchProbCap {
		t.Errorf("probability = %v, must not exceed cap %v", p, cfg.CatchProbCap)
	}
}

func TestEvaluateCatchesRankedByDistanceFromBatter(t *testing.T) {
	cfg := DefaultConfig()
	traj := straightTrajectory(10, 3, 0.851, 1.459)
	// Each fielder sits exactly on the flight path at a sample time
	// (0.05s grid starting at 0.1s), guaranteeing a zero-lateral,
	// reachable, optimal-height intercept.
	fielders := []Fielder{
		{X: 0, Y: -6, Name: "deepest"},
		{X: 0, Y: -2, Name: "closest"},
		{X: 0, Y: -4, Name: "middle"},
	}
	source := rng.Always(0.99) // never caught, just check ordering
	candidates := evaluateCatches(fielders, traj, DifficultyMedium, cfg, source)
	if len(candidates) != 3 {
		t.Fatalf("expected all 3 fielders to produce a candidate, got %d: %+v", len(candidates), candidates)
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i].distFromBatter < candidates[i-1].distFromBatter {
			t.Errorf("candidates not sorted ascending by distance: %+v", candidates)
		}
	}
}

func TestEvaluateCatchesRollUsesSource(t *testing.T) {
	cfg := DefaultConfig()
	traj := straightTrajectory(10, 3, 0.851, 1.459)
	fielders := []Fielder{{X: 0, Y: -2, Name: "long off"}}

	caughtSource := rng.Always(0.0)
	candidates := evaluateCatches(fielders, traj, DifficultyMedium, cfg, caughtSource)
	if len(candidates) != 1 || !candidates[0].caught {
		t.Errorf("expected a caught candidate with a near-zero draw, got %+v", candidates)
	}

	droppedSource := rng.Always(0.999999)
	candidates = evaluateCatches(fielders, traj, DifficultyMedium, cfg, droppedSource)
	if len(candidates) != 1 || candidates[0].caught {
		t.Errorf("expected a dropped candidate with a near-one draw, got %+v", candidates)
	}
}

func TestDroppedCatchRunsByDepth(t *testing.T) {
	cfg := DefaultConfig()
	innerSource := rng.Always(0.0)
	if got := droppedCatchRuns(10, cfg, innerSource); got != cfg.DroppedRunsInnerRing[0] {
		t.Errorf("inner ring runs = %v, want %v", got, cfg.DroppedRunsInnerRing[0])
	}
	midSource := rng.Always(0.0)
	if got := droppedCatchRuns(30, cfg, midSource); got != cfg.DroppedRunsMidField[0] {
		t.Errorf("mid field runs = %v, want %v", got, cfg.DroppedRunsMidField[0])
	}
	deepSource := rng.Always(0.0)
	if got := droppedCatchRuns(60, cfg, deepSource); got != cfg.DroppedRunsDeep[0] {
		t.Errorf("deep runs = %v, want %v", got, cfg.DroppedRunsDeep[0])
	}
}
