package shotengine

// Config holds every tunable the engine's components read from,
// exposed as a single immutable value rather than package-level
// globals: production code links DefaultConfig(), tests construct a
// modified copy and pass it explicitly.
type Config struct {
	// Physics.
	Gravity   float64 // m/s^2
	BatHeight float64 // m, contact height at the start of flight

	// Sanitizer ranges, core spec §4.1.
	MaxExitSpeedKmh     float64
	MaxVerticalAngleDeg float64
	MaxProjectedDist    float64
	MaxHeight           float64
	DefaultBoundary     float64

	// Geometry.
	MinShotLength float64 // m, below which a ground vector is degenerate

	// Catch eligibility and search, core spec §4.5.
	CatchExtendedRange  float64 // m, added to projected distance for eligibility
	MinSegmentParam     float64 // minimum t on origin->landing segment to be eligible
	CloseFielderRange   float64 // m, threshold for the relaxed rearward-hemisphere rule
	RearwardDotRelaxed  float64 // relaxed forward-hemisphere dot product threshold
	TrajectoryTimeStep  float64 // s, temporal search sampling interval
	TrajectorySearchMin float64 // s, earliest sample time
	CatchHeightMin      float64 // m
	CatchHeightMax      float64 // m
	CatchOptimalMin     float64 // m
	CatchOptimalMax     float64 // m
	FielderReactionTime float64 // s
	FielderRunSpeed     float64 // m/s
	FielderDiveRange    float64 // m
	FielderStaticRange  float64 // m, movement is free within this lateral distance

	// Catch difficulty weights, core spec §4.5.
	WeightReaction float64
	WeightMovement float64
	WeightHeight   float64
	WeightSpeed    float64

	// Catch probability model.
	CatchBaseProb    float64 // probability at D=0
	CatchSlope       float64 // probability lost per unit of D
	CatchProbCap     float64 // maximum allowed probability
	CatchModEasy     float64
	CatchModMedium   float64
	CatchModHard     float64

	// Dropped-catch partial-run draws, a calibration choice per core
	// spec §9 (preserved as literal discrete tuples, not derived from
	// time).
	DroppedRunsInnerRing [1]int
	DroppedRunsMidField  [3]int
	DroppedRunsDeep      [3]int

	// Ground fielding, core spec §4.6.
	GroundFieldingRange float64 // m
	PitchLength         float64 // m
	ThrowSpeed          float64 // m/s
	MinThrowDistance    float64 // m, floor for throw-time computation
	FumblePenalty       float64 // s
	MisfieldPenalty     float64 // s
	CollectionClean     float64 // s, effective lateral < CollectionCleanRange
	CollectionMoving    float64 // s, effective lateral < CollectionMovingRange
	CollectionDive      float64 // s, otherwise
	CollectionCleanRange  float64 // m
	CollectionMovingRange float64 // m
	GroundFrictionRate    float64 // decay constant, per metre of travel
	MinGroundSpeed        float64 // m/s, floor on friction-decayed speed
	PickupTimeStopped     float64 // s, retrieval-fallback fixed pickup cost

	// Time-to-runs conversion, core spec §4.6.
	TimeForFirstRun float64 // s
	TimeForExtraRun float64 // s
	MaxGroundRuns   int

	// Ground fielding outcome probabilities, keyed by difficulty.
	GroundProbEasy   [3]float64 // {stopped, fumbled, escaped}
	GroundProbMedium [3]float64
	GroundProbHard   [3]float64

	// Six/four thresholds.
	SixMinHeightAtBoundary float64 // m
}

// DefaultConfig returns the tunables documented in core spec §6.
func DefaultConfig() Config {
	return Config{
		Gravity:   9.81,
		BatHeight: 1.0,

		MaxExitSpeedKmh:     200,
		MaxVerticalAngleDeg: 90,
		MaxProjectedDist:    150,
		MaxHeight:           50,
		DefaultBoundary:     70.0,

		MinShotLength: 0.1,

		CatchExtendedRange:  10.0,
		MinSegmentParam:     0.05,
		CloseFielderRange:   10.0,
		RearwardDotRelaxed:  -5.0,
		TrajectoryTimeStep:  0.05,
		TrajectorySearchMin: 0.1,
		CatchHeightMin:      0.2,
		CatchHeightMax:      4.0,
		CatchOptimalMin:     0.8,
		CatchOptimalMax:     1.6,
		FielderReactionTime: 0.20,
		FielderRunSpeed:     7.0,
		FielderDiveRange:    2.5,
		FielderStaticRange:  1.5,

		WeightReaction: 0.25,
		WeightMovement: 0.35,
		WeightHeight:   0.20,
		WeightSpeed:    0.20,

		CatchBaseProb:  0.98,
		CatchSlope:     0.52,
		CatchProbCap:   0.99,
		CatchModEasy:   0.85,
		CatchModMedium: 1.00,
		CatchModHard:   1.15,

		DroppedRunsInnerRing: [1]int{1},
		DroppedRunsMidField:  [3]int{1, 1, 2},
		DroppedRunsDeep:      [3]int{2, 2, 3},

		GroundFieldingRange:   30.0,
		PitchLength:           20.12,
		ThrowSpeed:            30.0,
		MinThrowDistance:      0.1,
		FumblePenalty:         1.0,
		MisfieldPenalty:       2.5,
		CollectionClean:       0.5,
		CollectionMoving:      1.0,
		CollectionDive:        1.5,
		CollectionCleanRange:  0.5,
		CollectionMovingRange: 2.0,
		GroundFrictionRate:    0.03,
		MinGroundSpeed:        3.0,
		PickupTimeStopped:     0.4,

		TimeForFirstRun: 3.5,
		TimeForExtraRun: 2.5,
		MaxGroundRuns:   3,

		GroundProbEasy:   [3]float64{0.70, 0.20, 0.10},
		GroundProbMedium: [3]float64{0.85, 0.10, 0.05},
		GroundProbHard:   [3]float64{0.95, 0.04, 0.01},

		SixMinHeightAtBoundary: 0.5,
	}
}
