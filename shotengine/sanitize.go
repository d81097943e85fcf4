package shotengine

import (
	"fmt"
	"math"

	"github.com/Ben536/cricket-app/internal/geom"
)

// RawFielder is the unvalidated fielder record a caller supplies:
// x/y may be missing or non-finite, and name may be empty.
type RawFielder struct {
	X, Y float64
	HasX bool
	HasY bool
	Name string
}

// NewFielder builds a RawFielder from a known-present (x, y, name),
// the common case for callers that already validated their own input
// (e.g. the CLI's field presets).
func NewFielder(x, y float64, name string) RawFielder {
	return RawFielder{X: x, Y: y, HasX: true, HasY: true, Name: name}
}

// RawDelivery is the unvalidated input to SimulateDelivery.
type RawDelivery struct {
	ExitSpeed         float64
	HorizontalAngle   float64
	VerticalAngle     float64
	LandingX          float64
	LandingY          float64
	ProjectedDistance float64
	MaxHeight         float64
	Fielders          []RawFielder
	BoundaryDistance  float64
	Difficulty        DifficultyLevel
}

// clean is the sanitized, always-well-formed form of RawDelivery.
type clean struct {
	exitSpeed         float64
	horizontalAngle   float64
	verticalAngle     float64
	landingX          float64
	landingY          float64
	projectedDistance float64
	maxHeight         float64
	fielders          []Fielder
	boundaryDistance  float64
	difficulty        DifficultyLevel
}

// sanitize validates and clamps raw into a well-formed clean record,
// collecting a Warning for every adjustment it makes. It never fails:
// every RawDelivery produces a usable clean record (core spec §4.1,
// §7).
func sanitize(raw RawDelivery, cfg Config) (clean, []Warning) {
	var warnings []Warning
	note := func(field, reason string) {
		warnings = append(warnings, Warning{Field: field, Reason: reason})
	}

	finite := func(field string, v float64, fallback float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			note(field, "non-finite value replaced with default")
			return fallback
		}
		return v
	}

	c := clean{}

	c.exitSpeed = finite("exit_speed", raw.ExitSpeed, 0)
	if c.exitSpeed < 0 || c.exitSpeed > cfg.MaxExitSpeedKmh {
		note("exit_speed", fmt.Sprintf("clamped to [0, %g] km/h", cfg.MaxExitSpeedKmh))
		c.exitSpeed = geom.Clamp(c.exitSpeed, 0, cfg.MaxExitSpeedKmh)
	}

	c.verticalAngle = finite("vertical_angle", raw.VerticalAngle, 0)
	if c.verticalAngle < 0 || c.verticalAngle > cfg.MaxVerticalAngleDeg {
		note("vertical_angle", fmt.Sprintf("clamped to [0, %g] degrees", cfg.MaxVerticalAngleDeg))
		c.verticalAngle = geom.Clamp(c.verticalAngle, 0, cfg.MaxVerticalAngleDeg)
	}

	rawH := finite("horizontal_angle", raw.HorizontalAngle, 0)
	c.horizontalAngle = geom.NormalizeAngle(rawH)

	c.landingX = finite("landing_x", raw.LandingX, 0)
	c.landingY = finite("landing_y", raw.LandingY, 0)

	c.projectedDistance = finite("projected_distance", raw.ProjectedDistance, 0)
	if c.projectedDistance < 0 || c.projectedDistance > cfg.MaxProjectedDist {
		note("projected_distance", fmt.Sprintf("clamped to [0, %g] m", cfg.MaxProjectedDist))
		c.projectedDistance = geom.Clamp(c.projectedDistance, 0, cfg.MaxProjectedDist)
	}

	c.maxHeight = finite("max_height", raw.MaxHeight, 0)
	if c.maxHeight < 0 || c.maxHeight > cfg.MaxHeight {
		note("max_height", fmt.Sprintf("clamped to [0, %g] m", cfg.MaxHeight))
		c.maxHeight = geom.Clamp(c.maxHeight, 0, cfg.MaxHeight)
	}

	c.boundaryDistance = finite("boundary_distance", raw.BoundaryDistance, cfg.DefaultBoundary)
	if c.boundaryDistance <= 0 {
		note("boundary_distance", fmt.Sprintf("non-positive boundary replaced with default %g m", cfg.DefaultBoundary))
		c.boundaryDistance = cfg.DefaultBoundary
	}

	if norm, ok := raw.Difficulty.normalize(); !ok {
		note("difficulty", fmt.Sprintf("unknown difficulty %q degraded to medium", string(raw.Difficulty)))
		c.difficulty = norm
	} else {
		c.difficulty = norm
	}

	for i, rf := range raw.Fielders {
		x := rf.X
		y := rf.Y
		if !rf.HasX || !rf.HasY || math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			note("fielders", fmt.Sprintf("fielder index %d dropped: missing or non-finite coordinate", i))
			continue
		}
		name := rf.Name
		if name == "" {
			name = fmt.Sprintf("fielder_%d", i)
			note("fielders", fmt.Sprintf("fielder index %d missing name, defaulted to %q", i, name))
		}
		c.fielders = append(c.fielders, Fielder{X: x, Y: y, Name: name})
	}

	return c, warnings
}
