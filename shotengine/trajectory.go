package shotengine

import (
	"math"

	"github.com/Ben536/cricket-app/internal/geom"
)

// buildTrajectory turns sanitized launch parameters into a Trajectory,
// core spec §4.3. Unlike the teacher's drag-integrated flight model,
// this is a closed-form parabolic computation — the spec is explicit
// that the engine's physics are a simple no-drag trajectory, not a
// numerically integrated one.
func buildTrajectory(c clean, cfg Config) Trajectory {
	t := Trajectory{
		verticalAngleDeg: c.verticalAngle,
		exitSpeedKmh:     c.exitSpeed,
	}

	if c.exitSpeed <= 0 {
		t.TimeOfFlight = 0
		t.ProjectedDistance = 0
		t.MaxHeight = cfg.BatHeight
		t.DirX, t.DirY = 0, -1
		return t
	}

	speed := c.exitSpeed / 3.6 // km/h -> m/s
	vRad := c.verticalAngle * math.Pi / 180

	vVertical := speed * math.Sin(vRad)
	vHorizontal := speed * math.Cos(vRad)

	var tFlight, maxHeight float64
	if vVertical > 0 {
		apex := cfg.BatHeight + vVertical*vVertical/(2*cfg.Gravity)
		tUp := vVertical / cfg.Gravity
		tDown := math.Sqrt(2 * apex / cfg.Gravity)
		tFlight = tUp + tDown
		maxHeight = apex
	} else {
		tFlight = math.Sqrt(2 * cfg.BatHeight / cfg.Gravity)
		maxHeight = cfg.BatHeight
	}

	t.TimeOfFlight = tFlight
	t.VerticalSpeed = vVertical
	t.HorizontalSpeed = vHorizontal
	t.MaxHeight = maxHeight

	if vHorizontal < 0.1 {
		// Near-vertical shot: preserve apex height but no ground
		// travel, lands back at the origin.
		t.ProjectedDistance = 0
		t.LandingX, t.LandingY = 0, 0
		t.DirX, t.DirY = 0, -1
		return t
	}

	t.ProjectedDistance = vHorizontal * tFlight

	landing := geom.Point{X: c.landingX, Y: c.landingY}
	if math.Hypot(landing.X, landing.Y) >= cfg.MinShotLength {
		t.LandingX, t.LandingY = landing.X, landing.Y
		dir := geom.UnitVector(landing)
		t.DirX, t.DirY = dir.X, dir.Y
	} else {
		hRad := c.horizontalAngle * math.Pi / 180
		dir := geom.Point{X: -math.Sin(hRad), Y: -math.Cos(hRad)}
		t.DirX, t.DirY = dir.X, dir.Y
		t.LandingX = t.DirX * t.ProjectedDistance
		t.LandingY = t.DirY * t.ProjectedDistance
	}

	return t
}

// PositionAt returns the ball's (x, y, z) position at time t seconds
// after contact, under the same no-drag parabolic model used to build
// the trajectory. z is clamped at 0 (the model is not evaluated past
// ground contact).
func (t Trajectory) PositionAt(sec float64, cfg Config) (x, y, z float64) {
	x = t.DirX * t.HorizontalSpeed * sec
	y = t.DirY * t.HorizontalSpeed * sec
	z = cfg.BatHeight + t.VerticalSpeed*sec - 0.5*cfg.Gravity*sec*sec
	if z < 0 {
		z = 0
	}
	return x, y, z
}

// HeightAtDistance returns the ball's height at horizontal distance d
// along its flight path using the piecewise model of core spec §4.3:
// flat shots (vertical angle < 5°) descend linearly from BatHeight to
// 0, while lofted shots rise quadratically to MaxHeight at an
// apex-fraction of the distance and then fall quadratically to 0.
func (t Trajectory) HeightAtDistance(d float64, cfg Config) float64 {
	if t.ProjectedDistance <= 0 {
		return 0
	}
	frac := d / t.ProjectedDistance
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	if t.verticalAngleDeg < 5 {
		return cfg.BatHeight * (1 - frac)
	}

	apexFrac := 0.3 + (t.verticalAngleDeg/90)*0.2
	if frac <= apexFrac {
		u := frac / apexFrac
		return t.MaxHeight * u * u
	}
	u := (frac - apexFrac) / (1 - apexFrac)
	return t.MaxHeight * (1 - u*u)
}
