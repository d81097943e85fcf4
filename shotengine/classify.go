package shotengine

// isAerial reports whether a shot counts as aerial for classification
// and the Result's IsAerial flag, core spec §4.4: true when the ball
// rises more than 1.5m or the launch angle exceeds 10 degrees. Catch
// eligibility does not depend on it.
func isAerial(traj Trajectory, verticalAngle float64) bool {
	return traj.MaxHeight > 1.5 || verticalAngle > 10
}

type angleBand struct {
	maxAbs      float64 // exclusive upper bound on |angle|, except the last band
	offGround   string
	offAerial   string
	legGround   string
	legAerial   string
}

// angleBands maps the normalized horizontal angle and the aerial
// flag to a descriptive name, core spec §4.4. The table is exhaustive
// and deterministic: every |a| in [0, 180] falls in exactly one band.
var angleBands = []angleBand{
	{15, "driven straight", "lofted straight", "driven straight", "lofted straight"},
	{45, "driven through cover", "lofted over cover", "flicked through midwicket", "lofted over midwicket"},
	{75, "cut", "cut in the air", "pulled", "hooked"},
	{105, "square cut", "upper cut", "swept", "swept in the air"},
	{135, "late cut", "edged", "glanced fine", "flicked fine"},
	{180, "edged behind", "edged in the air", "edged behind", "edged in the air"},
}

// classifyShot returns the descriptive shot name for a normalized
// horizontal angle (assumed already reduced to (-180, 180]) and the
// aerial flag.
func classifyShot(normalizedAngle float64, aerial bool) string {
	abs := normalizedAngle
	if abs < 0 {
		abs = -abs
	}
	offSide := normalizedAngle >= 0

	for i, band := range angleBands {
		if abs < band.maxAbs || i == len(angleBands)-1 {
			switch {
			case offSide && aerial:
				return band.offAerial
			case offSide && !aerial:
				return band.offGround
			case !offSide && aerial:
				return band.legAerial
			default:
				return band.legGround
			}
		}
	}
	// Unreachable: the last band accepts every angle the earlier
	// bands did not.
	return "unclassified"
}
