package shotengine

import (
	"testing"

	"github.com/Ben536/cricket-app/internal/geom"
)

func TestClassifyShotTable(t *testing.T) {
	cases := []struct {
		name   string
		angle  float64
		aerial bool
		want   string
	}{
		{"straight ground", 5, false, "driven straight"},
		{"straight aerial", -5, true, "lofted straight"},
		{"off cover ground", 30, false, "driven through cover"},
		{"leg midwicket ground", -30, false, "flicked through midwicket"},
		{"off cut ground", 60, false, "cut"},
		{"leg pulled ground", -60, false, "pulled"},
		{"leg hooked aerial", -60, true, "hooked"},
		{"off square cut aerial", 90, true, "upper cut"},
		{"leg swept ground", -90, false, "swept"},
		{"off late cut ground", 120, false, "late cut"},
		{"leg glanced fine", -120, false, "glanced fine"},
		{"off edged behind", 160, false, "edged behind"},
		{"leg edged behind symmetric", -160, false, "edged behind"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyShot(tt.angle, tt.aerial)
			if got != tt.want {
				t.Errorf("classifyShot(%v, %v) = %q, want %q", tt.angle, tt.aerial, got, tt.want)
			}
		})
	}
}

func TestClassifyShotPeriodicity(t *testing.T) {
	// Core spec §8 property 7: the classifier output for a + 360*k
	// must equal that for a, for every integer k. classifyShot itself
	// expects an already-normalized angle, so this exercises it the
	// way the pipeline does, through geom.NormalizeAngle first,
	// mirroring TestNormalizeAnglePeriodic in internal/geom.
	for _, a := range []float64{0, 15, 45, 75, 105, 135, 180, -15, -45} {
		want := classifyShot(geom.NormalizeAngle(a), false)
		for k := -3; k <= 3; k++ {
			got := classifyShot(geom.NormalizeAngle(a+360*float64(k)), false)
			if got != want {
				t.Errorf("classifyShot(normalize(%v + 360*%d)) = %q, want %q", a, k, got, want)
			}
		}
	}
}

func TestIsAerialThresholds(t *testing.T) {
	cases := []struct {
		name      string
		maxHeight float64
		vAngle    float64
		want      bool
	}{
		{"low and flat", 1.0, 5, false},
		{"high arc", 2.0, 5, true},
		{"steep angle low height", 1.0, 15, true},
		{"boundary height not aerial", 1.5, 5, false},
		{"boundary angle not aerial", 1.0, 10, false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			traj := Trajectory{MaxHeight: tt.maxHeight}
			if got := isAerial(traj, tt.vAngle); got != tt.want {
				t.Errorf("isAerial(maxHeight=%v, vAngle=%v) = %v, want %v", tt.maxHeight, tt.vAngle, got, tt.want)
			}
		})
	}
}
