// Command shotsim drives the shot outcome engine from the command
// line: a small demo/test harness, not the request/response transport
// SPEC_FULL.md scopes out of the engine itself. It mirrors
// original_source/engine/simulate_shot.py's argument surface.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/Ben536/cricket-app/internal/rng"
	"github.com/Ben536/cricket-app/shotengine"
)

func main() {
	speed := flag.Float64("speed", 0, "exit speed, km/h (required)")
	angle := flag.Float64("angle", 0, "horizontal angle, degrees: 0=straight, +ve=off side, -ve=leg side (required)")
	elevation := flag.Float64("elevation", 0, "vertical angle, degrees above horizontal (required)")
	difficulty := flag.String("difficulty", "medium", "fielding difficulty: easy, medium, hard")
	field := flag.String("field", "standard", "field configuration: standard, attacking, defensive")
	boundary := flag.Float64("boundary", 70.0, "boundary radius, metres")
	distanceOverride := flag.Float64("distance", 0, "scale the landing point to this distance, metres (0 = off); the engine still derives its projected distance from speed and angles")
	seed := flag.Int64("seed", 42, "RNG seed")
	asJSON := flag.Bool("json", false, "emit the Result as JSON instead of a text summary")
	iterations := flag.Int("n", 1, "run the delivery this many times and print an outcome histogram")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, name := range []string{"speed", "angle", "elevation"} {
		if !set[name] {
			fmt.Fprintf(os.Stderr, "missing required flag -%s\n", name)
			os.Exit(2)
		}
	}

	preset, ok := fieldPresets[*field]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown field preset %q (want standard, attacking, or defensive)\n", *field)
		os.Exit(2)
	}

	traj := calculateTrajectory(*speed, *angle, *elevation)
	if *distanceOverride > 0 && traj.distance > 0 {
		scale := *distanceOverride / traj.distance
		traj.distance = *distanceOverride
		traj.landingX *= scale
		traj.landingY *= scale
	}

	delivery := shotengine.Delivery{
		ExitSpeed:         *speed,
		HorizontalAngle:   *angle,
		VerticalAngle:     *elevation,
		LandingX:          traj.landingX,
		LandingY:          traj.landingY,
		ProjectedDistance: traj.distance,
		MaxHeight:         traj.maxHeight,
		Fielders:          preset.Fielders,
		BoundaryDistance:  *boundary,
		Difficulty:        shotengine.DifficultyLevel(*difficulty),
	}

	engine := shotengine.NewEngine("")
	source := rng.NewPCG32()
	source.SeedFromInt64(*seed)

	if *iterations <= 1 {
		result := engine.SimulateDelivery(delivery, source)
		if *asJSON {
			printJSON(traj, result)
		} else {
			printSummary(*speed, *angle, *elevation, *difficulty, *field, traj, result)
		}
		return
	}

	histogram := map[shotengine.Outcome]int{}
	for i := 0; i < *iterations; i++ {
		result := engine.SimulateDelivery(delivery, source)
		histogram[result.Outcome]++
	}
	printHistogram(*iterations, histogram)
}

type trajectoryPreview struct {
	distance  float64
	maxHeight float64
	landingX  float64
	landingY  float64
}

// calculateTrajectory reproduces original_source/engine/api.py's
// pre-engine physics: the same closed-form no-drag model shotengine's
// own Trajectory Model applies internally, run here so the CLI has a
// landing point to hand the engine, matching how a radar-fed caller
// would in practice derive one.
func calculateTrajectory(speedKmh, hAngleDeg, vAngleDeg float64) trajectoryPreview {
	speed := speedKmh / 3.6
	hRad := hAngleDeg * math.Pi / 180
	vRad := vAngleDeg * math.Pi / 180

	vHorizontal := speed * math.Cos(vRad)
	vVertical := speed * math.Sin(vRad)
	const g = 9.81

	var tFlight, maxHeight float64
	if vVertical > 0 {
		tUp := vVertical / g
		apex := 1 + vVertical*vVertical/(2*g)
		tDown := math.Sqrt(2 * apex / g)
		tFlight = tUp + tDown
		maxHeight = apex
	} else {
		tFlight = math.Sqrt(2 * 1.0 / g)
		maxHeight = 1.0
	}

	distance := vHorizontal * tFlight
	return trajectoryPreview{
		distance:  distance,
		maxHeight: maxHeight,
		landingX:  distance * math.Sin(hRad),
		landingY:  -distance * math.Cos(hRad),
	}
}

func printJSON(traj trajectoryPreview, result shotengine.Result) {
	out := struct {
		Trajectory trajectoryPreview `json:"-"`
		Result     shotengine.Result `json:"result"`
	}{traj, result}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

func printSummary(speed, angle, elevation float64, difficulty, field string, traj trajectoryPreview, result shotengine.Result) {
	fmt.Println("============================================================")
	fmt.Println("SHOT SIMULATION")
	fmt.Println("============================================================")
	fmt.Printf("\nInput:\n")
	fmt.Printf("  Speed:      %g km/h\n", speed)
	fmt.Printf("  H. Angle:   %g deg\n", angle)
	fmt.Printf("  Elevation:  %g deg\n", elevation)
	fmt.Printf("  Difficulty: %s\n", difficulty)
	fmt.Printf("  Field:      %s\n", field)
	fmt.Printf("\nCalculated trajectory:\n")
	fmt.Printf("  Distance:   %.1fm\n", traj.distance)
	fmt.Printf("  Max height: %.1fm\n", traj.maxHeight)
	fmt.Printf("  Landing:    (%.1f, %.1f)m\n", traj.landingX, traj.landingY)
	fmt.Printf("\nResult:\n")
	fmt.Printf("  Outcome:    %s\n", result.Outcome)
	fmt.Printf("  Runs:       %d\n", result.Runs)
	fmt.Printf("  Boundary:   %v\n", result.IsBoundary)
	fmt.Printf("  Aerial:     %v\n", result.IsAerial)
	if result.FielderInvolved != nil {
		fmt.Printf("  Fielder:    %s\n", *result.FielderInvolved)
	}
	fmt.Printf("\n  -> %s\n", result.Description)
	fmt.Println("============================================================")
}

func printHistogram(iterations int, histogram map[shotengine.Outcome]int) {
	fmt.Printf("\nDistribution over %d iterations:\n", iterations)
	fmt.Println("----------------------------------------")
	for outcome, count := range histogram {
		pct := float64(count) / float64(iterations) * 100
		fmt.Printf("  %-8s %4d (%5.1f%%)\n", outcome, count, pct)
	}
}
