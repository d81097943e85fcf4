package main

import "github.com/Ben536/cricket-app/shotengine"

// fieldPreset is one named eleven-fielder configuration. These are
// not part of shotengine's public API — SPEC_FULL.md §3's non-goal of
// "field-preset catalogs" applies to the engine itself — they exist
// only as convenient defaults for this demo CLI, grounded on
// original_source/engine/simulate_shot.py's FIELDS table.
type fieldPreset struct {
	Name     string
	Fielders []shotengine.RawFielder
}

var fieldPresets = map[string]fieldPreset{
	"standard": {
		Name: "standard",
		Fielders: rf(
			pos{0, 3, "wicketkeeper"},
			pos{5, 4, "first slip"},
			pos{7, 5, "second slip"},
			pos{8, -2, "gully"},
			pos{15, -15, "point"},
			pos{20, -30, "cover"},
			pos{5, -35, "mid-off"},
			pos{-5, -35, "mid-on"},
			pos{-20, -25, "midwicket"},
			pos{-15, -10, "square leg"},
			pos{-45, -45, "deep midwicket"},
		),
	},
	"attacking": {
		Name: "attacking",
		Fielders: rf(
			pos{0, 3, "wicketkeeper"},
			pos{4, 4, "first slip"},
			pos{6, 5, "second slip"},
			pos{8, 6, "third slip"},
			pos{10, 4, "gully"},
			pos{12, -8, "point"},
			pos{18, -25, "cover"},
			pos{5, -30, "mid-off"},
			pos{-5, -30, "mid-on"},
			pos{-18, -20, "midwicket"},
			pos{-12, -8, "square leg"},
		),
	},
	"defensive": {
		Name: "defensive",
		Fielders: rf(
			pos{0, 3, "wicketkeeper"},
			pos{5, 4, "first slip"},
			pos{20, -15, "point"},
			pos{35, -35, "cover"},
			pos{50, -40, "deep cover"},
			pos{10, -45, "long-off"},
			pos{-10, -45, "long-on"},
			pos{-35, -35, "deep midwicket"},
			pos{-50, -20, "deep square leg"},
			pos{-40, 20, "fine leg"},
			pos{40, 20, "third man"},
		),
	},
}

type pos struct {
	x, y float64
	name string
}

func rf(positions ...pos) []shotengine.RawFielder {
	out := make([]shotengine.RawFielder, len(positions))
	for i, p := range positions {
		out[i] = shotengine.NewFielder(p.x, p.y, p.name)
	}
	return out
}
