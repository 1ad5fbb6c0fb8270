// Package ui draws the viewer's side panel.
package ui

import (
	"strconv"

	"hexlife/internal/core"
)

// HelpLines lists the viewer key bindings.
var HelpLines = []string{
	"space  pause / resume",
	"n      single step",
	"r / s  reset / new seed",
	"c / m  clear life / marks",
	"up/dn  resolution",
	"p      next pattern",
	"t      stamp at marks",
	"l      log marks",
	"e / d  enrich / deplete",
	"0-6    toggle birth",
	"sh+0-6 toggle survival",
	"lmb    stamp or toggle",
	"rmb    toggle mark",
}

// InfoLines flattens a snapshot into a heading per group followed by
// "label: value" rows. Parameters whose key is in skip are left out.
func InfoLines(s core.ParameterSnapshot, skip map[string]bool) []string {
	var out []string
	for _, g := range s.Groups {
		var rows []string
		for _, p := range g.Params {
			if skip[p.Key] {
				continue
			}
			rows = append(rows, "  "+p.Label+": "+p.Value)
		}
		if len(rows) == 0 {
			continue
		}
		out = append(out, g.Name)
		out = append(out, rows...)
	}
	return out
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// stepInt returns the value one control step away from cur in direction, and
// whether that value is inside the control's bounds.
func stepInt(ctrl core.ParameterControl, cur, direction int) (int, bool) {
	step := max(int(ctrl.Step+0.5), 1)
	target := cur + direction*step
	if ctrl.HasMin && target < int(ctrl.Min) {
		return cur, false
	}
	if ctrl.HasMax && target > int(ctrl.Max) {
		return cur, false
	}
	return target, true
}

// stepFloat is stepInt for floating point controls. Targets past a bound are
// clamped to it.
func stepFloat(ctrl core.ParameterControl, cur float64, direction int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := cur + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	diff := target - cur
	return target, diff > 1e-9 || diff < -1e-9
}
