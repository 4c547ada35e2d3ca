// Package render draws grid layouts and policy overlays as text. It consumes
// the layout's read-only accessors and the current agent state; the
// environment core has no dependency on it.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/griduniverse/griduniverse-go/grid"
)

// Cell glyphs follow the text-world alphabet: 'x' agent, '#' wall, 'G' goal,
// 'L' lava, 'l'/'a'/'m' fruit, 'o' walkable ground.
type Renderer struct {
	layout *grid.Layout

	// Color enables aurora terminal colors.
	Color bool
}

func NewRenderer(l *grid.Layout) *Renderer {
	return &Renderer{layout: l}
}

func (r *Renderer) glyph(state int, current int, consumed map[int]bool) string {
	if state == current {
		return r.colored("x", aurora.CyanFg|aurora.BoldFm)
	}
	switch {
	case r.layout.IsWall(state):
		return "#"
	case r.layout.IsGoal(state):
		return r.colored("G", aurora.GreenFg)
	case r.layout.IsLava(state):
		return r.colored("L", aurora.RedFg)
	}
	if f, ok := r.layout.FruitAt(state); ok && !consumed[state] {
		switch f.Kind {
		case grid.Lemon:
			return r.colored("l", aurora.YellowFg)
		case grid.Melon:
			return r.colored("m", aurora.MagentaFg)
		case grid.Apple:
			return r.colored("a", aurora.GreenFg)
		}
	}
	return "o"
}

func (r *Renderer) colored(s string, color aurora.Color) string {
	if !r.Color {
		return s
	}
	return aurora.Colorize(s, color).String()
}

// RenderState writes the grid with the agent at current. Already consumed
// fruit cells draw as plain ground.
func (r *Renderer) RenderState(w io.Writer, current int, consumed []int) error {
	eaten := make(map[int]bool, len(consumed))
	for _, s := range consumed {
		eaten[s] = true
	}

	state := 0
	for row := 0; row < r.layout.Height(); row++ {
		for col := 0; col < r.layout.Width(); col++ {
			if _, err := fmt.Fprint(w, r.glyph(state, current, eaten), " "); err != nil {
				return err
			}
			state++
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// RenderEpisode draws the live position and consumption state of an episode.
func (r *Renderer) RenderEpisode(w io.Writer, e *grid.Episode) error {
	return r.RenderState(w, e.CurrentState(), e.ConsumedFruit())
}

// Sprint renders the grid to a string, convenient for live terminal writers.
func (r *Renderer) Sprint(current int, consumed []int) string {
	var sb strings.Builder
	r.RenderState(&sb, current, consumed) // strings.Builder never errors
	return sb.String()
}

var actionArrows = [grid.NumActions]rune{'↑', '→', '↓', '←'}

// RenderPolicyArrows overlays a (numStates x numActions) policy table on the
// grid, drawing an arrow for every action of non-zero probability. Only the
// table's shape is validated; the probabilities themselves are taken as
// given.
func (r *Renderer) RenderPolicyArrows(w io.Writer, policy [][]float64) error {
	if len(policy) != r.layout.NumStates() {
		return fmt.Errorf("%w: policy has %d rows, layout has %d states", grid.ErrConfiguration, len(policy), r.layout.NumStates())
	}

	state := 0
	for row := 0; row < r.layout.Height(); row++ {
		for col := 0; col < r.layout.Width(); col++ {
			if len(policy[state]) != grid.NumActions {
				return fmt.Errorf("%w: policy row %d has %d actions, want %d", grid.ErrConfiguration, state, len(policy[state]), grid.NumActions)
			}
			cell := r.arrowCell(state, policy[state])
			if _, err := fmt.Fprintf(w, "%-5s", cell); err != nil {
				return err
			}
			state++
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func (r *Renderer) arrowCell(state int, probs []float64) string {
	// no colors here, escape codes would break the column padding
	switch {
	case r.layout.IsWall(state):
		return "#"
	case r.layout.IsGoal(state):
		return "G"
	case r.layout.IsLava(state):
		return "L"
	}
	var sb strings.Builder
	for a, p := range probs {
		if p > 1e-8 {
			sb.WriteRune(actionArrows[a])
		}
	}
	if sb.Len() == 0 {
		return "."
	}
	return sb.String()
}
