package grid

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Text worlds describe a layout as a rectangle of runes:
//
//	ooo#
//	oxol
//	omoL
//	oaoG
//
// 'o' walkable, '#' wall, 'G' goal, 'L' lava, 'l' lemon, 'a' apple,
// 'm' melon, 'x' possible starting location (uniform random if several).

// ParseTextWorld converts text-world lines into a Config. The lines must
// form a rectangle with at least one start and one goal.
func ParseTextWorld(lines []string) (Config, error) {
	cfg := Config{}
	if len(lines) == 0 {
		return cfg, fmt.Errorf("%w: empty text world", ErrConfiguration)
	}
	width := len([]rune(lines[0]))
	if width == 0 {
		return cfg, fmt.Errorf("%w: empty first row", ErrConfiguration)
	}

	state := 0
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return cfg, fmt.Errorf("%w: row %d has width %d, want %d", ErrConfiguration, y, len(runes), width)
		}
		for _, r := range runes {
			switch r {
			case 'o':
			case '#':
				cfg.Walls = append(cfg.Walls, state)
			case 'G':
				cfg.GoalStates = append(cfg.GoalStates, state)
			case 'L':
				cfg.LavaStates = append(cfg.LavaStates, state)
			case 'l':
				cfg.Lemons = append(cfg.Lemons, state)
			case 'a':
				cfg.Apples = append(cfg.Apples, state)
			case 'm':
				cfg.Melons = append(cfg.Melons, state)
			case 'x':
				cfg.InitialStates = append(cfg.InitialStates, state)
			default:
				return cfg, fmt.Errorf("%w: invalid character %q at row %d", ErrConfiguration, r, y)
			}
			state++
		}
	}

	if len(cfg.InitialStates) == 0 {
		return cfg, fmt.Errorf("%w: no starting states, place 'x' within the grid", ErrConfiguration)
	}
	if len(cfg.GoalStates) == 0 {
		return cfg, fmt.Errorf("%w: no goal states, place 'G' within the grid", ErrConfiguration)
	}

	cfg.Width = width
	cfg.Height = len(lines)
	return cfg, nil
}

// LoadTextWorld reads a text-world file, ignoring blank lines and
// whitespace, and builds a Layout from it.
func LoadTextWorld(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), "")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	cfg, err := ParseTextWorld(lines)
	if err != nil {
		return nil, err
	}
	return NewLayout(cfg)
}
