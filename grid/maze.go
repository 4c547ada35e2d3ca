package grid

import (
	"fmt"
	"math/rand"
)

// RandomMaze generates a maze layout of roughly the requested shape by
// carving passages with a randomized depth-first walk over a lattice of odd
// cells. The start is the top-left passage, the goal the bottom-right one.
// Even dimensions are rounded up to the next odd value so that the maze has
// a border of walls.
func RandomMaze(width, height int, src rand.Source) (*Layout, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: maze shape (%d, %d) must be at least 3x3", ErrConfiguration, width, height)
	}
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	if width == 3 && height == 3 {
		return nil, fmt.Errorf("%w: maze shape (%d, %d) cannot hold distinct start and goal", ErrConfiguration, width, height)
	}
	rng := rand.New(src)

	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = '#'
		}
	}

	type point struct{ x, y int }
	carve := func(p point) { cells[p.y][p.x] = 'o' }

	start := point{1, 1}
	carve(start)
	stack := []point{start}
	dirs := [4]point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		order := rng.Perm(len(dirs))
		advanced := false
		for _, i := range order {
			next := point{cur.x + dirs[i].x, cur.y + dirs[i].y}
			if next.x < 1 || next.x >= width-1 || next.y < 1 || next.y >= height-1 {
				continue
			}
			if cells[next.y][next.x] != '#' {
				continue
			}
			// knock down the wall between the two cells
			cells[cur.y+dirs[i].y/2][cur.x+dirs[i].x/2] = 'o'
			carve(next)
			stack = append(stack, next)
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	cells[start.y][start.x] = 'x'
	cells[height-2][width-2] = 'G'

	lines := make([]string, height)
	for y, row := range cells {
		lines[y] = string(row)
	}
	cfg, err := ParseTextWorld(lines)
	if err != nil {
		return nil, err
	}
	return NewLayout(cfg)
}
