package levels

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceracer/common"
)

var (
	ErrEmptyMap           = errors.New("levels: empty map")
	ErrEmptyBaseRow       = errors.New("levels: bottom row has no tiles")
	ErrUnresolvedJunction = errors.New("levels: junction matches no pattern")
)

// Row holds the occupied cells of one grid row keyed by column.
type Row map[int]TileCode

// Columns returns the occupied columns in ascending order.
func (r Row) Columns() []int {
	cols := make([]int, 0, len(r))
	for x := range r {
		cols = append(cols, x)
	}
	slices.Sort(cols)
	return cols
}

// Span returns the smallest and largest occupied column.
func (r Row) Span() (lo, hi int, ok bool) {
	if len(r) == 0 {
		return 0, 0, false
	}
	first := true
	for x := range r {
		if first || x < lo {
			lo = x
		}
		if first || x > hi {
			hi = x
		}
		first = false
	}
	return lo, hi, true
}

// Grid is indexed by row, row 0 being the bottom line of the map file.
type Grid []Row

// Height is the number of rows.
func (g Grid) Height() int { return len(g) }

// At returns the tile at column x of row y.
func (g Grid) At(x, y int) (TileCode, bool) {
	if y < 0 || y >= len(g) {
		return 0, false
	}
	c, ok := g[y][x]
	return c, ok
}

// Span returns the column range used by any row.
func (g Grid) Span() (lo, hi int, ok bool) {
	for _, row := range g {
		rl, rh, rok := row.Span()
		if !rok {
			continue
		}
		if !ok || rl < lo {
			lo = rl
		}
		if !ok || rh > hi {
			hi = rh
		}
		ok = true
	}
	return lo, hi, ok
}

// Map is a parsed level: the tile grid with columns centred on the bottom
// row and the asteroid spawn points in world units.
type Map struct {
	Grid   Grid
	Spawns []cp.Vector
}

type probe struct {
	dx, dy int
	glyph  byte
}

var (
	leftDash          = probe{-1, 0, '-'}
	rightDash         = probe{1, 0, '-'}
	topBar            = probe{0, 1, '|'}
	bottomBar         = probe{0, -1, '|'}
	bottomLeftSlash   = probe{-1, -1, '/'}
	topRightSlash     = probe{1, 1, '/'}
	bottomRightBslash = probe{1, -1, '\\'}
	topLeftBslash     = probe{-1, 1, '\\'}
)

// Junction patterns in priority order; the first match wins.
var junctionPatterns = []struct {
	a, b probe
	code TileCode
}{
	{leftDash, bottomBar, TileMidLeftMidBot},
	{rightDash, bottomBar, TileMidBotMidRight},
	{leftDash, topBar, TileMidLeftMidTop},
	{rightDash, topBar, TileMidTopMidRight},
	{bottomLeftSlash, rightDash, TileBotLeftMidRight},
	{bottomRightBslash, leftDash, TileMidLeftBotRight},
	{bottomLeftSlash, topBar, TileBotLeftMidTop},
	{bottomRightBslash, topBar, TileMidTopBotRight},
	{leftDash, topRightSlash, TileMidLeftTopRight},
	{rightDash, topLeftBslash, TileTopLeftMidRight},
	{bottomBar, topRightSlash, TileMidBotTopRight},
	{bottomBar, topLeftBslash, TileTopLeftMidBot},
}

type glyphs []string

func (g glyphs) at(x, y int) byte {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return 0
	}
	return g[y][x]
}

func (g glyphs) matches(x, y int, p probe) bool {
	return g.at(x+p.dx, y+p.dy) == p.glyph
}

func (g glyphs) junction(x, y int) (TileCode, bool) {
	for _, p := range junctionPatterns {
		if g.matches(x, y, p.a) && g.matches(x, y, p.b) {
			return p.code, true
		}
	}
	return 0, false
}

// Parse reads a level in the text map format.
func Parse(r io.Reader) (*Map, error) {
	var lines glyphs
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: read map: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}
	slices.Reverse(lines)

	grid := make(Grid, len(lines))
	var pending, markers []image.Point
	for y, line := range lines {
		row := make(Row)
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '-':
				row[x] = TileMidLeftMidRight
			case '|':
				row[x] = TileMidTopMidBot
			case '/':
				row[x] = TileBotLeftTopRight
			case '\\':
				row[x] = TileTopLeftBotRight
			case '*':
				if code, ok := lines.junction(x, y); ok {
					row[x] = code
				} else {
					pending = append(pending, image.Pt(x, y))
				}
			case '+':
				markers = append(markers, image.Pt(x, y))
			}
		}
		grid[y] = row
	}

	ApplyDiagonals(grid, DiagonalCells(grid))

	for _, p := range pending {
		if _, ok := grid[p.Y][p.X]; !ok {
			return nil, fmt.Errorf("levels: line %d column %d: %w", len(lines)-p.Y, p.X+1, ErrUnresolvedJunction)
		}
	}

	offset, ok := baseOffset(grid[0])
	if !ok {
		return nil, ErrEmptyBaseRow
	}
	for y, row := range grid {
		shifted := make(Row, len(row))
		for x, code := range row {
			shifted[x-offset] = code
		}
		grid[y] = shifted
	}

	m := &Map{Grid: grid, Spawns: make([]cp.Vector, 0, len(markers))}
	for _, p := range markers {
		m.Spawns = append(m.Spawns, cp.Vector{
			X: TileToWorld(p.X-offset) + common.CellSize/2,
			Y: TileToWorld(p.Y) + common.CellSize/2,
		})
	}
	return m, nil
}

func baseOffset(row Row) (int, bool) {
	if len(row) == 0 {
		return 0, false
	}
	sum := 0
	for x := range row {
		sum += x
	}
	return int(math.Ceil(float64(sum) / float64(len(row)))), true
}

// DiagonalCell is a diagonal wall found in the grid.
type DiagonalCell struct {
	X, Y int
	Code TileCode
}

// DiagonalCells lists the '/' and '\' cells of the grid in row-major order.
func DiagonalCells(g Grid) []DiagonalCell {
	var cells []DiagonalCell
	for y, row := range g {
		for _, x := range row.Columns() {
			if c := row[x]; c == TileBotLeftTopRight || c == TileTopLeftBotRight {
				cells = append(cells, DiagonalCell{X: x, Y: y, Code: c})
			}
		}
	}
	return cells
}

// ApplyDiagonals fills the corner tiles around each diagonal cell. The cells
// are applied in row-major order whatever order they are passed in, so the
// result only depends on the set of cells.
func ApplyDiagonals(g Grid, cells []DiagonalCell) {
	cells = slices.Clone(cells)
	slices.SortFunc(cells, func(a, b DiagonalCell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	for _, c := range cells {
		var left, right, below, above TileCode
		switch c.Code {
		case TileBotLeftTopRight:
			left, right, below, above = TileBotRight, TileTopLeft, TileTopLeft, TileBotRight
		case TileTopLeftBotRight:
			left, right, below, above = TileTopRight, TileBotLeft, TileTopRight, TileBotLeft
		default:
			continue
		}
		g[c.Y][c.X-1] = left
		g[c.Y][c.X+1] = right
		if c.Y > 0 {
			g[c.Y-1][c.X] = below
		}
		if c.Y < len(g)-1 {
			g[c.Y+1][c.X] = above
		}
	}
}

// TileToWorld converts a tile index to the world coordinate of its lower or
// left edge.
func TileToWorld(i int) float64 {
	return float64(i * common.CellSize)
}

// WorldToTile converts a world coordinate to a tile index. The coordinate is
// truncated to an integer first and then floor divided.
func WorldToTile(v float64) int {
	return common.FloorDiv(int(v), common.CellSize)
}
