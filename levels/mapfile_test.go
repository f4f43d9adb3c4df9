package levels

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestJunctionPatterns(t *testing.T) {
	// Rows are listed bottom first; the junction is always at (1, 1).
	cases := []struct {
		name string
		rows glyphs
		want TileCode
	}{
		{"left_dash_bottom_bar", glyphs{" | ", "-* "}, TileMidLeftMidBot},
		{"right_dash_bottom_bar", glyphs{" | ", " *-"}, TileMidBotMidRight},
		{"left_dash_top_bar", glyphs{"", "-* ", " | "}, TileMidLeftMidTop},
		{"right_dash_top_bar", glyphs{"", " *-", " | "}, TileMidTopMidRight},
		{"bottom_left_slash_right_dash", glyphs{"/  ", " *-"}, TileBotLeftMidRight},
		{"bottom_right_bslash_left_dash", glyphs{"  \\", "-* "}, TileMidLeftBotRight},
		{"bottom_left_slash_top_bar", glyphs{"/", " * ", " |"}, TileBotLeftMidTop},
		{"bottom_right_bslash_top_bar", glyphs{"  \\", " * ", " |"}, TileMidTopBotRight},
		{"left_dash_top_right_slash", glyphs{"", "-* ", "  /"}, TileMidLeftTopRight},
		{"right_dash_top_left_bslash", glyphs{"", " *-", "\\"}, TileTopLeftMidRight},
		{"bottom_bar_top_right_slash", glyphs{" |", " *", "  /"}, TileMidBotTopRight},
		{"bottom_bar_top_left_bslash", glyphs{" |", " *", "\\"}, TileTopLeftMidBot},
		{"first_match_wins", glyphs{" | ", "-*-"}, TileMidLeftMidBot},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := c.rows.junction(1, 1)
			if !ok {
				t.Fatalf("junction not resolved")
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}

	t.Run("no_match", func(t *testing.T) {
		if code, ok := (glyphs{"", " * "}).junction(1, 1); ok {
			t.Fatalf("expected no match, got %v", code)
		}
	})
}

func TestParseCorridor(t *testing.T) {
	var b strings.Builder
	for y := 9; y >= 0; y-- {
		if y == 1 {
			b.WriteString(" |+|\n")
			continue
		}
		b.WriteString(" | |\n")
	}

	m, err := Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.Grid.Height() != 10 {
		t.Fatalf("expected 10 rows, got %d", m.Grid.Height())
	}
	for y, row := range m.Grid {
		if len(row) != 2 || row[-1] != TileMidTopMidBot || row[1] != TileMidTopMidBot {
			t.Fatalf("row %d: unexpected tiles %v", y, row)
		}
	}
	want := []cp.Vector{{X: 64, Y: 192}}
	if !slices.Equal(m.Spawns, want) {
		t.Fatalf("expected spawns %v, got %v", want, m.Spawns)
	}
}

func TestParseGlyphs(t *testing.T) {
	m, err := Parse(strings.NewReader("|\r\n-\r\n/ \\\r\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// Bottom row "/ \" occupies columns 0 and 2 before the diagonal pass adds
	// corners at -1, 1 and 3, so the offset is ceil(5/5) = 1.
	if got := m.Grid[2][-1]; got != TileMidTopMidBot {
		t.Fatalf("top row: expected %v, got %v", TileMidTopMidBot, got)
	}
	if got := m.Grid[0][-1]; got != TileBotLeftTopRight {
		t.Fatalf("expected '/' at column -1, got %v", got)
	}
	if got := m.Grid[0][1]; got != TileTopLeftBotRight {
		t.Fatalf("expected '\\' at column 1, got %v", got)
	}
	// '/' writes TopLeft to its right, '\' then overwrites it with TopRight
	// from its left.
	if got := m.Grid[0][0]; got != TileTopRight {
		t.Fatalf("shared corner: expected %v, got %v", TileTopRight, got)
	}
	if got := m.Grid[1][-1]; got != TileBotRight {
		t.Fatalf("above '/': expected %v, got %v", TileBotRight, got)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrEmptyMap},
		{"empty_base_row", "| |\n\n", ErrEmptyBaseRow},
		{"lonely_junction", "|\n*\n", ErrUnresolvedJunction},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.text))
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestParseJunctionResolvedByDiagonal(t *testing.T) {
	m, err := Parse(strings.NewReader("*/\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// The '/' corner replaces the junction; columns 0..2, offset 1.
	if got := m.Grid[0][-1]; got != TileBotRight {
		t.Fatalf("expected %v, got %v", TileBotRight, got)
	}
}

func TestApplyDiagonalsOrderAndIdempotence(t *testing.T) {
	build := func() Grid {
		return Grid{
			{0: TileMidTopMidBot, 4: TileMidTopMidBot},
			{1: TileBotLeftTopRight, 3: TileTopLeftBotRight},
			{2: TileBotLeftTopRight},
			{2: TileMidTopMidBot},
		}
	}

	forward := build()
	cells := DiagonalCells(forward)
	if len(cells) != 3 {
		t.Fatalf("expected 3 diagonal cells, got %d", len(cells))
	}
	ApplyDiagonals(forward, cells)

	reversed := build()
	rc := slices.Clone(cells)
	slices.Reverse(rc)
	ApplyDiagonals(reversed, rc)

	for y := range forward {
		if !maps.Equal(forward[y], reversed[y]) {
			t.Fatalf("row %d differs with reversed order: %v vs %v", y, forward[y], reversed[y])
		}
	}

	again := build()
	ApplyDiagonals(again, cells)
	ApplyDiagonals(again, cells)
	for y := range forward {
		if !maps.Equal(forward[y], again[y]) {
			t.Fatalf("row %d differs after second pass: %v vs %v", y, forward[y], again[y])
		}
	}

	single := Grid{{1: TileBotLeftTopRight}}
	ApplyDiagonals(single, DiagonalCells(single))
	want := Row{0: TileBotRight, 1: TileBotLeftTopRight, 2: TileTopLeft}
	if !maps.Equal(single[0], want) {
		t.Fatalf("single row: expected %v, got %v", want, single[0])
	}
}

func TestWorldToTile(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{127.9, 0},
		{128, 1},
		{-0.5, 0},
		{-1, -1},
		{-128, -1},
		{-129, -2},
	}
	for _, c := range cases {
		if got := WorldToTile(c.in); got != c.want {
			t.Fatalf("WorldToTile(%v): expected %d, got %d", c.in, c.want, got)
		}
	}
	if got := TileToWorld(-2); got != -256 {
		t.Fatalf("TileToWorld(-2): expected -256, got %v", got)
	}
}

func TestRowSpan(t *testing.T) {
	r := Row{4: 0, -2: 0, 7: 0}
	lo, hi, ok := r.Span()
	if !ok || lo != -2 || hi != 7 {
		t.Fatalf("expected -2..7, got %d..%d ok=%v", lo, hi, ok)
	}
	if _, _, ok := (Row{}).Span(); ok {
		t.Fatalf("empty row should have no span")
	}
	if got := r.Columns(); !slices.Equal(got, []int{-2, 4, 7}) {
		t.Fatalf("unexpected columns %v", got)
	}
}
