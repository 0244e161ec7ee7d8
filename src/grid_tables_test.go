package taipower

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGridTables(t *testing.T) {
	assert.Len(t, DefaultGridTables.blockX, 22)
	assert.Len(t, DefaultGridTables.blockY, 22)
	assert.Equal(t, []byte("ABCDEFGHIJKLMNOPQRTUVW"), DefaultGridTables.blockLetters())

	var gx, gy, err = DefaultGridTables.BlockOrigin('G')
	require.NoError(t, err)
	assert.Equal(t, 170000, gx)
	assert.Equal(t, 2650000, gy)

	gx, gy, err = DefaultGridTables.BlockOrigin('b')
	require.NoError(t, err)
	assert.Equal(t, 250000, gx)
	assert.Equal(t, 2750000, gy)

	_, _, err = DefaultGridTables.BlockOrigin('S')
	assert.ErrorIs(t, err, ErrUnknownGridLetter)

	for i, ch := range []byte("ABCDEFGH") {
		var code, rowErr = DefaultGridTables.RowCode(ch)
		require.NoError(t, rowErr)
		assert.Equal(t, i, code)
	}

	for i, ch := range []byte("abcde") {
		var code, colErr = DefaultGridTables.ColumnCode(ch)
		require.NoError(t, colErr)
		assert.Equal(t, i, code)
	}

	_, err = DefaultGridTables.ColumnCode('F')
	assert.ErrorIs(t, err, ErrUnknownGridLetter)
}

// Blocks must tile the plane without overlap or the encoder is ambiguous.
func TestDefaultBlocksDoNotOverlap(t *testing.T) {
	var seen = map[[2]int]byte{}

	for _, ch := range DefaultGridTables.blockLetters() {
		var gx, gy, err = DefaultGridTables.BlockOrigin(ch)
		require.NoError(t, err)

		var key = [2]int{gx, gy}
		if prev, dup := seen[key]; dup {
			t.Errorf("blocks %c and %c share origin %v", prev, ch, key)
		}

		seen[key] = ch
		assert.Zero(t, (gx-90000)%BLOCK_WIDTH, "x origin of %c", ch)
		assert.Zero(t, (gy-2400000)%BLOCK_HEIGHT, "y origin of %c", ch)
	}
}

func TestNewGridTablesRejects(t *testing.T) {
	tests := []struct {
		name   string
		blockX map[int][]string
		blockY map[int][]string
		row    map[string]int
		column map[string]int
	}{
		{
			name:   "letter under two offsets",
			blockX: map[int][]string{1: {"A"}, 2: {"A"}},
			blockY: defaultBlockY, row: defaultRow, column: defaultColumn,
		},
		{
			name:   "same letter in both cases",
			blockX: defaultBlockX,
			blockY: map[int][]string{1: {"A", "a"}},
			row:    defaultRow, column: defaultColumn,
		},
		{
			name:   "two character key",
			blockX: map[int][]string{1: {"AB"}},
			blockY: defaultBlockY, row: defaultRow, column: defaultColumn,
		},
		{
			name:   "digit key",
			blockX: defaultBlockX, blockY: defaultBlockY,
			row:    map[string]int{"1": 0},
			column: defaultColumn,
		},
		{
			name:   "code is not a digit",
			blockX: defaultBlockX, blockY: defaultBlockY, row: defaultRow,
			column: map[string]int{"A": 10},
		},
		{
			name:   "empty table",
			blockX: map[int][]string{},
			blockY: defaultBlockY, row: defaultRow, column: defaultColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var _, err = NewGridTables(tt.blockX, tt.blockY, tt.row, tt.column)
			assert.ErrorIs(t, err, ErrBadTables)
		})
	}
}

func TestLoadGridTables(t *testing.T) {
	var tables, err = LoadGridTables(strings.NewReader(`
block_x:
  100000: [A]
block_y:
  2000000: [A]
row: {A: 0, B: 1}
`))
	require.NoError(t, err)

	var gx, gy, originErr = tables.BlockOrigin('A')
	require.NoError(t, originErr)
	assert.Equal(t, 100000, gx)
	assert.Equal(t, 2000000, gy)

	_, _, originErr = tables.BlockOrigin('G')
	assert.ErrorIs(t, originErr, ErrUnknownGridLetter)

	_, err = tables.RowCode('H')
	assert.ErrorIs(t, err, ErrUnknownGridLetter)

	// Column table was left out so it keeps its default.
	var code, colErr = tables.ColumnCode('E')
	require.NoError(t, colErr)
	assert.Equal(t, 4, code)
}

func TestLoadGridTablesEmptyIsDefault(t *testing.T) {
	var tables, err = LoadGridTables(strings.NewReader(""))
	require.NoError(t, err)

	var c, decodeErr = NewDecoder(tables).Decode("G8150HD7812")
	require.NoError(t, decodeErr)
	assert.Equal(t, TM2Coord{Easting: 235571, Northing: 2675382}, c)
}

func TestLoadGridTablesBadYAML(t *testing.T) {
	var _, err = LoadGridTables(strings.NewReader("block_x: [not, a, map"))
	assert.ErrorIs(t, err, ErrBadTables)

	_, err = LoadGridTables(strings.NewReader("block_x: {90000: [J, J]}"))
	assert.ErrorIs(t, err, ErrBadTables)
}
