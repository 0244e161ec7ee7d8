package taipower

/*------------------------------------------------------------------
 *
 * Purpose:	Lookup tables for the Taiwan Power Company grid.
 *
 * Description:	The leading letter of a grid code picks an 80 km x 50 km
 *		block.  Its x and y origins come from two independent
 *		groupings over the same alphabet.  Two more letters pick
 *		a 100 m row/column inside a 1 km sub-block.
 *
 *		The compiled-in tables can be replaced by a YAML file
 *		of the same shape, see LoadGridTables.
 *
 *------------------------------------------------------------------*/

import (
	"io"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Size of one block along each axis, in metres.
const (
	BLOCK_WIDTH  = 80000
	BLOCK_HEIGHT = 50000
)

// Size of one sub-block cell along each axis, in metres.
const (
	CELL_WIDTH  = 800
	CELL_HEIGHT = 500
)

var defaultBlockX = map[int][]string{
	90000:  {"J", "M", "P"},
	170000: {"A", "D", "G", "K", "N", "Q", "T", "V"},
	250000: {"B", "E", "H", "L", "O", "R", "U", "W"},
	330000: {"C", "F", "I"},
}

var defaultBlockY = map[int][]string{
	2750000: {"A", "B", "C"},
	2700000: {"D", "E", "F"},
	2650000: {"G", "H", "I"},
	2600000: {"J", "K", "L"},
	2550000: {"M", "N", "O"},
	2500000: {"P", "Q", "R"},
	2450000: {"T", "U"},
	2400000: {"V", "W"},
}

var defaultRow = map[string]int{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 5, "G": 6, "H": 7}

var defaultColumn = map[string]int{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4}

// GridTables holds the letter lookups used to decode and encode grid codes.
// A GridTables is never modified after construction, so one value can be
// shared by any number of goroutines.
type GridTables struct {
	blockX map[byte]int
	blockY map[byte]int
	row    map[byte]int
	column map[byte]int
}

// DefaultGridTables are the tables published by Taipower.
var DefaultGridTables *GridTables

func init() {
	var err error

	DefaultGridTables, err = NewGridTables(defaultBlockX, defaultBlockY, defaultRow, defaultColumn)
	if err != nil {
		panic("error constructing default Taipower grid tables: " + err.Error())
	}
}

/*------------------------------------------------------------------
 *
 * Function:	NewGridTables
 *
 * Purpose:	Invert the literal groupings into letter lookups.
 *
 * Inputs:	blockX, blockY	- Offset in metres -> letters sharing it.
 *		row, column	- Letter -> digit code.
 *
 * Returns:	Tables, or ErrBadTables if a key is not a single letter,
 *		a letter appears under two offsets, or a table is empty.
 *
 *------------------------------------------------------------------*/

func NewGridTables(blockX, blockY map[int][]string, row, column map[string]int) (*GridTables, error) {
	var t = &GridTables{}
	var err error

	if t.blockX, err = invertGroups("block_x", blockX); err != nil {
		return nil, err
	}

	if t.blockY, err = invertGroups("block_y", blockY); err != nil {
		return nil, err
	}

	if t.row, err = letterTable("row", row); err != nil {
		return nil, err
	}

	if t.column, err = letterTable("column", column); err != nil {
		return nil, err
	}

	return t, nil
}

func invertGroups(name string, groups map[int][]string) (map[byte]int, error) {
	if len(groups) == 0 {
		return nil, errors.Wrapf(ErrBadTables, "%s is empty", name)
	}

	var out = make(map[byte]int)

	for offset, letters := range groups {
		for _, s := range letters {
			var ch, err = tableLetter(name, s)
			if err != nil {
				return nil, err
			}

			if prev, dup := out[ch]; dup {
				return nil, errors.Wrapf(ErrBadTables, "%s: letter %c listed under both %d and %d", name, ch, prev, offset)
			}

			out[ch] = offset
		}
	}

	return out, nil
}

func letterTable(name string, in map[string]int) (map[byte]int, error) {
	if len(in) == 0 {
		return nil, errors.Wrapf(ErrBadTables, "%s is empty", name)
	}

	var out = make(map[byte]int, len(in))

	for s, code := range in {
		var ch, err = tableLetter(name, s)
		if err != nil {
			return nil, err
		}

		if code < 0 || code > 9 {
			return nil, errors.Wrapf(ErrBadTables, "%s: code %d for letter %c is not a single digit", name, code, ch)
		}

		if _, dup := out[ch]; dup {
			return nil, errors.Wrapf(ErrBadTables, "%s: letter %c listed twice", name, ch)
		}

		out[ch] = code
	}

	return out, nil
}

func tableLetter(name string, s string) (byte, error) {
	if len(s) != 1 || !isLetter(s[0]) {
		return 0, errors.Wrapf(ErrBadTables, "%s: key %q is not a single letter", name, s)
	}

	return toUpper(s[0]), nil
}

// BlockOrigin returns the x and y origin of the block named by letter.
func (t *GridTables) BlockOrigin(letter byte) (int, int, error) {
	var ch = toUpper(letter)

	var gx, okX = t.blockX[ch]
	var gy, okY = t.blockY[ch]

	if !okX || !okY {
		return 0, 0, errors.Wrapf(ErrUnknownGridLetter, "block letter %q", string(letter))
	}

	return gx, gy, nil
}

// RowCode maps a row letter (A-H in the default tables) to its digit.
func (t *GridTables) RowCode(letter byte) (int, error) {
	var code, ok = t.row[toUpper(letter)]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownGridLetter, "row letter %q", string(letter))
	}

	return code, nil
}

// ColumnCode maps a column letter (A-E in the default tables) to its digit.
func (t *GridTables) ColumnCode(letter byte) (int, error) {
	var code, ok = t.column[toUpper(letter)]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownGridLetter, "column letter %q", string(letter))
	}

	return code, nil
}

// Block letters usable for encoding: present in both block tables.
// Sorted so lookups are deterministic.
func (t *GridTables) blockLetters() []byte {
	var letters []byte

	for ch := range t.blockX {
		if _, ok := t.blockY[ch]; ok {
			letters = append(letters, ch)
		}
	}

	slices.Sort(letters)

	return letters
}

func reverseLookup(table map[byte]int, code int) (byte, bool) {
	var found byte

	for ch, c := range table {
		if c == code && (found == 0 || ch < found) {
			found = ch
		}
	}

	return found, found != 0
}

/*------------------------------------------------------------------
 *
 * Function:	LoadGridTables
 *
 * Purpose:	Read replacement tables from YAML.
 *
 * Description:	Same shape as the compiled-in groupings:
 *
 *		block_x: {90000: [J, M, P], 170000: [A, D, ...], ...}
 *		block_y: {2750000: [A, B, C], ...}
 *		row:     {A: 0, B: 1, ...}
 *		column:  {A: 0, B: 1, ...}
 *
 *		Any table left out keeps its default.
 *
 *------------------------------------------------------------------*/

type gridTablesFile struct {
	BlockX map[int][]string `yaml:"block_x"`
	BlockY map[int][]string `yaml:"block_y"`
	Row    map[string]int   `yaml:"row"`
	Column map[string]int   `yaml:"column"`
}

func LoadGridTables(r io.Reader) (*GridTables, error) {
	var data, readErr = io.ReadAll(r)
	if readErr != nil {
		return nil, errors.Wrap(readErr, "reading grid tables")
	}

	var f gridTablesFile

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(ErrBadTables, "parsing YAML: %s", err)
	}

	if f.BlockX == nil {
		f.BlockX = defaultBlockX
	}

	if f.BlockY == nil {
		f.BlockY = defaultBlockY
	}

	if f.Row == nil {
		f.Row = defaultRow
	}

	if f.Column == nil {
		f.Column = defaultColumn
	}

	return NewGridTables(f.BlockX, f.BlockY, f.Row, f.Column)
}

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func toUpper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - 'a' + 'A'
	}

	return ch
}
