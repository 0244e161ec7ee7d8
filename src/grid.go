package taipower

/*------------------------------------------------------------------
 *
 * Purpose:	Convert between Taipower grid codes and TWD67 TM2.
 *
 * Description:	A grid code is a hierarchy of cells, coarse to fine:
 *
 *		G 81 50 H D 78 12
 *		|  |  | | |  |  |
 *		|  |  | | |  |  +-- V M	 1 m	(optional, default 0)
 *		|  |  | | |  +----- T U	 10 m
 *		|  |  | | +-------- S	 100 m column, A-E
 *		|  |  | +---------- R	 100 m row, A-H
 *		|  |  +------------ QQ	 500 m
 *		|  +--------------- PP	 800 m
 *		+------------------ block letter, 80 km x 50 km
 *
 *		easting  = Gx + PP*800 + R*100 + T*10 + V
 *		northing = Gy + QQ*500 + S*100 + U*10 + M
 *
 * References:	http://www.sunriver.com.tw/grid_taipower.htm
 *		https://wiki.osgeo.org/wiki/Taiwan_Power_Company_grid
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// TM2Coord is a TWD67 TM2 position in whole metres.
type TM2Coord struct {
	Easting  int
	Northing int
}

func (c TM2Coord) String() string {
	return fmt.Sprintf("E %d, N %d", c.Easting, c.Northing)
}

// GridCode is a parsed Taipower grid code. Letters are stored upper case.
type GridCode struct {
	Block  byte
	PP     int
	QQ     int
	Row    byte
	Column byte
	T      int
	U      int
	V      int
	M      int

	// HasSuffix records whether the optional 1 m digits were given.
	// When false, V and M are zero.
	HasSuffix bool
}

// String gives the canonical form, upper case with no spaces.
func (g GridCode) String() string {
	var s = fmt.Sprintf("%c%02d%02d%c%c%d%d", g.Block, g.PP, g.QQ, g.Row, g.Column, g.T, g.U)
	if g.HasSuffix {
		s += fmt.Sprintf("%d%d", g.V, g.M)
	}

	return s
}

type gridScanner struct {
	code string
	pos  int
}

func (s *gridScanner) malformed(expected string) error {
	if s.pos >= len(s.code) {
		return errors.Wrapf(ErrMalformedGridCode, "%q: expected %s, found end of input", s.code, expected)
	}

	var r, size = utf8.DecodeRuneInString(s.code[s.pos:])
	if r == utf8.RuneError && size <= 1 {
		return errors.Wrapf(ErrMalformedGridCode, "%q: expected %s at position %d, found invalid UTF-8 byte 0x%02x", s.code, expected, s.pos+1, s.code[s.pos])
	}

	return errors.Wrapf(ErrMalformedGridCode, "%q: expected %s at position %d, found %q", s.code, expected, s.pos+1, r)
}

func (s *gridScanner) letter(what string) (byte, error) {
	if s.pos >= len(s.code) || !isLetter(s.code[s.pos]) {
		return 0, s.malformed(what)
	}

	var ch = toUpper(s.code[s.pos])
	s.pos++

	return ch, nil
}

func (s *gridScanner) digit(what string) (int, error) {
	if s.pos >= len(s.code) || !isDigit(s.code[s.pos]) {
		return 0, s.malformed(what)
	}

	var d = int(s.code[s.pos] - '0')
	s.pos++

	return d, nil
}

func (s *gridScanner) twoDigits(what string) (int, error) {
	var hi, err = s.digit(what)
	if err != nil {
		return 0, err
	}

	lo, err := s.digit(what)
	if err != nil {
		return 0, err
	}

	return hi*10 + lo, nil
}

func (s *gridScanner) skipSpace() {
	for s.pos < len(s.code) {
		var r, size = utf8.DecodeRuneInString(s.code[s.pos:])
		if r == utf8.RuneError || !unicode.IsSpace(r) {
			return
		}

		s.pos += size
	}
}

/*------------------------------------------------------------------
 *
 * Function:	ParseGridCode
 *
 * Purpose:	Split a grid code into its named parts.
 *
 * Inputs:	code	- e.g. "G8150HD7812", "B8146CC58", "g8150 hd7812".
 *			  Letters in either case.  Whitespace is allowed
 *			  around the whole code and between QQ and the
 *			  row letter.
 *
 * Returns:	Parts, or an error wrapping ErrMalformedGridCode.
 *		Letters are not checked against any table here.
 *
 *------------------------------------------------------------------*/

func ParseGridCode(code string) (GridCode, error) {
	var g GridCode
	var err error

	var s = &gridScanner{code: strings.TrimSpace(code)}

	if s.code == "" {
		return GridCode{}, errors.Wrap(ErrMalformedGridCode, "empty grid code")
	}

	if g.Block, err = s.letter("block letter"); err != nil {
		return GridCode{}, err
	}

	if g.PP, err = s.twoDigits("two digit PP"); err != nil {
		return GridCode{}, err
	}

	if g.QQ, err = s.twoDigits("two digit QQ"); err != nil {
		return GridCode{}, err
	}

	s.skipSpace()

	if g.Row, err = s.letter("row letter"); err != nil {
		return GridCode{}, err
	}

	if g.Column, err = s.letter("column letter"); err != nil {
		return GridCode{}, err
	}

	if g.T, err = s.digit("digit T"); err != nil {
		return GridCode{}, err
	}

	if g.U, err = s.digit("digit U"); err != nil {
		return GridCode{}, err
	}

	if s.pos < len(s.code) {
		if g.V, err = s.digit("digit V"); err != nil {
			return GridCode{}, err
		}

		if g.M, err = s.digit("digit M"); err != nil {
			return GridCode{}, err
		}

		g.HasSuffix = true
	}

	if s.pos < len(s.code) {
		return GridCode{}, s.malformed("end of grid code")
	}

	return g, nil
}

// Decode evaluates the grid code against tables.
func (g GridCode) Decode(tables *GridTables) (TM2Coord, error) {
	var gx, gy, err = tables.BlockOrigin(g.Block)
	if err != nil {
		return TM2Coord{}, errors.Wrapf(err, "%s", g)
	}

	r, err := tables.RowCode(g.Row)
	if err != nil {
		return TM2Coord{}, errors.Wrapf(err, "%s", g)
	}

	s, err := tables.ColumnCode(g.Column)
	if err != nil {
		return TM2Coord{}, errors.Wrapf(err, "%s", g)
	}

	return TM2Coord{
		Easting:  gx + g.PP*CELL_WIDTH + r*100 + g.T*10 + g.V,
		Northing: gy + g.QQ*CELL_HEIGHT + s*100 + g.U*10 + g.M,
	}, nil
}

// Decoder turns grid code strings into TM2 coordinates.
// The zero value uses DefaultGridTables.
type Decoder struct {
	Tables *GridTables
}

func NewDecoder(tables *GridTables) *Decoder {
	return &Decoder{Tables: tables}
}

func (d *Decoder) tables() *GridTables {
	if d == nil || d.Tables == nil {
		return DefaultGridTables
	}

	return d.Tables
}

// Decode parses code and applies the additive formula.
// Errors wrap ErrMalformedGridCode or ErrUnknownGridLetter.
func (d *Decoder) Decode(code string) (TM2Coord, error) {
	var _, c, err = d.decode(code)

	return c, err
}

/*------------------------------------------------------------------
 *
 * Function:	decode
 *
 * Purpose:	Parse and evaluate, classifying failures.
 *
 * Description:	The code must match as a whole.  When it does not, a
 *		complete code may still be found starting further in,
 *		e.g. "ZZ0000ZZ00" holds "Z0000ZZ00".  If that code names
 *		a letter missing from the tables, the letter is the
 *		reported fault.  Otherwise the structural error stands
 *		and nothing is decoded.
 *
 *------------------------------------------------------------------*/

func (d *Decoder) decode(code string) (GridCode, TM2Coord, error) {
	var tables = d.tables()

	var g, parseErr = ParseGridCode(code)
	if parseErr == nil {
		var c, err = g.Decode(tables)
		if err != nil {
			return GridCode{}, TM2Coord{}, err
		}

		return g, c, nil
	}

	var trimmed = strings.TrimSpace(code)

	for start := 1; start < len(trimmed); start++ {
		if !isLetter(trimmed[start]) {
			continue
		}

		var inner, err = ParseGridCode(trimmed[start:])
		if err != nil {
			continue
		}

		if _, decodeErr := inner.Decode(tables); errors.Is(decodeErr, ErrUnknownGridLetter) {
			return GridCode{}, TM2Coord{}, errors.Wrapf(decodeErr, "%q", trimmed)
		}

		break
	}

	return GridCode{}, TM2Coord{}, parseErr
}

/*------------------------------------------------------------------
 *
 * Function:	Encode
 *
 * Purpose:	Inverse of Decode.
 *
 * Inputs:	c	- TM2 coordinate.
 *
 * Returns:	Grid code with the 1 m suffix always present,
 *		or ErrOutOfGrid.
 *
 * Description:	Blocks do not overlap so at most one letter matches.
 *
 *------------------------------------------------------------------*/

func (d *Decoder) Encode(c TM2Coord) (GridCode, error) {
	var t = d.tables()

	for _, block := range t.blockLetters() {
		var gx, gy = t.blockX[block], t.blockY[block]

		var dx = c.Easting - gx
		var dy = c.Northing - gy

		if dx < 0 || dx >= BLOCK_WIDTH || dy < 0 || dy >= BLOCK_HEIGHT {
			continue
		}

		var rx = dx % CELL_WIDTH
		var ry = dy % CELL_HEIGHT

		var row, rowOK = reverseLookup(t.row, rx/100)
		var column, columnOK = reverseLookup(t.column, ry/100)

		if !rowOK || !columnOK {
			return GridCode{}, errors.Wrapf(ErrOutOfGrid, "%s: no row/column letter for cell offset %d, %d", c, rx, ry)
		}

		return GridCode{
			Block:     block,
			PP:        dx / CELL_WIDTH,
			QQ:        dy / CELL_HEIGHT,
			Row:       row,
			Column:    column,
			T:         rx % 100 / 10,
			U:         ry % 100 / 10,
			V:         rx % 10,
			M:         ry % 10,
			HasSuffix: true,
		}, nil
	}

	return GridCode{}, errors.Wrapf(ErrOutOfGrid, "%s", c)
}

var defaultDecoder = &Decoder{}

// DecodeGridCode decodes with the default tables.
func DecodeGridCode(code string) (TM2Coord, error) {
	return defaultDecoder.Decode(code)
}

// EncodeGridCode encodes with the default tables.
func EncodeGridCode(c TM2Coord) (GridCode, error) {
	return defaultDecoder.Encode(c)
}
