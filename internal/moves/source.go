// Package moves reads externally supplied move records: whitespace
// separated integers, four per move, in the order fromFile fromRank
// toFile toRank. Ranks in the input use the top-down convention; the
// conversion to internal coordinates inverts them.
package moves

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Record is one raw four-integer move, each value in [0,7].
type Record struct {
	FromFile int
	FromRank int
	ToFile   int
	ToRank   int
}

// ErrFormat marks a malformed record: a non-integer token, a value
// outside [0,7], or a record cut short by end of input. Per the driver
// contract, a format error halts all further move processing.
var ErrFormat = fmt.Errorf("malformed move record")

// Source yields move records one at a time from a reader.
type Source struct {
	sc *bufio.Scanner
}

func New(r io.Reader) *Source {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Source{sc: sc}
}

// Next returns the next record, io.EOF when the source is cleanly
// exhausted, or an error wrapping ErrFormat on malformed input.
func (s *Source) Next() (Record, error) {
	vals := [4]int{}
	for i := 0; i < 4; i++ {
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return Record{}, err
			}
			if i == 0 {
				return Record{}, io.EOF
			}
			return Record{}, fmt.Errorf("%w: expected 4 integers, got %d", ErrFormat, i)
		}
		tok := s.sc.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Record{}, fmt.Errorf("%w: %q is not an integer", ErrFormat, tok)
		}
		if v < 0 || v > 7 {
			return Record{}, fmt.Errorf("%w: value %d out of range [0,7]", ErrFormat, v)
		}
		vals[i] = v
	}
	return Record{FromFile: vals[0], FromRank: vals[1], ToFile: vals[2], ToRank: vals[3]}, nil
}
