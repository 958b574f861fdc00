package distmat

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
	"strconv"
)

type stored struct {
	Condensed []float64
}

// Save writes the matrix to w in gob format. It can be read back with Open.
func (m *Matrix) Save(w io.Writer) error {
	return gob.NewEncoder(w).Encode(stored{m.condensed})
}

// Open loads a matrix previously written with Save. The usual validation is
// applied.
func Open(r io.Reader) (*Matrix, error) {
	var s stored
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return NewCondensed(s.Condensed)
}

// ReadCondensed reads whitespace separated distances in condensed order.
func ReadCondensed(r io.Reader) (*Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	d := make([]float64, 0, 1024)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %s", ErrMalformed, len(d), err)
		}
		d = append(d, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewCondensed(d)
}
