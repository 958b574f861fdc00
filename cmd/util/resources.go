package util

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/sampcon/distmat"
	"github.com/BurntSushi/sampcon/ensemble"
)

// MatrixRead loads a distance matrix. Files ending in ".txt" are read as
// whitespace separated condensed distances. Anything else is assumed to have
// been written by distmat.Matrix.Save.
func MatrixRead(path string) *distmat.Matrix {
	f := OpenFile(path)
	defer f.Close()

	var m *distmat.Matrix
	var err error
	if strings.HasSuffix(path, ".txt") {
		m, err = distmat.ReadCondensed(f)
	} else {
		m, err = distmat.Open(f)
	}
	Assert(err, "Could not read distance matrix '%s'", path)
	return m
}

func MatrixWrite(path string, m *distmat.Matrix) {
	f := CreateFile(path)
	defer f.Close()
	Assert(m.Save(f), "Could not write distance matrix '%s'", path)
}

func NamesRead(path string) []string {
	f := OpenFile(path)
	defer f.Close()

	names, err := ensemble.ReadNames(f)
	Assert(err, "Could not read model names from '%s'", path)
	return names
}

func ScoresRead(path string) []float64 {
	f := OpenFile(path)
	defer f.Close()

	scores, err := ensemble.ReadScores(f)
	Assert(err, "Could not read scores from '%s'", path)
	return scores
}

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}

func ParseInt(str string) int {
	num, err := strconv.ParseInt(str, 10, 32)
	Assert(err, "Could not parse '%s' as an integer", str)
	return int(num)
}
