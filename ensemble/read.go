package ensemble

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadNames reads one model name per line. Surrounding whitespace is trimmed
// and blank lines are skipped.
func ReadNames(r io.Reader) ([]string, error) {
	names := make([]string, 0)
	err := eachLine(r, func(line string) error {
		names = append(names, line)
		return nil
	})
	return names, err
}

// ReadScores reads one score per line. Blank lines are skipped.
func ReadScores(r io.Reader) ([]float64, error) {
	scores := make([]float64, 0)
	err := eachLine(r, func(line string) error {
		score, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return fmt.Errorf("Could not parse score on line %d: %s",
				len(scores)+1, err)
		}
		scores = append(scores, score)
		return nil
	})
	return scores, err
}

func eachLine(r io.Reader, fun func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if err := fun(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
