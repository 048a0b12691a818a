package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadCSV reads a series from a CSV file. The first two columns are x and
// y. A first row that does not parse as numbers is taken as a header and
// names the series after its y column.
func LoadCSV(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening csv")
	}
	defer f.Close()

	s, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ReadCSV reads a series from CSV data.
func ReadCSV(r io.Reader) (*Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	s := &Series{}
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "parsing csv")
		}
		line++
		if len(rec) < 2 {
			return nil, errors.Errorf("line %d: need 2 columns, got %d", line, len(rec))
		}

		x, errX := strconv.ParseFloat(rec[0], 64)
		y, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			if line == 1 {
				s.Name = rec[1]
				continue
			}
			return nil, errors.Errorf("line %d: invalid number in %q", line, strings.Join(rec[:2], ","))
		}
		s.Append(x, y)
	}

	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}
	s.Sort()
	return s, nil
}
