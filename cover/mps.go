package cover

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type mpsSection int

const (
	mpsNone mpsSection = iota
	mpsName
	mpsRows
	mpsColumns
	mpsRHS
	mpsBounds
	mpsEnd
)

var mpsSections = map[string]mpsSection{
	"NAME":    mpsName,
	"ROWS":    mpsRows,
	"COLUMNS": mpsColumns,
	"RHS":     mpsRHS,
	"BOUNDS":  mpsBounds,
	"ENDATA":  mpsEnd,
}

// mpsReader accumulates the content of a MPS file while it is parsed.
type mpsReader struct {
	costRow string         // Name of the objective row
	rows    map[string]int // Row name to element index
	rhs     []bool         // For each row, whether a RHS of 1 was found
	columns map[string]int // Column name to subset index
	costs   []float64
	subsets [][]int
}

// ReadMPS reads a set partitioning problem in the MPS format.
// Only the subset of MPS needed to describe such a problem is supported:
// one N row, E rows only, matrix coefficients and right-hand sides equal to 1,
// integer markers, and bounds making columns binary.
func ReadMPS(r io.Reader) (*Instance, error) {
	mr := mpsReader{rows: make(map[string]int), columns: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	section := mpsNone
	lineNb := 0
	for scanner.Scan() {
		lineNb++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if line[0] != ' ' && line[0] != '\t' { // Section header
			sec, ok := mpsSections[fields[0]]
			if !ok {
				return nil, &InputError{Err: errors.Errorf("line %d: unsupported MPS section %q", lineNb, fields[0])}
			}
			section = sec
			if section == mpsEnd {
				break
			}
			continue
		}
		var err error
		switch section {
		case mpsRows:
			err = mr.parseRow(fields)
		case mpsColumns:
			err = mr.parseColumn(fields)
		case mpsRHS:
			err = mr.parseRHS(fields)
		case mpsBounds:
			err = mr.parseBound(fields)
		default:
			err = errors.New("data outside of any section")
		}
		if err != nil {
			return nil, &InputError{Err: errors.Wrapf(err, "line %d", lineNb)}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &InputError{Err: errors.Wrap(err, "could not read MPS data")}
	}
	if mr.costRow == "" {
		return nil, &InputError{Err: errors.New("no objective (N) row")}
	}
	for name, i := range mr.rows {
		if !mr.rhs[i] {
			return nil, &InputError{Err: errors.Errorf("row %q has no right-hand side of 1", name)}
		}
	}
	return New(len(mr.rows), mr.costs, mr.subsets)
}

func (mr *mpsReader) parseRow(fields []string) error {
	if len(fields) != 2 {
		return errors.Errorf("ROWS entry should have 2 fields, got %d", len(fields))
	}
	sense, name := fields[0], fields[1]
	switch sense {
	case "N":
		if mr.costRow != "" {
			return errors.Errorf("second objective row %q", name)
		}
		mr.costRow = name
	case "E":
		if _, ok := mr.rows[name]; ok || name == mr.costRow {
			return errors.Errorf("duplicate row %q", name)
		}
		mr.rows[name] = len(mr.rows)
		mr.rhs = append(mr.rhs, false)
	default:
		return errors.Errorf("unsupported row sense %q for row %q: only E rows are supported", sense, name)
	}
	return nil
}

func (mr *mpsReader) parseColumn(fields []string) error {
	if len(fields) >= 2 && strings.Contains(fields[1], "MARKER") {
		return nil
	}
	if len(fields) != 3 && len(fields) != 5 {
		return errors.Errorf("COLUMNS entry should have 3 or 5 fields, got %d", len(fields))
	}
	col, ok := mr.columns[fields[0]]
	if !ok {
		col = len(mr.costs)
		mr.columns[fields[0]] = col
		mr.costs = append(mr.costs, 0)
		mr.subsets = append(mr.subsets, nil)
	}
	for i := 1; i < len(fields); i += 2 {
		val, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return errors.Wrapf(err, "invalid value for column %q", fields[0])
		}
		if fields[i] == mr.costRow {
			mr.costs[col] = val
			continue
		}
		row, ok := mr.rows[fields[i]]
		if !ok {
			return errors.Errorf("unknown row %q in column %q", fields[i], fields[0])
		}
		if val != 1 {
			return errors.Errorf("coefficient of column %q in row %q is %v, expected 1", fields[0], fields[i], val)
		}
		mr.subsets[col] = append(mr.subsets[col], row)
	}
	return nil
}

func (mr *mpsReader) parseRHS(fields []string) error {
	if len(fields)%2 == 1 { // Leading RHS set name
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return errors.New("empty RHS entry")
	}
	for i := 0; i < len(fields); i += 2 {
		val, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return errors.Wrapf(err, "invalid right-hand side for row %q", fields[i])
		}
		if fields[i] == mr.costRow {
			if val != 0 {
				return errors.Errorf("objective offset %v is not supported", val)
			}
			continue
		}
		row, ok := mr.rows[fields[i]]
		if !ok {
			return errors.Errorf("unknown row %q in RHS", fields[i])
		}
		if val != 1 {
			return errors.Errorf("right-hand side of row %q is %v, expected 1", fields[i], val)
		}
		mr.rhs[row] = true
	}
	return nil
}

func (mr *mpsReader) parseBound(fields []string) error {
	if len(fields) < 3 {
		return errors.Errorf("BOUNDS entry should have at least 3 fields, got %d", len(fields))
	}
	kind, col := fields[0], fields[2]
	if _, ok := mr.columns[col]; !ok {
		return errors.Errorf("unknown column %q in BOUNDS", col)
	}
	if kind == "BV" {
		return nil
	}
	if len(fields) != 4 {
		return errors.Errorf("%s bound on column %q should have a value", kind, col)
	}
	val, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return errors.Wrapf(err, "invalid bound for column %q", col)
	}
	switch {
	case kind == "UP" && val == 1:
	case kind == "LO" && val == 0:
	default:
		return errors.Errorf("unsupported bound %s %v on column %q: columns must be binary", kind, val, col)
	}
	return nil
}
