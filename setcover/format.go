package setcover

import (
	"io"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ResultPrefix starts the line written by Format.
const ResultPrefix = "solve_sc_result:"

// Format writes res on w as a single line, such as
//
//	solve_sc_result: {"status": "optimal", "cost": 3.0, "solution": [0, 1, 2]}
//
// The cost and solution are only written for optimal results.
func Format(w io.Writer, res Result) error {
	stream := json.BorrowStream(w)
	defer json.ReturnStream(stream)
	stream.WriteRaw(ResultPrefix + " {")
	writeField(stream, "status")
	stream.WriteString(res.Status.String())
	if res.Status == Optimal {
		stream.WriteRaw(", ")
		writeField(stream, "cost")
		stream.WriteRaw(formatFloat(res.Cost))
		stream.WriteRaw(", ")
		writeField(stream, "solution")
		stream.WriteRaw("[")
		for i, j := range res.Solution {
			if i > 0 {
				stream.WriteRaw(", ")
			}
			stream.WriteInt(j)
		}
		stream.WriteRaw("]")
	}
	stream.WriteRaw("}\n")
	if err := stream.Flush(); err != nil {
		return errors.Wrap(err, "could not write result")
	}
	return errors.Wrap(stream.Error, "could not write result")
}

func writeField(stream *jsoniter.Stream, name string) {
	stream.WriteString(name)
	stream.WriteRaw(": ")
}

// formatFloat writes f the way other tools reading our output expect:
// always with a decimal point or an exponent, so that it reads back as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// resultLine is the JSON payload of a line written by Format.
type resultLine struct {
	Status   string   `json:"status"`
	Cost     *float64 `json:"cost"`
	Solution *[]int   `json:"solution"`
}

// ParseResultLine reads a result from some output containing a line written by Format.
// If there are several such lines, the last one is used.
// The EngineStatus of the result is not written by Format, so it is always StatusOther.
func ParseResultLine(s string) (Result, error) {
	i := strings.LastIndex(s, ResultPrefix)
	if i == -1 {
		return Result{}, errors.Errorf("no %q line found", ResultPrefix)
	}
	payload := s[i+len(ResultPrefix):]
	if nl := strings.IndexByte(payload, '\n'); nl != -1 {
		payload = payload[:nl]
	}
	var raw resultLine
	if err := json.UnmarshalFromString(strings.TrimSpace(payload), &raw); err != nil {
		return Result{}, errors.Wrap(err, "could not parse result")
	}
	var res Result
	switch raw.Status {
	case Optimal.String():
		if raw.Cost == nil || raw.Solution == nil {
			return Result{}, errors.New("optimal result without cost or solution")
		}
		res.Status = Optimal
		res.Cost = *raw.Cost
		res.Solution = append([]int{}, *raw.Solution...)
	case Infeasible.String():
		res.Status = Infeasible
	case Unhandled.String():
		res.Status = Unhandled
	default:
		return Result{}, errors.Errorf("unknown status %q", raw.Status)
	}
	return res, nil
}
