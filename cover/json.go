package cover

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonInstance is the on-disk representation of an instance.
// Pointers tell a missing field from an empty one.
type jsonInstance struct {
	N       *int       `json:"N"`
	Costs   *[]float64 `json:"Costs"`
	Subsets *[][]int   `json:"Subsets"`
}

// Decode reads a JSON instance from r. r must hold a single JSON object.
func Decode(r io.Reader) (*Instance, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &InputError{Err: errors.Wrap(err, "could not read JSON data")}
	}
	// Unmarshal, unlike a Decoder, rejects anything after the instance.
	var raw jsonInstance
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &InputError{Err: errors.Wrap(err, "could not decode JSON")}
	}
	switch {
	case raw.N == nil:
		return nil, &InputError{Field: "N", Err: errors.New("missing field")}
	case raw.Costs == nil:
		return nil, &InputError{Field: "Costs", Err: errors.New("missing field")}
	case raw.Subsets == nil:
		return nil, &InputError{Field: "Subsets", Err: errors.New("missing field")}
	}
	return New(*raw.N, *raw.Costs, *raw.Subsets)
}

// MarshalJSON encodes the instance in the format read by Decode.
func (ins *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonInstance{N: &ins.n, Costs: &ins.costs, Subsets: &ins.subsets})
}
