package table

import (
	"fmt"
	"strconv"

	"github.com/ajitpratap0/tabular/pkg/compression"
	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/json"
)

// Archiving keeps derived tables around in compressed form. Pack encodes the
// header and flat data, compresses the encoding, and wraps it in a small
// self-describing envelope; Unpack reverses the process and yields a table
// Equal to the original. This is an in-memory retention aid, not a storage
// format with compatibility guarantees.

// taggedCell is the typed encoding of one cell. Tagging preserves cell types
// across the JSON round trip, which plain JSON numbers would not.
type taggedCell struct {
	T string      `json:"t"`
	V interface{} `json:"v,omitempty"`
}

type archiveBody struct {
	Header []string     `json:"header"`
	Cells  []taggedCell `json:"cells"`
}

type archiveEnvelope struct {
	Algorithm string `json:"algorithm"`
	Payload   []byte `json:"payload"`
}

// Pack archives the table using the given compression algorithm. Only scalar
// cells (string, bool, integers, floats, nil and the default filler) can be
// archived; any other cell type fails with a data error.
func Pack(t *Table, algorithm compression.Algorithm) ([]byte, error) {
	cells := make([]taggedCell, len(t.data))
	for i, v := range t.data {
		tagged, err := tagCell(v)
		if err != nil {
			return nil, err
		}
		cells[i] = tagged
	}

	body, err := json.Marshal(archiveBody{Header: t.header, Cells: cells})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to encode archive body")
	}

	comp, err := compression.NewCompressor(algorithm)
	if err != nil {
		return nil, err
	}
	payload, err := comp.Compress(body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to compress archive body")
	}

	out, err := json.Marshal(archiveEnvelope{Algorithm: string(algorithm), Payload: payload})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to encode archive envelope")
	}
	return out, nil
}

// Unpack restores an archived table. The filler of the restored table is the
// default sentinel unless overridden with WithFiller.
func Unpack(archived []byte, opts ...Option) (*Table, error) {
	var envelope archiveEnvelope
	if err := json.Unmarshal(archived, &envelope); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to decode archive envelope")
	}

	algorithm, err := compression.ParseAlgorithm(envelope.Algorithm)
	if err != nil {
		return nil, err
	}
	comp, err := compression.NewCompressor(algorithm)
	if err != nil {
		return nil, err
	}
	body, err := comp.Decompress(envelope.Payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to decompress archive body")
	}

	var decoded archiveBody
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to decode archive body")
	}

	data := make([]interface{}, len(decoded.Cells))
	for i, cell := range decoded.Cells {
		v, err := untagCell(cell)
		if err != nil {
			return nil, err
		}
		data[i] = v
	}

	return New(decoded.Header, data, opts...)
}

func tagCell(v interface{}) (taggedCell, error) {
	switch c := v.(type) {
	case nil:
		return taggedCell{T: "z"}, nil
	case novalue:
		return taggedCell{T: "n"}, nil
	case string:
		return taggedCell{T: "s", V: c}, nil
	case bool:
		return taggedCell{T: "b", V: c}, nil
	case int:
		// Integers travel as decimal strings. JSON numbers decode into
		// float64, which cannot carry values past 2^53 exactly.
		return taggedCell{T: "i", V: strconv.FormatInt(int64(c), 10)}, nil
	case int64:
		return taggedCell{T: "l", V: strconv.FormatInt(c, 10)}, nil
	case float64:
		return taggedCell{T: "f", V: c}, nil
	default:
		return taggedCell{}, errors.New(errors.ErrorTypeData, "cell type cannot be archived").
			WithDetail("type", typeName(v))
	}
}

func untagCell(cell taggedCell) (interface{}, error) {
	switch cell.T {
	case "z":
		return nil, nil
	case "n":
		return NoValue, nil
	case "s":
		s, ok := cell.V.(string)
		if !ok {
			return nil, badCell(cell)
		}
		return s, nil
	case "b":
		b, ok := cell.V.(bool)
		if !ok {
			return nil, badCell(cell)
		}
		return b, nil
	case "i":
		s, ok := cell.V.(string)
		if !ok {
			return nil, badCell(cell)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, badCell(cell)
		}
		return int(n), nil
	case "l":
		s, ok := cell.V.(string)
		if !ok {
			return nil, badCell(cell)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, badCell(cell)
		}
		return n, nil
	case "f":
		f, ok := cell.V.(float64)
		if !ok {
			return nil, badCell(cell)
		}
		return f, nil
	default:
		return nil, badCell(cell)
	}
}

func badCell(cell taggedCell) error {
	return errors.New(errors.ErrorTypeData, "malformed archive cell").
		WithDetail("tag", cell.T)
}

func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
