// Package json provides high-performance JSON serialization for Tabular,
// backed by goccy/go-json with pooled buffers. It also decodes the JSON
// rowset shapes the ingestion layer accepts.
package json

import (
	"bytes"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// GetBuffer gets a pooled buffer
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the pool
func PutBuffer(buf *bytes.Buffer) {
	bufferPool.Put(buf)
}

// Marshal is a drop-in replacement for encoding/json.Marshal
func Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

// Unmarshal is a drop-in replacement for encoding/json.Unmarshal
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

// MarshalToWriter marshals directly to a writer without intermediate allocation
func MarshalToWriter(w io.Writer, v interface{}) error {
	enc := gojson.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// DecodeRows decodes a JSON array into the rowset shape the ingestion layer
// accepts: each element is either a map (object) or a list (array). Scalar
// elements are passed through untouched so the map-mode reject path can
// collect them.
func DecodeRows(r io.Reader) ([]interface{}, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()

	var rows []interface{}
	if err := dec.Decode(&rows); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to decode JSON rowset")
	}
	return rows, nil
}
