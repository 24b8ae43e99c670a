// Package strings provides zero-copy string utilities with pooling for Tabular.
// The renderer and literal writer build their output through the pooled Builder
// instead of allocating a fresh bytes.Buffer per table.
package strings

import (
	"fmt"
	"sync"
	"unsafe"
)

// BytesToString converts a byte slice to a string without allocation.
// WARNING: The returned string shares memory with the byte slice.
// Do not modify the byte slice after calling this function.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}

// StringToBytes converts a string to a byte slice without allocation.
// WARNING: The returned byte slice shares memory with the string.
// Do not modify the returned slice.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Clone creates a copy of a string (useful when you need to own the memory,
// e.g. when the source buffer is about to be returned to a pool).
func Clone(s string) string {
	if len(s) == 0 {
		return ""
	}
	b := make([]byte, len(s))
	copy(b, StringToBytes(s))
	return BytesToString(b)
}

// Builder provides efficient string building with zero-copy operations
type Builder struct {
	buf []byte
}

// NewBuilder creates a new string builder with the given initial capacity
func NewBuilder(capacity int) *Builder {
	return &Builder{
		buf: make([]byte, 0, capacity),
	}
}

// WriteString appends a string to the builder
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, StringToBytes(s)...)
}

// WriteByte appends a single byte
func (b *Builder) WriteByte(c byte) {
	b.buf = append(b.buf, c)
}

// Write implements io.Writer
func (b *Builder) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// String returns the built string using zero-copy conversion
func (b *Builder) String() string {
	return BytesToString(b.buf)
}

// Bytes returns the underlying byte slice
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Len returns the length of the built string
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset resets the builder for reuse
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// BuilderSize selects a pooled builder bucket
type BuilderSize int

const (
	// Small builders suit single rows and error messages (256B initial)
	Small BuilderSize = iota
	// Medium builders suit full table renders (4KB initial)
	Medium
	// Large builders suit literal dumps of big tables (64KB initial)
	Large
)

var builderPools = [3]sync.Pool{
	{New: func() interface{} { return NewBuilder(256) }},
	{New: func() interface{} { return NewBuilder(4 * 1024) }},
	{New: func() interface{} { return NewBuilder(64 * 1024) }},
}

// GetBuilder retrieves a pooled builder of the given size bucket
func GetBuilder(size BuilderSize) *Builder {
	return builderPools[size].Get().(*Builder)
}

// PutBuilder returns a builder to its pool
func PutBuilder(builder *Builder, size BuilderSize) {
	builder.Reset()
	builderPools[size].Put(builder)
}

// Sprintf formats using a pooled builder and returns an owned string
func Sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}

	size := Small
	if estimated := len(format) + len(args)*16; estimated > 4*1024 {
		size = Medium
	}

	builder := GetBuilder(size)
	defer PutBuilder(builder, size)

	fmt.Fprintf(builder, format, args...)

	return Clone(builder.String())
}

// Join joins strings with a delimiter using a pooled builder
func Join(parts []string, delimiter string) string {
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}

	builder := GetBuilder(Small)
	defer PutBuilder(builder, Small)

	for i, part := range parts {
		if i > 0 {
			builder.WriteString(delimiter)
		}
		builder.WriteString(part)
	}

	return Clone(builder.String())
}
