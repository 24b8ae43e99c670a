package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeUnknownColumn, "no such column")

	assert.Equal(t, ErrorTypeUnknownColumn, err.Type)
	assert.Contains(t, err.Error(), "unknown_column")
	assert.Contains(t, err.Error(), "no such column")
	assert.NotEmpty(t, err.Stack)
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(cause, ErrorTypeData, "failed to encode archive body")

	assert.Equal(t, ErrorTypeData, err.Type)
	assert.Contains(t, err.Error(), "disk full")
	assert.ErrorIs(t, err, cause)
}

func TestWrap_PreservesInnerStack(t *testing.T) {
	inner := New(ErrorTypeOutOfBounds, "row outside table")
	outer := Wrap(inner, ErrorTypeData, "load failed")

	assert.Equal(t, inner.Stack, outer.Stack)
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeDuplicateHeader, "duplicate header entry").
		WithDetail("column", "A").
		WithDetail("position", 3)

	require.NotNil(t, err.Details)
	assert.Equal(t, "A", err.Details["column"])
	assert.Equal(t, 3, err.Details["position"])
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeEmptyRowList, "no rows requested")

	assert.True(t, IsType(err, ErrorTypeEmptyRowList))
	assert.False(t, IsType(err, ErrorTypeOutOfBounds))
	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeEmptyRowList))
	assert.False(t, IsType(nil, ErrorTypeEmptyRowList))
}

func TestIsType_WrappedChain(t *testing.T) {
	inner := New(ErrorTypeRowOutOfRange, "position past last row")
	outer := Wrap(inner, ErrorTypeData, "take failed")

	// The outer type wins; the chain is still inspectable via Unwrap.
	assert.True(t, IsType(outer, ErrorTypeData))
	assert.True(t, stderrors.Is(outer, inner))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrorTypeMultipleModes, TypeOf(New(ErrorTypeMultipleModes, "x")))
	assert.Equal(t, ErrorType(""), TypeOf(stderrors.New("plain")))
}
