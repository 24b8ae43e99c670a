package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesToString(t *testing.T) {
	b := []byte("hello")
	assert.Equal(t, "hello", BytesToString(b))
	assert.Equal(t, "", BytesToString(nil))
}

func TestStringToBytes(t *testing.T) {
	assert.Equal(t, []byte("hello"), StringToBytes("hello"))
	assert.Empty(t, StringToBytes(""))
}

func TestClone(t *testing.T) {
	original := "source"
	cloned := Clone(original)
	assert.Equal(t, original, cloned)
	assert.Equal(t, "", Clone(""))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(8)

	b.WriteString("hello")
	b.WriteByte(' ')
	n, err := b.Write([]byte("world"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	assert.Equal(t, "hello world", b.String())
	assert.Equal(t, 11, b.Len())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
}

func TestBuilder_GrowsPastInitialCapacity(t *testing.T) {
	b := NewBuilder(2)
	for i := 0; i < 100; i++ {
		b.WriteString("0123456789")
	}
	assert.Equal(t, 1000, b.Len())
}

func TestGetPutBuilder(t *testing.T) {
	for _, size := range []BuilderSize{Small, Medium, Large} {
		b := GetBuilder(size)
		b.WriteString("scratch")
		assert.Equal(t, "scratch", b.String())
		PutBuilder(b, size)

		again := GetBuilder(size)
		assert.Equal(t, 0, again.Len())
		PutBuilder(again, size)
	}
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "a=1 b=two", Sprintf("a=%d b=%s", 1, "two"))
	assert.Equal(t, "plain", Sprintf("plain"))
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name      string
		parts     []string
		delimiter string
		want      string
	}{
		{name: "empty", parts: nil, delimiter: ",", want: ""},
		{name: "single", parts: []string{"a"}, delimiter: ",", want: "a"},
		{name: "several", parts: []string{"a", "b", "c"}, delimiter: ", ", want: "a, b, c"},
		{name: "empty delimiter", parts: []string{"a", "b"}, delimiter: "", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.parts, tt.delimiter))
		})
	}
}
