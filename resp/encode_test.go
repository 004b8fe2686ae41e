package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeSimpleString(t *testing.T) {
	assert.Equal(t, []byte("+OK\r\n"), Encode(OK))
}

func TestEncodeError(t *testing.T) {
	assert.Equal(t, []byte("-ERR unknown command\r\n"), Encode(Err("unknown command")))
}

func TestEncodeInteger(t *testing.T) {
	assert.Equal(t, []byte(":-42\r\n"), Encode(Integer{Value: -42}))
}

func TestEncodeBoolean(t *testing.T) {
	assert.Equal(t, []byte("#t\r\n"), Encode(Boolean{Value: true}))
	assert.Equal(t, []byte("#f\r\n"), Encode(Boolean{Value: false}))
}

func TestEncodeNullAndBlob(t *testing.T) {
	assert.Equal(t, []byte("_\r\n"), Encode(Null{}))
	assert.Equal(t, []byte("$5\r\nhello\r\n"), Encode(BlobString{Value: "hello"}))
}

func TestEncodeSet(t *testing.T) {
	expected := []byte("~3\r\n:3\r\n:13\r\n:23\r\n")
	assert.Equal(t, expected, Encode(IntSet([]int{3, 13, 23})))
	assert.Equal(t, []byte("~0\r\n"), Encode(IntSet(nil)))
}

func TestEncodeNested(t *testing.T) {
	node := Array{Elements: []Node{
		SimpleString{Value: "buckets"},
		Integer{Value: 10},
		Set{Elements: []Node{Integer{Value: 1}}},
	}}
	expected := []byte("*3\r\n+buckets\r\n:10\r\n~1\r\n:1\r\n")
	assert.Equal(t, expected, Encode(node))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "OK", Format(OK))
	assert.Equal(t, "(error) ERR boom", Format(Err("boom")))
	assert.Equal(t, "(integer) 3", Format(Integer{Value: 3}))
	assert.Equal(t, "(true)", Format(Boolean{Value: true}))
	assert.Equal(t, "(nil)", Format(Null{}))
	assert.Equal(t, `"a b"`, Format(BlobString{Value: "a b"}))
	assert.Equal(t, "(empty set)", Format(IntSet(nil)))
	assert.Equal(t, "(empty array)", Format(Array{}))
}

func TestFormatAggregate(t *testing.T) {
	assert.Equal(t, "1) (integer) 3\n2) (integer) 13", Format(IntSet([]int{3, 13})))

	values := make([]int, 10)
	for i := range values {
		values[i] = i
	}
	out := Format(IntSet(values))
	assert.Contains(t, out, " 1) (integer) 0\n")
	assert.Contains(t, out, "10) (integer) 9")

	nested := Array{Elements: []Node{
		SimpleString{Value: "a"},
		IntSet([]int{1, 2}),
	}}
	assert.Equal(t, "1) a\n2) 1) (integer) 1\n   2) (integer) 2", Format(nested))
}

func TestFormatRaw(t *testing.T) {
	assert.Equal(t, "3", FormatRaw(Integer{Value: 3}))
	assert.Equal(t, "1", FormatRaw(Boolean{Value: true}))
	assert.Equal(t, "0", FormatRaw(Boolean{Value: false}))
	assert.Equal(t, "ERR boom", FormatRaw(Err("boom")))
	assert.Equal(t, "3\n13\n23", FormatRaw(IntSet([]int{3, 13, 23})))
	assert.Equal(t, "", FormatRaw(IntSet(nil)))
}
