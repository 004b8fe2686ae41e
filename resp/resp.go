package resp

// Reply types, encoded following RESP3.
// https://github.com/redis/redis-specifications/blob/master/protocol/RESP3.md

const CRLF string = "\r\n"

const (
	TypeArray   byte = '*'
	TypeBlob    byte = '$'
	TypeSimple  byte = '+'
	TypeError   byte = '-'
	TypeInteger byte = ':'
	TypeNull    byte = '_'
	TypeBoolean byte = '#'
	TypeSet     byte = '~'
)

type Node interface {
}

type BlobString struct {
	Value string
}

type SimpleString struct {
	Value string
}

type Error struct {
	Message string
}

type Integer struct {
	Value int
}

type Null struct {
}

type Boolean struct {
	Value bool
}

// Array represents an array in RESP
type Array struct {
	Elements []Node
}

type Set struct {
	Elements []Node
}

var OK = SimpleString{Value: "OK"}

// IntSet builds a set reply from a slice of ints.
func IntSet(values []int) Set {
	set := Set{Elements: make([]Node, len(values))}
	for i, v := range values {
		set.Elements[i] = Integer{Value: v}
	}
	return set
}

// Err builds an "ERR ..." error reply.
func Err(msg string) Error {
	return Error{Message: "ERR " + msg}
}
