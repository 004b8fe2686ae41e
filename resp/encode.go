package resp

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode serializes node in RESP3 wire format.
func Encode(node Node) []byte {
	var b strings.Builder
	encode(&b, node)
	return []byte(b.String())
}

func encode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case SimpleString:
		b.WriteByte(TypeSimple)
		b.WriteString(n.Value + CRLF)
	case Error:
		b.WriteByte(TypeError)
		b.WriteString(n.Message + CRLF)
	case Integer:
		b.WriteByte(TypeInteger)
		b.WriteString(strconv.Itoa(n.Value) + CRLF)
	case BlobString:
		fmt.Fprintf(b, "%c%d%s%s%s", TypeBlob, len(n.Value), CRLF, n.Value, CRLF)
	case Boolean:
		b.WriteByte(TypeBoolean)
		if n.Value {
			b.WriteByte('t')
		} else {
			b.WriteByte('f')
		}
		b.WriteString(CRLF)
	case Null:
		b.WriteByte(TypeNull)
		b.WriteString(CRLF)
	case Array:
		encodeAggregate(b, TypeArray, n.Elements)
	case Set:
		encodeAggregate(b, TypeSet, n.Elements)
	default:
		panic(fmt.Sprintf("resp: cannot encode %T", node))
	}
}

func encodeAggregate(b *strings.Builder, tp byte, elements []Node) {
	fmt.Fprintf(b, "%c%d%s", tp, len(elements), CRLF)
	for _, elem := range elements {
		encode(b, elem)
	}
}

// Format renders node the way redis-cli prints replies on a terminal,
// e.g. "(integer) 3" or a numbered list for aggregates.
func Format(node Node) string {
	return format(node, "")
}

func format(node Node, indent string) string {
	switch n := node.(type) {
	case SimpleString:
		return n.Value
	case Error:
		return "(error) " + n.Message
	case Integer:
		return "(integer) " + strconv.Itoa(n.Value)
	case BlobString:
		return strconv.Quote(n.Value)
	case Boolean:
		if n.Value {
			return "(true)"
		}
		return "(false)"
	case Null:
		return "(nil)"
	case Array:
		return formatAggregate(n.Elements, "(empty array)", indent)
	case Set:
		return formatAggregate(n.Elements, "(empty set)", indent)
	default:
		return "Unknown Node Type!"
	}
}

func formatAggregate(elements []Node, empty, indent string) string {
	if len(elements) == 0 {
		return empty
	}

	width := len(strconv.Itoa(len(elements)))
	var b strings.Builder
	for i, elem := range elements {
		if i > 0 {
			b.WriteString("\n" + indent)
		}
		prefix := fmt.Sprintf("%*d) ", width, i+1)
		b.WriteString(prefix)
		b.WriteString(format(elem, indent+strings.Repeat(" ", len(prefix))))
	}
	return b.String()
}

// FormatRaw renders node without type annotations, one aggregate element
// per line. It is the output used when stdout is not a terminal.
func FormatRaw(node Node) string {
	switch n := node.(type) {
	case SimpleString:
		return n.Value
	case Error:
		return n.Message
	case Integer:
		return strconv.Itoa(n.Value)
	case BlobString:
		return n.Value
	case Boolean:
		if n.Value {
			return "1"
		}
		return "0"
	case Null:
		return ""
	case Array:
		return formatRawAggregate(n.Elements)
	case Set:
		return formatRawAggregate(n.Elements)
	default:
		return ""
	}
}

func formatRawAggregate(elements []Node) string {
	lines := make([]string, len(elements))
	for i, elem := range elements {
		lines[i] = FormatRaw(elem)
	}
	return strings.Join(lines, "\n")
}
