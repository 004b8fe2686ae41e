package intset

import (
	"strconv"
	"strings"
)

// ToArray returns a snapshot of every element, in bucket order and chain order
// within a bucket.
func (s *IntHashSet) ToArray() []int {
	values := make([]int, 0, s.size)
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

// String renders the set as "[a, b, c]".
func (s *IntHashSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.ToArray() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
