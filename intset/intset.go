package intset

import (
	"go.uber.org/zap"
)

const (
	InitialCapacity = 10
	MaxLoadFactor   = 0.75
)

// Entry is a single value in the chain of one bucket.
type Entry struct {
	Value int
	Next  *Entry
}

// IntHashSet is a set of ints stored in a hash table with separate chaining.
// It is not safe for concurrent use.
type IntHashSet struct {
	table  []*Entry
	size   int
	logger *zap.Logger
	debug  bool
}

type Option func(*IntHashSet)

// WithLogger sets the logger used for growth and invariant reports.
func WithLogger(logger *zap.Logger) Option {
	return func(s *IntHashSet) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDebugChecks makes every mutation verify the table afterwards.
func WithDebugChecks() Option {
	return func(s *IntHashSet) {
		s.debug = true
	}
}

// New creates an empty set with InitialCapacity buckets.
func New(opts ...Option) *IntHashSet {
	s := &IntHashSet{
		table:  make([]*Entry, InitialCapacity),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFrom creates a set holding the given values.
func NewFrom(values ...int) *IntHashSet {
	s := New()
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// bucket returns abs(value) mod the current bucket count.
// |v % n| is used so that math.MinInt does not overflow.
func (s *IntHashSet) bucket(value int) int {
	i := value % len(s.table)
	if i < 0 {
		i = -i
	}
	return i
}

// find walks the chain of the value's bucket.
func (s *IntHashSet) find(value int) *Entry {
	curr := s.table[s.bucket(value)]
	for curr != nil {
		if curr.Value == value {
			return curr
		}
		curr = curr.Next
	}
	return nil
}

// insert puts value at the head of its chain. The caller guarantees the value
// is absent and that there is room for it.
func (s *IntHashSet) insert(value int) {
	index := s.bucket(value)
	s.table[index] = &Entry{Value: value, Next: s.table[index]}
	s.size++
}

// Contains reports whether value is in the set.
func (s *IntHashSet) Contains(value int) bool {
	return s.find(value) != nil
}

// Add inserts value if it is not already present. It returns false for a
// duplicate. The table grows first when the insertion would bring the load
// factor to MaxLoadFactor.
func (s *IntHashSet) Add(value int) bool {
	if s.Contains(value) {
		return false
	}

	if float64(s.size+1)/float64(len(s.table)) >= MaxLoadFactor {
		s.rehash()
	}

	s.insert(value)
	s.check("add")
	return true
}

// Remove deletes value from the set. It returns false if value was absent.
// The bucket count never shrinks.
func (s *IntHashSet) Remove(value int) bool {
	index := s.bucket(value)
	head := s.table[index]
	if head == nil {
		return false
	}

	// Special case: the value is at the head of the chain
	if head.Value == value {
		s.table[index] = head.Next
		s.size--
		s.check("remove")
		return true
	}

	prev := head
	curr := head.Next
	for curr != nil {
		if curr.Value == value {
			prev.Next = curr.Next
			s.size--
			s.check("remove")
			return true
		}
		prev = curr
		curr = curr.Next
	}

	return false
}

// Clear removes every element and keeps the current bucket count.
func (s *IntHashSet) Clear() {
	clear(s.table)
	s.size = 0
	s.check("clear")
}

// Len returns the number of elements in the set.
func (s *IntHashSet) Len() int {
	return s.size
}

// IsEmpty returns true if the set has no elements.
func (s *IntHashSet) IsEmpty() bool {
	return s.size == 0
}

// Cap returns the number of buckets.
func (s *IntHashSet) Cap() int {
	return len(s.table)
}

func (s *IntHashSet) LoadFactor() float64 {
	return float64(s.size) / float64(len(s.table))
}

// rehash doubles the bucket count and reinserts every value, since the bucket
// of a value depends on the table size. Reinsertion goes through insert and
// cannot trigger another growth.
func (s *IntHashSet) rehash() {
	values := make([]int, 0, s.size)
	for _, entry := range s.table {
		for entry != nil {
			values = append(values, entry.Value)
			entry = entry.Next
		}
	}

	oldSize := len(s.table)
	s.table = make([]*Entry, oldSize*2)
	s.size = 0 // Reset size because we'll be re-adding the elements

	for _, v := range values {
		s.insert(v)
	}

	s.logger.Debug("rehash",
		zap.Int("from", oldSize),
		zap.Int("to", len(s.table)),
		zap.Int("size", s.size))
}
