package intset

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrSizeMismatch = errors.New("size mismatch")
	ErrDuplicate    = errors.New("duplicate value")
	ErrMisplaced    = errors.New("value in wrong bucket")
	ErrLoadFactor   = errors.New("load factor exceeded")
)

type MultiError []error

func (m MultiError) Error() string {
	var b strings.Builder
	b.WriteString("multiple errors:")
	for _, err := range m {
		b.WriteString("\n- " + err.Error())
	}
	return b.String()
}

func (m MultiError) Unwrap() []error {
	return m
}

// Verify walks the whole table and reports every broken invariant.
// It returns nil for a consistent set.
func (s *IntHashSet) Verify() error {
	var errs MultiError
	seen := make(map[int]int, s.size)
	count := 0

	for index, entry := range s.table {
		for entry != nil {
			count++
			if want := s.bucket(entry.Value); want != index {
				errs = append(errs, fmt.Errorf("%w: %d found in bucket %d, want %d", ErrMisplaced, entry.Value, index, want))
			}
			if prev, ok := seen[entry.Value]; ok {
				errs = append(errs, fmt.Errorf("%w: %d in buckets %d and %d", ErrDuplicate, entry.Value, prev, index))
			}
			seen[entry.Value] = index
			entry = entry.Next
		}
	}

	if count != s.size {
		errs = append(errs, fmt.Errorf("%w: counted %d entries, size is %d", ErrSizeMismatch, count, s.size))
	}
	if lf := s.LoadFactor(); lf >= MaxLoadFactor {
		errs = append(errs, fmt.Errorf("%w: %.3f", ErrLoadFactor, lf))
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errs
	}
}

// check runs Verify after a mutation when debug checks are enabled.
func (s *IntHashSet) check(op string) {
	if !s.debug {
		return
	}
	if err := s.Verify(); err != nil {
		s.logger.DPanic("intset invariant violated", zap.String("op", op), zap.Error(err))
	}
}
