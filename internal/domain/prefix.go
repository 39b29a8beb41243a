package domain

// Number is any Go numeric kind that supports addition.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Transform returns a new slice where each element is the sum of the
// original value and its original predecessor (0 for the first element).
// The input is never mutated.
func Transform[T Number](seq []T) []T {
	out := make([]T, len(seq))
	for i, v := range seq {
		out[i] = v + previous(seq, i)
	}
	return out
}

func previous[T Number](seq []T, index int) T {
	if index == 0 {
		return 0
	}
	return seq[index-1]
}

// PrefixAdder binds one input sequence, selected at construction time,
// to the prefix transform.
type PrefixAdder[T Number] struct {
	values []T
}

// NewPrefixAdder stores a private copy of values.
func NewPrefixAdder[T Number](values []T) *PrefixAdder[T] {
	cp := make([]T, len(values))
	copy(cp, values)
	return &PrefixAdder[T]{values: cp}
}

// Previous returns the input value before index, or 0 when index is 0.
func (p *PrefixAdder[T]) Previous(index int) T {
	return previous(p.values, index)
}

// Transform applies the prefix transform to the configured input.
func (p *PrefixAdder[T]) Transform() []T {
	return Transform(p.values)
}

// Values returns a copy of the configured input.
func (p *PrefixAdder[T]) Values() []T {
	out := make([]T, len(p.values))
	copy(out, p.values)
	return out
}

// Len reports the input length.
func (p *PrefixAdder[T]) Len() int { return len(p.values) }
