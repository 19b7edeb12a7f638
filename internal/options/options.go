// Package options implements the generic functional-option pattern shared by
// the file assembler, the write path and the compressed container.
package options

// Option configures a target of type T. Options are applied in order and the
// first failing option aborts the configuration.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// ApplyWithDefaults applies defaults first and then opts, so caller supplied
// options always win over the defaults.
func ApplyWithDefaults[T any](target T, defaults []Option[T], opts ...Option[T]) error {
	if err := Apply(target, defaults...); err != nil {
		return err
	}

	return Apply(target, opts...)
}
