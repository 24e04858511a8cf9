package printers

// options contains common display options shared by all printers
type options struct {
	ShowTimestamp  bool
	ShowAbsentOnly bool
}

type hasOptions interface {
	options() *options
}

// WithTimestamp enables timestamp display in printer output
func WithTimestamp[T hasOptions]() func(T) {
	return func(p T) {
		p.options().ShowTimestamp = true
	}
}

// WithAbsentOnly configures the printer to only show scenarios that ended
// on the empty path or raised an error
func WithAbsentOnly[T hasOptions]() func(T) {
	return func(p T) {
		p.options().ShowAbsentOnly = true
	}
}
