package diag

// Result carries a computation's outcome as data: either a value or
// the diagnostic explaining its failure, never both. Interpretation
// code holds many outcomes at once (one per column, one per header
// offset) and decides later which, if any, to surface.
type Result[T any] struct {
	Value T
	Diag  *Diagnostic
}

// Success wraps a value in a passing result.
func Success[T any](v T) Result[T] { return Result[T]{Value: v} }

// Failure wraps a diagnostic in a failing result.
func Failure[T any](d *Diagnostic) Result[T] { return Result[T]{Diag: d} }

// Ok reports whether the result carries a value rather than a failure.
func (r Result[T]) Ok() bool { return r.Diag == nil }
