// Package diag defines the diagnostic values that interpretation
// failures surface as. A Diagnostic is an error carrying an optional
// single cause and an optional ordered list of aggregated child
// diagnostics, rendered as an indented tree so a caller can see every
// interpretation that was attempted and why each one failed.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic is one node of a failure tree. Message is always set.
// Cause forms a single-link chain toward the underlying failure;
// Children holds aggregated sibling failures (the composite form).
type Diagnostic struct {
	Message  string
	Cause    *Diagnostic
	Children []*Diagnostic
}

// New builds a leaf diagnostic from a format string.
func New(format string, args ...any) *Diagnostic {
	return &Diagnostic{Message: fmt.Sprintf(format, args...)}
}

// Wrap places message above cause in the chain. A nil cause yields a
// plain leaf.
func Wrap(message string, cause *Diagnostic) *Diagnostic {
	return &Diagnostic{Message: message, Cause: cause}
}

// FromError converts an arbitrary error into a diagnostic. Errors that
// already are diagnostics pass through unchanged.
func FromError(err error) *Diagnostic {
	if err == nil {
		return nil
	}
	var d *Diagnostic
	if errors.As(err, &d) {
		return d
	}
	return &Diagnostic{Message: err.Error()}
}

// Composite aggregates children beneath one message. Children are
// deduplicated by rendered text before aggregation, first occurrence
// wins, order otherwise preserved.
func Composite(message string, children ...*Diagnostic) *Diagnostic {
	return &Diagnostic{Message: message, Children: Dedupe(children)}
}

// Dedupe folds diagnostics whose rendered text is identical, keeping
// the first occurrence of each.
func Dedupe(ds []*Diagnostic) []*Diagnostic {
	if len(ds) < 2 {
		return ds
	}
	seen := make(map[string]struct{}, len(ds))
	out := make([]*Diagnostic, 0, len(ds))
	for _, d := range ds {
		key := d.Render()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}

// Render returns the tree as indented text, depth first: a node's
// message line, then its cause, then its children, each nesting level
// indented a further two spaces.
func (d *Diagnostic) Render() string {
	var b strings.Builder
	d.render(&b, 0)
	return b.String()
}

func (d *Diagnostic) render(b *strings.Builder, depth int) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString(d.Message)
	if d.Cause != nil {
		d.Cause.render(b, depth+1)
	}
	for _, c := range d.Children {
		c.render(b, depth+1)
	}
}

// Error implements error; the message is the full rendered tree.
func (d *Diagnostic) Error() string { return d.Render() }

// Unwrap exposes the cause and children to errors.Is and errors.As.
func (d *Diagnostic) Unwrap() []error {
	n := len(d.Children)
	if d.Cause != nil {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]error, 0, n)
	if d.Cause != nil {
		out = append(out, d.Cause)
	}
	for _, c := range d.Children {
		out = append(out, c)
	}
	return out
}

// Equal reports whether d and other render to identical text.
func (d *Diagnostic) Equal(other *Diagnostic) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Render() == other.Render()
}

// As extracts a *Diagnostic from anywhere in an error chain.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
