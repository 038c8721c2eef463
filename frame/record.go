// Package frame: the annotated row view.
// A Record is an ordered label→value mapping — the "labeled" side of
// the tagged row choice that transforms offer (the positional side is
// a plain []any). Conversion happens at the transform boundary; the
// raw row is reconstructed from whichever view the caller returns.
package frame

// Record is one row presented as ordered (label, value) pairs.
// Order follows the frame's column order; labels may repeat, in which
// case Get and Set address the first match in scan order.
type Record struct {
	labels []any
	values []any
}

// NewRecord builds a Record from parallel label and value sequences.
// Mismatched lengths are a programmer error and panic.
func NewRecord(labels, values []any) Record {
	if len(labels) != len(values) {
		panic(panicRecordShape)
	}
	return Record{labels: copyLabels(labels), values: copyLabels(values)}
}

// Len returns the number of (label, value) pairs.
func (r Record) Len() int {
	return len(r.values)
}

// Labels returns a copy of the labels in order.
func (r Record) Labels() []any {
	return copyLabels(r.labels)
}

// Values returns a copy of the values in label order.
func (r Record) Values() []any {
	return copyLabels(r.values)
}

// Get returns the value for the first label whose canonical form
// matches, and whether any label matched.
func (r Record) Get(label any) (any, bool) {
	if i := firstMatch(r.labels, label); i >= 0 {
		return r.values[i], true
	}
	return nil, false
}

// Set replaces the value of the first matching label, or appends a new
// (label, value) pair when nothing matches. The receiver is a value;
// call Set on a local Record and return it from transform callbacks.
func (r *Record) Set(label any, v any) {
	if i := firstMatch(r.labels, label); i >= 0 {
		r.values[i] = v
		return
	}
	r.labels = append(r.labels, label)
	r.values = append(r.values, v)
}
