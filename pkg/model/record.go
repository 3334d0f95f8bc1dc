package model

// Record is an override record as found in the store
type Record struct {
	Kind    Kind
	Project string
	Content []byte
}

// Removal reports which records were removed for a project
type Removal struct {
	Expression bool
	Descriptor bool
}

// Any record removed?
func (r Removal) Any() bool {
	return r.Expression || r.Descriptor
}

// Kinds of the records that were removed
func (r Removal) Kinds() []Kind {
	var kinds []Kind
	if r.Expression {
		kinds = append(kinds, KindExpression)
	}
	if r.Descriptor {
		kinds = append(kinds, KindDescriptor)
	}
	return kinds
}

// Mark a kind of record as removed
func (r *Removal) Mark(kind Kind) {
	switch kind {
	case KindExpression:
		r.Expression = true
	case KindDescriptor:
		r.Descriptor = true
	}
}
