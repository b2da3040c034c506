package pregel

import "fmt"

// ValueType is the type of a single Pregel node-value property.
type ValueType int

const (
	Long ValueType = iota
	Double
	LongArray
	DoubleArray
)

func (t ValueType) String() string {
	switch t {
	case Long:
		return "long"
	case Double:
		return "double"
	case LongArray:
		return "long[]"
	case DoubleArray:
		return "double[]"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// Visibility controls whether a property is exposed on the result surface
// (Public) or is scratch state private to the computation (Private).
type Visibility int

const (
	Public Visibility = iota
	Private
)

// PropertyDescriptor declares one node-value property: its name, value
// type, and whether it is part of the result surface.
type PropertyDescriptor struct {
	Name       string
	Type       ValueType
	Visibility Visibility
}

// Schema is the ordered list of property descriptors a Computation declares.
// It fixes the set of keys the value store allocates at run start. Keys are
// not checked against it at run start: a key referenced by a compute
// function that isn't declared here has no backing array, so reading or
// writing it panics inside the worker and the run ends with status
// PanicInWorker, not InvalidSchema.
type Schema []PropertyDescriptor

// find returns the descriptor for key, or (zero, false) if undeclared.
func (s Schema) find(key string) (PropertyDescriptor, bool) {
	for _, d := range s {
		if d.Name == key {
			return d, true
		}
	}
	return PropertyDescriptor{}, false
}
