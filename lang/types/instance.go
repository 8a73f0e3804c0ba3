package types

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Instance is a runtime object created by calling a Class. Fields are set
// and read dynamically; there is no fixed field list, they come into
// existence the first time a Set expression assigns to them.
type Instance struct {
	Class  *Class
	Fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

// NewInstance returns a new, fieldless instance of c.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Fields: swiss.NewMap[string, Value](8)}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
func (i *Instance) Type() string   { return "instance" }
func (i *Instance) Truth() bool    { return true }

// Get resolves a property access: a field shadows a method of the same
// name, and a method read off an instance comes back bound to it.
func (i *Instance) Get(name string) (Value, error) {
	if v, ok := i.Fields.Get(name); ok {
		return v, nil
	}
	if fn, ok := i.Class.FindMethod(name); ok {
		return fn.Bind(i), nil
	}
	return nil, fmt.Errorf("undefined property '%s'", name)
}

// Set assigns a field, creating it if it doesn't already exist.
func (i *Instance) Set(name string, v Value) {
	i.Fields.Put(name, v)
}
