package types

import "github.com/dolthub/swiss"

// Class is a class object: a name, an optional superclass, and its own
// method table. Method lookup walks the superclass chain (FindMethod), it is
// not flattened into the subclass's table at class-creation time.
type Class struct {
	Name       string
	Superclass *Class
	Methods    *swiss.Map[string, *Function]
}

var _ Value = (*Class)(nil)

// NewClass returns a class with the given methods, ready for use.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	m := swiss.NewMap[string, *Function](uint32(len(methods)))
	for name, fn := range methods {
		m.Put(name, fn)
	}
	return &Class{Name: name, Superclass: superclass, Methods: m}
}

func (c *Class) String() string { return c.Name }
func (c *Class) Type() string   { return "class" }
func (c *Class) Truth() bool    { return true }

// FindMethod looks up name in this class's own method table, then its
// superclass chain. It returns (nil, false) if no class in the chain
// declares the method.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods.Get(name); ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's "init" method, or 0 if it declares none;
// calling the class constructs an instance and, if present, runs init with
// exactly this many arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}
