package expression

// Registry holds the functions a planner can resolve by name.
type Registry struct {
	functions map[string]Resolver
}

// NewRegistry returns a registry preloaded with Defaults.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	r.Register(Defaults()...)
	return r
}

// NewEmptyRegistry returns a registry with no functions.
func NewEmptyRegistry() *Registry {
	return &Registry{functions: map[string]Resolver{}}
}

// Register adds the given resolvers to the registry, replacing previous
// registrations with the same name.
func (r *Registry) Register(fns ...Resolver) {
	for _, fn := range fns {
		r.functions[fn.Name()] = fn
	}
}

// Function returns the resolver registered under the given name.
func (r *Registry) Function(name string) (Resolver, error) {
	if fn, ok := r.functions[name]; ok {
		return fn, nil
	}
	return nil, ErrFunctionNotFound.New(name)
}

// Defaults returns the builtin function library.
func Defaults() []Resolver {
	return []Resolver{
		NewPlus(),
		NewMinus(),
		NewMultiply(),
		NewDivide(),
		NewEquals(),
		NewGreater(),
		NewLess(),
		NewConcat(),
		NewUpper(),
		NewLength(),
		NewMaterialize(),
		NewIgnore(),
		NewRand(),
		NewRunningCount(),
	}
}
