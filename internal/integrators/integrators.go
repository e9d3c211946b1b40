package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// Default is the scheme the drag model uses unless told otherwise.
const Default = "symplectic"

var constructors = map[string]func() dynamo.Integrator{
	"symplectic": func() dynamo.Integrator { return NewSymplecticEuler() },
	"euler":      func() dynamo.Integrator { return NewEuler() },
	"verlet":     func() dynamo.Integrator { return NewVerlet() },
	"rk4":        func() dynamo.Integrator { return NewRK4() },
}

// New returns a fresh integrator by name.
func New(name string) (dynamo.Integrator, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
