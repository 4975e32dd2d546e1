package main

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/hmartens/cpp2capnp/cppast"
)

// filterClasses keeps the classes for which the expression evaluates
// true. References to filtered-out classes still resolve downstream as
// stubs, so the output never dangles.
func filterClasses(classes []*cppast.Class, src string) ([]*cppast.Class, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	var keep []*cppast.Class
	for _, c := range classes {
		env := map[string]any{
			"name":       c.Name,
			"file":       c.File,
			"fieldCount": len(c.Fields),
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", c.Name, err)
		}
		if ok, _ := out.(bool); ok {
			keep = append(keep, c)
		}
	}
	return keep, nil
}
