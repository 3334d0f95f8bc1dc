package compose

import (
	"github.com/oneconcern/overrides/pkg/model"
)

// Partial is the override contributed by a single record
type Partial struct {
	Kind    model.Kind
	Project string
	Build   Override
}

// Chain is an ordered list of partial overrides. Later partials win
type Chain []Partial

// Override folds the chain from left to right with Layer, starting from Identity
func (c Chain) Override() Override {
	var acc Override = Identity
	for _, partial := range c {
		acc = Layer(acc, partial.isolated())
	}
	return acc
}

// Projects in layering order, possibly with duplicates
func (c Chain) Projects() []string {
	projects := make([]string, 0, len(c))
	for _, partial := range c {
		projects = append(projects, partial.Project)
	}
	return projects
}

// isolated wraps the partial so that a failure contributes no package and names its project
func (p Partial) isolated() Override {
	return func(self, super PackageSet) (PackageSet, error) {
		out, err := p.Build(self, super)
		if err != nil {
			return PackageSet{}, model.NewProjectError(p.Project, err).WithKind(p.Kind)
		}
		return out, nil
	}
}
