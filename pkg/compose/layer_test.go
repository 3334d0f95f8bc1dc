package compose

import (
	"errors"
	"testing"

	"github.com/oneconcern/overrides/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(project string, d Derivation) Partial {
	return Partial{
		Kind:    model.KindExpression,
		Project: project,
		Build: func(_, _ PackageSet) (PackageSet, error) {
			return PackageSet{project: d}, nil
		},
	}
}

func TestLayerLaterWins(t *testing.T) {
	a := constant("x", "from A")
	b := constant("x", "from B")

	out, err := Chain{a, b}.Override()(PackageSet{}, PackageSet{})
	require.NoError(t, err)
	assert.Equal(t, PackageSet{"x": "from B"}, out)

	out, err = Chain{b, a}.Override()(PackageSet{}, PackageSet{})
	require.NoError(t, err)
	assert.Equal(t, PackageSet{"x": "from A"}, out)
}

func TestLayerSeesEarlierPackages(t *testing.T) {
	base := constant("base-pkg", "v2")
	var seen Derivation
	dependent := Partial{
		Project: "dependent",
		Build: func(_, super PackageSet) (PackageSet, error) {
			seen = super["base-pkg"]
			return PackageSet{"dependent": "built against " + super["base-pkg"].(string)}, nil
		},
	}

	super := PackageSet{"base-pkg": "v1", "untouched": "u"}
	out, err := Chain{base, dependent}.Override()(PackageSet{}, super)
	require.NoError(t, err)
	assert.Equal(t, "v2", seen)
	assert.Equal(t, PackageSet{"base-pkg": "v2", "dependent": "built against v2"}, out,
		"the override only yields what it adds, not the whole super set")
}

func TestLayerMatchesDefinition(t *testing.T) {
	f := constant("x", "f").Build
	g := func(_, super PackageSet) (PackageSet, error) {
		return PackageSet{"y": super["x"], "z": "g"}, nil
	}

	out, err := Layer(f, g)(PackageSet{}, PackageSet{"x": "super"})
	require.NoError(t, err)
	assert.Equal(t, PackageSet{"x": "f", "y": "f", "z": "g"}, out)
}

func TestLayerAssociative(t *testing.T) {
	a, b, c := constant("x", "a").Build, constant("x", "b").Build, constant("y", "c").Build
	super := PackageSet{"x": "super"}

	left, err := Layer(Layer(a, b), c)(nil, super)
	require.NoError(t, err)
	right, err := Layer(a, Layer(b, c))(nil, super)
	require.NoError(t, err)
	assert.Equal(t, left, right)
}

func TestEmptyChainIsIdentity(t *testing.T) {
	out, err := Chain(nil).Override()(PackageSet{}, PackageSet{"a": 1})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestChainIsolatesFailures(t *testing.T) {
	boom := errors.New("boom")
	broken := Partial{
		Kind:    model.KindDescriptor,
		Project: "broken",
		Build: func(_, _ PackageSet) (PackageSet, error) {
			return nil, boom
		},
	}

	out, err := Chain{constant("a", 1), broken, constant("b", 2)}.Override()(PackageSet{}, PackageSet{})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `project "broken"`)
	assert.Equal(t, PackageSet{"a": 1, "b": 2}, out)
}

func TestUnion(t *testing.T) {
	left := PackageSet{"a": 1, "b": 1}
	right := PackageSet{"b": 2, "c": 2}
	assert.Equal(t, PackageSet{"a": 1, "b": 2, "c": 2}, Union(left, right))
	assert.Equal(t, PackageSet{"a": 1, "b": 1}, left, "inputs are not mutated")
}
