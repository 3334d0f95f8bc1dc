package nixexpr

import (
	"testing"

	"github.com/oneconcern/overrides/pkg/compose"
	"github.com/oneconcern/overrides/pkg/errors"
	"github.com/oneconcern/overrides/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOverlay(t *testing.T) {
	b := Builder{}

	expr, err := b.CallExpression(nil, nil, "beam-core", []byte("{ mkDerivation, base }:\nmkDerivation {\n  pname = \"beam-core\";\n}\n"))
	require.NoError(t, err)
	expr, err = b.ApplyFlag(expr, model.FlagSkipTests)
	require.NoError(t, err)

	gh, err := b.CallGitHub(nil, nil, "reflex-dom", model.GitHubSource{
		Owner:  "reflex-frp",
		Repo:   "reflex-dom",
		Rev:    "c5a4ba2",
		SHA256: "0hbh7b6",
	})
	require.NoError(t, err)

	out, err := Render(compose.PackageSet{"reflex-dom": gh, "beam-core": expr})
	require.NoError(t, err)
	assert.Equal(t, `# generated by overrides compose: do not edit
{ pkgs, haskellLib ? pkgs.haskell.lib }:

self: super: {
  "beam-core" = haskellLib.dontCheck (self.callPackage (
    { mkDerivation, base }:
    mkDerivation {
      pname = "beam-core";
    }
  ) {});
  "reflex-dom" = self.callCabal2nix "reflex-dom" (pkgs.fetchFromGitHub {
    owner = "reflex-frp";
    repo = "reflex-dom";
    rev = "c5a4ba2";
    sha256 = "0hbh7b6";
  }) {};
}
`, string(out))
}

func TestRenderEmpty(t *testing.T) {
	out, err := Render(compose.PackageSet{})
	require.NoError(t, err)
	assert.Contains(t, string(out), "self: super: {\n}\n")
}

func TestBuilderErrors(t *testing.T) {
	b := Builder{}

	_, err := b.CallExpression(nil, nil, "empty", []byte("  \n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrMalformedRecord))

	_, err = b.ApplyFlag(Expr("x"), model.Flag("skip-benchmarks"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnrecognizedOption))

	_, err = b.ApplyFlag(42, model.FlagSkipDocs)
	require.Error(t, err)

	_, err = Render(compose.PackageSet{"odd": 42})
	require.Error(t, err)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, Quote("plain"))
	assert.Equal(t, `"a\"b\\c\${d}"`, Quote(`a"b\c${d}`))
}
