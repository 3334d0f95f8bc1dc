// Package nixexpr renders composed overrides as a Nix overlay.
//
// Derivations are Nix expressions (of type Expr) referring to the self and
// super package sets of the overlay, so that the build pipeline evaluates them lazily.
package nixexpr

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/oneconcern/overrides/pkg/compose"
	"github.com/oneconcern/overrides/pkg/model"
)

// Expr is a Nix expression
type Expr string

var _ compose.Builder = Builder{}

// flagFunctions maps build flags to haskell.lib functions
var flagFunctions = map[model.Flag]string{
	model.FlagRelaxBounds: "doJailbreak",
	model.FlagSkipTests:   "dontCheck",
	model.FlagSkipDocs:    "dontHaddock",
}

// Builder produces Nix expressions for override records
type Builder struct{}

// CallExpression calls the stored build expression with callPackage
func (Builder) CallExpression(_, _ compose.PackageSet, project string, expression []byte) (compose.Derivation, error) {
	body := strings.TrimSpace(string(expression))
	if body == "" {
		return nil, model.ErrMalformedRecord.Wrapf("empty build expression")
	}
	return Expr(fmt.Sprintf("self.callPackage (\n%s\n) {}", indent(body, "  "))), nil
}

// CallGitHub generates the build expression from the GitHub sources with callCabal2nix
func (Builder) CallGitHub(_, _ compose.PackageSet, project string, src model.GitHubSource) (compose.Derivation, error) {
	return Expr(fmt.Sprintf(`self.callCabal2nix %s (pkgs.fetchFromGitHub {
  owner = %s;
  repo = %s;
  rev = %s;
  sha256 = %s;
}) {}`, Quote(project), Quote(src.Owner), Quote(src.Repo), Quote(src.Rev), Quote(src.SHA256))), nil
}

// ApplyFlag wraps the derivation with the haskell.lib function matching the flag
func (Builder) ApplyFlag(d compose.Derivation, flag model.Flag) (compose.Derivation, error) {
	expr, ok := d.(Expr)
	if !ok {
		return nil, fmt.Errorf("unexpected derivation type %T", d)
	}
	fn, ok := flagFunctions[flag]
	if !ok {
		return nil, model.ErrUnrecognizedOption.Wrapf(flag.String())
	}
	return Expr(fmt.Sprintf("haskellLib.%s (%s)", fn, expr)), nil
}

// Render a package set as a Nix overlay file, with attributes sorted by name
func Render(set compose.PackageSet) ([]byte, error) {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString("# generated by overrides compose: do not edit\n")
	buf.WriteString("{ pkgs, haskellLib ? pkgs.haskell.lib }:\n\nself: super: {\n")
	for _, name := range names {
		expr, ok := set[name].(Expr)
		if !ok {
			return nil, fmt.Errorf("project %q: unexpected derivation type %T", name, set[name])
		}
		fmt.Fprintf(&buf, "  %s = %s;\n", Quote(name), indent(string(expr), "  ")[2:])
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// Quote a string as a Nix string literal
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "${", `\${`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
