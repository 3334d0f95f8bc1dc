package fetch

import (
	"context"
	"errors"
	"testing"

	"github.com/oneconcern/overrides/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls  [][]string
	output []byte
	err    error
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.output, r.err
}

func TestExpressionGenerator(t *testing.T) {
	runner := &recordingRunner{output: []byte("{ mkDerivation }: mkDerivation {}\n")}
	g := NewExpressionGenerator(runner, "")

	out, err := g.FromDescription(context.Background(), "/tmp/x/beam-core.cabal")
	require.NoError(t, err)
	assert.Equal(t, "{ mkDerivation }: mkDerivation {}\n", string(out))
	assert.Equal(t, [][]string{{"cabal2nix", "/tmp/x/beam-core.cabal"}}, runner.calls)

	runner.output = []byte("  \n")
	_, err = g.FromDescription(context.Background(), "/tmp/x/beam-core.cabal")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrAcquisitionFailure))
}

func TestGitPrefetcher(t *testing.T) {
	runner := &recordingRunner{output: []byte(`{"url": "u"}`)}
	p := NewGitPrefetcher(runner, "/opt/bin/nix-prefetch-git")

	_, err := p.Prefetch(context.Background(), "https://github.com/reflex-frp/reflex-dom.git", "")
	require.NoError(t, err)
	_, err = p.Prefetch(context.Background(), "https://github.com/reflex-frp/reflex-dom.git", "abc123")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"/opt/bin/nix-prefetch-git", "--quiet", "--url", "https://github.com/reflex-frp/reflex-dom.git"},
		{"/opt/bin/nix-prefetch-git", "--quiet", "--url", "https://github.com/reflex-frp/reflex-dom.git", "--rev", "abc123"},
	}, runner.calls)
}

func TestExecRunner(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns processes")
	}
	r := ExecRunner{}

	out, err := r.Run(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))

	_, err = r.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrAcquisitionFailure))
	assert.Contains(t, err.Error(), "oops")

	_, err = r.Run(context.Background(), "definitely-not-a-command-on-path")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrAcquisitionFailure))
}
