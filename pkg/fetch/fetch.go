// Package fetch wraps the external tools used to acquire overrides:
// cabal2nix, which generates a Nix build expression from a package description,
// and nix-prefetch-git, which pins a git revision and computes its content hash.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/oneconcern/overrides/pkg/model"
	"go.uber.org/zap"
)

const (
	// DefaultCabal2Nix is the default command generating build expressions
	DefaultCabal2Nix = "cabal2nix"

	// DefaultPrefetchGit is the default command pinning git sources
	DefaultPrefetchGit = "nix-prefetch-git"
)

// Runner runs an external command and returns its standard output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands as subprocesses
type ExecRunner struct {
	Logger *zap.Logger
}

// Run the command, failing with ErrAcquisitionFailure when it exits with an error
func (e ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	logger.Debug("running external tool", zap.String("command", name), zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		} else {
			msg = fmt.Sprintf("%v: %s", err, msg)
		}
		return nil, model.ErrAcquisitionFailure.Wrapf(fmt.Sprintf("%s %s: %s", name, strings.Join(args, " "), msg))
	}
	return stdout.Bytes(), nil
}

// ExpressionGenerator produces Nix build expressions from package descriptions
type ExpressionGenerator struct {
	Runner  Runner
	Command string
}

// NewExpressionGenerator builds a generator, defaulting to cabal2nix
func NewExpressionGenerator(runner Runner, command string) *ExpressionGenerator {
	if command == "" {
		command = DefaultCabal2Nix
	}
	return &ExpressionGenerator{Runner: runner, Command: command}
}

// FromDescription generates the build expression for a package description file
func (g *ExpressionGenerator) FromDescription(ctx context.Context, path string) ([]byte, error) {
	out, err := g.Runner.Run(ctx, g.Command, path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, model.ErrAcquisitionFailure.Wrapf(fmt.Sprintf("%s produced no expression for %s", g.Command, path))
	}
	return out, nil
}

// GitPrefetcher pins git revisions
type GitPrefetcher struct {
	Runner  Runner
	Command string
}

// NewGitPrefetcher builds a prefetcher, defaulting to nix-prefetch-git
func NewGitPrefetcher(runner Runner, command string) *GitPrefetcher {
	if command == "" {
		command = DefaultPrefetchGit
	}
	return &GitPrefetcher{Runner: runner, Command: command}
}

// Prefetch a git repository at some revision (the default branch head if empty),
// returning the descriptor as printed by the tool
func (p *GitPrefetcher) Prefetch(ctx context.Context, url, rev string) ([]byte, error) {
	args := []string{"--quiet", "--url", url}
	if rev != "" {
		args = append(args, "--rev", rev)
	}
	return p.Runner.Run(ctx, p.Command, args...)
}
