package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/oneconcern/overrides/pkg/fetch"
	"github.com/oneconcern/overrides/pkg/model"
	"github.com/stretchr/testify/mock"
)

type ExitMocks struct {
	mock.Mock
	exitStatuses []int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	fmt.Println(v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Exit(code int) {
	m.exitStatuses = append(m.exitStatuses, code)
}

func (m *ExitMocks) fatalCalls() int {
	return len(m.exitStatuses)
}

func NewExitMocks() *ExitMocks {
	exitMocks := ExitMocks{
		exitStatuses: make([]int, 0),
	}
	return &exitMocks
}

func MakeFatalfMock(m *ExitMocks) func(string, ...interface{}) {
	return func(format string, v ...interface{}) {
		m.Fatalf(format, v...)
	}
}

func MakeFatallnMock(m *ExitMocks) func(...interface{}) {
	return func(v ...interface{}) {
		m.Fatalln(v...)
	}
}

func MakeExitMock(m *ExitMocks) func(int) {
	return func(code int) {
		m.Exit(code)
	}
}

// fakeRunner stands for cabal2nix and nix-prefetch-git
type fakeRunner struct {
	mu    sync.Mutex
	calls []string
	fail  bool
}

var _ fetch.Runner = &fakeRunner{}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	f.mu.Unlock()

	if f.fail {
		return nil, model.ErrAcquisitionFailure.Wrapf(name + " failed")
	}
	switch name {
	case fetch.DefaultCabal2Nix:
		pkg := strings.TrimSuffix(filepath.Base(args[0]), ".cabal")
		return []byte(fmt.Sprintf("{ mkDerivation }:\nmkDerivation {\n  pname = %q;\n}\n", pkg)), nil
	case fetch.DefaultPrefetchGit:
		url, rev := args[2], "0123abcd"
		if len(args) > 4 {
			rev = args[4]
		}
		return []byte(fmt.Sprintf(`{"url": %q, "rev": %q, "date": "2020-01-01", "sha256": "0fakesha", "fetchSubmodules": false}`, url, rev)), nil
	default:
		return nil, fmt.Errorf("unexpected command %s", name)
	}
}
