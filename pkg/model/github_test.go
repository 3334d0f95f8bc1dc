package model

import (
	"testing"

	"github.com/oneconcern/overrides/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitHubURL(t *testing.T) {
	owner, repo, err := ParseGitHubURL("https://github.com/reflex-frp/reflex-dom.git")
	require.NoError(t, err)
	assert.Equal(t, "reflex-frp", owner)
	assert.Equal(t, "reflex-dom", repo)

	owner, repo, err = ParseGitHubURL("https://github.com/ghcjs/ghcjs-base.js.git")
	require.NoError(t, err)
	assert.Equal(t, "ghcjs", owner)
	assert.Equal(t, "ghcjs-base.js", repo)

	for _, url := range []string{
		"https://github.com/reflex-frp/reflex-dom",
		"http://github.com/reflex-frp/reflex-dom.git",
		"https://gitlab.com/reflex-frp/reflex-dom.git",
		"https://github.com/reflex-frp/reflex-dom/sub.git",
		"git@github.com:reflex-frp/reflex-dom.git",
		"https://github.com/git@github.com:reflex-frp/reflex-dom.git",
		"https://github.com/reflex-frp/reflex dom.git",
		"https://github.com/-reflex/reflex-dom.git",
		"https://github.com/reflex-frp/.git",
	} {
		_, _, err = ParseGitHubURL(url)
		require.Errorf(t, err, "expected %q to be rejected", url)
		assert.True(t, errors.Is(err, ErrMalformedRecord))
	}
}

func TestParseGitDescriptor(t *testing.T) {
	const prefetched = `{
  "url": "https://github.com/reflex-frp/reflex-dom.git",
  "rev": "c5a4ba2f4ba2e2a7a7bd2b2bbd4a9b2e2ad56ad9",
  "date": "2019-05-02T16:24:00-04:00",
  "sha256": "0hbh7b6bfy8x1sjmiqs1d0x3gf0b3vk0zxn54yfwqvqvyhqlq7ah",
  "fetchSubmodules": false
}`
	desc, err := ParseGitDescriptor([]byte(prefetched))
	require.NoError(t, err)
	src, err := desc.Source()
	require.NoError(t, err)
	assert.Equal(t, GitHubSource{
		Owner:  "reflex-frp",
		Repo:   "reflex-dom",
		Rev:    "c5a4ba2f4ba2e2a7a7bd2b2bbd4a9b2e2ad56ad9",
		SHA256: "0hbh7b6bfy8x1sjmiqs1d0x3gf0b3vk0zxn54yfwqvqvyhqlq7ah",
	}, src)

	b, err := desc.Marshal()
	require.NoError(t, err)
	again, err := ParseGitDescriptor(b)
	require.NoError(t, err)
	assert.Equal(t, desc, again)

	t.Run("missing field", func(t *testing.T) {
		_, err := ParseGitDescriptor([]byte(`{"url": "https://github.com/a/b.git", "rev": "abc"}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedRecord))
		assert.Contains(t, err.Error(), "sha256")
	})

	t.Run("not json", func(t *testing.T) {
		_, err := ParseGitDescriptor([]byte(`{ self, super }: {}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedRecord))
	})

	t.Run("url without .git suffix", func(t *testing.T) {
		desc, err := ParseGitDescriptor([]byte(`{"url": "https://github.com/reflex-frp/reflex-dom", "rev": "abc", "sha256": "xyz"}`))
		require.NoError(t, err)
		_, err = desc.Source()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedRecord))
	})
}

func TestProjectError(t *testing.T) {
	err := NewProjectError("reflex-dom", ErrMalformedRecord.Wrapf("empty field: rev is empty")).WithKind(KindDescriptor)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.Equal(t, `project "reflex-dom" (descriptor override): malformed override record: empty field: rev is empty`, err.Error())

	var pe *ProjectError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "reflex-dom", pe.Project)

	err = NewProjectError("dom", ErrUnrecognizedOption).WithFlag("skip-bench")
	assert.Contains(t, err.Error(), `flag "skip-bench"`)
}
