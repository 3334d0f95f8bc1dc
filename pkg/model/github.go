package model

import (
	"fmt"
	"regexp"

	jsoniter "github.com/json-iterator/go"
)

var githubURLRe = regexp.MustCompile(`^https://github\.com/([A-Za-z0-9][A-Za-z0-9-]*)/([A-Za-z0-9_.-]+?)\.git$`)

// GitDescriptor is the stored provenance of a source-repository override.
//
// This is the output of nix-prefetch-git: unknown fields are ignored.
type GitDescriptor struct {
	URL    string `json:"url" yaml:"url"`
	Rev    string `json:"rev" yaml:"rev"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// GitHubSource is everything needed to fetch a project from GitHub
type GitHubSource struct {
	Owner  string `json:"owner" yaml:"owner"`
	Repo   string `json:"repo" yaml:"repo"`
	Rev    string `json:"rev" yaml:"rev"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// ParseGitHubURL extracts owner and repository from an URL like https://github.com/<owner>/<repo>.git
func ParseGitHubURL(url string) (owner, repo string, err error) {
	m := githubURLRe.FindStringSubmatch(url)
	if m == nil {
		return "", "", ErrMalformedRecord.Wrapf(
			fmt.Sprintf("url %q does not match https://github.com/<owner>/<repo>.git", url))
	}
	return m[1], m[2], nil
}

// ParseGitDescriptor decodes a stored descriptor record
func ParseGitDescriptor(content []byte) (GitDescriptor, error) {
	var desc GitDescriptor
	if err := jsoniter.Unmarshal(content, &desc); err != nil {
		return GitDescriptor{}, ErrMalformedRecord.Wrap(err)
	}
	if err := desc.Validate(); err != nil {
		return GitDescriptor{}, err
	}
	return desc, nil
}

// Validate that all required fields are present
func (d GitDescriptor) Validate() error {
	switch {
	case d.URL == "":
		return ErrMalformedRecord.Wrapf("empty field: url is empty")
	case d.Rev == "":
		return ErrMalformedRecord.Wrapf("empty field: rev is empty")
	case d.SHA256 == "":
		return ErrMalformedRecord.Wrapf("empty field: sha256 is empty")
	}
	return nil
}

// Source reconstructs the GitHub provenance of this descriptor
func (d GitDescriptor) Source() (GitHubSource, error) {
	if err := d.Validate(); err != nil {
		return GitHubSource{}, err
	}
	owner, repo, err := ParseGitHubURL(d.URL)
	if err != nil {
		return GitHubSource{}, err
	}
	return GitHubSource{
		Owner:  owner,
		Repo:   repo,
		Rev:    d.Rev,
		SHA256: d.SHA256,
	}, nil
}

// Marshal the descriptor as stored on disk
func (d GitDescriptor) Marshal() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(d, "", "  ")
}
