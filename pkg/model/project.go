package model

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var versionRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// ValidateProject checks that a project identifier is usable as a record name
func ValidateProject(project string) error {
	if project == "" {
		return fmt.Errorf("empty field: project name is empty")
	}
	if strings.HasPrefix(project, ".") || strings.HasPrefix(project, "-") {
		return fmt.Errorf("invalid name: project name %q may not start with %q", project, project[:1])
	}
	for _, c := range project {
		if !unicode.IsDigit(c) && !unicode.IsLetter(c) && c != '-' && c != '_' && c != '.' {
			return fmt.Errorf("invalid name: project name:%s contains unsupported character %q",
				project, string(c))
		}
	}
	return nil
}

// IsVersion tells if a string looks like a dotted numeric package version, e.g. 0.9.0.0
func IsVersion(version string) bool {
	return versionRe.MatchString(version)
}

// PackageID is a package name, optionally pinned to a version
type PackageID struct {
	Name    string
	Version string
}

// Pinned tells if a version is specified
func (p PackageID) Pinned() bool {
	return p.Version != ""
}

func (p PackageID) String() string {
	if !p.Pinned() {
		return p.Name
	}
	return p.Name + "-" + p.Version
}

// ParsePackageID splits an identifier like "beam-core-0.9.0.0" into name and version.
//
// The trailing dash-separated component is a version only if it is made of dotted digits:
// "beam-core" has no version.
func ParsePackageID(id string) (PackageID, error) {
	var pkg PackageID
	if idx := strings.LastIndexByte(id, '-'); idx > 0 && IsVersion(id[idx+1:]) {
		pkg = PackageID{Name: id[:idx], Version: id[idx+1:]}
	} else {
		pkg = PackageID{Name: id}
	}
	if err := ValidateProject(pkg.Name); err != nil {
		return PackageID{}, err
	}
	return pkg, nil
}
