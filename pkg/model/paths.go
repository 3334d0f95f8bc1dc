package model

import (
	"fmt"
	"path"
	"strings"
)

// Kind of override record
type Kind string

const (
	// KindExpression identifies raw build expression records
	KindExpression Kind = "expression"

	// KindDescriptor identifies source-repository descriptor records
	KindDescriptor Kind = "descriptor"
)

const (
	exprOverridesDir       = "expr-overrides"
	descriptorOverridesDir = "descriptor-overrides"
	optionsDir             = "options"

	exprExt       = ".nix"
	descriptorExt = ".json"
)

// Kinds lists all kinds of records, in the order they are layered.
//
// Records of a later kind take precedence over records of an earlier kind.
var Kinds = []Kind{KindExpression, KindDescriptor}

// Dir is the directory holding records of this kind
func (k Kind) Dir() string {
	switch k {
	case KindExpression:
		return exprOverridesDir
	case KindDescriptor:
		return descriptorOverridesDir
	default:
		return ""
	}
}

// Ext is the file extension of records of this kind
func (k Kind) Ext() string {
	switch k {
	case KindExpression:
		return exprExt
	case KindDescriptor:
		return descriptorExt
	default:
		return ""
	}
}

// Valid kind?
func (k Kind) Valid() bool {
	return k.Dir() != ""
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind resolves a kind from its name
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if !k.Valid() {
		return "", fmt.Errorf("unknown override kind %q", name)
	}
	return k, nil
}

// GetPathToOverride yields the storage key for the record of a project
func GetPathToOverride(kind Kind, project string) string {
	return path.Join(kind.Dir(), project+kind.Ext())
}

// GetPathToOverrides yields the storage "directory" holding all records of a kind
func GetPathToOverrides(kind Kind) string {
	return kind.Dir()
}

// GetProjectFromPath extracts the project from a record key.
//
// It returns false when the key does not look like a record of this kind.
func GetProjectFromPath(kind Kind, key string) (string, bool) {
	dir, file := path.Split(key)
	if path.Clean(dir) != kind.Dir() || !strings.HasSuffix(file, kind.Ext()) {
		return "", false
	}
	project := strings.TrimSuffix(file, kind.Ext())
	if ValidateProject(project) != nil {
		return "", false
	}
	return project, true
}

// GetPathToOption yields the storage key for the option file of a flag
func GetPathToOption(flag Flag) string {
	return path.Join(optionsDir, string(flag))
}
