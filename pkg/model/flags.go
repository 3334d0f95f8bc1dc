package model

// Flag is a build-time toggle applied to a project
type Flag string

const (
	// FlagRelaxBounds ignores the version bounds declared by the package
	FlagRelaxBounds Flag = "relax-dependency-bounds"

	// FlagSkipTests disables the test suite
	FlagSkipTests Flag = "skip-tests"

	// FlagSkipDocs disables documentation generation
	FlagSkipDocs Flag = "skip-docs"
)

// RecognizedFlags is the closed set of flags known to the system, in a fixed order
var RecognizedFlags = []Flag{FlagRelaxBounds, FlagSkipTests, FlagSkipDocs}

// Recognized flag?
func (f Flag) Recognized() bool {
	for _, known := range RecognizedFlags {
		if f == known {
			return true
		}
	}
	return false
}

func (f Flag) String() string {
	return string(f)
}

// FlagNames returns the names of all recognized flags
func FlagNames() []string {
	names := make([]string, 0, len(RecognizedFlags))
	for _, f := range RecognizedFlags {
		names = append(names, string(f))
	}
	return names
}
