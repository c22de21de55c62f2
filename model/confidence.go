package model

// ConfidenceLevel represents the contributor's confidence in an assertion.
// Any URI is a valid ConfidenceLevel.
type ConfidenceLevel string

const (
	// ConfidenceHigh indicates a high degree of confidence that the
	// assertion is true.
	ConfidenceHigh ConfidenceLevel = "http://gedcomx.org/High"

	// ConfidenceMedium indicates a medium degree of confidence that the
	// assertion is true.
	ConfidenceMedium ConfidenceLevel = "http://gedcomx.org/Medium"

	// ConfidenceLow indicates a low degree of confidence that the assertion
	// is true.
	ConfidenceLow ConfidenceLevel = "http://gedcomx.org/Low"
)

//nolint:gochecknoglobals
var confidenceLevels = newVocabulary(ConfidenceHigh, ConfidenceMedium, ConfidenceLow)

// ParseConfidenceLevel returns the ConfidenceLevel for str, which may be a
// URI or one of the short terms "High", "Medium", or "Low".
func ParseConfidenceLevel(str string) ConfidenceLevel { return confidenceLevels.parse(str) }

// KnownConfidenceLevels returns the confidence levels defined by GEDCOM X,
// sorted by URI.
func KnownConfidenceLevels() []ConfidenceLevel { return confidenceLevels.sorted() }

// IsKnown returns true if cl is defined by GEDCOM X.
func (cl ConfidenceLevel) IsKnown() bool { return confidenceLevels.known(cl) }

// Term returns the short term for cl, or its full URI if it is custom.
func (cl ConfidenceLevel) Term() string { return confidenceLevels.term(cl) }

// String returns the URI of cl.
func (cl ConfidenceLevel) String() string { return string(cl) }
