package model

import (
	"time"

	"github.com/theory/gedcomx/formal"
	"github.com/theory/gedcomx/types"
)

// ResourceReference is a generic reference to a resource by URI.
type ResourceReference struct {
	// Resource is the URI of the referenced resource.
	Resource string `json:"resource" toml:"resource" xml:"resource,attr" yaml:"resource"`
}

// Date is a concluded genealogical date: the text supplied by the
// contributor and its standardized formal value.
type Date struct {
	// Original is the value of the date as supplied by the contributor.
	Original string `json:"original,omitempty" toml:"original,omitempty" xml:"original,omitempty" yaml:"original,omitempty"`

	// Formal is the standardized value of the date.
	Formal *formal.Date `json:"formal,omitempty" toml:"formal,omitempty" xml:"formal,omitempty" yaml:"formal,omitempty"`
}

// NewDate creates a Date from the contributor's original text and the
// formal date string that standardizes it. Returns an error if formalDate
// fails to parse. Pass an empty formalDate for a Date with only original
// text.
func NewDate(original, formalDate string) (*Date, error) {
	date := &Date{Original: original}
	if formalDate != "" {
		val, err := formal.Parse(formalDate)
		if err != nil {
			//nolint:wrapcheck // Okay to return unwrapped error
			return nil, err
		}
		date.Formal = val
	}
	return date, nil
}

// Attribution records who made the latest significant change to a record,
// when, and why.
type Attribution struct {
	// Contributor references the agent to whom the data is attributed.
	Contributor *ResourceReference `json:"contributor,omitempty" toml:"contributor,omitempty" xml:"contributor,omitempty" yaml:"contributor,omitempty"`

	// Modified is when the attributed data was modified.
	Modified *types.Timestamp `json:"modified,omitempty" toml:"modified,omitempty" xml:"modified,omitempty" yaml:"modified,omitempty"`

	// ChangeMessage describes why the contributor provided the data.
	ChangeMessage string `json:"changeMessage,omitempty" toml:"changeMessage,omitempty" xml:"changeMessage,omitempty" yaml:"changeMessage,omitempty"`

	// Creator references the agent that created the data, which may differ
	// from the contributor.
	Creator *ResourceReference `json:"creator,omitempty" toml:"creator,omitempty" xml:"creator,omitempty" yaml:"creator,omitempty"`

	// Created is when the attributed data was contributed.
	Created *types.Timestamp `json:"created,omitempty" toml:"created,omitempty" xml:"created,omitempty" yaml:"created,omitempty"`
}

// NewAttribution creates an Attribution to the agent identified by
// contributor, modified at modified with message.
func NewAttribution(contributor ID, modified time.Time, message string) *Attribution {
	return &Attribution{
		Contributor:   contributor.Ref(),
		Modified:      types.New(modified),
		ChangeMessage: message,
	}
}

// Qualifier supplies additional details about a [Fact]. A qualifier without
// a value acts as a tag.
type Qualifier struct {
	// Name identifies the qualifier, usually a vocabulary URI.
	Name string `json:"name" toml:"name" xml:"name,attr" yaml:"name"`

	// Value is the optional value of the qualifier.
	Value string `json:"value,omitempty" toml:"value,omitempty" xml:",chardata" yaml:"value,omitempty"`
}

// Fact is a data item presumed to be true about a person or relationship,
// such as a birth or marriage.
type Fact struct {
	ID          ID              `json:"id,omitempty"          toml:"id,omitempty"          xml:"id,attr,omitempty"         yaml:"id,omitempty"`
	Type        FactType        `json:"type"                  toml:"type"                  xml:"type,attr"                 yaml:"type"`
	Confidence  ConfidenceLevel `json:"confidence,omitempty"  toml:"confidence,omitempty"  xml:"confidence,attr,omitempty" yaml:"confidence,omitempty"`
	Attribution *Attribution    `json:"attribution,omitempty" toml:"attribution,omitempty" xml:"attribution,omitempty"     yaml:"attribution,omitempty"`
	Date        *Date           `json:"date,omitempty"        toml:"date,omitempty"        xml:"date,omitempty"            yaml:"date,omitempty"`
	Value       string          `json:"value,omitempty"       toml:"value,omitempty"       xml:"value,omitempty"           yaml:"value,omitempty"`
	Qualifiers  []Qualifier     `json:"qualifiers,omitempty"  toml:"qualifiers,omitempty"  xml:"qualifier,omitempty"       yaml:"qualifiers,omitempty"`
}

// NewFact creates a Fact of type ft on date.
func NewFact(ft FactType, date *Date) *Fact {
	return &Fact{Type: ft, Date: date}
}
