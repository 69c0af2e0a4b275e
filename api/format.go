// Package api holds enum-like descriptors and the text format they share.
package api

import (
	"errors"
	"fmt"
)

type OutputFormat uint8

const (
	Full OutputFormat = iota
	FullCompressed
	Reduced
	ReducedEnriched
	ReducedCompressed
	ReducedEnrichedCompressed
)

var ErrUnknownOutputFormat = errors.New("unknown output format")

var outputFormatNames = [...]string{
	Full:                      "FULL",
	FullCompressed:            "FULL_COMPRESSED",
	Reduced:                   "REDUCED",
	ReducedEnriched:           "REDUCED_ENRICHED",
	ReducedCompressed:         "REDUCED_COMPRESSED",
	ReducedEnrichedCompressed: "REDUCED_ENRICHED_COMPRESSED",
}

func OutputFormats() []OutputFormat {
	return []OutputFormat{Full, FullCompressed, Reduced, ReducedEnriched, ReducedCompressed, ReducedEnrichedCompressed}
}

func (f OutputFormat) String() string {
	if int(f) < len(outputFormatNames) {
		return outputFormatNames[f]
	}
	return fmt.Sprintf("OutputFormat(%d)", f)
}

// Compressed reports whether the format renders on a single line.
func (f OutputFormat) Compressed() bool {
	switch f {
	case FullCompressed, ReducedCompressed, ReducedEnrichedCompressed:
		return true
	default:
		return false
	}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range outputFormatNames {
		if name == s {
			return OutputFormat(i), nil
		}
	}
	return Full, fmt.Errorf("%w: %q", ErrUnknownOutputFormat, s)
}

// Api is implemented by descriptor enums.
type Api interface {
	Name() string
	UIString() string
	APIString() string
	Format(f OutputFormat) string
}
