// Package edifact provides the core value types for the UN/EDIFACT
// interchange service segments: the Service String Advice (UNA) delimiter
// set, the Interchange Header (UNB) and its composite parts, the Level A
// and Level B service character sets, and the error kinds reported by the
// segment grammar.
//
// Values in this package are plain immutable data. Parsing text into them
// is the job of the segment package; assembling whole interchanges is the
// job of the interchange package.
//
// Delimiters:
//
// An interchange either opens with a UNA segment that declares its four
// redefinable delimiter characters, or it uses the canonical defaults
// ('+', '.', '?', '\''). The component data-element separator (':') is
// fixed by the standard and cannot be redefined.
//
// Usage Example:
//
//	advice := edifact.DefaultAdvice()
//	if err := advice.Validate(); err != nil {
//	    // Handle error
//	}
//	// Render the canonical service string advice line
//	line := advice.String() // "UNA:+.? '"
package edifact
