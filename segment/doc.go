// Package segment implements the delimiter-aware grammar for the UN/EDIFACT
// interchange service segments and the service advice rewrite engine.
//
// It parses the two leading control segments of an interchange: the optional
// Service String Advice (UNA), which declares the four redefinable delimiter
// characters, and the mandatory Interchange Header (UNB). It also provides
// ApplyServiceAdvice, which rewrites a segment line expressed in a custom
// delimiter set into the canonical one ('+', '.', '?', '\''), so that the
// UNB grammar only ever needs to understand canonical delimiters.
//
// The parser is a direct recursive descent over the input string. Bounded
// fields consume escape-aware logical characters: the release indicator
// followed by any byte counts as one logical character whose value is that
// byte, which lets field values carry delimiter characters as data.
//
// Usage Example:
//
//	advice, err := segment.ParseServiceStringAdvice("UNA:*.? ~")
//	if err != nil {
//	    // Handle error
//	}
//	line := segment.ApplyServiceAdvice("UNB*UNOC:3*SENDER*RECEIVER*940101:0950*1~", advice)
//	header, rest, err := segment.ParseInterchangeHeader(line)
package segment
