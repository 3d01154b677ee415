// Package interchange decodes the leading control segments of a complete
// UN/EDIFACT interchange held in memory.
//
// A Decoder detects an optional Service String Advice (UNA), splits the
// input into segment lines on the active segment terminator with escape
// awareness, normalizes every line to the canonical delimiter set, and
// parses the mandatory Interchange Header (UNB). All segments after the
// header are returned as raw canonicalized lines: message body segments
// (UNH, BGM, UNT, UNZ and friends) are a consumer concern, as is any kind
// of I/O.
//
// Usage Example:
//
//	dec := interchange.NewDecoder()
//	ic, err := dec.Decode("UNA:*.? ~UNB*UNOC:3*SENDER*RECEIVER*940101:0950*1~UNH*...~")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(ic.Header.ControlReference)
package interchange
