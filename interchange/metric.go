package interchange

import (
	"sync/atomic"
)

// Metrics contains atomic counters for a Decoder.
// Counters can be used as the value of a prometheus CounterFunc.
type Metrics struct {
	// SegmentScanCount indicates the number of segment lines scanned.
	SegmentScanCount atomic.Uint64
	// AdviceCount indicates the number of UNA segments detected.
	AdviceCount atomic.Uint64
	// HeaderParseCount indicates the number of interchange headers parsed.
	HeaderParseCount atomic.Uint64
	// DecodeErrCount indicates the number of failed decode calls.
	DecodeErrCount atomic.Uint64
}

func (m *Metrics) incSegmentScanCount() {
	m.SegmentScanCount.Add(1)
}

func (m *Metrics) incAdviceCount() {
	m.AdviceCount.Add(1)
}

func (m *Metrics) incHeaderParseCount() {
	m.HeaderParseCount.Add(1)
}

func (m *Metrics) incDecodeErrCount() {
	m.DecodeErrCount.Add(1)
}
