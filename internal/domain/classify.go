package domain

// StreamThresholdMs is the qualifying playback duration for a stream. Plays
// below it still count as entries and toward skip and time totals, but never
// toward stream counts.
const StreamThresholdMs = 30_000

// manualSkipReasons are the reason_end codes treated as a skip when the
// export version predates the explicit skipped field.
var manualSkipReasons = map[string]struct{}{
	"backbtn": {},
	"fwdbtn":  {},
	"endplay": {},
	"unknown": {},
}

// IsStream reports whether the play qualifies as a stream.
func (e PlayEvent) IsStream() bool {
	return e.MsPlayed >= StreamThresholdMs
}

// IsSkipped applies the skip policy: the source-reported flag wins when the
// export carries one; otherwise fall back to the manual-skip reason codes.
func (e PlayEvent) IsSkipped() bool {
	if e.SkippedFlag != nil {
		return *e.SkippedFlag
	}
	_, ok := manualSkipReasons[e.ReasonEnd]
	return ok
}

// ShuffleEligible reports whether the event counts toward the shuffle
// percentage, which is computed over qualifying music streams only.
func (e PlayEvent) ShuffleEligible() bool {
	return e.IsStream() && !e.IsPodcast()
}
