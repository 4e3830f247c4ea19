package obslog

// Fixed narration messages for engine progress. The catalogue lives with
// the logging collaborator; the engines expose data-bearing hooks and
// know nothing about these strings.
const (
	msgCoverSegmentCovered = "segment already covered"
	msgCoverSegmentNew     = "segment needs a new point"
	msgCoverPointSelected  = "cover point selected"

	msgTriRowFilled = "dp row filled"
	msgTriPathStep  = "path element chosen"
)
