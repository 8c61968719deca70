package types

// Rejection records an input record that could not be resolved into a valid
// coordinate, with a human-readable reason. Rejections never stop a run.
type Rejection struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}
