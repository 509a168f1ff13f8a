package model

// CycleStatus describes how a completed sync cycle ended.
type CycleStatus string

var (
	// CycleAdvanced means a page of blocks was imported and the cursor moved.
	CycleAdvanced CycleStatus = "advanced"
	// CycleNoNewData means the source had nothing new; the cursor is unchanged.
	CycleNoNewData CycleStatus = "no_new_data"
	// CycleRecovered means a chain mismatch was resolved to a locally known ancestor.
	CycleRecovered CycleStatus = "recovered"
	// CycleStalled means no candidate ancestor was known locally; the cursor is not updated.
	CycleStalled CycleStatus = "stalled"
	// CycleFailed marks a cycle that returned an error.
	CycleFailed CycleStatus = "failed"
)
