package model

// FetchOutcome is the interpreted result of one page request against a
// redundant source. It is one of NoNewData, ChainMismatch or Page.
type FetchOutcome interface {
	fetchOutcome()
}

// NoNewData means the source had nothing after the cursor; retry the same cursor later.
type NoNewData struct {
	Cursor ResumeCursor
}

// ChainMismatch means the source did not recognize the cursor's base hash.
// Candidates are ordered most recent first.
type ChainMismatch struct {
	Candidates []BlockHash
}

// Page carries a batch of blocks in chain order and the cursor for the next request.
type Page struct {
	Blocks []SerializedBlock
	Next   ResumeCursor
}

func (NoNewData) fetchOutcome()     {}
func (ChainMismatch) fetchOutcome() {}
func (Page) fetchOutcome()          {}

// OutcomeName returns a short label for metrics and logs.
func OutcomeName(o FetchOutcome) string {
	switch o.(type) {
	case NoNewData:
		return "no_new_data"
	case ChainMismatch:
		return "chain_mismatch"
	case Page:
		return "page"
	default:
		return "unknown"
	}
}
