package store

import "time"

// Analysis is one recorded parse request. Summary holds the summary document
// as compact JSON; the headline counts are denormalized for cheap listing.
type Analysis struct {
	ID             int64     `json:"id"`
	Language       string    `json:"language"`
	Hash           string    `json:"hash"`
	LineCount      int       `json:"lineCount"`
	RootType       string    `json:"rootType"`
	FunctionCount  int       `json:"functionCount"`
	LoopCount      int       `json:"loopCount"`
	RecursiveCount int       `json:"recursiveCount"`
	Summary        string    `json:"summary"`
	CreatedAt      time.Time `json:"createdAt"`
}
