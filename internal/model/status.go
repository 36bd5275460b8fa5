package model

// OutcomeStatus represents how a download run ended
type OutcomeStatus string

const (
	// OutcomeAbortedNoTitle means the fetcher could not report a title
	OutcomeAbortedNoTitle OutcomeStatus = "aborted_no_title"

	// OutcomeAbortedDeclined means the user refused to overwrite existing files
	OutcomeAbortedDeclined OutcomeStatus = "aborted_declined"

	// OutcomeFailed means the run stopped on a fatal error
	OutcomeFailed OutcomeStatus = "failed"

	// OutcomeSucceeded means the download process exited with code 0
	OutcomeSucceeded OutcomeStatus = "succeeded"
)

// String returns the string representation of OutcomeStatus
func (s OutcomeStatus) String() string {
	return string(s)
}

// IsSuccess returns true only for a completed download
func (s OutcomeStatus) IsSuccess() bool {
	return s == OutcomeSucceeded
}

// IsAborted returns true if the run stopped before the download phase without failing
func (s OutcomeStatus) IsAborted() bool {
	return s == OutcomeAbortedNoTitle || s == OutcomeAbortedDeclined
}
