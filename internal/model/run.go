package model

import (
	"fmt"
	"strings"
	"time"
)

// NoExitCode marks an outcome that did not come from a finished download process
const NoExitCode = -1

// DownloadRequest is the input of a single run
type DownloadRequest struct {
	URL     string
	RootDir string
}

// Outcome is the terminal state of a run
type Outcome struct {
	Status   OutcomeStatus
	ExitCode int    // download process exit code, NoExitCode if none
	Detail   string // captured error text (stderr tail for failed downloads)
	Err      error  // underlying error for failed runs
}

// Succeeded returns the outcome of a download that exited with code 0
func Succeeded() Outcome {
	return Outcome{Status: OutcomeSucceeded, ExitCode: 0}
}

// AbortedNoTitle returns the outcome of a run whose title could not be fetched
func AbortedNoTitle(detail string, err error) Outcome {
	return Outcome{Status: OutcomeAbortedNoTitle, ExitCode: NoExitCode, Detail: detail, Err: err}
}

// AbortedDeclined returns the outcome of a run the user refused to overwrite
func AbortedDeclined() Outcome {
	return Outcome{Status: OutcomeAbortedDeclined, ExitCode: NoExitCode}
}

// Failed returns the outcome of a run that stopped on a fatal error
func Failed(exitCode int, detail string, err error) Outcome {
	return Outcome{Status: OutcomeFailed, ExitCode: exitCode, Detail: detail, Err: err}
}

// Message returns a one-line human readable summary
func (o Outcome) Message() string {
	switch o.Status {
	case OutcomeSucceeded:
		return "download completed"
	case OutcomeAbortedNoTitle:
		return "aborted: title could not be fetched"
	case OutcomeAbortedDeclined:
		return "aborted: existing files kept"
	case OutcomeFailed:
		if o.ExitCode != NoExitCode {
			return fmt.Sprintf("download failed with code %d", o.ExitCode)
		}
		if o.Err != nil {
			return "failed: " + o.Err.Error()
		}
		return "failed"
	default:
		return string(o.Status)
	}
}

// Run records one invocation of the orchestration sequence
type Run struct {
	ID         string
	URL        string
	RootDir    string
	Title      string   // title reported by the fetcher
	TargetDir  string   // RootDir joined with the sanitized title
	Conflicts  []string // pre-existing files matching the title
	Deleted    []string // conflicts removed before the download
	Outcome    Outcome
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the run took, or the time elapsed so far
func (r *Run) Duration() time.Duration {
	if r.StartedAt.IsZero() {
		return 0
	}
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// DisplayTitle returns the title if known, falling back to the URL
func (r *Run) DisplayTitle() string {
	if strings.TrimSpace(r.Title) != "" {
		return r.Title
	}
	return r.URL
}
