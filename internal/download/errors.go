package download

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of a run
type ErrorKind string

const (
	KindTitleFetchFailed      ErrorKind = "title_fetch_failed"
	KindDirectoryCreateFailed ErrorKind = "directory_create_failed"
	KindDirectoryListFailed   ErrorKind = "directory_list_failed"
	KindFileDeleteFailed      ErrorKind = "file_delete_failed"
	KindDownloadProcessFailed ErrorKind = "download_process_failed"
	KindUnexpectedFailure     ErrorKind = "unexpected_failure"
)

// Fatal reports whether errors of this kind abort the run
func (k ErrorKind) Fatal() bool {
	switch k {
	case KindDirectoryListFailed, KindFileDeleteFailed:
		return false
	default:
		return true
	}
}

// ErrBusy is returned by Start while another run is in flight
var ErrBusy = errors.New("a download is already running")

// RunError describes a failed step of a run
type RunError struct {
	Kind     ErrorKind
	Path     string // file or directory involved, if any
	ExitCode int    // process exit code, if the step ran a process
	Output   string // captured process output
	Err      error
}

func (e *RunError) Error() string {
	msg := string(e.Kind)
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Kind == KindTitleFetchFailed || e.Kind == KindDownloadProcessFailed {
		if e.ExitCode != 0 {
			msg += fmt.Sprintf(" (exit code %d)", e.ExitCode)
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Is matches another *RunError of the same kind
func (e *RunError) Is(target error) bool {
	t, ok := target.(*RunError)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of a *RunError in err's chain, or KindUnexpectedFailure
func KindOf(err error) ErrorKind {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr.Kind
	}
	return KindUnexpectedFailure
}
