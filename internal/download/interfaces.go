package download

import (
	"context"
)

// Notifier is the UI collaborator of a run. Implementations must marshal
// every call onto their own UI thread; Confirm blocks the calling worker
// until the user answers.
type Notifier interface {
	Log(line string)
	Confirm(title, message string) bool
	NotifyError(title, message string)
	SetBusy(busy bool)
}

// Stage is the visible phase of a run
type Stage string

const (
	StageChecking    Stage = "checking"
	StageDownloading Stage = "downloading"
)

// StageReporter is optionally implemented by a Notifier that wants to know
// when a run moves from checking to downloading.
type StageReporter interface {
	SetStage(stage Stage)
}

// Fetcher drives the external download tool.
type Fetcher interface {
	// Title resolves the media title for url without downloading it.
	Title(ctx context.Context, url string) (string, error)

	// Download starts the full download, writing files according to the
	// output template, and returns the merged console output of the process.
	Download(ctx context.Context, url, outputTemplate string) (LineStream, error)
}

// LineStream is a pull iterator over the output lines of one process.
// Scan/Text follow bufio.Scanner; Wait must be called once Scan returns
// false and reports the process exit code.
type LineStream interface {
	Scan() bool
	Text() string
	Wait() (exitCode int, err error)
}

// FileSystem is the subset of filesystem operations a run needs.
// ReadDirNames returns names of immediate children, not full paths.
type FileSystem interface {
	Exists(path string) bool
	MkdirAll(path string) error
	ReadDirNames(path string) ([]string, error)
	Remove(path string) error
}
