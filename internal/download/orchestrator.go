package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/vdio/internal/model"
)

// Run ID and output tail settings
const (
	RunIDPrefix  = "run-"
	maxTailLines = 20
)

// Status lines written to the notifier log
const (
	msgFetchingTitle   = "Fetching video title..."
	msgTitleAbort      = "Aborting: Cannot verify title for folder creation."
	msgCancelled       = "Download Cancelled by user."
	msgRemovingFiles   = "Removing existing files..."
	msgStarting        = "Starting Download..."
	msgCompleted       = "Download Completed Successfully!"
	titleError         = "Error"
	titleFileExists    = "File Exists"
	titleTitleNotFound = "Title Not Found"
)

// Orchestrator runs the title, folder and download phases for one URL at a time
type Orchestrator struct {
	fetcher  Fetcher
	fs       FileSystem
	notifier Notifier
	log      *logrus.Entry
	busy     atomic.Bool
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithLogger sets the logger used for diagnostics
func WithLogger(entry *logrus.Entry) Option {
	return func(o *Orchestrator) {
		if entry != nil {
			o.log = entry
		}
	}
}

// NewOrchestrator creates an orchestrator over its collaborators
func NewOrchestrator(fetcher Fetcher, fs FileSystem, notifier Notifier, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fetcher:  fetcher,
		fs:       fs,
		notifier: notifier,
		log:      logrus.WithField("component", "download"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Busy reports whether a run is in flight
func (o *Orchestrator) Busy() bool {
	return o.busy.Load()
}

// Start runs the sequence on a background goroutine. The returned channel
// receives the outcome once, after the busy state has been cleared.
func (o *Orchestrator) Start(ctx context.Context, req model.DownloadRequest) (<-chan model.Outcome, error) {
	if !o.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	o.notifier.SetBusy(true)

	done := make(chan model.Outcome, 1)
	go func() {
		defer close(done)
		done <- o.execute(ctx, req)
	}()
	return done, nil
}

// Run executes the sequence on the calling goroutine. It must not be called
// from the UI thread since Confirm blocks until the UI answers.
func (o *Orchestrator) Run(ctx context.Context, req model.DownloadRequest) model.Outcome {
	if !o.busy.CompareAndSwap(false, true) {
		return model.Failed(model.NoExitCode, ErrBusy.Error(), ErrBusy)
	}
	o.notifier.SetBusy(true)
	return o.execute(ctx, req)
}

// execute expects the busy flag to be held and always releases it
func (o *Orchestrator) execute(ctx context.Context, req model.DownloadRequest) (outcome model.Outcome) {
	run := &model.Run{
		ID:        generateRunID(),
		URL:       req.URL,
		RootDir:   req.RootDir,
		StartedAt: time.Now(),
	}
	log := o.log.WithFields(logrus.Fields{"run_id": run.ID, "url": req.URL})
	log.Info("Run started")

	defer func() {
		if r := recover(); r != nil {
			outcome = o.unexpected(log, fmt.Errorf("panic: %v", r))
		}
		run.Outcome = outcome
		run.FinishedAt = time.Now()
		log.WithFields(logrus.Fields{
			"title":     run.DisplayTitle(),
			"status":    outcome.Status,
			"exit_code": outcome.ExitCode,
			"deleted":   len(run.Deleted),
			"elapsed":   run.Duration().Round(time.Millisecond),
		}).Info("Run finished")

		o.busy.Store(false)
		o.notifier.SetBusy(false)
	}()

	o.setStage(StageChecking)

	// Title resolution
	o.notifier.Log(msgFetchingTitle)
	title, err := o.fetcher.Title(ctx, req.URL)
	if err != nil {
		if KindOf(err) != KindTitleFetchFailed {
			return o.unexpected(log, err)
		}
		var runErr *RunError
		errors.As(err, &runErr)
		detail := errorOutput(err)
		o.notifier.Log("Warning: Could not fetch title. " + detail)
		o.notifier.Log(msgTitleAbort)
		o.reportError(log, runErr, titleTitleNotFound, "Could not fetch the video title.\n"+detail)
		return model.AbortedNoTitle(detail, err)
	}
	run.Title = title
	o.notifier.Log("Title: " + title)

	// Folder and conflict handling
	folder := SanitizeTitle(title)
	run.TargetDir = TargetDirectory(title, req.RootDir)
	existed := o.fs.Exists(run.TargetDir)
	if err := o.fs.MkdirAll(run.TargetDir); err != nil {
		runErr := &RunError{Kind: KindDirectoryCreateFailed, Path: run.TargetDir, Err: err}
		o.notifier.Log(fmt.Sprintf("Error creating directory: %v", err))
		o.reportError(log, runErr, titleError, fmt.Sprintf("Could not create folder '%s': %v", folder, err))
		return model.Failed(model.NoExitCode, err.Error(), runErr)
	}
	if existed {
		o.notifier.Log("Directory exists: " + folder)
	} else {
		o.notifier.Log("Created directory: " + folder)
	}

	names, err := o.fs.ReadDirNames(run.TargetDir)
	if err != nil {
		o.reportError(log, &RunError{Kind: KindDirectoryListFailed, Path: run.TargetDir, Err: err}, titleError, err.Error())
		o.notifier.Log(fmt.Sprintf("Error scanning directory: %v", err))
		names = nil
	}

	run.Conflicts = MatchConflicts(title, names)
	if len(run.Conflicts) > 0 {
		o.notifier.Log(fmt.Sprintf("Conflict: %d existing file(s) found.", len(run.Conflicts)))
		if !o.notifier.Confirm(titleFileExists, conflictPrompt(folder, run.Conflicts)) {
			o.notifier.Log(msgCancelled)
			return model.AbortedDeclined()
		}

		o.notifier.Log(msgRemovingFiles)
		run.Deleted = o.removeConflicts(log, run.TargetDir, run.Conflicts)
	}

	// Download
	o.setStage(StageDownloading)
	o.notifier.Log(msgStarting)

	stream, err := o.fetcher.Download(ctx, req.URL, OutputPath(run.TargetDir))
	if err != nil {
		return o.unexpected(log, err)
	}

	var tail []string
	for stream.Scan() {
		line := stream.Text()
		tail = append(tail, line)
		if len(tail) > maxTailLines {
			tail = tail[1:]
		}
		o.notifier.Log(line)
	}

	code, err := stream.Wait()
	if err != nil {
		return o.unexpected(log, err)
	}
	if code != 0 {
		output := strings.Join(tail, "\n")
		runErr := &RunError{Kind: KindDownloadProcessFailed, Path: run.TargetDir, ExitCode: code, Output: output}
		o.reportError(log, runErr, titleError, fmt.Sprintf("Download failed with code %d", code))
		o.notifier.Log(fmt.Sprintf("Error: Process finished with code %d", code))
		return model.Failed(code, output, runErr)
	}

	o.notifier.Log(msgCompleted)
	return model.Succeeded()
}

// removeConflicts deletes every conflicting file, continuing past failures
func (o *Orchestrator) removeConflicts(log *logrus.Entry, dir string, names []string) []string {
	deleted := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := o.fs.Remove(path); err != nil {
			o.reportError(log, &RunError{Kind: KindFileDeleteFailed, Path: path, Err: err}, titleError, err.Error())
			o.notifier.Log(fmt.Sprintf("Error deleting %s: %v", name, err))
			continue
		}
		deleted = append(deleted, name)
		o.notifier.Log("Deleted: " + name)
	}
	return deleted
}

// unexpected reports an error that no phase handles itself
func (o *Orchestrator) unexpected(log *logrus.Entry, err error) model.Outcome {
	runErr, ok := err.(*RunError)
	if !ok || !runErr.Kind.Fatal() {
		runErr = &RunError{Kind: KindUnexpectedFailure, Err: err}
	}
	o.reportError(log, runErr, titleError, err.Error())
	o.notifier.Log("Exception: " + err.Error())
	return model.Failed(model.NoExitCode, err.Error(), runErr)
}

// reportError logs err and notifies the user only when its kind is fatal
func (o *Orchestrator) reportError(log *logrus.Entry, err *RunError, title, message string) {
	entry := log.WithError(err).WithField("kind", err.Kind)
	if !err.Kind.Fatal() {
		entry.Warn("Run step failed")
		return
	}
	entry.Error("Run step failed")
	o.notifier.NotifyError(title, message)
}

func (o *Orchestrator) setStage(stage Stage) {
	if reporter, ok := o.notifier.(StageReporter); ok {
		reporter.SetStage(stage)
	}
}

// errorOutput returns the captured process output of err, or its message
func errorOutput(err error) string {
	if runErr, ok := err.(*RunError); ok && runErr.Output != "" {
		return runErr.Output
	}
	return err.Error()
}

// generateRunID generates a time-ordered unique run ID
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
