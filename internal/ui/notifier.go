package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/vdio/internal/download"
)

var (
	_ download.Notifier      = (*RootUI)(nil)
	_ download.StageReporter = (*RootUI)(nil)
)

// Log appends a line to the log panel
func (ui *RootUI) Log(line string) {
	fyne.Do(func() {
		ui.appendLog(line)
	})
}

// Confirm shows a yes/no dialog and blocks until the user answers.
// It must not be called on the UI thread.
func (ui *RootUI) Confirm(title, message string) bool {
	answer := make(chan bool, 1)
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, func(ok bool) {
			answer <- ok
		}, ui.window)
	})
	return <-answer
}

// NotifyError shows an error dialog without waiting for it to be closed
func (ui *RootUI) NotifyError(title, message string) {
	fyne.Do(func() {
		ui.showMessage(title, message)
	})
}

// SetBusy disables the download button while a run is in flight
func (ui *RootUI) SetBusy(busy bool) {
	fyne.Do(func() {
		if busy {
			ui.downloadBtn.Disable()
			return
		}
		ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
		ui.downloadBtn.Enable()
	})
}

// SetStage relabels the download button with the current phase
func (ui *RootUI) SetStage(stage download.Stage) {
	key := KeyChecking
	if stage == download.StageDownloading {
		key = KeyDownloading
	}
	fyne.Do(func() {
		ui.downloadBtn.SetText(ui.localization.GetText(key))
	})
}
