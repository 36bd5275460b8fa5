package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/vdio/internal/config"
	"github.com/ytget/vdio/internal/download"
	"github.com/ytget/vdio/internal/model"
	"github.com/ytget/vdio/internal/platform"
)

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("test")
	settings := config.NewSettings(app)
	return NewRootUI(window, settings, download.NewProcessFetcher(""), platform.NewOSFileSystem(nil), nil)
}

func TestValidateURL(t *testing.T) {
	ui := newTestRootUI(t)

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"https://www.youtube.com/watch?v=abc", false},
		{"http://example.com", false},
		{"ftp://example.com", true},
		{"example.com", true},
	}

	for _, tt := range tests {
		err := ui.validateURL(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestRootUI_StartsReady(t *testing.T) {
	ui := newTestRootUI(t)

	if !strings.HasPrefix(ui.logLabel.Text, ReadyMessage) {
		t.Errorf("Expected log to start with %q, got %q", ReadyMessage, ui.logLabel.Text)
	}
	if ui.saveEntry.Text == "" {
		t.Error("Expected save entry to be filled")
	}
}

func TestRootUI_LogDrivesProgress(t *testing.T) {
	ui := newTestRootUI(t)

	ui.Log("[download]  50.0% of 10.00MiB at 1.00MiB/s ETA 00:05")

	if !strings.HasSuffix(ui.logLabel.Text, "[download]  50.0% of 10.00MiB at 1.00MiB/s ETA 00:05") {
		t.Errorf("Expected line in log, got %q", ui.logLabel.Text)
	}
	if ui.progress.Value != 0.5 {
		t.Errorf("Expected progress 0.5, got %v", ui.progress.Value)
	}
	if ui.progressLbl.Text != "10.00MiB | 1.00MiB/s | ETA 00:05" {
		t.Errorf("Unexpected progress details %q", ui.progressLbl.Text)
	}
}

func TestRootUI_BusyAndStage(t *testing.T) {
	ui := newTestRootUI(t)

	ui.SetBusy(true)
	ui.SetStage(download.StageChecking)
	if !ui.downloadBtn.Disabled() {
		t.Error("Expected download button to be disabled")
	}
	if ui.downloadBtn.Text != ui.localization.GetText(KeyChecking) {
		t.Errorf("Unexpected button text %q", ui.downloadBtn.Text)
	}

	ui.SetStage(download.StageDownloading)
	if ui.downloadBtn.Text != ui.localization.GetText(KeyDownloading) {
		t.Errorf("Unexpected button text %q", ui.downloadBtn.Text)
	}

	ui.SetBusy(false)
	if ui.downloadBtn.Disabled() {
		t.Error("Expected download button to be enabled")
	}
	if ui.downloadBtn.Text != ui.localization.GetText(KeyDownload) {
		t.Errorf("Unexpected button text %q", ui.downloadBtn.Text)
	}
}

func TestRootUI_Paste(t *testing.T) {
	ui := newTestRootUI(t)
	clipboard := fyne.CurrentApp().Clipboard()

	clipboard.SetContent("  https://example.com/watch?v=1  ")
	ui.onPaste()
	if ui.urlEntry.Text != "https://example.com/watch?v=1" {
		t.Errorf("Expected pasted URL, got %q", ui.urlEntry.Text)
	}

	clipboard.SetContent("just some text")
	ui.onPaste()
	if ui.urlEntry.Text != "https://example.com/watch?v=1" {
		t.Errorf("Invalid clipboard must not replace the URL, got %q", ui.urlEntry.Text)
	}
	if !strings.HasSuffix(ui.logLabel.Text, ui.localization.GetText(KeyPasteInvalid)) {
		t.Errorf("Expected invalid paste line, got %q", ui.logLabel.Text)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui := newTestRootUI(t)

	ui.onLanguageChange("ru")
	if ui.downloadBtn.Text != "Скачать" {
		t.Errorf("Expected Russian button text, got %q", ui.downloadBtn.Text)
	}
	if ui.settings.GetLanguage() != "ru" {
		t.Errorf("Expected language to be saved, got %s", ui.settings.GetLanguage())
	}
}

// waitForOverlay returns the top overlay of w once a dialog is shown
func waitForOverlay(t *testing.T, w fyne.Window) fyne.CanvasObject {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if top := w.Canvas().Overlays().Top(); top != nil {
			return top
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Dialog was not shown")
	return nil
}

func findButton(t *testing.T, obj fyne.CanvasObject, text string) *widget.Button {
	t.Helper()
	for _, o := range test.LaidOutObjects(obj) {
		if btn, ok := o.(*widget.Button); ok && btn.Text == text {
			return btn
		}
	}
	t.Fatalf("Button %q not found", text)
	return nil
}

func TestRootUI_Confirm(t *testing.T) {
	tests := []struct {
		name   string
		button string
		want   bool
	}{
		{"accepted", "Yes", true},
		{"declined", "No", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestRootUI(t)

			answer := make(chan bool, 1)
			go func() {
				answer <- ui.Confirm("File Exists", "Do you want to DELETE these files and download again?")
			}()

			top := waitForOverlay(t, ui.window)
			test.Tap(findButton(t, top, tt.button))

			select {
			case got := <-answer:
				if got != tt.want {
					t.Errorf("Confirm() = %v, want %v", got, tt.want)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Confirm did not return after the dialog was answered")
			}
			if ui.window.Canvas().Overlays().Top() != nil {
				t.Error("Expected dialog to be closed")
			}
		})
	}
}

func TestRootUI_AwaitOutcome(t *testing.T) {
	const started = "https://example.com/watch?v=started"

	tests := []struct {
		name    string
		outcome model.Outcome
		notify  bool
	}{
		{"succeeded", model.Succeeded(), true},
		{"declined", model.AbortedDeclined(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := newTestRootUI(t)
			// The field may change while the run is in flight
			ui.urlEntry.SetText("https://example.com/watch?v=edited")

			done := make(chan model.Outcome, 1)
			done <- tt.outcome
			close(done)

			var want *fyne.Notification
			if tt.notify {
				want = &fyne.Notification{Title: ui.localization.GetText(KeyDownloadCompleted), Content: started}
			}
			test.AssertNotificationSent(t, want, func() {
				ui.awaitOutcome(done, started)
			})
		})
	}
}
