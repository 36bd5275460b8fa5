package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/vdio/internal/config"
	"github.com/ytget/vdio/internal/download"
	"github.com/ytget/vdio/internal/model"
	"github.com/ytget/vdio/internal/platform"
)

// RootUI represents the main window and acts as the notifier of download runs
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	fetcher      *download.ProcessFetcher
	orchestrator *download.Orchestrator
	log          *logrus.Entry

	urlLabel    *widget.Label
	urlEntry    *widget.Entry
	pasteBtn    *widget.Button
	saveLabel   *widget.Label
	saveEntry   *widget.Entry
	browseBtn   *widget.Button
	openBtn     *widget.Button
	logLabel    *widget.Label
	logScroll   *container.Scroll
	progress    *widget.ProgressBar
	progressLbl *widget.Label
	downloadBtn *widget.Button

	logLines *logBuffer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, fetcher *download.ProcessFetcher, fs download.FileSystem, log *logrus.Entry) *RootUI {
	if log == nil {
		log = logrus.WithField("component", "ui")
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		fetcher:      fetcher,
		log:          log,
		logLines:     newLogBuffer(MaxLogLines),
	}
	ui.orchestrator = download.NewOrchestrator(fetcher, fs, ui,
		download.WithLogger(log.WithField("component", "download")))

	window.SetTitle(localization.GetText(KeyAppTitle))
	if icon, err := LoadLogoResource(); err == nil {
		window.SetIcon(icon)
	} else {
		log.WithError(err).Debug("Window icon not loaded")
	}

	ui.setupUI()
	ui.restoreSaveDirectory()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyURL))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}
	ui.pasteBtn = widget.NewButton(ui.localization.GetText(KeyPaste), ui.onPaste)

	ui.saveLabel = widget.NewLabel(ui.localization.GetText(KeySave))
	ui.saveEntry = widget.NewEntry()
	ui.saveEntry.OnSubmitted = func(dir string) {
		ui.persistSaveDirectory(strings.TrimSpace(dir))
	}
	ui.browseBtn = widget.NewButton(IconFolder, ui.onBrowse)
	ui.openBtn = widget.NewButton(IconOpen, ui.onOpenDirectory)

	ui.logLabel = widget.NewLabel(ui.logLines.Reset(ReadyMessage))
	ui.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.logLabel.Wrapping = fyne.TextWrapBreak
	ui.logScroll = container.NewVScroll(ui.logLabel)
	logPanel := container.NewStack(canvas.NewRectangle(ColorConsole), ui.logScroll)

	ui.progress = widget.NewProgressBar()
	ui.progressLbl = widget.NewLabel("")
	ui.progressLbl.TextStyle = fyne.TextStyle{Monospace: true}

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	urlRow := container.NewBorder(nil, nil, ui.urlLabel, ui.pasteBtn, ui.urlEntry)
	saveRow := container.NewBorder(nil, nil, ui.saveLabel, container.NewHBox(ui.browseBtn, ui.openBtn), ui.saveEntry)
	progressRow := container.NewBorder(nil, nil, nil, ui.progressLbl, ui.progress)

	content := container.NewBorder(
		container.NewVBox(urlRow, saveRow),             // top
		container.NewVBox(progressRow, ui.downloadBtn), // bottom
		nil,      // left
		nil,      // right
		logPanel, // center
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), ui.onOpenDirectory)

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlLabel.SetText(ui.localization.GetText(KeyURL))
	ui.saveLabel.SetText(ui.localization.GetText(KeySave))
	ui.pasteBtn.SetText(ui.localization.GetText(KeyPaste))
	if !ui.orchestrator.Busy() {
		ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	}
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}
	if !platform.IsValidURL(input) {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// restoreSaveDirectory fills the save entry from settings
func (ui *RootUI) restoreSaveDirectory() {
	dir := ui.settings.SaveDirectory()
	ui.saveEntry.SetText(dir)
	if dir != config.DefaultSaveDirectory() {
		ui.appendLog(ui.localization.GetText(KeyConfigRestored))
	}
}

// persistSaveDirectory stores dir when it is an existing directory
func (ui *RootUI) persistSaveDirectory(dir string) {
	if err := ui.settings.SetSaveDirectory(dir); err != nil {
		ui.log.WithError(err).Debug("Save directory not persisted")
	}
}

// onPaste replaces the URL with the clipboard content if it is a URL
func (ui *RootUI) onPaste() {
	content := strings.TrimSpace(fyne.CurrentApp().Clipboard().Content())
	if !platform.IsValidURL(content) {
		ui.appendLog(ui.localization.GetText(KeyPasteInvalid))
		dialog.ShowInformation(ui.localization.GetText(KeyInvalidURL), ui.localization.GetText(KeyInvalidClipboard), ui.window)
		return
	}

	ui.urlEntry.SetText(content)
	ui.appendLog(ui.localization.GetText(KeyPasteValid))
}

// onBrowse lets the user pick the save directory
func (ui *RootUI) onBrowse() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.saveEntry.SetText(uri.Path())
		ui.persistSaveDirectory(uri.Path())
	}, ui.window)

	start := strings.TrimSpace(ui.saveEntry.Text)
	if !platform.IsDirectory(start) {
		start, _ = platform.GetHomeDownloadsDir()
	}
	if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
		picker.SetLocation(lister)
	}
	picker.Show()
}

// onOpenDirectory opens the save directory in the file manager
func (ui *RootUI) onOpenDirectory() {
	dir := strings.TrimSpace(ui.saveEntry.Text)
	if !platform.IsDirectory(dir) {
		ui.appendLog(fmt.Sprintf(ui.localization.GetText(KeyDirectoryNotFound), dir))
		return
	}
	if err := platform.OpenDirectory(dir); err != nil {
		ui.appendLog(fmt.Sprintf("Error opening directory: %v", err))
		return
	}
	ui.appendLog(fmt.Sprintf(ui.localization.GetText(KeyOpenedDirectory), dir))
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	saveDir := strings.TrimSpace(ui.saveEntry.Text)

	if urlText == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyURLNotSet), ui.window)
		return
	}
	if ui.orchestrator.Busy() {
		return
	}
	if _, err := ui.fetcher.LookPath(); err != nil {
		ui.log.WithError(err).Error("Download tool not found")
		ui.showMessage(ui.localization.GetText(KeyError),
			fmt.Sprintf(ui.localization.GetText(KeyToolMissing), ui.fetcher.Executable()))
		return
	}

	ui.persistSaveDirectory(saveDir)
	ui.logLabel.SetText(ui.logLines.Reset())
	ui.progress.SetValue(0)
	ui.progressLbl.SetText("")

	done, err := ui.orchestrator.Start(context.Background(), model.DownloadRequest{URL: urlText, RootDir: saveDir})
	if err != nil {
		ui.log.WithError(err).Warn("Download not started")
		return
	}
	go ui.awaitOutcome(done, urlText)
}

// awaitOutcome waits for a run of url to finish off the UI thread. It must
// not read widget state.
func (ui *RootUI) awaitOutcome(done <-chan model.Outcome, url string) {
	outcome, ok := <-done
	if !ok {
		return
	}
	ui.log.WithField("status", outcome.Status).Debug(outcome.Message())

	if !outcome.Status.IsSuccess() {
		return
	}
	fyne.Do(func() {
		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyDownloadCompleted),
			Content: url,
		})
	})
}

// appendLog adds a line to the log panel; UI thread only
func (ui *RootUI) appendLog(line string) {
	ui.logLabel.SetText(ui.logLines.Append(line))
	ui.logScroll.ScrollToBottom()
	if p, ok := platform.ParseProgressLine(line); ok {
		ui.progress.SetValue(p.Fraction())
		ui.progressLbl.SetText(p.Summary())
	}
}

// showMessage shows a modal message with its own title; UI thread only
func (ui *RootUI) showMessage(title, message string) {
	dialog.NewInformation(title, message, ui.window).Show()
}
