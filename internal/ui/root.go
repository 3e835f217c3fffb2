package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/joshdecs/soundcloud-playlist-converter/internal/acquire"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/config"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/engine"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/logging"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/model"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/platform"
)

// RootUI owns all UI-visible state: the session aggregate, widget handles,
// and the poll loop that drains worker events. Events are applied on the
// Fyne thread only, so state needs no locking beyond the channel swap.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	engine       engine.Engine
	log          zerolog.Logger

	state   *model.SessionState
	session *model.Session

	// events is the channel of the current worker; swapped on each start
	events   <-chan model.Event
	eventsMu sync.Mutex

	urlEntry      *widget.Entry
	destEntry     *widget.Entry
	startBtn      *widget.Button
	cancelBtn     *widget.Button
	itemBar       *widget.ProgressBar
	itemLabel     *widget.Label
	playlistBar   *widget.ProgressBar
	playlistLabel *widget.Label
	statusLabel   *widget.Label
	logView       *widget.Entry
}

// NewRootUI creates and wires the main UI.
func NewRootUI(window fyne.Window, app fyne.App, eng engine.Engine) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		engine:       eng,
		log:          logging.Component("ui"),
		state:        model.NewSessionState(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.startPolling()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL row
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyPlaylistURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onStartClick()
	}

	// Destination row
	ui.destEntry = widget.NewEntry()
	ui.destEntry.SetText(ui.settings.GetDownloadDirectory())
	browseBtn := widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseDirectory)
	destRow := container.NewBorder(nil, nil, nil, browseBtn, ui.destEntry)

	// Controls
	ui.startBtn = widget.NewButton(ui.localization.GetText(KeyStartDownload), ui.onStartClick)
	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Disable()
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	controls := container.NewHBox(ui.startBtn, ui.cancelBtn, settingsBtn)

	// Current file progress
	ui.itemBar = widget.NewProgressBar()
	ui.itemLabel = widget.NewLabel("")
	ui.itemLabel.Alignment = fyne.TextAlignTrailing

	// Playlist progress
	ui.playlistBar = widget.NewProgressBar()
	ui.playlistLabel = widget.NewLabel(ui.state.CollectionText())
	ui.playlistLabel.Alignment = fyne.TextAlignTrailing

	// Status line + transcript
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyStatusIdle))
	ui.logView = widget.NewMultiLineEntry()
	ui.logView.Wrapping = fyne.TextWrapWord
	logScroll := container.NewVScroll(ui.logView)
	logScroll.SetMinSize(fyne.NewSize(0, LogMinHeight))

	top := container.NewVBox(
		widget.NewLabel(ui.localization.GetText(KeyPlaylistURL)),
		ui.urlEntry,
		widget.NewLabel(ui.localization.GetText(KeyOutputFolder)),
		destRow,
		controls,
		widget.NewLabel(ui.localization.GetText(KeyCurrentFile)),
		ui.itemBar,
		ui.itemLabel,
		widget.NewLabel(ui.localization.GetText(KeyPlaylist)),
		ui.playlistBar,
		ui.playlistLabel,
		ui.statusLabel,
	)

	content := container.NewBorder(top, nil, nil, nil, logScroll)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	openFolderItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, openFolderItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates the texts that carry localized labels
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyPlaylistURL))
	ui.startBtn.SetText(ui.localization.GetText(KeyStartDownload))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))
}

// onBrowseDirectory opens the system folder picker.
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.destEntry.SetText(uri.Path())
	}, ui.window)
}

// onStartClick validates inputs and spawns the acquisition worker.
func (ui *RootUI) onStartClick() {
	url := strings.TrimSpace(ui.urlEntry.Text)
	destDir := strings.TrimSpace(ui.destEntry.Text)

	if url == "" {
		dialog.ShowInformation(
			ui.localization.GetText(KeyMissingURLTitle),
			ui.localization.GetText(KeyMissingURLText),
			ui.window)
		return
	}

	if destDir == "" {
		dialog.ShowInformation(
			ui.localization.GetText(KeyMissingDirTitle),
			ui.localization.GetText(KeyMissingDirText),
			ui.window)
		return
	}

	if err := platform.CreateDirectoryIfNotExists(destDir); err != nil {
		dialog.ShowError(
			fmt.Errorf("%s: %w", ui.localization.GetText(KeyFolderErrorTitle), err),
			ui.window)
		return
	}

	ui.settings.SetDownloadDirectory(destDir)
	ui.startSession(url, destDir)
}

// startSession resets state, flips controls, and launches the worker.
func (ui *RootUI) startSession(url, destDir string) {
	ui.session = model.NewSession(url, destDir)
	ui.state.Reset()
	ui.state.Running = true
	ui.state.StatusLine = ui.localization.GetText(KeyStatusStarting)
	ui.state.AppendLog("Output: " + destDir)
	ui.state.AppendLog("URL: " + url)

	ui.toggleControls(true)

	worker := acquire.NewWorker(ui.engine, engine.Options{
		AudioFormat:  ui.settings.GetAudioFormat(),
		AudioQuality: ui.settings.GetAudioQuality(),
		SkipFailures: true,
	})

	ui.eventsMu.Lock()
	ui.events = worker.Events()
	ui.eventsMu.Unlock()

	ui.log.Info().Str("url", url).Str("dest", destDir).Str("session", ui.session.ID).Msg("session started")
	go worker.Run(context.Background(), url, destDir)

	ui.renderState()
}

// onCancelClick performs a soft cancel: controls flip back to idle, but the
// worker finishes its current item. The engine offers no safe mid-item abort.
func (ui *RootUI) onCancelClick() {
	if ui.session == nil || !ui.session.Status.IsActive() {
		return
	}

	dialog.ShowInformation(
		ui.localization.GetText(KeyCancelTitle),
		ui.localization.GetText(KeyCancelText),
		ui.window)

	ui.session.Status = model.SessionStatusCancelling
	ui.state.StatusLine = ui.localization.GetText(KeyStatusCancelled)
	ui.toggleControls(false)
	ui.log.Info().Str("session", ui.session.ID).Msg("cancellation requested")
	ui.renderState()
}

// onOpenFolder reveals the destination directory in the system file manager.
func (ui *RootUI) onOpenFolder() {
	destDir := strings.TrimSpace(ui.destEntry.Text)
	if destDir == "" {
		return
	}
	if err := platform.OpenDirInManager(destDir); err != nil {
		ui.log.Warn().Err(err).Msg("failed to open folder")
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.destEntry.SetText(ui.settings.GetDownloadDirectory())
	})
}

// startPolling runs the fixed-cadence drain loop. Draining never blocks: each
// tick takes whatever is queued and applies it on the Fyne thread.
func (ui *RootUI) startPolling() {
	go func() {
		ticker := time.NewTicker(PollInterval)
		defer ticker.Stop()
		for range ticker.C {
			batch := ui.drainEvents()
			if len(batch) == 0 {
				continue
			}
			fyne.Do(func() {
				ui.applyEvents(batch)
			})
		}
	}()
}

// drainEvents pops every currently queued event without blocking.
func (ui *RootUI) drainEvents() []model.Event {
	ui.eventsMu.Lock()
	events := ui.events
	ui.eventsMu.Unlock()

	if events == nil {
		return nil
	}

	var batch []model.Event
	for {
		select {
		case ev := <-events:
			batch = append(batch, ev)
		default:
			return batch
		}
	}
}

// applyEvents folds a drained batch into the session state and re-renders.
// Late events after a soft cancel are still applied to progress and
// transcript, but terminal dialogs are suppressed.
func (ui *RootUI) applyEvents(batch []model.Event) {
	for _, ev := range batch {
		cancelled := ui.session != nil && ui.session.Status == model.SessionStatusCancelling

		switch ui.state.Apply(ev) {
		case model.OutcomeDone:
			ui.finishSession(model.SessionStatusCompleted)
			if !cancelled {
				dialog.ShowInformation(
					ui.localization.GetText(KeySuccessTitle),
					ui.localization.GetText(KeySuccessText),
					ui.window)
			}

		case model.OutcomeFail:
			ui.finishSession(model.SessionStatusError)
			if !cancelled {
				dialog.ShowError(
					fmt.Errorf("%s", ui.localization.GetText(KeyErrorText)),
					ui.window)
			}
		}
	}

	ui.renderState()
}

func (ui *RootUI) finishSession(status model.SessionStatus) {
	ui.toggleControls(false)
	if ui.session != nil {
		ui.session.Finish(status)
		ui.log.Info().Str("session", ui.session.ID).Str("status", status.String()).Msg("session finished")
	}
}

// toggleControls flips start/cancel enablement for the running flag.
func (ui *RootUI) toggleControls(running bool) {
	if running {
		ui.startBtn.Disable()
		ui.cancelBtn.Enable()
	} else {
		ui.startBtn.Enable()
		ui.cancelBtn.Disable()
	}
}

// renderState pushes the session state into the widgets.
func (ui *RootUI) renderState() {
	ui.itemBar.SetValue(ui.state.ItemPercent / 100)
	ui.itemLabel.SetText(ui.state.ItemText())
	ui.playlistBar.SetValue(float64(ui.state.CollectionPercent()) / 100)
	ui.playlistLabel.SetText(ui.state.CollectionText())
	ui.statusLabel.SetText(ui.state.StatusLine)
	ui.logView.SetText(strings.Join(ui.state.Transcript, "\n"))
	ui.logView.CursorRow = len(ui.state.Transcript)
}
