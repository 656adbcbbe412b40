package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/bhashadesk/bhashadesk/internal/config"
)

// ShowSettingsDialog displays the settings dialog. onSaved runs after the
// user confirms and the values are persisted.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	// Server URL
	serverEntry := widget.NewEntry()
	serverEntry.SetPlaceHolder(config.DefaultServerURL)
	serverEntry.SetText(settings.GetServerURL())

	// Default target language
	targetSelect := widget.NewSelect(settings.GetTargetLanguageOptions(), nil)
	targetSelect.SetSelected(settings.GetTargetLanguage())

	// Auto-play toggle
	autoPlayCheck := widget.NewCheck(localization.GetText(KeyAutoPlay), nil)
	autoPlayCheck.SetChecked(settings.GetAutoPlay())

	// Audio save directory
	downloadDirEntry := widget.NewEntry()
	downloadDirEntry.SetText(settings.GetDownloadDirectory())
	browseDirBtn := widget.NewButton(localization.GetText(KeyBrowse), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			downloadDirEntry.SetText(uri.Path())
		}, window)
	})
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, downloadDirEntry)

	form := container.NewVBox(
		widget.NewLabel(localization.GetText(KeyServerURL)+":"),
		serverEntry,

		widget.NewLabel(localization.GetText(KeyTargetLanguage)+":"),
		targetSelect,

		widget.NewLabel(localization.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewSeparator(),
		autoPlayCheck,
	)

	d := dialog.NewCustomConfirm(
		localization.GetText(KeySettings),
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}

			settings.SetServerURL(serverEntry.Text)
			if targetSelect.Selected != "" {
				settings.SetTargetLanguage(targetSelect.Selected)
			}
			settings.SetAutoPlay(autoPlayCheck.Checked)
			if downloadDirEntry.Text != "" {
				settings.SetDownloadDirectory(downloadDirEntry.Text)
			}

			dialog.ShowInformation(
				localization.GetText(KeySettings),
				localization.GetText(KeySettingsSaved),
				window,
			)

			if onSaved != nil {
				onSaved()
			}
		},
		window,
	)

	d.Resize(fyne.NewSize(460, 360))
	d.Show()
}
