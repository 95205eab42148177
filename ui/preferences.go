package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/netclean/netprofile-cleaner/common"
	"github.com/netclean/netprofile-cleaner/config"
)

// PreferencesDialog represents the preferences dialog.
type PreferencesDialog struct {
	window        *gtk.Window
	mainWindow    *MainWindow
	config        *config.Config
	confirmSwitch *gtk.Switch
	backupSwitch  *gtk.Switch
	limitSpin     *gtk.SpinButton
	notifySwitch  *gtk.Switch
	traySwitch    *gtk.Switch
	themeDropDown *gtk.DropDown
	themeIDs      []string
}

// NewPreferencesDialog creates a new preferences dialog.
func NewPreferencesDialog(mainWindow *MainWindow) *PreferencesDialog {
	pd := &PreferencesDialog{
		mainWindow: mainWindow,
		config:     mainWindow.app.config,
	}

	pd.build()
	return pd
}

func (pd *PreferencesDialog) build() {
	pd.window = gtk.NewWindow()
	pd.window.SetTitle("Settings")
	pd.window.SetTransientFor(&pd.mainWindow.window.Window)
	pd.window.SetModal(true)
	pd.window.SetDefaultSize(500, 560)
	pd.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 20)
	mainBox.SetMarginTop(common.DialogMargin)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(common.DialogMargin)
	mainBox.SetMarginEnd(common.DialogMargin)

	// Deletion
	deleteSection := pd.createSection("Deletion", "edit-delete-symbolic")
	deleteCard := pd.createCard()

	pd.confirmSwitch = pd.newSwitch(pd.config.ConfirmDelete)
	deleteCard.Append(pd.createSettingRow(
		"Confirm Before Deleting",
		"Ask before removing the checked entries",
		pd.confirmSwitch,
	))
	deleteCard.Append(pd.createSeparator())

	pd.backupSwitch = pd.newSwitch(pd.config.BackupBeforeDelete)
	deleteCard.Append(pd.createSettingRow(
		"Keep Restorable History",
		"Save the registry values of each deleted entry so it can be restored",
		pd.backupSwitch,
	))
	deleteCard.Append(pd.createSeparator())

	pd.limitSpin = gtk.NewSpinButtonWithRange(10, 10000, 10)
	pd.limitSpin.SetValue(float64(pd.config.HistoryLimit))
	pd.limitSpin.SetVAlign(gtk.AlignCenter)
	deleteCard.Append(pd.createSettingRow(
		"History Size",
		"Number of deleted entries kept in the history (applies after restart)",
		pd.limitSpin,
	))

	deleteSection.Append(deleteCard)
	mainBox.Append(deleteSection)

	// Notifications and tray
	notifySection := pd.createSection("Notifications", "preferences-system-notifications-symbolic")
	notifyCard := pd.createCard()

	pd.notifySwitch = pd.newSwitch(pd.config.ShowNotifications)
	notifyCard.Append(pd.createSettingRow(
		"Deletion Alerts",
		"Show a notification after entries are deleted",
		pd.notifySwitch,
	))
	notifyCard.Append(pd.createSeparator())

	pd.traySwitch = pd.newSwitch(pd.config.ShowTray)
	notifyCard.Append(pd.createSettingRow(
		"Tray Icon",
		"Show entry counts in the system tray (applies after restart)",
		pd.traySwitch,
	))

	notifySection.Append(notifyCard)
	mainBox.Append(notifySection)

	// Appearance
	appearSection := pd.createSection("Appearance", "preferences-desktop-theme-symbolic")
	appearCard := pd.createCard()

	pd.themeIDs = []string{common.ThemeAuto, common.ThemeLight, common.ThemeDark}
	themeModel := gtk.NewStringList([]string{"System Default", "Light", "Dark"})
	pd.themeDropDown = gtk.NewDropDown(themeModel, nil)
	pd.themeDropDown.SetSelected(pd.findThemeIndex(pd.config.Theme))
	pd.themeDropDown.SetVAlign(gtk.AlignCenter)
	pd.themeDropDown.AddCSSClass("flat")

	appearCard.Append(pd.createSettingRow(
		"Theme",
		"Choose the visual appearance of the application",
		pd.themeDropDown,
	))

	appearSection.Append(appearCard)
	mainBox.Append(appearSection)

	scrolled.SetChild(mainBox)
	rootBox.Append(scrolled)

	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(common.DialogMargin)
	buttonBar.SetMarginEnd(common.DialogMargin)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		pd.window.Close()
	})
	buttonBar.Append(cancelBtn)

	saveBtn := gtk.NewButtonWithLabel("Save")
	saveBtn.AddCSSClass("suggested-action")
	saveBtn.ConnectClicked(func() {
		pd.savePreferences()
		pd.window.Close()
	})
	buttonBar.Append(saveBtn)

	rootBox.Append(buttonBar)

	pd.window.SetChild(rootBox)
}

func (pd *PreferencesDialog) newSwitch(active bool) *gtk.Switch {
	sw := gtk.NewSwitch()
	sw.SetActive(active)
	sw.SetVAlign(gtk.AlignCenter)
	return sw
}

// createSection creates a section with icon and title.
func (pd *PreferencesDialog) createSection(title string, iconName string) *gtk.Box {
	section := gtk.NewBox(gtk.OrientationVertical, 8)

	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 8)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(18)
	icon.AddCSSClass("dim-label")
	headerBox.Append(icon)

	label := gtk.NewLabel(title)
	label.SetXAlign(0)
	label.AddCSSClass("heading")
	label.AddCSSClass("dim-label")
	headerBox.Append(label)

	section.Append(headerBox)

	return section
}

func (pd *PreferencesDialog) createCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 0)
	card.AddCSSClass("card")
	card.AddCSSClass("preferences-card")
	return card
}

// createSettingRow creates a row with title, description, and widget.
func (pd *PreferencesDialog) createSettingRow(title string, description string, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(14)
	row.SetMarginBottom(14)
	row.SetMarginStart(16)
	row.SetMarginEnd(16)

	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("settings-title")
	textBox.Append(titleLabel)

	descLabel := gtk.NewLabel(description)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.AddCSSClass("caption")
	descLabel.SetWrap(true)
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

func (pd *PreferencesDialog) createSeparator() *gtk.Separator {
	sep := gtk.NewSeparator(gtk.OrientationHorizontal)
	sep.SetMarginStart(16)
	sep.SetMarginEnd(16)
	return sep
}

// findThemeIndex returns the index of a theme ID, or 0 if not found.
func (pd *PreferencesDialog) findThemeIndex(themeID string) uint {
	for i, id := range pd.themeIDs {
		if id == themeID {
			return uint(i)
		}
	}
	return 0
}

// savePreferences applies the dialog state and saves the config file.
func (pd *PreferencesDialog) savePreferences() {
	pd.config.ConfirmDelete = pd.confirmSwitch.Active()
	pd.config.BackupBeforeDelete = pd.backupSwitch.Active()
	pd.config.HistoryLimit = pd.limitSpin.ValueAsInt()
	pd.config.ShowNotifications = pd.notifySwitch.Active()
	pd.config.ShowTray = pd.traySwitch.Active()

	themeIdx := pd.themeDropDown.Selected()
	if int(themeIdx) < len(pd.themeIDs) {
		pd.config.Theme = pd.themeIDs[themeIdx]
	}

	if err := pd.config.Save(); err != nil {
		pd.mainWindow.showError("Error", "Could not save preferences: "+err.Error())
		return
	}

	app := pd.mainWindow.app
	app.ApplyTheme(pd.config.Theme)
	app.applyRecorder()
	pd.mainWindow.SetStatus("Settings saved")
}

// Show displays the preferences dialog.
func (pd *PreferencesDialog) Show() {
	pd.window.Show()
}
