package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/netclean/netprofile-cleaner/common"
)

// showError displays an error dialog.
func (mw *MainWindow) showError(title, message string) {
	mw.showMessage("dialog-error-symbolic", title, message)
}

// showInfo displays an information dialog.
func (mw *MainWindow) showInfo(title, message string) {
	mw.showMessage("dialog-information-symbolic", title, message)
}

// showWarning displays a warning dialog.
func (mw *MainWindow) showWarning(title, message string) {
	mw.showMessage("dialog-warning-symbolic", title, message)
}

// showMessage builds a modal message window with an icon, a heading and
// a wrapped body.
func (mw *MainWindow) showMessage(iconName, title, message string) {
	window := gtk.NewWindow()
	window.SetTitle(title)
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(350, 150)
	window.SetResizable(false)

	mainBox := newDialogBox()

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(48)
	mainBox.Append(icon)

	titleLabel := gtk.NewLabel(title)
	titleLabel.AddCSSClass("heading")
	mainBox.Append(titleLabel)

	msgLabel := gtk.NewLabel(message)
	msgLabel.SetWrap(true)
	msgLabel.SetMaxWidthChars(48)
	msgLabel.SetSelectable(true)
	mainBox.Append(msgLabel)

	okBtn := gtk.NewButtonWithLabel("OK")
	okBtn.SetHAlign(gtk.AlignCenter)
	okBtn.SetMarginTop(12)
	okBtn.ConnectClicked(func() {
		window.Close()
	})
	mainBox.Append(okBtn)

	window.SetChild(mainBox)
	window.Show()
}

// showConfirm asks a yes/no question and calls onConfirm only when the
// user accepts. The destructive button is not the default.
func (mw *MainWindow) showConfirm(title, message, acceptLabel string, onConfirm func()) {
	window := gtk.NewWindow()
	window.SetTitle(title)
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(350, 180)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	contentBox := newDialogBox()
	contentBox.SetMarginBottom(12)

	icon := gtk.NewImage()
	icon.SetFromIconName("dialog-warning-symbolic")
	icon.SetPixelSize(48)
	contentBox.Append(icon)

	titleLabel := gtk.NewLabel(message)
	titleLabel.AddCSSClass("heading")
	titleLabel.SetWrap(true)
	titleLabel.SetMaxWidthChars(40)
	contentBox.Append(titleLabel)

	mainBox.Append(contentBox)

	buttonBox := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBox.SetHAlign(gtk.AlignCenter)
	buttonBox.SetMarginTop(12)
	buttonBox.SetMarginBottom(common.DialogMargin)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		window.Close()
	})
	buttonBox.Append(cancelBtn)

	acceptBtn := gtk.NewButtonWithLabel(acceptLabel)
	acceptBtn.AddCSSClass("destructive-action")
	acceptBtn.ConnectClicked(func() {
		window.Close()
		onConfirm()
	})
	buttonBox.Append(acceptBtn)

	mainBox.Append(buttonBox)

	window.SetChild(mainBox)
	window.SetDefaultWidget(cancelBtn)
	window.Show()
}

func newDialogBox() *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetMarginTop(common.DialogMargin)
	box.SetMarginBottom(common.DialogMargin)
	box.SetMarginStart(common.DialogMargin)
	box.SetMarginEnd(common.DialogMargin)
	box.SetHAlign(gtk.AlignCenter)
	return box
}
