package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Theme-aware styles; explicit colors only for the action buttons.
const appCSS = `
/* Entry panes */
.entry-pane {
    padding: 4px;
}

.entry-row {
    border-radius: 8px;
    margin: 2px 6px;
}

.entry-row:hover {
    background-color: alpha(currentColor, 0.05);
}

.entry-row checkbutton label {
    font-size: 13px;
}

/* Delete buttons */
button.destructive-action {
    background-color: #c7565b;
    color: white;
    font-weight: 600;
    border-radius: 6px;
}

button.destructive-action:hover {
    background-color: shade(#c7565b, 1.1);
}

button.destructive-action:disabled {
    background-color: alpha(#c7565b, 0.4);
}

button.suggested-action {
    background-color: #598ec4;
    color: white;
    font-weight: 600;
    border-radius: 6px;
}

button.suggested-action:hover {
    background-color: shade(#598ec4, 1.1);
}

/* Status bar */
.status-bar {
    border-top: 1px solid alpha(currentColor, 0.1);
}

/* Preferences */
.preferences-card {
    border-radius: 12px;
    border: 1px solid alpha(currentColor, 0.12);
}

.settings-title {
    font-weight: 500;
}

.heading {
    font-weight: 700;
    font-size: 14px;
}

.caption {
    font-size: 11px;
}

/* Flat button */
button.flat {
    background-color: transparent;
}

button.flat:hover {
    background-color: alpha(currentColor, 0.1);
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
