//go:build !flatpak

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// chooseFolder asks for a library folder. cb gets an empty path when the
// user cancels.
func chooseFolder(parent fyne.Window, cb func(string, error)) {
	d := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil || dir == nil {
			cb("", err)
			return
		}
		cb(dir.Path(), nil)
	}, parent)
	d.Show()
}
