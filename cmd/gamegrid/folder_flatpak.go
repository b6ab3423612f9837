//go:build flatpak

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/storage"

	"github.com/rymdport/portal"
	"github.com/rymdport/portal/filechooser"
)

// chooseFolder asks the desktop portal for a library folder. cb runs on the
// UI goroutine and gets an empty path when the user cancels.
func chooseFolder(parent fyne.Window, cb func(string, error)) {
	options := &filechooser.OpenFileOptions{
		AcceptLabel: "Open",
		Directory:   true,
	}
	windowHandle := windowHandleForPortal(parent)

	go func() {
		uris, err := filechooser.OpenFile(windowHandle, "Open Game Folder", options)
		if err != nil || len(uris) == 0 {
			fyne.Do(func() { cb("", err) })
			return
		}

		uri, err := storage.ParseURI(uris[0])
		fyne.Do(func() {
			if err != nil {
				cb("", err)
				return
			}
			cb(uri.Path(), nil)
		})
	}()
}

func windowHandleForPortal(window fyne.Window) string {
	native, ok := window.(driver.NativeWindow)
	if !ok {
		return ""
	}

	windowHandle := ""
	native.RunNative(func(context any) {
		if x11, ok := context.(driver.X11WindowContext); ok {
			windowHandle = portal.FormatX11WindowHandle(x11.WindowHandle)
		}
	})
	return windowHandle
}
