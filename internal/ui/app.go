package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the whiteboard window and blocks until it is closed.
func RunApp(title string, board *Whiteboard) {
	myApp := app.New()
	myWindow := myApp.NewWindow(title)
	myWindow.Resize(fyne.NewSize(1024, 768))

	toolbar := NewToolbar(board)
	content := container.NewBorder(toolbar, nil, nil, nil, board)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
