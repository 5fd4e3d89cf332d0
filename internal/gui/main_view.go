package gui

import (
	"fmt"
	"path/filepath"
	"time"

	"combind/internal/combine"
	"combind/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// setupMainWindow sets up the main window content: the file table on top,
// the content preview and activity log below it, and the button row at the
// bottom.
func (a *App) setupMainWindow() {
	a.mainWindow.Resize(fyne.NewSize(800, 600))

	a.fileTable = widget.NewList(
		func() int {
			return a.list.Len()
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.DocumentIcon()),
				widget.NewLabel("Template file name"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			entries := a.list.Entries()
			if id < 0 || id >= len(entries) {
				return
			}
			label := obj.(*fyne.Container).Objects[1].(*widget.Label)
			label.SetText(fmt.Sprintf("%s — %s", entries[id].Name(), entries[id].Path))
		},
	)
	a.fileTable.OnSelected = func(id widget.ListItemID) {
		a.setSelected(int(id))
		a.displayFileContent(int(id))
	}
	a.fileTable.OnUnselected = func(id widget.ListItemID) {
		if a.selected() == int(id) {
			a.setSelected(-1)
		}
	}

	a.previewBox = widget.NewMultiLineEntry()
	a.previewBox.Wrapping = fyne.TextWrapWord
	a.previewBox.Disable()

	a.logBox = widget.NewMultiLineEntry()
	a.logBox.Wrapping = fyne.TextWrapWord
	a.logBox.Disable()

	addButton := widget.NewButtonWithIcon("Add Files", theme.ContentAddIcon(), func() {
		a.addFile()
	})
	upButton := widget.NewButtonWithIcon("Move Up", theme.MoveUpIcon(), func() {
		a.moveSelected(-1)
	})
	downButton := widget.NewButtonWithIcon("Move Down", theme.MoveDownIcon(), func() {
		a.moveSelected(1)
	})
	combineButton := widget.NewButtonWithIcon("Combine Files", theme.DocumentSaveIcon(), func() {
		a.combineFiles()
	})

	buttonRow := container.NewHBox(
		addButton,
		upButton,
		downButton,
		layout.NewSpacer(),
		combineButton,
	)

	panes := container.NewVSplit(
		a.fileTable,
		container.NewVSplit(a.previewBox, a.logBox),
	)
	panes.Offset = 0.4

	content := container.NewBorder(
		nil,
		buttonRow,
		nil,
		nil,
		panes,
	)

	a.mainWindow.SetContent(content)
}

// addFile opens the file picker and appends the chosen file to the list.
func (a *App) addFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.ShowError("Could not open file", err)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		path := reader.URI().Path()
		_ = reader.Close()

		a.list.Append(path)
		if a.watcher != nil {
			if werr := a.watcher.Add(path); werr != nil {
				log.Warnf("Could not watch %s: %v", path, werr)
			}
		}
		a.appendLog("Added file: " + path)
		a.fileTable.Refresh()

		// Remember the directory for the next dialog
		a.cfg.Directories.LastUsed = filepath.Dir(path)
		a.saveConfig()
	}, a.mainWindow)

	a.seedDialogLocation(fileDialog)
	fileDialog.Show()
}

// displayFileContent shows the content of the file at the given row in the
// preview pane. Read errors go to the log pane; the preview clears.
func (a *App) displayFileContent(index int) {
	path, err := a.list.EntryAt(index)
	if err != nil {
		return
	}
	content, err := combine.ReadFile(path)
	if err != nil {
		a.previewBox.SetText("")
		a.appendLog(err.Error())
		return
	}
	a.previewBox.SetText(content)
}

// moveSelected moves the selected row by delta and keeps it selected. The
// model is rebuilt from this explicit move event; the widget only mirrors it.
func (a *App) moveSelected(delta int) {
	src := a.selected()
	if src < 0 {
		a.ShowInfo("Select a file to move first.")
		return
	}
	dst := src + delta
	if dst < 0 || dst >= a.list.Len() {
		return
	}
	if err := a.list.Move(src, dst); err != nil {
		a.ShowError("Could not move entry", err)
		return
	}
	a.setSelected(dst)
	a.fileTable.Refresh()
	a.fileTable.Select(dst)
}

// combineFiles builds the combined output, then prompts for a save location
// and writes it.
func (a *App) combineFiles() {
	snapshot := a.list.Snapshot()
	if len(snapshot) == 0 {
		a.ShowInfo("Add at least one file before combining.")
		return
	}

	// Build before the dialog opens: the save dialog hands the callback an
	// already-created writer, so a read failure after that point would leave
	// a truncated file at the chosen path.
	combined, err := a.engine.Build(snapshot)
	if err != nil {
		a.appendLog(err.Error())
		a.ShowError("Combine failed", err)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.ShowError("Could not save combined file", err)
			return
		}
		if writer == nil {
			return // Cancelled
		}
		defer writer.Close()

		outputPath := writer.URI().Path()

		if _, err := writer.Write([]byte(combined)); err != nil {
			a.appendLog("Error saving combined file: " + err.Error())
			a.ShowError("Could not write combined file", err)
			return
		}

		a.appendLog("Files combined successfully.")
		a.appendLog("Combined file saved as: " + outputPath)
		a.ShowNotification("Combine Complete", "Saved "+outputPath)

		a.cfg.Directories.LastUsed = filepath.Dir(outputPath)
		a.saveConfig()
	}, a.mainWindow)

	saveDialog.SetFileName(a.cfg.OutputFileName(time.Now()))
	a.seedDialogLocation(saveDialog)
	saveDialog.Show()
}

// appendLog appends a line to the activity log pane and mirrors it to the
// application log.
func (a *App) appendLog(msg string) {
	log.Info("%s", msg)
	if a.logBox == nil {
		return
	}
	text := a.logBox.Text
	if text != "" {
		text += "\n"
	}
	a.logBox.SetText(text + msg)
}

// seedDialogLocation points a file dialog at the last used directory.
func (a *App) seedDialogLocation(d *dialog.FileDialog) {
	if a.cfg.Directories.LastUsed == "" {
		return
	}
	uri := storage.NewFileURI(a.cfg.Directories.LastUsed)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return
	}
	d.SetLocation(listable)
}
