package gui

import (
	"path/filepath"
	"sync"

	"combind/internal/combine"
	"combind/internal/config"
	"combind/internal/filelist"
	"combind/internal/log"
	"combind/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	list       *filelist.List
	engine     *combine.Engine
	watcher    *watch.Watcher

	// Index of the selected row in the file table, -1 when nothing is
	// selected. Guarded by selMu: the watcher goroutine reads it while the
	// table callbacks write it.
	selMu         sync.RWMutex
	selectedIndex int

	// Widgets the callbacks need to refresh
	fileTable  *widget.List
	previewBox *widget.Entry
	logBox     *widget.Entry
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config, list *filelist.List, engine *combine.Engine) *App {
	// Create app with a unique ID for preferences storage
	fyneApp := app.NewWithID("io.github.combind")

	a := &App{
		fyneApp:       fyneApp,
		cfg:           cfg,
		list:          list,
		engine:        engine,
		selectedIndex: -1,
	}

	if cfg.Settings.WatchFiles {
		watcher, err := watch.New()
		if err != nil {
			log.Errorf("Failed to create file watcher: %v", err)
			// The GUI works without the watcher, previews just go stale silently
		} else {
			a.watcher = watcher
		}
	}

	a.mainWindow = a.fyneApp.NewWindow("Combind")

	return a
}

// selected returns the index of the selected row, -1 when nothing is selected
func (a *App) selected() int {
	a.selMu.RLock()
	defer a.selMu.RUnlock()
	return a.selectedIndex
}

// setSelected records the selected row index
func (a *App) setSelected(index int) {
	a.selMu.Lock()
	a.selectedIndex = index
	a.selMu.Unlock()
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run starts the GUI application
func (a *App) Run() {
	a.setupMainWindow()
	a.startWatcher()

	a.mainWindow.Show()

	a.fyneApp.Run()

	if a.watcher != nil {
		a.watcher.Stop()
	}
}

// ShowError displays an error dialog
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	dialog.ShowError(err, a.mainWindow)

	a.ShowNotification("Error: "+title, err.Error())
}

// ShowInfo displays an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}

// ShowNotification sends a system notification if enabled in settings
func (a *App) ShowNotification(title, content string) {
	if a.cfg.Settings.EnableNotifications {
		a.fyneApp.SendNotification(fyne.NewNotification(title, content))
	}
}

// saveConfig saves the current configuration
func (a *App) saveConfig() {
	if err := a.cfg.Save(); err != nil {
		log.Warnf("Failed to save configuration: %v", err)
	}
}

// startWatcher starts the file change watcher and wires its events into the
// log pane and the preview.
func (a *App) startWatcher() {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Start(); err != nil {
		log.Errorf("Failed to start watcher: %v", err)
		return
	}

	// Files preloaded from the command line need watching too
	for _, path := range a.list.Snapshot() {
		if err := a.watcher.Add(path); err != nil {
			log.Warnf("Could not watch %s: %v", path, err)
		}
	}

	go func() {
		for mod := range a.watcher.Events() {
			a.appendLog("File changed on disk: " + mod.Path)
			// Refresh the preview if the changed file is the one on screen
			idx := a.selected()
			if idx < 0 {
				continue
			}
			path, err := a.list.EntryAt(idx)
			if err != nil {
				continue
			}
			// Watcher paths are absolute, list entries may not be
			if abs, err := filepath.Abs(path); err == nil && abs == mod.Path {
				a.displayFileContent(idx)
			}
		}
	}()
}
