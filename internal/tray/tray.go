// Package tray puts an exit control in the system tray so the mapper can
// be quit even while its console window is hidden.
package tray

import (
	"log"
	"sync"
	"sync/atomic"

	"fyne.io/systray"
)

// ShutdownFunc is called when "Exit" is clicked.
type ShutdownFunc func()

// Tray manages the system tray icon and menu.
type Tray struct {
	shutdownFunc ShutdownFunc
	once         sync.Once
	shuttingDown atomic.Bool
	menuExit     *systray.MenuItem
}

// New creates a new Tray instance.
func New(shutdownFn ShutdownFunc) *Tray {
	return &Tray{
		shutdownFunc: shutdownFn,
	}
}

// Run initializes and runs the system tray (blocks until Quit()).
func (t *Tray) Run(iconData []byte) {
	systray.Run(func() {
		t.onReady(iconData)
	}, func() {
		t.onExit()
	})
}

func (t *Tray) onReady(iconData []byte) {
	if iconData != nil {
		systray.SetIcon(iconData)
	}
	systray.SetTitle("Gopher360")
	systray.SetTooltip("Gopher360 - controller mouse/keyboard mapping")

	t.menuExit = systray.AddMenuItem("Exit", "Quit Gopher360")

	go t.handleMenuClicks()

	log.Println("System tray initialized")
}

// handleMenuClicks processes menu item clicks without blocking.
func (t *Tray) handleMenuClicks() {
	for range t.menuExit.ClickedCh {
		if t.shuttingDown.CompareAndSwap(false, true) {
			t.once.Do(t.shutdownFunc)
			systray.Quit()
			return
		}
	}
}

func (t *Tray) onExit() {
	t.shuttingDown.Store(true)
	log.Println("System tray exiting")
}
