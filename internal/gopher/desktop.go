package gopher

import "log"

// toggleConsole hides or shows the console window the mapper runs in.
func (e *Engine) toggleConsole() {
	e.hidden = !e.hidden
	if e.hidden {
		log.Println("Window hidden")
	} else {
		log.Println("Window unhidden")
	}
	e.win.SetConsoleVisible(!e.hidden)
}

// toggleOnScreenKeyboard minimizes or restores the on-screen keyboard
// window. The keyboard has to be started by the user; when its window is
// missing the toggle reports it and the tick continues.
func (e *Engine) toggleOnScreenKeyboard() {
	handle, found := e.win.FindWindow(oskWindowTitle)
	if !found {
		log.Println("Please start the on-screen keyboard first")
		return
	}
	if e.win.IsMinimized(handle) {
		e.win.Restore(handle)
	} else {
		e.win.Minimize(handle)
	}
}
