package demo

// initialWindows is the configuration at page load and after reset.
func initialWindows() Windows {
	return Windows{Terminal: true, Browser: true}
}

// windowSet owns the visibility flags. Every operation is a plain flag
// set with no preconditions.
type windowSet struct {
	flags Windows
}

func (w *windowSet) reset() { w.flags = initialWindows() }

func (w *windowSet) flag(win Window) *bool {
	switch win {
	case WindowTerminal:
		return &w.flags.Terminal
	case WindowEditor:
		return &w.flags.Editor
	case WindowBrowser:
		return &w.flags.Browser
	case WindowSearch:
		return &w.flags.Search
	case WindowMessaging:
		return &w.flags.Messaging
	}
	return nil
}

func (w *windowSet) set(win Window, visible bool) bool {
	f := w.flag(win)
	if f == nil {
		return false
	}
	*f = visible
	return true
}

func (w *windowSet) toggle(win Window) bool {
	f := w.flag(win)
	if f == nil {
		return false
	}
	*f = !*f
	return true
}

// openProjects hides the terminal and shows the editor pair.
func (w *windowSet) openProjects() {
	w.flags.Terminal = false
	w.flags.Editor = true
}

// openTerminal shows the terminal and hides everything the script
// opens after it.
func (w *windowSet) openTerminal() {
	w.flags.Terminal = true
	w.flags.Editor = false
	w.flags.Search = false
	w.flags.Messaging = false
}
