package demo

import (
	"strings"

	"github.com/atotto/clipboard"
)

// Copier writes text to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// CopierFunc adapts a function to Copier.
type CopierFunc func(text string) error

func (f CopierFunc) Copy(text string) error { return f(text) }

// SystemClipboard copies through the platform clipboard. It fails on
// headless machines without xclip/xsel/wl-copy or pbcopy.
var SystemClipboard Copier = CopierFunc(clipboard.WriteAll)

type shareLink struct {
	url    string
	copied bool
}

func shareURL(base, sessionID string) string {
	return strings.TrimRight(base, "/") + "/s/" + sessionID
}
