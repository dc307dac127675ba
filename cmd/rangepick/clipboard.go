package main

import "github.com/atotto/clipboard"

// systemClipboard adapts the OS clipboard to picker.Clipboard.
type systemClipboard struct{}

func newSystemClipboard() (systemClipboard, bool) {
	return systemClipboard{}, !clipboard.Unsupported
}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }
