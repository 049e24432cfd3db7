package ui

// Package ui contains the Fyne-based desktop user interface for the viewer.
// A Navigator owns the single application window and swaps its content when
// the user picks a destination; which buttons a screen shows and where they
// lead is declared in one transition table. All UI strings are looked up
// through Localization.
