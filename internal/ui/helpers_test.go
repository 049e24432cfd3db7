package ui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ghssrc/survey-viewer/internal/config"
)

const testDataset = "Timestamp,RoomLearn,RoomDecor\n" +
	"2024/03/01 09:00,8,6\n" +
	"2024/03/01 09:05,9,7\n" +
	"2024/03/01 09:10,x,5\n" +
	"2024/03/01 09:15,7,8\n"

const testNotebook = `{"cells": [
 {"cell_type": "markdown", "source": ["# Journal\n", "Week one."]},
 {"cell_type": "code", "source": ["print('hi')"]}
]}`

// writeFixtures creates the viewer's input files in a temp dir and returns
// settings pointing at them
func writeFixtures(t *testing.T) *config.Settings {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		return path
	}

	settings := config.NewSettings()
	settings.DatasetPath = write("data.csv", testDataset)
	settings.OverviewPath = write("Overview.ipynb", testNotebook)
	settings.JournalPath = write("ProjectJournal.ipynb", testNotebook)
	settings.LogoPath = writeLogo(t, dir, 40, 20)
	return settings
}

func writeLogo(t *testing.T, dir string, width, height int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.NRGBA{R: 0, G: 168, B: 235, A: 255})
		}
	}

	path := filepath.Join(dir, "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create logo: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode logo: %v", err)
	}
	return path
}

// findButton walks containers looking for a button with the given text
func findButton(obj fyne.CanvasObject, text string) *widget.Button {
	switch o := obj.(type) {
	case *widget.Button:
		if o.Text == text {
			return o
		}
	case *fyne.Container:
		for _, child := range o.Objects {
			if b := findButton(child, text); b != nil {
				return b
			}
		}
	case *container.Scroll:
		return findButton(o.Content, text)
	}
	return nil
}

// countButtons returns how many buttons the content tree holds
func countButtons(obj fyne.CanvasObject) int {
	switch o := obj.(type) {
	case *widget.Button:
		return 1
	case *fyne.Container:
		total := 0
		for _, child := range o.Objects {
			total += countButtons(child)
		}
		return total
	case *container.Scroll:
		return countButtons(o.Content)
	}
	return 0
}

// findWidget returns the first object of type T in the content tree
func findWidget[T fyne.CanvasObject](obj fyne.CanvasObject) (T, bool) {
	if match, ok := obj.(T); ok {
		return match, true
	}
	switch o := obj.(type) {
	case *fyne.Container:
		for _, child := range o.Objects {
			if match, ok := findWidget[T](child); ok {
				return match, true
			}
		}
	case *container.Scroll:
		return findWidget[T](o.Content)
	}
	var zero T
	return zero, false
}

func newTestApp(t *testing.T) fyne.App {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	return app
}
