package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

type previewItem struct {
	name string
	img  image.Image
}

// loadPreviewImages decodes the saved charts; the window shows exactly what is on disk.
func loadPreviewImages(paths []string) ([]previewItem, error) {
	items := make([]previewItem, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("preview %s: %w", p, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("preview %s: %w", p, err)
		}
		items = append(items, previewItem{name: filepath.Base(p), img: img})
	}
	return items, nil
}

// previewSize is the window size fitting the largest image.
func previewSize(items []previewItem) fyne.Size {
	var w, h int
	for _, it := range items {
		b := it.img.Bounds()
		if b.Dx() > w {
			w = b.Dx()
		}
		if b.Dy() > h {
			h = b.Dy()
		}
	}
	return fyne.NewSize(float32(w), float32(h+40))
}

// showPreview blocks until the window is closed.
func showPreview(paths []string) error {
	items, err := loadPreviewImages(paths)
	if err != nil {
		return err
	}
	a := app.New()
	w := a.NewWindow("pprplots – " + items[0].name)
	tabs := container.NewAppTabs()
	for _, it := range items {
		ci := canvas.NewImageFromImage(it.img)
		ci.FillMode = canvas.ImageFillContain
		tabs.Append(container.NewTabItem(it.name, ci))
	}
	w.SetContent(tabs)
	w.Resize(previewSize(items))
	w.ShowAndRun()
	return nil
}
