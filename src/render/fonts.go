package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	boldOnce sync.Once
	boldFont *truetype.Font
	boldErr  error
)

// labelFont returns the bold face used for value labels, falling back to the
// go-chart default face when the bundled bold font cannot be parsed.
func labelFont() (*truetype.Font, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = truetype.Parse(gobold.TTF)
	})
	if boldErr == nil {
		return boldFont, nil
	}
	return chart.GetDefaultFont()
}
