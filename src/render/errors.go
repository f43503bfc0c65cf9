package render

import "errors"

var (
	// ErrRendering wraps every failure of the chart backend or of writing the image.
	ErrRendering = errors.New("rendering failed")
	// ErrNoData is returned when there is nothing to draw.
	ErrNoData = errors.New("no data to plot")
)
