package webcanvas

import (
	"fmt"
	"image/color"
	"strconv"
)

// cssColor formats a colour as a CSS rgba() string
func cssColor(clr color.Color) string {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	alpha := strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, alpha)
}
