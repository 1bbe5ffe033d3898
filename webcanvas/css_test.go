package webcanvas

import (
	"image/color"
	"testing"
)

func TestCSSColor(t *testing.T) {
	cases := []struct {
		in   color.Color
		want string
	}{
		{color.NRGBA{R: 97, G: 218, B: 251, A: 230}, "rgba(97,218,251,0.902)"},
		{color.NRGBA{R: 97, G: 218, B: 251, A: 255}, "rgba(97,218,251,1.000)"},
		{color.Transparent, "rgba(0,0,0,0.000)"},
	}
	for _, c := range cases {
		if got := cssColor(c.in); got != c.want {
			t.Fatalf("cssColor(%v): got=%q want=%q", c.in, got, c.want)
		}
	}
}
