// This file is part of uart8250.
//
// uart8250 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uart8250 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uart8250.  If not, see <https://www.gnu.org/licenses/>.

package waveform

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/jetsetilly/uart8250/curated"
	"github.com/jetsetilly/uart8250/hardware/uart/linecontrol"
)

// Sentinel error patterns. Use with curated.Is() and curated.Has().
const (
	RenderError = "waveform: %v"
)

// dimensions of the rendered image
const (
	bitWidth    = 24.0
	idleWidth   = 2.0
	margin      = 16.0
	highY       = 30.0
	lowY        = 70.0
	labelY      = 92.0
	headerY     = 14.0
	imageHeight = 104
)

// Render draws the line level for the data as a PNG image and writes it to w.
// Frames are drawn back to back with two bit times of idle line before the
// first frame and after the last.
func Render(w io.Writer, cfg linecontrol.Config, data []uint8) error {
	frames := make([][]Bit, 0, len(data))
	var units float64
	for _, b := range data {
		f, err := Frame(cfg, b)
		if err != nil {
			return curated.Errorf(RenderError, err)
		}
		frames = append(frames, f)
		units += Duration(f)
	}
	units += idleWidth * 2

	width := int(margin*2 + units*bitWidth)
	dc := gg.NewContext(width, imageHeight)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// bit boundaries
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	x := margin + idleWidth*bitWidth
	for _, f := range frames {
		for _, b := range f {
			dc.DrawLine(x, highY-6, x, lowY+6)
			x += b.Width * bitWidth
		}
	}
	dc.DrawLine(x, highY-6, x, lowY+6)
	dc.Stroke()

	// line level
	dc.SetRGB(0.1, 0.3, 0.8)
	dc.SetLineWidth(2)
	x = margin
	y := highY
	dc.MoveTo(x, y)
	x += idleWidth * bitWidth
	dc.LineTo(x, y)
	for _, f := range frames {
		for _, b := range f {
			ny := lowY
			if b.Level {
				ny = highY
			}
			dc.LineTo(x, ny)
			y = ny
			x += b.Width * bitWidth
			dc.LineTo(x, y)
		}
	}
	dc.LineTo(x, highY)
	dc.LineTo(x+idleWidth*bitWidth, highY)
	dc.Stroke()

	// labels
	dc.SetRGB(0, 0, 0)
	dc.DrawString(fmt.Sprintf("%s %d bytes", cfg, len(data)), margin, headerY)
	x = margin + idleWidth*bitWidth
	for _, f := range frames {
		for _, b := range f {
			dc.DrawStringAnchored(b.Label(), x+b.Width*bitWidth/2, labelY, 0.5, 0.5)
			x += b.Width * bitWidth
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return curated.Errorf(RenderError, err)
	}
	return nil
}
