// Package summary turns a finished run into shareable artifacts:
// a PNG score card and a one-line share message.
package summary

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/lose-weight/internal/core"
)

// Card dimensions in pixels.
const (
	CardWidth  = 600
	CardHeight = 400
)

// Card colors
var (
	colorBackdrop = color.RGBA{R: 0xfc, G: 0xe7, B: 0xf3, A: 0xff}
	colorGrid     = color.RGBA{R: 0xf9, G: 0xa8, B: 0xd4, A: 0xff}
	colorPanel    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorBorder   = color.RGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff}
	colorTitle    = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	colorScore    = color.RGBA{R: 0xdb, G: 0x27, B: 0x77, A: 0xff}
	colorText     = color.RGBA{R: 0x4b, G: 0x55, B: 0x63, A: 0xff}
)

// ShareText returns the message offered alongside the card.
func ShareText(s core.RunSummary) string {
	return fmt.Sprintf("I scored %d in %s! Can you beat me?", s.Score, s.Title)
}

// Render draws the score card for a finished run.
func Render(s core.RunSummary) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	fill(img, img.Bounds(), colorBackdrop)

	// dotted grid like the play field
	for y := 20; y < CardHeight; y += 40 {
		for x := 20; x < CardWidth; x += 40 {
			fill(img, image.Rect(x-1, y-1, x+2, y+2), colorGrid)
		}
	}

	panel := image.Rect(60, 40, CardWidth-60, CardHeight-40)
	fill(img, panel, colorBorder)
	fill(img, panel.Inset(6), colorPanel)

	cx := CardWidth / 2
	drawText(img, "Oh no!", cx, 70, 4, colorTitle)
	drawText(img, fmt.Sprintf("%d", s.Score), cx, 150, 6, colorScore)
	drawText(img, statsLine(s), cx, 254, 2, colorText)
	drawText(img, s.Title+" Game", cx, 300, 2, colorBorder)

	return img
}

func statsLine(s core.RunSummary) string {
	secs := int(s.Duration.Round(time.Second) / time.Second)
	return fmt.Sprintf("dodged %d/%d  %ds  x%.2f", s.Dodged, s.Spawned, secs, s.Difficulty)
}

// WritePNG encodes the card for s to w.
func WritePNG(w io.Writer, s core.RunSummary) error {
	if err := png.Encode(w, Render(s)); err != nil {
		return fmt.Errorf("summary: encode card: %w", err)
	}
	return nil
}

// DefaultDir returns ~/.sweets/cards.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("summary: cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".sweets", "cards"), nil
}

// Save writes the card into dir, named after the game and the time,
// and returns its path.
func Save(dir string, s core.RunSummary, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("summary: create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s_%d.png", s.GameID, at.Format("20060102_150405"), s.Score)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("summary: create card: %w", err)
	}
	if err := WritePNG(f, s); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("summary: close card: %w", err)
	}
	return path, nil
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawText renders s horizontally centered on cx with its top at y,
// magnified scale times from the 7x13 bitmap face.
func drawText(dst *image.RGBA, s string, cx, y, scale int, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face}
	w := d.MeasureString(s).Ceil()
	h := face.Height
	if w == 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = glyphs
	d.Src = image.NewUniform(c)
	d.Dot = fixed.P(0, face.Ascent)
	d.DrawString(s)

	x := cx - w*scale/2
	target := image.Rect(x, y, x+w*scale, y+h*scale)
	draw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}
