package sweets

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lose-weight/internal/core"
)

// Treat describes how one sweet kind is drawn.
type Treat struct {
	Name   string
	Frames [4]rune // Indexed by quarter turn of the sweet's rotation
	Color  core.Color
}

// Treats is the sweet palette, indexed by Cosmetic.Kind.
var Treats = [PaletteSize]Treat{
	{"donut", [4]rune{'O', 'O', 'O', 'O'}, core.ColorOrange},
	{"cake", [4]rune{'▲', '▶', '▼', '◀'}, core.ColorLightPink},
	{"ice cream", [4]rune{'Y', 'Y', 'Y', 'Y'}, core.ColorWhite},
	{"chocolate", [4]rune{'▬', '▮', '▬', '▮'}, core.ColorBrown},
	{"candy", [4]rune{'✦', '✧', '✦', '✧'}, core.ColorMagenta},
	{"cupcake", [4]rune{'♣', '♣', '♣', '♣'}, core.ColorPink},
	{"pancakes", [4]rune{'≡', '≡', '≡', '≡'}, core.ColorYellow},
	{"waffle", [4]rune{'#', '#', '#', '#'}, core.ColorYellow},
	{"shaved ice", [4]rune{'▼', '◀', '▲', '▶'}, core.ColorSky},
	{"sundae", [4]rune{'V', '>', 'Λ', '<'}, core.ColorWhite},
	{"cookie", [4]rune{'●', '◐', '●', '◑'}, core.ColorBrown},
	{"bubble tea", [4]rune{'Ü', 'Ü', 'Ü', 'Ü'}, core.ColorOrange},
}

// TreatFor returns the palette entry for a cosmetic kind.
func TreatFor(kind int) Treat {
	if kind < 0 || kind >= PaletteSize {
		return Treats[0]
	}
	return Treats[kind]
}

// Glyph returns the rune for a sweet turned by rotation radians.
func (t Treat) Glyph(rotation float64) rune {
	q := int(math.Floor(rotation/(math.Pi/2))) % 4
	if q < 0 {
		q += 4
	}
	return t.Frames[q]
}

// Avatar sprites, 5 columns by 3 rows, by lean direction.
var avatarSprites = [3][3]string{
	{"(•ᴗ• ", "/▐█▌ ", " ╯ ╰ "}, // leaning left
	{"(•ᴗ•)", "/▐█▌\\", " ╯ ╰ "},
	{" •ᴗ•)", " ▐█▌\\", " ╯ ╰ "}, // leaning right
}

const (
	gridChar     = '·'
	gridSpacingX = 8
	gridSpacingY = 4
	leanTilt     = 0.15
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.last

	g.drawGrid(dst)
	for _, s := range snap.Sweets {
		x, y := g.toCell(s.X, s.Y)
		t := TreatFor(s.Kind)
		dst.SetColored(x, y, t.Glyph(s.Rotation), t.Color)
	}
	g.drawAvatar(dst, snap.Avatar)

	switch snap.Phase {
	case PhaseNotStarted:
		g.drawStart(dst)
	case PhaseRunning:
		g.drawHUD(dst, snap)
	case PhaseEnded:
		g.drawEnd(dst, snap)
	}
}

// toCell converts field pixels to a terminal cell.
func (g *Game) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / g.cellW)), int(math.Floor(y / g.cellH))
}

func (g *Game) drawGrid(dst *core.Screen) {
	for y := gridSpacingY / 2; y < dst.Height(); y += gridSpacingY {
		for x := gridSpacingX / 2; x < dst.Width(); x += gridSpacingX {
			dst.SetColored(x, y, gridChar, core.ColorLightPink)
		}
	}
}

func (g *Game) drawAvatar(dst *core.Screen, a AvatarView) {
	cx, cy := g.toCell(a.X, a.Y)

	lean := 1
	switch {
	case a.Tilt < -leanTilt:
		lean = 0
	case a.Tilt > leanTilt:
		lean = 2
	}

	sprite := avatarSprites[lean]
	dst.DrawSprite(cx-2, cy-1, sprite[:], core.ColorSkin, core.ColorPink, core.ColorSkin)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	score := fmt.Sprintf(" %d ", snap.DisplayScore())
	w := len([]rune(score)) + 2
	x := (dst.Width() - w) / 2
	box := core.NewRect(x, 0, w, 3)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorPink)
	dst.DrawTextColored(x+1, 1, score, core.ColorBrightMagenta)

	level := fmt.Sprintf(" x%.2f ", snap.Difficulty)
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorGray)
}

func (g *Game) drawStart(dst *core.Screen) {
	prompt := "Press ENTER to start"
	if !g.controlReady {
		prompt = "Waiting for controller..."
	}
	lines := []string{"Lose Weight", "", "Dodge the sweets!", "", prompt}
	if g.controlHint != "" {
		lines = append(lines, g.controlHint)
	}
	dst.DrawPanel(lines, core.ColorPink, core.ColorWhite)
}

func (g *Game) drawEnd(dst *core.Screen, snap Snapshot) {
	lines := []string{
		"Oh no!",
		"Too many sweets!",
		"",
		fmt.Sprintf("Score: %d", snap.DisplayScore()),
		"",
		"R: try again   B: menu",
	}
	dst.DrawPanel(lines, core.ColorBrightRed, core.ColorWhite)
}
