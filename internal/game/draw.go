package game

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/fortune-wheel/internal/config"
	"github.com/iburimskiy/fortune-wheel/internal/layout"
	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

const (
	charWidth  = 6 // debug font cell
	charHeight = 16

	rimHueSwing = 40.0
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// cyan, magenta, pink-red
	segmentColors = []color.RGBA{
		{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
		{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
		{R: 0xff, G: 0x33, B: 0x66, A: 0xff},
	}

	pointerColor = color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
	panelBorder  = color.RGBA{R: 0xd9, G: 0x46, B: 0xef, A: 0xff}
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *game) Draw(screen *ebiten.Image) {
	now := g.clock.Now()

	g.drawBackground(screen)
	g.drawWheel(screen, g.state.DisplayRotation(now))
	g.drawPointer(screen)
	g.drawButton(screen)
	g.drawPanel(screen)

	if g.state.BurstActive {
		g.drawConfetti(screen)
	}

	title := "WHEEL OF FORTUNE"
	ebitenutil.DebugPrintAt(screen, title, (config.WindowWidth-len(title)*charWidth)/2, 20)

	status := "Space/Enter or click START to spin, Esc/Q: quit | session " +
		formatDuration(now.Sub(g.started))
	if n := g.stats.Spins(); n > 0 {
		status += " | spins: " + strconv.FormatInt(n, 10)
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, config.WindowHeight-24)
}

func (g *game) drawBackground(screen *ebiten.Image) {
	const band = 4
	for y := 0; y < config.WindowHeight; y += band {
		ratio := float64(y) / float64(config.WindowHeight)
		r := uint8(10 + 20*math.Sin(g.time*0.5+ratio*math.Pi))
		g_val := uint8(12 + 15*math.Cos(g.time*0.3+ratio*math.Pi))
		b := uint8(20 + 25*math.Sin(g.time*0.7+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, band, color.RGBA{R: r, G: g_val, B: b, A: 255}, false)
	}
}

func (g *game) drawWheel(screen *ebiten.Image, rotation float64) {
	const (
		cx = float64(config.WheelCenterX)
		cy = float64(config.WheelCenterY)
		r  = float64(config.WheelRadius)
	)
	n := len(g.items)

	// Segments as triangle fans
	for i := 0; i < n; i++ {
		start, end := wheel.SegmentBounds(i, n)
		start += rotation
		end += rotation
		col := segmentColors[i%len(segmentColors)]
		// keep the last segment from matching segment 0 across the seam
		if n > 1 && i == n-1 && i%len(segmentColors) == 0 {
			col = segmentColors[1]
		}

		vs := []ebiten.Vertex{vertex(cx, cy, col)}
		is := make([]uint16, 0, config.ArcSteps*3)
		for s := 0; s <= config.ArcSteps; s++ {
			a := start + (end-start)*float64(s)/config.ArcSteps
			x, y := layout.Polar(cx, cy, a, r)
			vs = append(vs, vertex(x, y, col))
			if s > 0 {
				is = append(is, 0, uint16(s), uint16(s+1))
			}
		}
		screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
	}

	// Separators
	if n > 1 {
		for i := 0; i < n; i++ {
			start, _ := wheel.SegmentBounds(i, n)
			x, y := layout.Polar(cx, cy, start+rotation, r)
			vector.StrokeLine(screen, float32(cx), float32(cy), float32(x), float32(y), 2, color.White, true)
		}
	}

	// Labels
	for i, it := range g.items {
		start, end := wheel.SegmentBounds(i, n)
		x, y := layout.Polar(cx, cy, (start+end)/2+rotation, config.LabelRadius)
		ebitenutil.DebugPrintAt(screen, it.ID, int(x)-len(it.ID)*charWidth/2, int(y)-charHeight/2)
	}

	// Rim glow follows the sound, its hue drifting around cyan
	level := clamp01(g.audio.level() * 3)
	glow := layout.HSV(180+rimHueSwing*math.Sin(g.colorPhase), 1, 1, uint8(90+165*level))
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r)+config.RimGlowWidth/2, float32(config.RimGlowWidth*(1+level)), glow, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 2, color.White, true)

	// Hub
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), config.HubRadius, color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), config.HubRadius*0.6, color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}, true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), config.HubRadius, 4, color.White, true)
}

func (g *game) drawPointer(screen *ebiten.Image) {
	tipX := float32(config.WheelCenterX)
	tipY := float32(config.WheelCenterY - config.WheelRadius + 12)

	var path vector.Path
	path.MoveTo(tipX, tipY)
	path.LineTo(tipX-config.PointerHalfWidth, tipY-config.PointerHeight)
	path.LineTo(tipX+config.PointerHalfWidth, tipY-config.PointerHeight)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(pointerColor.R) / 255
		vs[i].ColorG = float32(pointerColor.G) / 255
		vs[i].ColorB = float32(pointerColor.B) / 255
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (g *game) drawButton(screen *ebiten.Image) {
	busy := g.state.Busy

	var bgColor color.Color
	switch {
	case busy:
		bgColor = color.RGBA{R: 40, G: 70, B: 90, A: 160} // Disabled
	case g.buttonPressed:
		bgColor = color.RGBA{R: 0, G: 120, B: 160, A: 255}
	case g.buttonHovered:
		bgColor = color.RGBA{R: 20, G: 170, B: 210, A: 255}
	default:
		bgColor = color.RGBA{R: 6, G: 182, B: 212, A: 255}
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	borderColor := color.RGBA{R: 103, G: 232, B: 249, A: 255}
	if busy {
		borderColor.A = 120
	}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	text := "START"
	if busy {
		text = "SPINNING..."
	}
	textX := config.ButtonX + (config.ButtonWidth-len(text)*charWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-charHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *game) drawPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, config.PanelX, config.PanelY, config.PanelWidth, config.PanelHeight, color.RGBA{A: 80}, false)

	glow := panelBorder
	if g.state.Winner != nil {
		// pulse while a result is on display
		glow.A = uint8(150 + 105*(0.5+0.5*math.Sin(g.time*4)))
	}
	vector.StrokeRect(screen, config.PanelX, config.PanelY, config.PanelWidth, config.PanelHeight, 2, glow, false)

	var msg string
	switch {
	case g.state.Winner != nil:
		msg = g.state.Winner.Text
	case g.state.Busy:
		msg = "Picking a task..."
	default:
		msg = `Press "START" to begin`
	}

	lines := layout.WrapText(msg, (config.PanelWidth-20)/charWidth)
	y := config.PanelY + (config.PanelHeight-len(lines)*charHeight)/2
	for _, l := range lines {
		x := config.PanelX + (config.PanelWidth-len(l)*charWidth)/2
		ebitenutil.DebugPrintAt(screen, l, x, y)
		y += charHeight
	}
}

func (g *game) drawConfetti(screen *ebiten.Image) {
	for _, p := range g.state.Burst {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.Size, p.Size*2)
		op.GeoM.Translate(-p.Size/2, -p.Size/2)
		op.GeoM.Rotate(p.Rotation * math.Pi / 180)
		op.GeoM.Translate(p.X, p.Y)
		op.ColorScale.ScaleWithColor(p.Color)
		op.ColorScale.ScaleAlpha(float32(clamp01(p.Opacity)))
		screen.DrawImage(whiteSubImage, op)
	}
}

func vertex(x, y float64, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}
