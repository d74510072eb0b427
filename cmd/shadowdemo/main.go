// Command shadowdemo renders the ggfx drop shadows into a PNG.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/typeface"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		radius  = flag.Int("radius", 8, "shadow radius in pixels")
		offsetX = flag.Int("offset-x", 4, "shadow x offset")
		offsetY = flag.Int("offset-y", 6, "shadow y offset")
		text    = flag.String("text", "Drop shadows", "text to draw")
		fonts   = flag.String("fonts", "", "directory of extra fonts to register")
		output  = flag.String("output", "shadowdemo.png", "output file")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		ggfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *fonts != "" {
		n, err := typeface.RegisterDir(*fonts)
		if err != nil {
			log.Fatalf("Failed to scan fonts: %v", err)
		}
		log.Printf("Registered %d fonts from %s\n", n, *fonts)
	}

	canvas, err := ggfx.NewImage(ggfx.FormatARGB, *width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	g := ggfx.NewGraphics(canvas)

	shadow := ggfx.NewDropShadow(ggfx.Black.WithAlpha(0.6), *radius, image.Pt(*offsetX, *offsetY))

	drawBackground(g, *height)
	drawCard(g, shadow)
	drawRoundedPanel(g, shadow)
	drawText(g, shadow, *text)
	if err := drawLayer(g, shadow, *width, *height); err != nil {
		log.Fatalf("Failed to draw layer: %v", err)
	}

	if err := imaging.Save(canvas.ToNRGBA(), *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d fills)\n", *output, *width, *height, g.DrawCount())
}

func drawBackground(g *ggfx.Graphics, h int) {
	g.SetGradientFill(ggfx.NewGradient(
		ggfx.RGB(0.93, 0.95, 0.98), ggfx.Pt(0, 0),
		ggfx.RGB(0.78, 0.83, 0.90), ggfx.Pt(0, float64(h)),
		false))
	g.FillAll()
}

// drawCard uses the analytic rectangle shadow.
func drawCard(g *ggfx.Graphics, shadow ggfx.DropShadow) {
	card := image.Rect(60, 60, 340, 240)
	shadow.DrawForRectangle(g, card)

	g.SetColor(ggfx.White)
	g.FillRectInt(card)
	g.SetColor(ggfx.Hex("#3b82f6"))
	g.FillRectInt(image.Rect(60, 60, 340, 92))
}

// drawRoundedPanel blurs the rasterized outline of a rounded rectangle.
func drawRoundedPanel(g *ggfx.Graphics, shadow ggfx.DropShadow) {
	panel := ggfx.NewPath()
	panel.RoundedRectangle(420, 60, 300, 180, 24)

	shadow.DrawForPath(g, panel)
	g.SetColor(ggfx.Hex("#fef3c7"))
	g.FillPath(panel, ggfx.Identity())
}

func drawText(g *ggfx.Graphics, shadow ggfx.DropShadow, text string) {
	tf := typeface.ForFont(typeface.Font{Family: "Go", Style: "Bold", Height: 56})
	outline := typeface.TextPath(tf, text, 56, 60, 340)

	textShadow := ggfx.NewDropShadow(shadow.Color, max(shadow.Radius/2, 1), shadow.Offset.Div(2))
	textShadow.DrawForPath(g, outline)
	g.SetColor(ggfx.Hex("#1f2937"))
	g.FillPath(outline, ggfx.Identity())
}

// drawLayer paints a separate layer and composites it through the effect.
func drawLayer(g *ggfx.Graphics, shadow ggfx.DropShadow, w, h int) error {
	layer, err := ggfx.NewImage(ggfx.FormatARGB, w, h)
	if err != nil {
		return err
	}
	defer layer.Release()

	lg := ggfx.NewGraphics(layer)
	badge := ggfx.NewPath()
	badge.Circle(float64(w)-160, float64(h)-140, 70)
	lg.SetGradientFill(ggfx.NewGradient(
		ggfx.Hex("#f472b6"), ggfx.Pt(float64(w)-160, float64(h)-140),
		ggfx.Hex("#9333ea"), ggfx.Pt(float64(w)-90, float64(h)-140),
		true))
	lg.FillPath(badge, ggfx.Identity())

	effect := ggfx.NewDropShadowEffect(shadow)
	effect.ApplyEffect(layer, g, 1.0, 0.9)
	return nil
}
