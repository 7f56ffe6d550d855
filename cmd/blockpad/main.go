package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"github.com/hubastard/blockpad/editor"
	"github.com/hubastard/blockpad/engine/assets"
	"github.com/hubastard/blockpad/engine/colors"
	"github.com/hubastard/blockpad/engine/core"
	glbackend "github.com/hubastard/blockpad/engine/gfx/gl"
	"github.com/hubastard/blockpad/engine/gfx/renderer2d"
	"github.com/hubastard/blockpad/engine/platform"
	"github.com/hubastard/blockpad/engine/text"
)

// Font candidates, first hit wins (same fallback chain for dev machines
// without a bundled font).
var fontPaths = []string{
	"assets/fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:/Windows/Fonts/arial.ttf",
}

type App struct {
	r2d     *renderer2d.Renderer2D
	font    *text.Font
	session *editor.Session
}

func (a *App) OnStart(e *core.Engine) {
	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		panic(err)
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		panic(err)
	}

	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, 4096)
	if err != nil {
		panic(err)
	}

	a.font, err = loadFont(e.Renderer)
	if err != nil {
		panic(err)
	}

	a.session = editor.New(nil)

	layer := &EditorLayer{r2d: a.r2d, font: a.font, session: a.session}

	// Sprite image is optional; a flat circle stands in when missing.
	if w, h, pixels, err := assets.LoadPNG("sprite.png"); err == nil {
		if tex, err := e.Renderer.CreateTexture(core.TextureDesc{
			Width: w, Height: h,
			Format:    core.TextureRGBA8,
			Pixels:    pixels,
			MinFilter: "linear", MagFilter: "linear",
			WrapU: "clamp", WrapV: "clamp",
		}); err == nil {
			layer.sprite = renderer2d.Full(tex)
			layer.hasSprite = true
		}
	}
	if !layer.hasSprite {
		log.Println("sprite.png not found, using circle fallback")
		tex, err := circleTexture(e.Renderer, 64, colors.RGB(255, 140, 0))
		if err != nil {
			panic(err)
		}
		layer.sprite = renderer2d.Full(tex)
		layer.hasSprite = true
	}

	e.PushLayer(layer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              { a.font.Close() }

func loadFont(r core.Renderer) (*text.Font, error) {
	for _, p := range fontPaths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		return text.LoadTTF(r, p, 13)
	}
	return nil, fmt.Errorf("no usable font in %v", fontPaths)
}

// circleTexture rasterizes a flat filled circle.
func circleTexture(r core.Renderer, size int, col colors.Color) (core.Texture, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{}}, image.Point{}, draw.Src)

	c := float64(size-1) / 2
	rad := c
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			d := dx*dx + dy*dy
			if d > rad*rad {
				continue
			}
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(col[0] * 255),
				G: uint8(col[1] * 255),
				B: uint8(col[2] * 255),
				A: 255,
			})
		}
	}

	return r.CreateTexture(core.TextureDesc{
		Width: size, Height: size,
		Format:    core.TextureRGBA8,
		Pixels:    img.Pix,
		MinFilter: "linear", MagFilter: "linear",
		WrapU: "clamp", WrapV: "clamp",
	})
}

func main() {
	cfg := core.Config{
		Title:      "Blockpad",
		Width:      editor.WindowW,
		Height:     editor.WindowH,
		VSync:      true,
		ClearColor: [4]float32{0.12, 0.12, 0.12, 1},
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
