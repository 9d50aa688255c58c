package client

import (
	"bytes"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// Screen is the image the render schedule draws into this frame.
type Screen struct {
	Image *ebiten.Image
}

var fontSource = func() *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("[client] load font: %v", err)
	}
	return src
}()

type drawable struct {
	Sprite    *arcade.Sprite
	Transform *arcade.Transform
}

// RenderSystem draws sprites back to front by Z, then the text labels.
type RenderSystem struct {
	Sprites ecs.Query[drawable]
	Labels  ecs.Query[struct{ Text *arcade.Text }]
	Window  ecs.Singleton[arcade.Window]
	Screen  ecs.Singleton[Screen]

	Atlas *Atlas

	order []drawable
	faces map[float64]*text.GoTextFace
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get().Image
	if screen == nil {
		return
	}
	screen.Fill(background)
	window := *s.Window.Get()

	s.order = s.order[:0]
	for d := range s.Sprites.Values() {
		s.order = append(s.order, d)
	}
	slices.SortStableFunc(s.order, func(a, b drawable) int {
		switch {
		case a.Transform.Z < b.Transform.Z:
			return -1
		case a.Transform.Z > b.Transform.Z:
			return 1
		}
		return 0
	})

	for _, d := range s.order {
		img := s.Atlas.Image(d.Sprite.Kind)
		if img == nil {
			continue
		}
		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		op.GeoM.Scale(d.Sprite.Size/float64(bounds.Dx()), d.Sprite.Size/float64(bounds.Dy()))
		// world rotation is counter-clockwise with +Y up
		op.GeoM.Rotate(-d.Transform.Rotation)
		x, y := window.ToScreen(d.Transform.Translation)
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}

	for label := range s.Labels.Values() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(label.Text.Left, label.Text.Top)
		op.ColorScale.ScaleWithColor(label.Text.Color)
		text.Draw(screen, label.Text.Value, s.face(label.Text.FontSize), op)
	}
}

func (s *RenderSystem) face(size float64) *text.GoTextFace {
	if s.faces == nil {
		s.faces = make(map[float64]*text.GoTextFace)
	}
	face, ok := s.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: fontSource, Size: size}
		s.faces[size] = face
	}
	return face
}
