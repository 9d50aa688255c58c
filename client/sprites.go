package client

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/client/shape"
	"github.com/plus3/stardodge/geom"
)

// spriteResolution is the pixel size sprite images are rendered at; they
// are scaled to Sprite.Size when drawn.
const spriteResolution = 128

var (
	shipColor     = color.RGBA{R: 90, G: 200, B: 255, A: 255}
	shipTrim      = color.RGBA{R: 230, G: 245, B: 255, A: 255}
	asteroidColor = color.RGBA{R: 120, G: 110, B: 100, A: 255}
	craterColor   = color.RGBA{R: 85, G: 78, B: 72, A: 255}
	starColor     = color.RGBA{R: 255, G: 215, A: 255}
	background    = color.RGBA{R: 6, G: 8, B: 20, A: 255}
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// fillOutline fills a radially ordered outline centred on the image centre.
func fillOutline(dst *ebiten.Image, outline []geom.Vec2, clr color.RGBA) {
	c := float32(dst.Bounds().Dx()) / 2
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255

	vertices := make([]ebiten.Vertex, 0, len(outline)+1)
	for _, p := range append(outline, geom.Vec2{}) {
		vertices = append(vertices, ebiten.Vertex{
			DstX: c + float32(p.X), DstY: c + float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	dst.DrawTriangles(vertices, shape.FanIndices(len(outline)), whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func strokeOutline(dst *ebiten.Image, outline []geom.Vec2, width float32, clr color.Color) {
	c := float32(dst.Bounds().Dx()) / 2
	for i, p := range outline {
		q := outline[(i+1)%len(outline)]
		vector.StrokeLine(dst, c+float32(p.X), c+float32(p.Y), c+float32(q.X), c+float32(q.Y), width, clr, true)
	}
}

// Atlas holds one pre-rendered image per sprite kind.
type Atlas struct {
	images map[arcade.SpriteKind]*ebiten.Image
}

// NewAtlas renders the sprite images. rng shapes the asteroid.
func NewAtlas(rng *rand.Rand) *Atlas {
	ship := ebiten.NewImage(spriteResolution, spriteResolution)
	outline := shape.Ship(spriteResolution * 0.95)
	fillOutline(ship, outline, shipColor)
	strokeOutline(ship, outline, 4, shipTrim)

	asteroid := ebiten.NewImage(spriteResolution, spriteResolution)
	fillOutline(asteroid, shape.Asteroid(spriteResolution*0.95, 11, rng), asteroidColor)
	for i := 0; i < 4; i++ {
		x := float32(geom.RandRange(rng, 0.3, 0.7) * spriteResolution)
		y := float32(geom.RandRange(rng, 0.3, 0.7) * spriteResolution)
		r := float32(geom.RandRange(rng, 0.05, 0.11) * spriteResolution)
		vector.DrawFilledCircle(asteroid, x, y, r, craterColor, true)
	}

	star := ebiten.NewImage(spriteResolution, spriteResolution)
	fillOutline(star, shape.Star(spriteResolution*0.95, 5), starColor)

	return &Atlas{images: map[arcade.SpriteKind]*ebiten.Image{
		arcade.SpriteSpaceship: ship,
		arcade.SpriteAsteroid:  asteroid,
		arcade.SpriteStar:      star,
	}}
}

// Image returns the image for kind, or nil for unknown kinds.
func (a *Atlas) Image(kind arcade.SpriteKind) *ebiten.Image {
	return a.images[kind]
}
