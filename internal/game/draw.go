package game

import (
	"image/color"
	"sort"

	"github.com/yohamta/donburi"

	"chosenoffset.com/spaceshooter/internal/render"
	"chosenoffset.com/spaceshooter/internal/world"
)

var (
	clearColor = color.RGBA{43, 43, 43, 255}
	textColor  = color.White
	hpColor    = color.RGBA{0, 255, 100, 255}
	lostColor  = color.RGBA{200, 200, 200, 255}
)

// spriteDraw is one sprite placed on screen
type spriteDraw struct {
	kind     world.SpriteKind
	x, y     float64 // Screen pixels
	rotation float64 // Screen radians, clockwise
	scale    float64
	layer    int
}

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	if g.Renderer == nil {
		return
	}

	screen.Fill(clearColor)
	g.drawSprites(screen)
	g.drawTexts(screen)
	g.drawHUD(screen)
}

// spriteList returns every sprite in draw order, lowest layer first.
func (g *Game) spriteList() []spriteDraw {
	var out []spriteDraw
	world.EachSprite(g.ctx.World, func(entry *donburi.Entry) {
		t := world.Transform.Get(entry)
		x, y := g.Camera.ToScreen(t.Position)
		out = append(out, spriteDraw{
			kind:     world.Sprite.Get(entry).Kind,
			x:        x,
			y:        y,
			rotation: -t.Rotation,
			scale:    t.Scale,
			layer:    t.Layer,
		})
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].layer < out[j].layer
	})
	return out
}

func (g *Game) drawSprites(screen render.Image) {
	for _, s := range g.spriteList() {
		img, ok := g.sprites[s.kind]
		if !ok {
			continue
		}
		w, h := img.Size()

		geo := render.NewGeoM()
		geo.Translate(-float64(w)/2, -float64(h)/2)
		geo.Scale(s.scale, s.scale)
		geo.Rotate(s.rotation)
		geo.Translate(s.x, s.y)
		screen.DrawImage(img, &render.DrawImageOptions{GeoM: geo})
	}
}

func (g *Game) drawTexts(screen render.Image) {
	world.EachText(g.ctx.World, func(entry *donburi.Entry) {
		txt := world.Text.Get(entry)
		face, err := g.face(txt.Size)
		if err != nil {
			g.logger.Error("text skipped", "err", err)
			return
		}
		g.Renderer.DrawText(screen, txt.Content, face, &render.DrawTextOptions{
			X:              float64(g.Camera.Width) / 2,
			Y:              float64(g.Camera.Height) / 2,
			Color:          textColor,
			PrimaryAlign:   render.AlignCenter,
			SecondaryAlign: render.AlignCenter,
		})
	})
}

// drawHUD shows remaining hit points as pips in the top-left corner
func (g *Game) drawHUD(screen render.Image) {
	player, ok := world.Player(g.ctx.World)
	if !ok {
		return
	}
	hp := world.Health.Get(player).HP

	const radius, gap = 8, 24
	for i := 0; i < g.cfg.Player.HP; i++ {
		x := float32(20 + i*gap)
		if i < hp {
			g.Renderer.FillCircle(screen, x, 20, radius, hpColor)
		} else {
			g.Renderer.StrokeCircle(screen, x, 20, radius, 2, lostColor)
		}
	}
}
