package scenes

import (
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/core"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
	"github.com/lixenwraith/kickdrive/systems"
)

var (
	sheepKick  = newButton("kick", "💥 Kick!", W/2-70, H-120, 140, 55, "#ff5722")
	sheepBleat = newButton("bleat", "🐑 Baa", 10, H-60, 100, 40, "#8bc34a")
	sheepBack  = newButton("back", "🏃 Human", W-110, H-60, 100, 40, "#2196f3")

	sheepButtons = []button{sheepKick, sheepBleat, sheepBack}
)

var flowerGlyphs = []string{"🌸", "🌼", "🌻", "🌷", "🌺"}

type flower struct {
	x, y  float64
	glyph string
}

// Sheep is the meadow scene for the sheep form
type Sheep struct {
	roam
	flowers []flower
	bleat   time.Duration
}

// Player exposes the avatar
func (sh *Sheep) Player() *systems.Walker { return sh.player }

// Bleating reports the player's bleat bubble
func (sh *Sheep) Bleating() bool { return sh.bleat > 0 }

// Enter respawns the sheep in the meadow
func (sh *Sheep) Enter(s *engine.Session, p engine.Params) {
	bounds := systems.Bounds{MinX: constants.RoamMinX, MaxX: constants.RoamMaxX, MinY: constants.SheepMinY, MaxY: constants.SheepMaxY}
	player := systems.NewWalker(constants.SheepSpawnX, constants.SheepSpawnY, constants.SheepSpeed, bounds)
	sh.roam = newRoam(s, content.FormSheep, player, systems.SheepFlock())
	sh.bleat = 0

	sh.flowers = make([]flower, 15)
	for i := range sh.flowers {
		sh.flowers[i] = flower{
			x:     core.RangeF(s.Rand, 0, W),
			y:     core.RangeF(s.Rand, 100, 600),
			glyph: flowerGlyphs[s.Rand.Intn(len(flowerGlyphs))],
		}
	}
}

func (sh *Sheep) Update(s *engine.Session, dt time.Duration) {
	if sh.bleat > 0 {
		sh.bleat -= dt
	}
	sh.update(s, dt)
}

func (sh *Sheep) Render(s *engine.Session, surf render.Surface) {
	surf.FillBackground("#7cb342")
	surf.FillRect(0, 0, W, 80, "#87ceeb")
	surf.FillRect(10, 80, W-20, 4, "#8d6e63")

	for _, f := range sh.flowers {
		surf.DrawGlyph(f.glyph, f.x, f.y, 16)
	}
	for i := range sh.herd.Members {
		m := &sh.herd.Members[i]
		surf.DrawGlyph(m.Glyph, m.X, m.Y, 30)
		if m.Bleating() {
			surf.DrawText("Baa~", m.X, m.Y-22, render.TextStyle{Color: "#333333", Align: render.AlignCenter})
		}
	}

	surf.DrawGlyph("🐑", sh.player.X, sh.player.Y, 38)
	if sh.player.Kicking() {
		surf.DrawGlyph("💥", sh.player.X+22, sh.player.Y, 22)
	}
	if sh.Bleating() {
		surf.DrawText("Baaa~!", sh.player.X, sh.player.Y-30, render.TextStyle{Color: "#333333", Bold: true, Align: render.AlignCenter})
	}

	sh.renderHUD(s, surf, sh.player.Y-55)
	drawButtons(surf, sheepButtons)
}

func (sh *Sheep) doKick(s *engine.Session) { sh.kick(s, 20, 0, 15, 5) }

func (sh *Sheep) doBleat(s *engine.Session) {
	sh.bleat = constants.BleatDuration
	s.Audio.MehBleat()
	sh.herd.BleatNear(sh.player.X, sh.player.Y, constants.BleatRadius)
}

// OnPointerDown presses a button or walks toward the clamped point
func (sh *Sheep) OnPointerDown(s *engine.Session, x, y float64) {
	if sh.left {
		return
	}
	if id, ok := hitButton(sheepButtons, x, y); ok {
		switch id {
		case "kick":
			sh.doKick(s)
		case "bleat":
			sh.doBleat(s)
		case "back":
			sh.leave(s, engine.SceneTransform, engine.Params{Form: content.FormHuman})
		}
		return
	}
	sh.player.SetTarget(x, y)
}

func (sh *Sheep) OnPointerUp(s *engine.Session) {}

// OnKeyDown kicks on a confirm key and bleats on m
func (sh *Sheep) OnKeyDown(s *engine.Session, key string) {
	if sh.left {
		return
	}
	switch {
	case input.IsConfirm(key):
		sh.doKick(s)
	case key == "m":
		sh.doBleat(s)
	}
}

func (sh *Sheep) OnKeyUp(s *engine.Session, key string) {}
