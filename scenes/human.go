package scenes

import (
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
	"github.com/lixenwraith/kickdrive/systems"
)

var (
	humanKick    = newButton("kick", "🦶 Kick!", W/2-70, H-120, 140, 55, "#ff5722")
	humanShop    = newButton("shop", "🛒 Shop", W-100, H-60, 90, 40, "#2196f3")
	humanRace    = newButton("race", "🏁 Race", 10, H-60, 90, 40, "#ff9800")
	humanToSheep = newButton("toSheep", "🐑 Sheep", W/2-55, H-60, 110, 40, "#8bc34a")
)

type building struct {
	x, y, w, h float64
	color      string
	glyph      string
}

var townBuildings = []building{
	{30, 120, 70, 80, "#e67e22", "🏠"},
	{150, 100, 90, 100, "#3498db", "🏢"},
	{290, 130, 80, 70, "#e74c3c", "🏪"},
	{60, 280, 100, 60, "#9b59b6", "🏫"},
	{250, 260, 75, 80, "#1abc9c", "🏥"},
}

// Human is the town scene where the player walks and kicks for money
type Human struct {
	roam
}

// Player exposes the avatar
func (h *Human) Player() *systems.Walker { return h.player }

// Enter respawns the avatar; shoes raise its walking speed
func (h *Human) Enter(s *engine.Session, p engine.Params) {
	speed := constants.HumanSpeed
	if s.Economy.Has(content.ItemShoes) {
		speed = constants.HumanShoesSpeed
	}
	bounds := systems.Bounds{MinX: constants.RoamMinX, MaxX: constants.RoamMaxX, MinY: constants.HumanMinY, MaxY: constants.HumanMaxY}
	player := systems.NewWalker(constants.HumanSpawnX, constants.HumanSpawnY, speed, bounds)
	h.roam = newRoam(s, content.FormHuman, player, systems.HumanCrowd())
}

func (h *Human) buttons(s *engine.Session) []button {
	bs := []button{humanKick, humanShop, humanRace}
	if s.Economy.Has(content.ItemSheep) {
		bs = append(bs, humanToSheep)
	}
	return bs
}

func (h *Human) Update(s *engine.Session, dt time.Duration) { h.update(s, dt) }

func (h *Human) Render(s *engine.Session, surf render.Surface) {
	surf.FillBackground("#8bc34a")
	surf.FillRect(0, 0, W, 200, "#87ceeb")
	surf.FillRect(0, 320, W, 50, "#999999")
	for _, b := range townBuildings {
		surf.FillRect(b.x, b.y, b.w, b.h, b.color)
		surf.DrawGlyph(b.glyph, b.x+b.w/2, b.y+b.h/2, 28)
	}

	for _, m := range h.herd.Members {
		surf.DrawGlyph(m.Glyph, m.X, m.Y, 28)
	}

	glyph := "🚶"
	switch {
	case h.player.Kicking():
		glyph = "🦶"
	case h.player.Running:
		glyph = "🏃"
	}
	surf.DrawGlyph(glyph, h.player.X, h.player.Y, 36)
	if h.player.Kicking() {
		surf.DrawGlyph("💥", h.player.X+25, h.player.Y-5, 22)
	}

	h.renderHUD(s, surf, h.player.Y-50)
	drawButtons(surf, h.buttons(s))
}

func (h *Human) doKick(s *engine.Session) { h.kick(s, 25, -10, 20, 0) }

// OnPointerDown presses a button or walks toward the clamped point
func (h *Human) OnPointerDown(s *engine.Session, x, y float64) {
	if h.left {
		return
	}
	if id, ok := hitButton(h.buttons(s), x, y); ok {
		switch id {
		case "kick":
			h.doKick(s)
		case "shop":
			h.leave(s, engine.SceneShop, engine.Params{})
		case "race":
			h.leave(s, engine.SceneVehicleSelect, engine.Params{})
		case "toSheep":
			h.leave(s, engine.SceneTransform, engine.Params{Form: content.FormSheep})
		}
		return
	}
	h.player.SetTarget(x, y)
}

func (h *Human) OnPointerUp(s *engine.Session) {}

// OnKeyDown kicks on a confirm key; Shift starts running
func (h *Human) OnKeyDown(s *engine.Session, key string) {
	if h.left {
		return
	}
	switch {
	case input.IsConfirm(key):
		h.doKick(s)
	case key == input.KeyShift:
		h.player.Running = true
	}
}

func (h *Human) OnKeyUp(s *engine.Session, key string) {
	if key == input.KeyShift {
		h.player.Running = false
	}
}
