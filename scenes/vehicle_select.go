package scenes

import (
	"fmt"
	"time"

	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
)

// VehicleSelect lists the starter vehicles and every owned upgrade
type VehicleSelect struct{}

// Options returns the selectable vehicles in display order
func (v *VehicleSelect) Options(s *engine.Session) []content.VehicleID {
	opts := append([]content.VehicleID(nil), content.StarterVehicles...)
	for _, id := range content.UnlockableVehicles {
		if item, ok := content.VehicleItem(id); ok && s.Economy.Has(item) {
			opts = append(opts, id)
		}
	}
	return opts
}

func (v *VehicleSelect) layout(s *engine.Session) []button {
	opts := v.Options(s)
	bs := make([]button, 0, len(opts))
	y := 340.0
	for i, id := range opts {
		veh := content.MustVehicle(id)
		switch i {
		case 0:
			bs = append(bs, newButton(string(id), fmt.Sprintf("1 %s %s (normal speed, large)", veh.Glyph, veh.Name), 30, 120, W-60, 80, "#1565c0"))
		case 1:
			bs = append(bs, newButton(string(id), fmt.Sprintf("2 %s %s (fast, small)", veh.Glyph, veh.Name), 30, 220, W-60, 80, "#e65100"))
		default:
			bs = append(bs, newButton(string(id), fmt.Sprintf("%d %s %s (speed %g)", i+1, veh.Glyph, veh.Name, veh.Speed), 30, y, W-60, 65, "#4a148c"))
			y += 80
		}
	}
	return bs
}

func (v *VehicleSelect) choose(s *engine.Session, id content.VehicleID) {
	s.Audio.SelectBlip()
	s.SelectedVehicle = id
	s.ChangeScene(engine.SceneRace, engine.Params{Vehicle: id})
}

func (v *VehicleSelect) Enter(s *engine.Session, p engine.Params) {}

func (v *VehicleSelect) Update(s *engine.Session, dt time.Duration) {}

func (v *VehicleSelect) Render(s *engine.Session, surf render.Surface) {
	surf.FillBackground("#37474f")
	render.DrawMessage(surf, "🏁 Pick your ride!", 60, render.ColorGold)
	drawButtons(surf, v.layout(s))
	render.DrawMoney(surf, s.Economy.Money(), 10, H-40)
}

func (v *VehicleSelect) OnPointerDown(s *engine.Session, x, y float64) {
	if id, ok := hitButton(v.layout(s), x, y); ok {
		v.choose(s, content.VehicleID(id))
	}
}

func (v *VehicleSelect) OnPointerUp(s *engine.Session) {}

// OnKeyDown picks a vehicle by its listed number
func (v *VehicleSelect) OnKeyDown(s *engine.Session, key string) {
	n, ok := input.IsDigit(key)
	opts := v.Options(s)
	if !ok || n < 1 || n > len(opts) {
		return
	}
	v.choose(s, opts[n-1])
}

func (v *VehicleSelect) OnKeyUp(s *engine.Session, key string) {}
