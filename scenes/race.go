package scenes

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/render"
	"github.com/lixenwraith/kickdrive/systems"
)

// Race wraps the race simulation with its HUD and feedback
type Race struct {
	sim       *systems.Race
	particles *systems.Particles
	left      bool
}

// Sim exposes the running simulation
func (r *Race) Sim() *systems.Race { return r.sim }

// Enter starts a new race with the chosen vehicle, falling back to the session selection
func (r *Race) Enter(s *engine.Session, p engine.Params) {
	id := p.Vehicle
	if id == "" {
		id = s.SelectedVehicle
	}
	r.sim = systems.NewRace(content.MustVehicle(id), s.Rand)
	r.particles = systems.NewParticles(s.Rand, 0)
	r.left = false
	s.Log.WithField("vehicle", r.sim.Vehicle().ID).Debug("race started")
}

func (r *Race) Update(s *engine.Session, dt time.Duration) {
	if r.left {
		return
	}
	if r.sim.GoalDwellDone() {
		r.left = true
		s.ChangeScene(engine.SceneTransform, engine.Params{Form: content.FormHuman})
		return
	}

	r.sim.Update(dt)
	for _, ev := range r.sim.DrainEvents() {
		s.Log.WithField("phase", r.sim.PhaseName()).Debug("race phase changed")
		switch ev {
		case systems.RaceEventCrashed:
			s.Audio.Crash()
			r.particles.Spawn(r.sim.PlayerX, systems.PlayerY(), "💥", 8)
			r.particles.Spawn(r.sim.PlayerX, systems.PlayerY(), "⭐", 4)
		case systems.RaceEventGoal:
			s.Audio.Fanfare()
		}
	}
	if r.sim.Phase() == systems.RaceRunning {
		s.Audio.EngineHum(r.sim.Vehicle().Speed)
	}
	r.particles.Update(dt)
}

func (r *Race) Render(s *engine.Session, surf render.Surface) {
	sim := r.sim
	surf.SetOffset(sim.ShakeX, sim.ShakeY)

	surf.FillBackground("#4a7c3f")
	left, right := systems.RoadLeft(), systems.RoadRight()
	surf.FillRect(left, 0, right-left, H, "#555555")

	// Dashed lane dividers scroll with the road offset
	for lane := 1; lane < constants.RoadLanes; lane++ {
		x := left + constants.LaneWidth*float64(lane)
		for y := sim.RoadOffset - constants.StripePeriod; y < H; y += constants.StripePeriod {
			surf.FillRect(x-1, y, 2, constants.StripePeriod/2, "#ffffff")
		}
	}

	if sim.Distance > constants.RaceGoal-800 {
		goalY := H*0.2 - (sim.Distance-(constants.RaceGoal-800))*0.3
		if goalY > -30 && goalY < H {
			surf.FillRect(left, goalY, right-left, 12, "#ffffff")
			surf.DrawGlyph("🏁", W/2, goalY-15, 28)
		}
	}

	for _, o := range sim.Obstacles {
		surf.DrawGlyph(o.Kind.Glyph, o.X, o.Y, 38)
	}

	crashed := sim.Phase() == systems.RaceCrashed
	if !crashed || int(math.Floor(sim.PhaseTime().Seconds()*8))%2 == 0 {
		surf.DrawGlyph(sim.Vehicle().Glyph, sim.PlayerX, systems.PlayerY(), 42)
	}
	drawParticles(surf, r.particles)

	surf.SetOffset(0, 0)
	surf.DrawProgressBar(20, 15, W-40, 14, sim.Progress(), render.ColorGold)
	surf.DrawText(fmt.Sprintf("🏁 %d%%", int(sim.Progress()*100)), W/2, 12,
		render.TextStyle{Color: render.ColorText, Bold: true, Align: render.AlignCenter})
	render.DrawMoney(surf, s.Economy.Money(), 10, 38)

	switch sim.Phase() {
	case systems.RaceCrashed:
		render.DrawMessage(surf, content.MsgCrash, H*0.4, render.ColorDanger)
	case systems.RaceGoal:
		render.DrawMessage(surf, content.MsgGoal, H*0.4, render.ColorGold)
	}
}

// OnPointerDown steers toward the touched half of the road
func (r *Race) OnPointerDown(s *engine.Session, x, y float64) {
	if x < W/2 {
		r.sim.SetPointerSide(-1)
	} else {
		r.sim.SetPointerSide(1)
	}
}

func (r *Race) OnPointerUp(s *engine.Session) { r.sim.SetPointerSide(0) }

func (r *Race) OnKeyDown(s *engine.Session, key string) { r.sim.SetKey(key, true) }

func (r *Race) OnKeyUp(s *engine.Session, key string) { r.sim.SetKey(key, false) }
