package scenes

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/render"
	"github.com/lixenwraith/kickdrive/systems"
)

// roam is the simulation shared by the human and sheep scenes
type roam struct {
	form      content.Form
	player    *systems.Walker
	herd      *systems.Herd
	particles *systems.Particles
	left      bool
}

func newRoam(s *engine.Session, form content.Form, player *systems.Walker, herd systems.HerdConfig) roam {
	return roam{
		form:      form,
		player:    player,
		herd:      systems.NewHerd(herd, s.Rand),
		particles: systems.NewParticles(s.Rand, 0),
	}
}

// update runs one tick; economy decay first, then movement, then the scene checks
func (r *roam) update(s *engine.Session, dt time.Duration) {
	if r.left {
		return
	}
	s.Economy.Update(dt)
	r.player.Update(dt)
	r.herd.Update(dt)
	r.particles.Update(dt)

	if s.Economy.QualifiesForAntagonistEvent() && !s.AntagonistTriggered {
		s.AntagonistTriggered = true
		s.AntagonistForm = r.form
		s.Log.WithFields(logrus.Fields{"form": r.form, "money": s.Economy.Money()}).Info("antagonist triggered")
		r.leave(s, engine.SceneAntagonist, engine.Params{})
		return
	}
	if s.Economy.IsNormalClear() && !s.ClearShown {
		s.ClearShown = true
		s.Log.WithField("total_earned", s.Economy.TotalEarned()).Info("clear reached")
		r.leave(s, engine.SceneClear, engine.Params{})
	}
}

func (r *roam) leave(s *engine.Session, scene string, p engine.Params) {
	r.left = true
	s.ChangeScene(scene, p)
}

// kick awards one payout per invocation; repeats during the pose restart it
func (r *roam) kick(s *engine.Session, coinDX, coinDY, bangDX, bangDY float64) int {
	r.player.Kick()
	amount := s.Economy.AddKickMoney(s.Economy.Has(content.ItemBoots))
	s.Audio.KickThud()
	s.Audio.CoinChime()
	r.particles.Spawn(r.player.X+coinDX, r.player.Y+coinDY, "💰", 3)
	r.particles.Spawn(r.player.X+bangDX, r.player.Y+bangDY, "💥", 1)
	return amount
}

func (r *roam) renderHUD(s *engine.Session, surf render.Surface, comboY float64) {
	drawParticles(surf, r.particles)
	if combo := s.Economy.Combo(); combo > 1 {
		render.DrawMessage(surf, comboLabel(combo, s.Economy.ComboMultiplier()), comboY, render.ColorOrange)
	}
	render.DrawMoney(surf, s.Economy.Money(), 10, 10)
}
