package scenes

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/engine"
	"github.com/lixenwraith/kickdrive/input"
	"github.com/lixenwraith/kickdrive/render"
)

var shopBack = newButton("back", "← Back", W/2-60, H-60, 120, 44, "#607d8b")

// Shop sells the item catalog
type Shop struct {
	message string
	timer   time.Duration
}

// Message returns the visible feedback line, empty once expired
func (sh *Shop) Message() string {
	if sh.timer <= 0 {
		return ""
	}
	return sh.message
}

func (sh *Shop) itemButtons(s *engine.Session) []button {
	bs := make([]button, 0, len(content.ShopItems))
	y := 100.0
	for i, it := range content.ShopItems {
		var label, color string
		switch {
		case s.Economy.Has(it.ID):
			label, color = fmt.Sprintf("%d %s %s ✅", i+1, it.Glyph, it.Name), "#9e9e9e"
		case s.Economy.CanPurchase(it.ID):
			label, color = fmt.Sprintf("%d %s %s  💰%d", i+1, it.Glyph, it.Name, it.Price), "#4caf50"
		default:
			label, color = fmt.Sprintf("%d %s %s  💰%d", i+1, it.Glyph, it.Name, it.Price), "#bdbdbd"
		}
		bs = append(bs, newButton(string(it.ID), label, 20, y, W-40, 52, color))
		y += 75
	}
	return bs
}

func (sh *Shop) show(msg string, d time.Duration) {
	sh.message = msg
	sh.timer = d
}

func (sh *Shop) buy(s *engine.Session, item content.ShopItem) {
	log := s.Log.WithFields(logrus.Fields{"item": item.ID, "price": item.Price, "money": s.Economy.Money()})
	switch {
	case s.Economy.Has(item.ID):
		sh.show(content.MsgAlreadyOwned, constants.ShopMessageDuration)
	case s.Economy.Purchase(item.ID):
		s.Audio.PurchaseChime()
		sh.show(fmt.Sprintf("Bought %s!", item.Name), constants.ShopSuccessDuration)
		log.Info("item purchased")
	default:
		sh.show(content.MsgNotEnoughMoney, constants.ShopMessageDuration)
		log.Debug("purchase declined")
	}
}

func (sh *Shop) back(s *engine.Session) {
	s.Audio.SelectBlip()
	s.ChangeScene(engine.SceneHuman, engine.Params{})
}

// Enter clears any leftover purchase message
func (sh *Shop) Enter(s *engine.Session, p engine.Params) {
	sh.message = ""
	sh.timer = 0
}

func (sh *Shop) Update(s *engine.Session, dt time.Duration) {
	if sh.timer > 0 {
		sh.timer -= dt
	}
}

func (sh *Shop) Render(s *engine.Session, surf render.Surface) {
	surf.FillBackground("#fff8e1")
	render.DrawMessage(surf, "🛒 Shop", 40, "#333333")
	render.DrawMoney(surf, s.Economy.Money(), 10, 65)

	for i, b := range sh.itemButtons(s) {
		r := b.Region
		surf.DrawButton(r.X, r.Y, r.W, r.H, b.Label, b.Style)
		surf.DrawText(content.ShopItems[i].Description, W/2, r.Y+62,
			render.TextStyle{Color: "#666666", Align: render.AlignCenter})
	}

	if msg := sh.Message(); msg != "" {
		render.DrawMessage(surf, msg, H-90, render.ColorOrange)
	}
	drawButtons(surf, []button{shopBack})
}

// OnPointerDown buys the touched item or leaves
func (sh *Shop) OnPointerDown(s *engine.Session, x, y float64) {
	if _, ok := hitButton([]button{shopBack}, x, y); ok {
		sh.back(s)
		return
	}
	id, ok := hitButton(sh.itemButtons(s), x, y)
	if !ok {
		return
	}
	if item, ok := content.LookupItem(content.ItemID(id)); ok {
		sh.buy(s, item)
	}
}

func (sh *Shop) OnPointerUp(s *engine.Session) {}

// OnKeyDown buys by catalog number; Escape leaves
func (sh *Shop) OnKeyDown(s *engine.Session, key string) {
	if key == input.KeyEscape {
		sh.back(s)
		return
	}
	if n, ok := input.IsDigit(key); ok && n >= 1 && n <= len(content.ShopItems) {
		sh.buy(s, content.ShopItems[n-1])
	}
}

func (sh *Shop) OnKeyUp(s *engine.Session, key string) {}
