// Package economy tracks currency, kick combos, owned items and the
// thresholds that trigger the antagonist encounter and the clear screen.
package economy

import (
	"math"
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/core"
)

// Rules holds the tunable economy parameters
type Rules struct {
	KickMin             int
	KickMax             int // exclusive
	ComboTimeout        time.Duration
	ComboBonus          float64
	BootMultiplier      float64
	AntagonistThreshold int
	ClearMoney          int
	// StartingMoney seeds the balance of a fresh session
	StartingMoney int
}

// DefaultRules returns the stock tuning
func DefaultRules() Rules {
	return Rules{
		KickMin:             constants.KickMin,
		KickMax:             constants.KickMax,
		ComboTimeout:        constants.ComboTimeout,
		ComboBonus:          constants.ComboBonus,
		BootMultiplier:      constants.BootMultiplier,
		AntagonistThreshold: constants.AntagonistThreshold,
		ClearMoney:          constants.ClearMoney,
	}
}

// Economy is the session's money and inventory state
type Economy struct {
	rules Rules
	rng   core.Random

	money       int
	totalEarned int
	combo       int
	comboTimer  time.Duration

	inventory []content.ItemID
	owned     map[content.ItemID]bool

	antagonistDefeats int
	sheepDefeat       bool
}

// New creates an empty economy
func New(rules Rules, rng core.Random) *Economy {
	return &Economy{
		rules: rules,
		rng:   rng,
		money: rules.StartingMoney,
		owned: make(map[content.ItemID]bool),
	}
}

// Rules returns the active tuning
func (e *Economy) Rules() Rules { return e.rules }

// Money is the spendable balance
func (e *Economy) Money() int { return e.money }

// TotalEarned only grows; purchases and captures never reduce it
func (e *Economy) TotalEarned() int { return e.totalEarned }

// Combo counts kicks inside the current window
func (e *Economy) Combo() int { return e.combo }

// ComboTimer is what remains of the combo window
func (e *Economy) ComboTimer() time.Duration { return e.comboTimer }

// AntagonistDefeats counts encounters the player won
func (e *Economy) AntagonistDefeats() int { return e.antagonistDefeats }

// SheepDefeat reports a win by kicking as a sheep
func (e *Economy) SheepDefeat() bool { return e.sheepDefeat }

// ComboMultiplier is the payout factor the next kick would receive
func (e *Economy) ComboMultiplier() float64 {
	return 1 + float64(e.combo)*e.rules.ComboBonus
}

// AddKickMoney awards one kick and extends the combo window
func (e *Economy) AddKickMoney(hasBootBonus bool) int {
	base := e.rules.KickMin + e.rng.Intn(e.rules.KickMax-e.rules.KickMin)
	mult := 1.0
	if hasBootBonus {
		mult = e.rules.BootMultiplier
	}
	amount := int(math.Round(float64(base) * mult * e.ComboMultiplier()))

	e.money += amount
	e.totalEarned += amount
	e.combo++
	e.comboTimer = e.rules.ComboTimeout
	return amount
}

// Update counts the combo window down and drops the combo when it expires
func (e *Economy) Update(dt time.Duration) {
	if e.comboTimer <= 0 {
		return
	}
	e.comboTimer -= dt
	if e.comboTimer <= 0 {
		e.comboTimer = 0
		e.combo = 0
	}
}

// Has reports ownership of an item
func (e *Economy) Has(id content.ItemID) bool {
	return e.owned[id]
}

// Owned returns items in purchase order
func (e *Economy) Owned() []content.ItemID {
	out := make([]content.ItemID, len(e.inventory))
	copy(out, e.inventory)
	return out
}

// CanPurchase is false for unknown, owned or unaffordable items
func (e *Economy) CanPurchase(id content.ItemID) bool {
	item, ok := content.LookupItem(id)
	if !ok || e.owned[id] {
		return false
	}
	return e.money >= item.Price
}

// Purchase debits the price and records ownership; false leaves state unchanged
func (e *Economy) Purchase(id content.ItemID) bool {
	if !e.CanPurchase(id) {
		return false
	}
	item, _ := content.LookupItem(id)
	e.money -= item.Price
	e.owned[id] = true
	e.inventory = append(e.inventory, id)
	return true
}

// LoseAllMoney zeroes the balance and returns what was lost
func (e *Economy) LoseAllMoney() int {
	lost := e.money
	e.money = 0
	return lost
}

// RecordAntagonistDefeat counts a win; sheepKick marks the secret ending
func (e *Economy) RecordAntagonistDefeat(sheepKick bool) {
	e.antagonistDefeats++
	if sheepKick {
		e.sheepDefeat = true
	}
}

// QualifiesForAntagonistEvent reports the balance has reached the encounter threshold
func (e *Economy) QualifiesForAntagonistEvent() bool {
	return e.money >= e.rules.AntagonistThreshold
}

// IsNormalClear reports lifetime earnings have reached the clear goal
func (e *Economy) IsNormalClear() bool {
	return e.totalEarned >= e.rules.ClearMoney
}

// IsTrueClear additionally requires the full catalog
func (e *Economy) IsTrueClear() bool {
	if !e.IsNormalClear() {
		return false
	}
	for _, it := range content.ShopItems {
		if !e.owned[it.ID] {
			return false
		}
	}
	return true
}
