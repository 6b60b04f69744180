package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/core"
)

// fixedBase makes every kick draw the same base amount
func fixedBase(base int) *core.SequenceRandom {
	return &core.SequenceRandom{Ints: []int{base - DefaultRules().KickMin}}
}

func withMoney(money int) *Economy {
	rules := DefaultRules()
	rules.StartingMoney = money
	return New(rules, fixedBase(20))
}

func TestKickComboIncreasesPayout(t *testing.T) {
	e := New(DefaultRules(), fixedBase(20))

	amounts := []int{}
	for i := 0; i < 4; i++ {
		amounts = append(amounts, e.AddKickMoney(false))
		e.Update(100 * time.Millisecond)
	}

	assert.Equal(t, []int{20, 26, 32, 38}, amounts)
	assert.Equal(t, 4, e.Combo())
	for i := 1; i < len(amounts); i++ {
		assert.GreaterOrEqual(t, amounts[i], amounts[i-1])
	}
	assert.Equal(t, 116, e.Money())
	assert.Equal(t, 116, e.TotalEarned())
}

func TestComboExpires(t *testing.T) {
	e := New(DefaultRules(), fixedBase(20))

	e.AddKickMoney(false)
	e.AddKickMoney(false)
	require.Equal(t, 2, e.Combo())

	e.Update(500 * time.Millisecond)
	assert.Equal(t, 2, e.Combo())
	e.Update(300 * time.Millisecond)
	assert.Equal(t, 0, e.Combo())
	assert.Equal(t, time.Duration(0), e.ComboTimer())

	assert.Equal(t, 20, e.AddKickMoney(false), "expired combo pays base")
}

func TestUpdateWithoutComboIsNoop(t *testing.T) {
	e := New(DefaultRules(), fixedBase(20))
	e.Update(time.Second)
	assert.Equal(t, 0, e.Combo())
	assert.Equal(t, time.Duration(0), e.ComboTimer())
}

func TestBootBonusDoublesBase(t *testing.T) {
	e := New(DefaultRules(), fixedBase(20))
	assert.Equal(t, 40, e.AddKickMoney(true))
	assert.Equal(t, 52, e.AddKickMoney(true))
}

func TestKickBaseStaysInRange(t *testing.T) {
	e := New(DefaultRules(), core.NewRandom(99))
	for i := 0; i < 500; i++ {
		amount := e.AddKickMoney(false)
		e.Update(time.Second)
		assert.GreaterOrEqual(t, amount, 10)
		assert.Less(t, amount, 50)
	}
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name      string
		money     int
		item      content.ItemID
		ok        bool
		wantMoney int
	}{
		{"exact price", 150, content.ItemShoes, true, 0},
		{"insufficient", 149, content.ItemShoes, false, 149},
		{"surplus", 1200, content.ItemRacingCar, true, 200},
		{"unknown item", 5000, content.ItemID("jetpack"), false, 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := withMoney(tt.money)
			assert.Equal(t, tt.ok, e.CanPurchase(tt.item))
			assert.Equal(t, tt.ok, e.Purchase(tt.item))
			assert.Equal(t, tt.wantMoney, e.Money())
			assert.Equal(t, tt.ok, e.Has(tt.item))
		})
	}
}

func TestPurchaseOwnedItemRejected(t *testing.T) {
	e := withMoney(500)
	require.True(t, e.Purchase(content.ItemSheep))
	money := e.Money()

	assert.False(t, e.CanPurchase(content.ItemSheep))
	assert.False(t, e.Purchase(content.ItemSheep))
	assert.Equal(t, money, e.Money())
	assert.Equal(t, []content.ItemID{content.ItemSheep}, e.Owned())
}

func TestOwnedPreservesOrder(t *testing.T) {
	e := withMoney(10000)
	for _, id := range []content.ItemID{content.ItemBoots, content.ItemShoes, content.ItemBigBike} {
		require.True(t, e.Purchase(id))
	}
	owned := e.Owned()
	assert.Equal(t, []content.ItemID{content.ItemBoots, content.ItemShoes, content.ItemBigBike}, owned)

	owned[0] = content.ItemSheep
	assert.True(t, e.Has(content.ItemBoots), "Owned returns a copy")
}

func TestLoseAllMoneyKeepsTotal(t *testing.T) {
	e := New(DefaultRules(), fixedBase(20))
	e.AddKickMoney(false)
	e.AddKickMoney(false)

	assert.Equal(t, 46, e.LoseAllMoney())
	assert.Equal(t, 0, e.Money())
	assert.Equal(t, 46, e.TotalEarned())
	assert.Equal(t, 0, e.LoseAllMoney())
}

func TestAntagonistThreshold(t *testing.T) {
	assert.False(t, withMoney(999).QualifiesForAntagonistEvent())
	assert.True(t, withMoney(1000).QualifiesForAntagonistEvent())

	e := withMoney(990)
	e.AddKickMoney(false)
	assert.Equal(t, 1010, e.Money())
	assert.True(t, e.QualifiesForAntagonistEvent())
}

func TestClearConditions(t *testing.T) {
	rules := DefaultRules()
	rules.ClearMoney = 40
	e := New(rules, fixedBase(20))

	e.AddKickMoney(false)
	assert.False(t, e.IsNormalClear())
	e.Update(time.Second)
	e.AddKickMoney(false)
	assert.True(t, e.IsNormalClear(), "total earned exactly at threshold")
	assert.False(t, e.IsTrueClear())

	e.LoseAllMoney()
	assert.True(t, e.IsNormalClear(), "clear depends on lifetime earnings")
}

func TestTrueClearNeedsFullCatalog(t *testing.T) {
	rules := DefaultRules()
	rules.StartingMoney = 2550
	rules.ClearMoney = 20
	e := New(rules, fixedBase(20))
	e.AddKickMoney(false)

	for i, it := range content.ShopItems {
		assert.False(t, e.IsTrueClear(), "item %d", i)
		require.True(t, e.Purchase(it.ID), it.ID)
	}
	assert.True(t, e.IsTrueClear())
}

func TestRecordAntagonistDefeat(t *testing.T) {
	e := New(DefaultRules(), fixedBase(20))
	e.RecordAntagonistDefeat(false)
	assert.Equal(t, 1, e.AntagonistDefeats())
	assert.False(t, e.SheepDefeat())

	e.RecordAntagonistDefeat(true)
	assert.Equal(t, 2, e.AntagonistDefeats())
	assert.True(t, e.SheepDefeat())
}
