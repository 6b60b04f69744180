package content

// TutorialTexts are shown one page at a time before the first race
var TutorialTexts = []string{
	"Let me explain how this game works!",
	"1. Pick a bike or a car and race! 🏁",
	"2. Hit another car and you go back to the start 💥",
	"3. Reach the goal and you turn into a human! 🏃",
	"4. Kick to earn money! 🦶💰",
	"5. Money buys cars and bikes 🛒",
	"6. You can even become a sheep 🐑",
	"7. But watch out for \"that person\"... 👤",
}

// Player-facing messages
const (
	MsgCrash           = "Back to the start! 💥"
	MsgGoal            = "Goal! Time to become human! ✨"
	MsgAntagonistComes = "⚠️ That person is coming!"
	MsgAntagonistSays  = "I'll take that 💰"
	MsgAntagonistGone  = "You drove that person away! 💪"
	MsgAllTaken        = "Everyone was wiped out..."
	MsgChant           = "go go go go"
	MsgRecovery        = "...right, I can just kick again!"
	MsgNormalClear     = "First person to get rich! 🏆"
	MsgTrueClear       = "Legendary Driver & Kicker 🏆✨"
	MsgSecretClear     = "Legendary Sheep 🐑👑"
	MsgAlreadyOwned    = "You already have that!"
	MsgNotEnoughMoney  = "Not enough money..."
)
