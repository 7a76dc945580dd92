package entities

// XPPerLevel is the experience span of one level. Level is always derived
// from XP as XP/XPPerLevel + 1 and never set independently.
const XPPerLevel = 100

// Profile is the per-player progression record. XP is monotonically
// non-decreasing and coins never go negative; both are only mutated through
// the progression engine.
type Profile struct {
	ID    string `json:"id"`
	XP    int    `json:"xp"`
	Coins int    `json:"coins"`
	Level int    `json:"level"`
}

// LevelForXP derives the level for a total experience value.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// NewProfile creates a fresh profile at level 1 with no currency.
func NewProfile(id string) *Profile {
	return &Profile{
		ID:    id,
		Level: LevelForXP(0),
	}
}
