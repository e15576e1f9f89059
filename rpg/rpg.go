// Package rpg models a role-playing-game player's health and mana.
//
// Players below level 10 have no mana pool; casting a spell then costs
// health instead and deals no damage.
package rpg

const (
	// MaxHealth is the health a revived player comes back with.
	MaxHealth uint32 = 100
	// MaxMana is the mana a revived player of ManaLevel or above comes back with.
	MaxMana uint32 = 100
	// ManaLevel is the first level that carries a mana pool.
	ManaLevel uint32 = 10
)

// Player holds the mutable stats of a character. A nil Mana means the
// player has no mana pool at all.
type Player struct {
	Health uint32
	Mana   *uint32
	Level  uint32
}

// Revive returns a fresh player at the same level if p is dead, or nil
// if p is still alive.
func (p *Player) Revive() *Player {
	if p.Health != 0 {
		return nil
	}
	revived := &Player{Health: MaxHealth, Level: p.Level}
	if p.Level >= ManaLevel {
		mana := MaxMana
		revived.Mana = &mana
	}

	return revived
}

// CastSpell spends cost mana and returns the damage dealt, twice the cost.
// Without a mana pool it drains up to cost health and deals nothing;
// with too little mana nothing happens.
func (p *Player) CastSpell(cost uint32) uint32 {
	if p.Mana == nil {
		p.Health -= min(cost, p.Health)
		return 0
	}
	if *p.Mana < cost {
		return 0
	}
	*p.Mana -= cost

	return cost * 2
}
