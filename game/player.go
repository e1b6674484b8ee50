package game

// AmmoCount returns the rounds left for the equipped weapon
func (p *PlayerState) AmmoCount() int {
	return p.Ammo[AmmoFor(p.Weapon)]
}

// ConsumeAmmo spends one round of the equipped weapon's ammo. It reports
// false and leaves the count untouched when the bucket is empty.
func (p *PlayerState) ConsumeAmmo() bool {
	kind := AmmoFor(p.Weapon)
	if p.Ammo[kind] < 1 {
		return false
	}
	p.Ammo[kind]--
	return true
}

// AddAmmo adds rounds to a bucket
func (p *PlayerState) AddAmmo(kind AmmoType, amount int) {
	if amount <= 0 {
		return
	}
	if p.Ammo == nil {
		p.Ammo = make(map[AmmoType]int, len(AllAmmo))
	}
	p.Ammo[kind] += amount
}

// Heal restores health up to MaxHealth
func (p *PlayerState) Heal(amount int) {
	if !p.Alive || amount <= 0 {
		return
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// TakeDamage subtracts health and reports whether this hit killed the
// player. Dead players absorb nothing.
func (p *PlayerState) TakeDamage(amount int) bool {
	if !p.Alive || amount <= 0 {
		return false
	}
	p.Health -= amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	if p.Health <= 0 {
		p.Health = 0
		p.Alive = false
		return true
	}
	return false
}

// CanFire reports whether the weapon cooldown has strictly elapsed at now.
// A player that has never fired is always ready.
func (p *PlayerState) CanFire(now int64) bool {
	if p.LastShotAt == 0 {
		return true
	}
	return now-p.LastShotAt > StatsFor(p.Weapon).FireRate
}
