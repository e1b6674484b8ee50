package game

// Weapon identifies an equippable gun
type Weapon string

const (
	AssaultRifle Weapon = "assault_rifle"
	Shotgun      Weapon = "shotgun"
	Sniper       Weapon = "sniper"
	Pistol       Weapon = "pistol"
)

// AmmoType is the ammunition bucket a weapon draws from
type AmmoType string

const (
	AmmoRifle   AmmoType = "rifle"
	AmmoShotgun AmmoType = "shotgun"
	AmmoSniper  AmmoType = "sniper"
	AmmoPistol  AmmoType = "pistol"
)

// AllWeapons lists weapons in a stable order for uniform draws
var AllWeapons = []Weapon{AssaultRifle, Shotgun, Sniper, Pistol}

// AllAmmo lists ammo categories in a stable order for uniform draws
var AllAmmo = []AmmoType{AmmoRifle, AmmoShotgun, AmmoSniper, AmmoPistol}

// WeaponStats holds the tuning for a single weapon. FireRate and ReloadTime
// are in milliseconds.
type WeaponStats struct {
	Damage       int      `json:"damage"`
	Range        float64  `json:"range"`
	FireRate     int64    `json:"fireRate"`
	Ammo         AmmoType `json:"ammoType"`
	MagazineSize int      `json:"magazineSize"`
	ReloadTime   int64    `json:"reloadTime"`
	Color        string   `json:"color"`
}

// Weapons is the canonical weapon table. Every ammo lookup goes through it.
var Weapons = map[Weapon]WeaponStats{
	AssaultRifle: {Damage: 35, Range: 300, FireRate: 150, Ammo: AmmoRifle, MagazineSize: 30, ReloadTime: 2000, Color: "#4CAF50"},
	Shotgun:      {Damage: 80, Range: 120, FireRate: 800, Ammo: AmmoShotgun, MagazineSize: 8, ReloadTime: 3000, Color: "#FF9800"},
	Sniper:       {Damage: 120, Range: 500, FireRate: 1500, Ammo: AmmoSniper, MagazineSize: 5, ReloadTime: 3500, Color: "#9C27B0"},
	Pistol:       {Damage: 25, Range: 200, FireRate: 300, Ammo: AmmoPistol, MagazineSize: 15, ReloadTime: 1500, Color: "#607D8B"},
}

// AmmoFor maps a weapon to its ammo category. Unknown weapons fall back to
// pistol ammo.
func AmmoFor(w Weapon) AmmoType {
	if stats, ok := Weapons[w]; ok {
		return stats.Ammo
	}
	return AmmoPistol
}

// StatsFor returns the weapon's stats, falling back to the pistol
func StatsFor(w Weapon) WeaponStats {
	if stats, ok := Weapons[w]; ok {
		return stats
	}
	return Weapons[Pistol]
}
