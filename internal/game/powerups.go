package game

// PowerUp is a permanent passive modifier unlocked at level milestones.
type PowerUp int

const (
	PowerSpeedy PowerUp = iota
	PowerEagleEye
	PowerLucky
	PowerBouncy
	PowerProcrastinate
	PowerFortune
	PowerCombo
	PowerSharpshooter

	numPowerUps
)

// Title returns the display name of the power-up.
func (p PowerUp) Title() string {
	switch p {
	case PowerSpeedy:
		return "Speedy"
	case PowerEagleEye:
		return "Eagle Eye"
	case PowerLucky:
		return "Lucky"
	case PowerBouncy:
		return "Bouncy"
	case PowerProcrastinate:
		return "Procrastinate"
	case PowerFortune:
		return "Fortune"
	case PowerCombo:
		return "Combo"
	case PowerSharpshooter:
		return "Sharpshooter"
	default:
		return "?"
	}
}

// Description returns a short effect summary for the selection screen.
func (p PowerUp) Description() string {
	switch p {
	case PowerSpeedy:
		return "Shots fly 25% faster"
	case PowerEagleEye:
		return "Twice the aim line"
	case PowerLucky:
		return "Next colors favor the field"
	case PowerBouncy:
		return "Aim line follows wall bounces"
	case PowerProcrastinate:
		return "Two extra shots per round"
	case PowerFortune:
		return "See three bubbles ahead"
	case PowerCombo:
		return "Big clusters score 50% extra"
	case PowerSharpshooter:
		return "Tighter shots, cleaner landings"
	default:
		return ""
	}
}

// Tier returns 1 for early-game power-ups and 2 for late-game ones.
func (p PowerUp) Tier() int {
	switch p {
	case PowerSpeedy, PowerEagleEye, PowerLucky, PowerBouncy:
		return 1
	default:
		return 2
	}
}

// PowerUpSet tracks which power-ups the player has unlocked this run.
type PowerUpSet struct {
	unlocked [numPowerUps]bool
}

// Has reports whether the power-up is unlocked.
func (s *PowerUpSet) Has(p PowerUp) bool {
	return p >= 0 && p < numPowerUps && s.unlocked[p]
}

// Unlock marks the power-up as unlocked.
func (s *PowerUpSet) Unlock(p PowerUp) {
	if p >= 0 && p < numPowerUps {
		s.unlocked[p] = true
	}
}

// Unlocked returns all unlocked power-ups in declaration order.
func (s *PowerUpSet) Unlocked() []PowerUp {
	var out []PowerUp
	for p := PowerUp(0); p < numPowerUps; p++ {
		if s.unlocked[p] {
			out = append(out, p)
		}
	}
	return out
}

// Offer picks up to count locked power-ups to present at a milestone.
// The tier matching the level is preferred (tier 1 below tier2Level,
// tier 2 from there on). Only when the preferred tier cannot fill the
// offer by itself does the other tier join the pool; the combined pool
// is then shuffled and truncated, so a cross-tier pick can displace a
// remaining preferred one.
func (s *PowerUpSet) Offer(level, tier2Level, count int, rng *RNG) []PowerUp {
	preferred := 1
	if level >= tier2Level {
		preferred = 2
	}

	var pool, backup []PowerUp
	for p := PowerUp(0); p < numPowerUps; p++ {
		if s.unlocked[p] {
			continue
		}
		if p.Tier() == preferred {
			pool = append(pool, p)
		} else {
			backup = append(backup, p)
		}
	}
	if len(pool) < count {
		pool = append(pool, backup...)
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}
