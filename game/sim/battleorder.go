package sim

// UnknownBattleOrder is returned for planets under a non-PHost
// configuration (planets have no battle order outside PHost).
const UnknownBattleOrder = -1

const numericSentinel = 1000

// shipBattleOrder implements getShipBattleOrder: the numeric value of the
// code, with a PHost or Tim-Host specific adjustment applied only when the
// code carries no numeric meaning (value == 1000).
func shipBattleOrder(config Configuration, code string, hasWeapons, hasEnemy, hasKillMission bool) int {
	value := getFCodeValue(code, config.Host)
	if value != numericSentinel {
		return value
	}
	if config.IsPHost() {
		switch {
		case hasKillMission:
			return 1000
		case hasWeapons:
			return 1002
		default:
			return 1004
		}
	}
	if !hasKillMission {
		value += 10
	}
	if !hasEnemy {
		value += 5
	}
	return value
}

// planetBattleOrder implements getPlanetBattleOrder. Planets only
// participate in battle ordering under PHost.
func planetBattleOrder(config Configuration, code string, hasDefense bool) int {
	if !config.IsPHost() {
		return UnknownBattleOrder
	}
	if code == "ATT" || code == "NUK" {
		return 0
	}
	value := getFCodeValue(code, config.Host)
	if value != numericSentinel {
		return value
	}
	if hasDefense {
		return 1001
	}
	return 1003
}

// ShipBattleOrder computes sh's battle order under config. "Kill"
// aggressiveness counts as both "has enemy" and "has kill mission" since
// the simulator cannot otherwise distinguish the two (the source's
// documented limitation).
func ShipBattleOrder(config Configuration, sh *Ship) int {
	hasKillMission := sh.Aggressiveness == AggressiveKill
	hasEnemy := sh.Aggressiveness == AggressiveKill ||
		(sh.Aggressiveness > AggressivePassive && sh.Aggressiveness < AggressiveNoFuel)
	return shipBattleOrder(config, sh.FriendlyCode, sh.HasWeapons(), hasEnemy, hasKillMission)
}

// PlanetBattleOrder computes pl's battle order under config.
func PlanetBattleOrder(config Configuration, pl *Planet) int {
	return planetBattleOrder(config, pl.FriendlyCode, pl.Defense > 0)
}
