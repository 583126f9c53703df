package fcode

// ObjectKind identifies what kind of object a Filter describes.
type ObjectKind int

const (
	KindNone ObjectKind = iota
	KindShip
	KindPlanet
	KindBase
)

// Filter describes the context a friendly code is being checked against:
// the kind of object, its owner, and whether it is allied or carries
// weapons (for AlliedCode/CapitalShipCode checks).
type Filter struct {
	Kind       ObjectKind
	Owner      int
	Allied     bool
	HasWeapons bool
}

// FilterFromShip builds a Filter for a ship context.
func FilterFromShip(owner int, hasWeapons, allied bool) Filter {
	return Filter{Kind: KindShip, Owner: owner, HasWeapons: hasWeapons, Allied: allied}
}

// FilterFromPlanet builds a Filter for a planet context.
func FilterFromPlanet(owner int, allied bool) Filter {
	return Filter{Kind: KindPlanet, Owner: owner, Allied: allied}
}

// FilterFromBase builds a Filter for a starbase context.
func FilterFromBase(owner int, allied bool) Filter {
	return Filter{Kind: KindBase, Owner: owner, Allied: allied}
}

// RegistrationKey stands in for the player's registration status.
type RegistrationKey struct {
	Registered bool
}

// DefaultPolicy controls what isAcceptedFriendlyCode returns for a code
// that isn't in the master list at all.
type DefaultPolicy int

const (
	DefaultAvailable DefaultPolicy = iota
	DefaultUnavailable
	DefaultRegistered
)

func (p DefaultPolicy) resolve(key RegistrationKey) bool {
	switch p {
	case DefaultAvailable:
		return true
	case DefaultRegistered:
		return key.Registered
	default:
		return false
	}
}

// IsAcceptedFriendlyCode is the authoritative "can the player set this code
// on this object" predicate. An unknown code falls back to defaultPolicy.
// Prefix codes (system-generated, from LoadExtraCodes) are never accepted.
func (l *List) IsAcceptedFriendlyCode(code string, filter Filter, key RegistrationKey, defaultPolicy DefaultPolicy) bool {
	entry := l.FindCodeByName(code)
	if entry == nil {
		return defaultPolicy.resolve(key)
	}
	if entry.Flags&PrefixCode != 0 {
		return false
	}

	hasType := entry.Flags&(ShipCode|PlanetCode|BaseCode) != 0
	if hasType {
		switch filter.Kind {
		case KindShip:
			if entry.Flags&ShipCode == 0 {
				return false
			}
		case KindPlanet:
			if entry.Flags&PlanetCode == 0 {
				return false
			}
		case KindBase:
			if entry.Flags&BaseCode == 0 {
				return false
			}
		default:
			return false
		}
	}

	if entry.Flags&RegisteredCode != 0 && !key.Registered {
		return false
	}
	if entry.Flags&AlliedCode != 0 && !filter.Allied {
		return false
	}
	if entry.Flags&CapitalShipCode != 0 && !filter.HasWeapons {
		return false
	}
	if !entry.Mask.Allows(filter.Owner) {
		return false
	}
	return true
}

// NewSubList builds a sub-list containing every entry of parent accepted by
// filter under key (policy DefaultUnavailable, since a sub-list is meant to
// enumerate exactly the codes the context allows).
func NewSubList(parent *List, filter Filter, key RegistrationKey) *List {
	sub := NewList()
	for _, c := range parent.codes {
		if parent.IsAcceptedFriendlyCode(c.Code, filter, key, DefaultUnavailable) {
			sub.Add(c)
		}
	}
	return sub
}

// Pack flattens the list into display-ready Info records, resolving
// description templates against players. System-generated prefix entries
// (from LoadExtraCodes) are omitted.
func (l *List) Pack(players map[int]string) []Info {
	infos := make([]Info, 0, len(l.codes))
	for _, c := range l.codes {
		if c.Flags&PrefixCode != 0 {
			continue
		}
		infos = append(infos, Info{
			Code:        c.Code,
			Flags:       c.Flags.String(),
			RaceMask:    c.Mask,
			Description: c.Description(players),
		})
	}
	return infos
}
