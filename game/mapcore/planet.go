package mapcore

// MineralKind indexes the four mineral types tracked per planet.
type MineralKind int

const (
	Neutronium MineralKind = iota
	Tritanium
	Duranium
	Molybdenum
	numMinerals
)

// Minerals holds a value per MineralKind.
type Minerals [numMinerals]int

// Planet is the in-memory representation of a planet. A Planet with
// HasBase set carries an embedded Base.
type Planet struct {
	Id int

	Owner        Optional[int]
	FriendlyCode Optional[string]
	Position     Point

	MinedMinerals   Optional[Minerals]
	GroundMinerals  Optional[Minerals]
	Density         Optional[Minerals]

	Colonists Optional[int]
	Supplies  Optional[int]
	Money     Optional[int]

	ColonistTax Optional[int]
	NativeTax   Optional[int]
	Happiness   Optional[int]

	NativeRace       Optional[int]
	NativeGovernment Optional[int]
	NativePopulation Optional[int]

	Temperature Optional[int]

	Mines     Optional[int]
	Factories Optional[int]
	Defense   Optional[int]

	HasBase bool
	Base    *Base

	Playability Playability
	Visible     bool
}

// ID implements Entity.
func (p *Planet) ID() int { return p.Id }

// ShipyardOrder is a starbase's current hull-level order against a docked
// ship.
type ShipyardOrder struct {
	ShipID int
	Action ShipyardAction
}

// ShipyardAction enumerates the starbase actions a ShipyardOrder can carry.
type ShipyardAction int

const (
	ShipyardActionNone ShipyardAction = iota
	ShipyardActionFix
	ShipyardActionRecycle
)

// Base is a starbase's extension of a Planet.
type Base struct {
	TechLevels [4]int // hull, engine, beam, torpedo

	Hulls, Engines, Beams, Launchers, Torpedoes map[int]int // type -> stock

	Fighters int

	ShipyardOrder Optional[ShipyardOrder]
	Mission       Optional[int]
	BuildOrder    Optional[BuildOrder]
}

// BuildOrder is a starbase's queued next-turn ship construction.
type BuildOrder struct {
	HullType   int
	EngineType int
	BeamType   int
	NumBeams   int
	LauncherType int
	NumLaunchers int
}
