package sim

// TerrainType is a value from the closed set of terrain kinds a Tile may
// carry.
type TerrainType string

const (
	TerrainOcean         TerrainType = "ocean"
	TerrainFrozenOcean   TerrainType = "frozen_ocean"
	TerrainCoastal       TerrainType = "coastal"
	TerrainFrozenCoastal TerrainType = "frozen_coastal"
	TerrainRiver         TerrainType = "river"
	TerrainMountain      TerrainType = "mountain"
	TerrainGrassland     TerrainType = "grassland"
	TerrainPlains        TerrainType = "plains"
	TerrainHills         TerrainType = "hills"
	TerrainForest        TerrainType = "forest"
	TerrainDesert        TerrainType = "desert"
	TerrainTundra        TerrainType = "tundra"
	TerrainSnow          TerrainType = "snow"
)

// TerrainData is the read-only per-terrain record: base yield, movement
// cost per movement class and a height contributing to elevation.
type TerrainData struct {
	BaseYield Yield
	Height    int
	// MovementCost[mode] == 0 or absent means impassable for that mode.
	MovementCost map[MovementClass]int
}

// ImprovementType is a value from the closed set of improvement kinds.
type ImprovementType string

const (
	ImprovementSettlement ImprovementType = "settlement"
	ImprovementEncampment ImprovementType = "encampment"
	ImprovementFarm       ImprovementType = "farm"
	ImprovementForest     ImprovementType = "forest"
	ImprovementWorksite   ImprovementType = "worksite"
	ImprovementCampus     ImprovementType = "campus"
)

// ImprovementData is the read-only per-type record for an Improvement:
// its per-turn yield, storage capacity, elevation contribution and
// whether it is a natural feature (natural improvements contribute zero
// yield of their own per spec.md §3).
type ImprovementData struct {
	Yield     Yield
	StoreCap  Yield
	Height    int
	Natural   bool
	Settleable bool
}

// MovementClass tags what kind of terrain a Unit can cross.
type MovementClass string

const (
	MovementLand  MovementClass = "LAND"
	MovementWater MovementClass = "WATER"
	MovementAir   MovementClass = "AIR"
)

// PromotionClass tags a Unit's combat/role archetype.
type PromotionClass string

const (
	PromotionCivillian PromotionClass = "CIVILLIAN"
	PromotionMelee     PromotionClass = "MELEE"
	PromotionRanged    PromotionClass = "RANGED"
	PromotionRecon     PromotionClass = "RECON"
)

// UnitTypeData is the read-only per-unit-type record.
type UnitTypeData struct {
	Promotion    PromotionClass
	Movement     MovementClass
	HP           int
	MoveRange    int
	VisionRange  int
	AttackRange  int // 0 means no ranged attack capability
}

// Registry is the set of compile-time data tables a World is built
// against: terrain, improvements, unit types and knowledge branches.
// Registries are read-only after construction (spec.md §9).
type Registry struct {
	Terrain      map[TerrainType]TerrainData
	Improvements map[ImprovementType]ImprovementData
	UnitTypes    map[string]UnitTypeData
	KnowledgeMax map[string]int
}

// DefaultRegistry returns a Registry with a minimal, representative set
// of terrain/improvement/unit-type/knowledge entries. Callers building a
// real ruleset construct their own Registry with the same shape.
func DefaultRegistry() *Registry {
	landMoves := map[MovementClass]int{MovementLand: 1, MovementAir: 1}
	waterMoves := map[MovementClass]int{MovementWater: 1, MovementAir: 1}
	hillMoves := map[MovementClass]int{MovementLand: 2, MovementAir: 1}

	return &Registry{
		Terrain: map[TerrainType]TerrainData{
			TerrainOcean:         {BaseYield: NewYield(map[ResourceKey]int{ResourceFood: 1}), Height: 0, MovementCost: waterMoves},
			TerrainFrozenOcean:   {BaseYield: Yield{}, Height: 0, MovementCost: waterMoves},
			TerrainCoastal:       {BaseYield: NewYield(map[ResourceKey]int{ResourceFood: 2}), Height: 1, MovementCost: landMoves},
			TerrainFrozenCoastal: {BaseYield: NewYield(map[ResourceKey]int{ResourceFood: 1}), Height: 1, MovementCost: landMoves},
			TerrainRiver:         {BaseYield: NewYield(map[ResourceKey]int{ResourceFood: 2}), Height: 1, MovementCost: landMoves},
			TerrainMountain:      {BaseYield: Yield{}, Height: 10, MovementCost: map[MovementClass]int{MovementAir: 1}},
			TerrainGrassland:     {BaseYield: NewYield(map[ResourceKey]int{ResourceFood: 2}), Height: 1, MovementCost: landMoves},
			TerrainPlains:        {BaseYield: NewYield(map[ResourceKey]int{ResourceFood: 1, ResourceProduction: 1}), Height: 1, MovementCost: landMoves},
			TerrainHills:         {BaseYield: NewYield(map[ResourceKey]int{ResourceProduction: 2}), Height: 3, MovementCost: hillMoves},
			TerrainForest:        {BaseYield: NewYield(map[ResourceKey]int{ResourceProduction: 1}), Height: 2, MovementCost: landMoves},
			TerrainDesert:        {BaseYield: Yield{}, Height: 1, MovementCost: landMoves},
			TerrainTundra:        {BaseYield: NewYield(map[ResourceKey]int{ResourceFood: 1}), Height: 1, MovementCost: landMoves},
			TerrainSnow:          {BaseYield: Yield{}, Height: 1, MovementCost: landMoves},
		},
		Improvements: map[ImprovementType]ImprovementData{
			ImprovementSettlement: {Yield: NewYield(map[ResourceKey]int{ResourceGold: 1}), StoreCap: NewYield(map[ResourceKey]int{ResourceFood: 20, ResourceProduction: 20, ResourceGold: 50}), Height: 0, Settleable: true},
			ImprovementEncampment: {Yield: Yield{}, StoreCap: NewYield(map[ResourceKey]int{ResourceProduction: 20}), Height: 0},
			ImprovementFarm:       {Yield: NewYield(map[ResourceKey]int{ResourceFood: 2}), StoreCap: NewYield(map[ResourceKey]int{ResourceFood: 10}), Height: 0},
			ImprovementForest:     {Yield: Yield{}, StoreCap: Yield{}, Height: 2, Natural: true},
			ImprovementWorksite:   {Yield: Yield{}, StoreCap: NewYield(map[ResourceKey]int{ResourceProduction: 5, ResourceFood: 5, ResourceScience: 5}), Height: 0},
			ImprovementCampus:     {Yield: NewYield(map[ResourceKey]int{ResourceScience: 2}), StoreCap: NewYield(map[ResourceKey]int{ResourceScience: 10}), Height: 0},
		},
		UnitTypes: map[string]UnitTypeData{
			"scout":   {Promotion: PromotionRecon, Movement: MovementLand, HP: 10, MoveRange: 3, VisionRange: 2},
			"warrior": {Promotion: PromotionMelee, Movement: MovementLand, HP: 20, MoveRange: 2, VisionRange: 2, AttackRange: 1},
			"archer":  {Promotion: PromotionRanged, Movement: MovementLand, HP: 15, MoveRange: 2, VisionRange: 2, AttackRange: 2},
			"settler": {Promotion: PromotionCivillian, Movement: MovementLand, HP: 10, MoveRange: 2, VisionRange: 1},
			"trireme": {Promotion: PromotionMelee, Movement: MovementWater, HP: 15, MoveRange: 3, VisionRange: 2, AttackRange: 1},
		},
		KnowledgeMax: map[string]int{
			"writing":  100,
			"bronze":   100,
			"pottery":  100,
			"sailing":  100,
		},
	}
}
