package sim

// City is a named settlement owning a set of tile coordinates. It is
// created by Map.SettleCityAt and persists for the life of the game;
// it acquires tiles via Map.SetTileOwner.
type City struct {
	ID         CityID
	Name       string
	CivID      CivID
	Center     Coord
	OwnedTiles map[Coord]bool
}

// NewCity constructs a city with no owned tiles beyond its center.
func NewCity(id CityID, civ CivID, name string, center Coord) *City {
	return &City{
		ID:         id,
		Name:       name,
		CivID:      civ,
		Center:     center,
		OwnedTiles: map[Coord]bool{center: true},
	}
}

// Civilization is a player-owned faction, identified by CivID.
type Civilization struct {
	ID     CivID
	Color  string
	IsAI   bool
	Units  []UnitID
	Cities []CityID
}

// NewCivilization constructs a civ with no units or cities yet.
func NewCivilization(id CivID, color string, isAI bool) *Civilization {
	return &Civilization{ID: id, Color: color, IsAI: isAI}
}

// AddUnit records a unit as belonging to this civ's roster.
func (c *Civilization) AddUnit(id UnitID) {
	c.Units = append(c.Units, id)
}

// RemoveUnit drops a unit from this civ's roster.
func (c *Civilization) RemoveUnit(id UnitID) {
	for i, u := range c.Units {
		if u == id {
			c.Units = append(c.Units[:i], c.Units[i+1:]...)
			return
		}
	}
}

// AddCity records a city as belonging to this civ.
func (c *Civilization) AddCity(id CityID) {
	c.Cities = append(c.Cities, id)
}
