package store

// Station statuses.
const (
	StationStatusOperational  = "operational"
	StationStatusConstruction = "construction"
	StationStatusPlanned      = "planned"
)

// DefaultStations is the catalogue served when the configuration does not
// provide one.
func DefaultStations() []InsertStation {
	return []InsertStation{
		{
			Name:        "Estación Quilicura",
			Location:    "Quilicura",
			Region:      "Metropolitana",
			Status:      StationStatusOperational,
			CapacityKW:  1200,
			Parcels:     100,
			Description: "Parque logístico con carga rápida para flotas de última milla.",
		},
		{
			Name:        "Estación Pudahuel",
			Location:    "Pudahuel",
			Region:      "Metropolitana",
			Status:      StationStatusConstruction,
			CapacityKW:  1800,
			Parcels:     200,
			Description: "Terrenos industriales junto a la Ruta 68.",
		},
		{
			Name:        "Estación Rancagua Norte",
			Location:    "Rancagua",
			Region:      "O'Higgins",
			Status:      StationStatusPlanned,
			CapacityKW:  900,
			Parcels:     300,
			Description: "Proyecto de loteo con subestación propia.",
		},
	}
}
