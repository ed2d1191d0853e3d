// Package entity contains the core business objects of the project.
package entity

import "slices"

// Area is a delivery sub-region of Dindigul district. Delivery is only
// available inside the district, so addresses must name one of these.
type Area string

// The twelve towns and areas the business delivers to.
const (
	AreaDindigulTown   Area = "Dindigul Town"
	AreaPalani         Area = "Palani"
	AreaKodaikanal     Area = "Kodaikanal"
	AreaOddanchatram   Area = "Oddanchatram"
	AreaNilakottai     Area = "Nilakottai"
	AreaBatlagundu     Area = "Batlagundu"
	AreaVedasandur     Area = "Vedasandur"
	AreaNatham         Area = "Natham"
	AreaAthoor         Area = "Athoor"
	AreaReddiarchatram Area = "Reddiarchatram"
	AreaVadamadurai    Area = "Vadamadurai"
	AreaSitharevu      Area = "Sitharevu"
)

// DeliveryCity is the fixed city every delivery address resolves to.
const DeliveryCity = "Dindigul"

var allAreas = []Area{
	AreaDindigulTown,
	AreaPalani,
	AreaKodaikanal,
	AreaOddanchatram,
	AreaNilakottai,
	AreaBatlagundu,
	AreaVedasandur,
	AreaNatham,
	AreaAthoor,
	AreaReddiarchatram,
	AreaVadamadurai,
	AreaSitharevu,
}

// String returns the string representation of the Area.
func (a Area) String() string {
	return string(a)
}

// IsValid checks if the Area is one of the delivery sub-regions.
func (a Area) IsValid() bool {
	return slices.Contains(allAreas, a)
}

// Areas returns the delivery sub-regions in display order.
func Areas() []Area {
	return slices.Clone(allAreas)
}
