package utils

import (
	"github.com/MichelaFaella/EcoGrow-BackEnd/models"
)

// MinDoseML is the safety floor for any recommended watering volume.
const MinDoseML = 50

var baseDoseBySize = map[string]int{
	models.SizeSmall:  100,
	models.SizeMedium: 150,
	models.SizeLarge:  250,
	models.SizeGiant:  350,
}

// EstimateDoseML recommends a watering volume in millilitres for a plant
// watered every intervalDays days. A nil plant or unknown size falls back to
// the medium base volume. Multipliers truncate to integer; the result never
// drops below MinDoseML.
func EstimateDoseML(plant *models.Plant, intervalDays int) int {
	base := baseDoseBySize[models.SizeMedium]
	waterLevel := 3
	if plant != nil {
		if v, ok := baseDoseBySize[plant.Size]; ok {
			base = v
		}
		if plant.WaterLevel >= 1 && plant.WaterLevel <= 5 {
			waterLevel = plant.WaterLevel
		}
	}

	dose := float64(base)
	switch {
	case waterLevel <= 2:
		dose *= 0.8
	case waterLevel >= 4:
		dose *= 1.2
	}

	switch {
	case intervalDays >= 7:
		dose *= 1.1
	case intervalDays <= 2:
		dose *= 0.9
	}

	result := int(dose)
	if result < MinDoseML {
		return MinDoseML
	}
	return result
}
