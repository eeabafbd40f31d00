package utils

import (
	"testing"

	"github.com/MichelaFaella/EcoGrow-BackEnd/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDoseFloor(t *testing.T) {
	sizes := []string{models.SizeSmall, models.SizeMedium, models.SizeLarge, models.SizeGiant, ""}
	for _, size := range sizes {
		for wl := 1; wl <= 5; wl++ {
			for _, interval := range []int{1, 2, 3, 7, 14} {
				dose := EstimateDoseML(&models.Plant{Size: size, WaterLevel: wl}, interval)
				assert.GreaterOrEqual(t, dose, MinDoseML,
					"size=%q water_level=%d interval=%d", size, wl, interval)
			}
		}
	}
}

func TestEstimateDoseNilPlant(t *testing.T) {
	assert.Equal(t, 150, EstimateDoseML(nil, 3))
}

func TestEstimateDoseGiantThirstyPlant(t *testing.T) {
	plant := &models.Plant{Size: models.SizeGiant, WaterLevel: 5, Difficulty: 5}
	// 350 base, *1.2 for high water level, no interval adjustment at 3 days
	assert.Equal(t, 420, EstimateDoseML(plant, 3))
}

func TestEstimateDoseLowWaterLevel(t *testing.T) {
	plant := &models.Plant{Size: models.SizeSmall, WaterLevel: 1}
	// 100 * 0.8, then * 0.9 for the short interval, truncated
	assert.Equal(t, 72, EstimateDoseML(plant, 2))
}

func TestEstimateDoseLongInterval(t *testing.T) {
	plant := &models.Plant{Size: models.SizeMedium, WaterLevel: 3}
	// 150 * 1.1
	assert.Equal(t, 165, EstimateDoseML(plant, 7))
}

func TestEstimateDoseUnknownSizeFallsBackToMedium(t *testing.T) {
	plant := &models.Plant{Size: "bonsai", WaterLevel: 3}
	assert.Equal(t, 150, EstimateDoseML(plant, 3))
}
