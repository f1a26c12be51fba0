package app

import (
	"context"

	"github.com/bhoomikart/backend/internal/constants"
	"github.com/bhoomikart/backend/internal/models"
	"github.com/bhoomikart/backend/internal/repositories"
	"github.com/bhoomikart/backend/internal/utils"
)

// SeedSampleLocations populates the location directory with the sample
// hierarchy so dev environments have working dropdowns before any listing
// exists. Get-or-create keeps it idempotent across restarts.
func SeedSampleLocations(ctx context.Context, locationRepo repositories.LocationRepository) error {
	n := 0
	i := 0
	for state, districts := range constants.SampleVillages {
		for district, subDistricts := range districts {
			for subDistrict, villages := range subDistricts {
				for _, village := range villages {
					pin := constants.SamplePinCodes[i%len(constants.SamplePinCodes)]
					i++

					loc := &models.IndiaLocation{
						State:       state,
						District:    district,
						SubDistrict: subDistrict,
						Village:     village,
						PinCode:     pin,
						CensusCode:  models.DeriveCensusCode(state, district, subDistrict, village),
					}
					_, created, err := locationRepo.GetOrCreate(ctx, loc)
					if err != nil {
						return err
					}
					if created {
						n++
					}
				}
			}
		}
	}

	utils.Logger.Infof("Seeded %d sample locations", n)
	return nil
}
