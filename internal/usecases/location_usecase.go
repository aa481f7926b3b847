package usecases

import (
	"context"
	"fmt"
	"math/rand"

	"localserve.backend/internal/domain/entities"
)

// Base coordinates for the mock geocoder, central Coimbatore
const (
	baseLatitude  = 11.0168
	baseLongitude = 76.9558
)

// LocationUsecase mocks a geocoding provider. Results are jittered
// around a fixed city center; a real provider slots in behind the same
// methods later.
type LocationUsecase struct{}

// NewLocationUsecase creates a new location usecase
func NewLocationUsecase() *LocationUsecase {
	return &LocationUsecase{}
}

// Geocode resolves an address to mock coordinates
func (u *LocationUsecase) Geocode(_ context.Context, input *entities.GeocodeInput) *entities.GeocodeResult {
	return &entities.GeocodeResult{
		Address:   input.Address,
		Latitude:  jitter(baseLatitude),
		Longitude: jitter(baseLongitude),
		Mock:      true,
	}
}

// ReverseGeocode resolves coordinates to a mock address
func (u *LocationUsecase) ReverseGeocode(_ context.Context, input *entities.ReverseGeocodeInput) *entities.ReverseGeocodeResult {
	return &entities.ReverseGeocodeResult{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   fmt.Sprintf("Mock address near (%.4f, %.4f), Coimbatore, Tamil Nadu", input.Latitude, input.Longitude),
		Mock:      true,
	}
}

// jitter offsets a coordinate by up to ~0.05 degrees either way
func jitter(base float64) float64 {
	return base + (rand.Float64()-0.5)*0.1
}
