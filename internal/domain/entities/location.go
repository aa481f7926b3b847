package entities

// GeocodeInput represents input for forward geocoding
type GeocodeInput struct {
	Address string `json:"address" binding:"required"`
}

// ReverseGeocodeInput represents input for reverse geocoding
type ReverseGeocodeInput struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// GeocodeResult is a mock forward-geocoding response
type GeocodeResult struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Mock      bool    `json:"mock"`
}

// ReverseGeocodeResult is a mock reverse-geocoding response
type ReverseGeocodeResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Mock      bool    `json:"mock"`
}
