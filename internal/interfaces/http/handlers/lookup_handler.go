package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"localserve.backend/internal/interfaces/http/response"
)

// Tamil Nadu districts served by the platform
var tamilNaduDistricts = []string{
	"Ariyalur", "Chengalpattu", "Chennai", "Coimbatore", "Cuddalore", "Dharmapuri",
	"Dindigul", "Erode", "Kallakurichi", "Kanchipuram", "Karur", "Krishnagiri",
	"Madurai", "Mayiladuthurai", "Nagapattinam", "Namakkal", "Nilgiris", "Perambalur",
	"Pudukkottai", "Ramanathapuram", "Ranipet", "Salem", "Sivaganga", "Tenkasi",
	"Thanjavur", "Theni", "Thoothukudi", "Tiruchirappalli", "Tirunelveli", "Tirupathur",
	"Tiruppur", "Tiruvallur", "Tiruvannamalai", "Tiruvarur", "Vellore", "Viluppuram", "Virudhunagar",
}

var serviceCategories = []string{
	"Earth Movers",
	"Packers and Movers",
	"Lorry Services",
	"Bore Well",
	"Power Tools",
}

// LookupHandler serves the static lookup lists
type LookupHandler struct{}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler() *LookupHandler {
	return &LookupHandler{}
}

// Districts lists the supported districts
// GET /api/v1/districts
func (h *LookupHandler) Districts(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"districts": tamilNaduDistricts})
}

// Categories lists the supported service categories
// GET /api/v1/categories
func (h *LookupHandler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"categories": serviceCategories})
}
