package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nickjlamb/HushMap-sub001/internal/resolver"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// ResolveLabelInput defines the query parameters for label resolution.
// Latitude and longitude are pointers so presence checks don't reject the
// legitimate zero values on the equator and prime meridian.
type ResolveLabelInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	AreaOnly  bool    `form:"area_only"`                    // Force area-tier resolution
	Locale    string  `form:"locale"`                       // Optional cache partition override
	Accuracy  float64 `form:"accuracy"`                     // Horizontal accuracy in meters
	Session   string  `form:"session"`                      // Optional provider session token
}

// handleResolveLabel godoc
// @Summary Resolve a display label for a coordinate
// @Description Resolve a privacy-safe display label (POI, street, or area tier) for a latitude/longitude
// @Tags labels
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(51.51521)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-0.17324)
// @Param area_only query boolean false "Force area-tier resolution"
// @Param locale query string false "Cache partition override"
// @Param accuracy query number false "Horizontal accuracy in meters"
// @Success 200 {object} resolver.Result
// @Failure 400 {object} map[string]string
// @Router /v1/location/label [get]
func (app *App) handleResolveLabel(c *gin.Context) {
	var input ResolveLabelInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coords := types.NewCoords(*input.Latitude, *input.Longitude)
	if !coords.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	// Resolution never fails; degraded paths return an area-tier label.
	result := app.resolver.Resolve(c.Request.Context(), coords, resolver.Options{
		AreaOnly:       input.AreaOnly,
		Locale:         input.Locale,
		AccuracyMeters: input.Accuracy,
		SessionToken:   input.Session,
	})

	c.JSON(http.StatusOK, result)
}
