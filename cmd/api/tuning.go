package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TuningResponse mirrors the live resolver tuning values
type TuningResponse struct {
	MaxRadiusMeters        float64  `json:"max_radius_meters"`
	SnapWindowMeters       float64  `json:"snap_window_meters"`
	DenseCompetitionMeters float64  `json:"dense_competition_meters"`
	MinConfidenceDirect    float64  `json:"min_confidence_direct"`
	MinConfidenceHedged    float64  `json:"min_confidence_hedged"`
	PreferredCategories    []string `json:"preferred_categories"`
	AreaOnlyOverride       bool     `json:"area_only_override"`
}

// UpdateTuningInput carries a partial tuning update; omitted or non-positive
// numeric fields leave the current value untouched
type UpdateTuningInput struct {
	MaxRadiusMeters        float64  `json:"max_radius_meters"`
	SnapWindowMeters       float64  `json:"snap_window_meters"`
	DenseCompetitionMeters float64  `json:"dense_competition_meters"`
	MinConfidenceDirect    float64  `json:"min_confidence_direct"`
	MinConfidenceHedged    float64  `json:"min_confidence_hedged"`
	PreferredCategories    []string `json:"preferred_categories"`
	AreaOnlyOverride       *bool    `json:"area_only_override"`
}

// handleGetTuning godoc
// @Summary Get resolver tuning
// @Description Read the live resolver tuning values
// @Tags tuning
// @Produce json
// @Success 200 {object} TuningResponse
// @Router /v1/tuning [get]
func (app *App) handleGetTuning(c *gin.Context) {
	t := app.tuning.Snapshot()
	c.JSON(http.StatusOK, TuningResponse{
		MaxRadiusMeters:        t.MaxRadiusMeters,
		SnapWindowMeters:       t.SnapWindowMeters,
		DenseCompetitionMeters: t.DenseCompetitionMeters,
		MinConfidenceDirect:    t.MinConfidenceDirect,
		MinConfidenceHedged:    t.MinConfidenceHedged,
		PreferredCategories:    t.PreferredCategories,
		AreaOnlyOverride:       t.AreaOnlyOverride,
	})
}

// handleUpdateTuning godoc
// @Summary Update resolver tuning
// @Description Apply a partial update to the live resolver tuning, including the area-only kill-switch
// @Tags tuning
// @Accept json
// @Produce json
// @Param tuning body UpdateTuningInput true "Tuning update"
// @Success 200 {object} TuningResponse
// @Failure 400 {object} map[string]string
// @Router /v1/tuning [put]
func (app *App) handleUpdateTuning(c *gin.Context) {
	var input UpdateTuningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app.tuning.SetDistances(input.MaxRadiusMeters, input.SnapWindowMeters, input.DenseCompetitionMeters)
	app.tuning.SetThresholds(input.MinConfidenceDirect, input.MinConfidenceHedged)
	if input.PreferredCategories != nil {
		app.tuning.SetPreferredCategories(input.PreferredCategories)
	}
	if input.AreaOnlyOverride != nil {
		app.tuning.SetAreaOnlyOverride(*input.AreaOnlyOverride)
		app.logger.Info("area-only override changed", "enabled", *input.AreaOnlyOverride)
	}

	app.handleGetTuning(c)
}

// handleGetTelemetry godoc
// @Summary Get resolver telemetry counters
// @Description Read the process-lifetime resolver counters since the last periodic reset
// @Tags telemetry
// @Produce json
// @Success 200 {object} telemetry.Snapshot
// @Router /v1/telemetry [get]
func (app *App) handleGetTelemetry(c *gin.Context) {
	c.JSON(http.StatusOK, app.telemetry.Snapshot())
}
