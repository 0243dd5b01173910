package api

import (
	"net/http"
	"strconv"

	"leafdeals/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type JobsHandler struct {
	zoneCommands   commands.ZoneCommands
	ingestCommands commands.IngestCommands
}

func NewJobsHandler(zoneCommands commands.ZoneCommands, ingestCommands commands.IngestCommands) *JobsHandler {
	return &JobsHandler{
		zoneCommands:   zoneCommands,
		ingestCommands: ingestCommands,
	}
}

// RefreshZones triggers one zone refresh run. batch_size is clamped by the
// use case; 0 means the configured default.
func (h *JobsHandler) RefreshZones(c *gin.Context) {
	batchSize := 0
	if raw := c.Query("batch_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid batch_size",
			})
			return
		}
		batchSize = parsed
	}

	stats, err := h.zoneCommands.RefreshZones(c.Request.Context(), batchSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Ingest triggers one ingestion run over all candidate sources.
func (h *JobsHandler) Ingest(c *gin.Context) {
	stats, err := h.ingestCommands.RunIngestion(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, stats)
}
