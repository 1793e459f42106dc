package controllers

import (
	"net/http"

	"bistro/app/services"
	"bistro/pkg/response"
)

type StatsController struct {
	service *services.StatsService
}

func NewStatsController(service *services.StatsService) *StatsController {
	return &StatsController{service: service}
}

// AdminStats returns the dashboard snapshot: user, menu, and order counts
// plus total revenue. Admin only.
func (c *StatsController) AdminStats(w http.ResponseWriter, r *http.Request) {
	snap, err := c.service.Snapshot(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, snap)
}
