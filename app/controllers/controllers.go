// Package controllers translates HTTP requests into service calls and
// service results into the JSON envelope. No business rules live here.
package controllers

import (
	"net/http"

	"bistro/pkg/apperr"
	"bistro/pkg/logger"
	"bistro/pkg/response"
)

// fail maps a service error onto the HTTP contract. Server-side failures
// are logged with the request context; the client only ever sees the
// generic message for 5xx.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Error(w, status, "internal server error")
		return
	}
	response.Error(w, status, err.Error())
}
