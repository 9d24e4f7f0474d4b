package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type route struct {
	method   string
	path     string
	desc     string
	handler  echo.HandlerFunc
	mutating bool
}

func (h *Handler) table() []route {
	return []route{
		{http.MethodGet, "/runs", "list all runs", h.ListRuns, false},
		{http.MethodPost, "/runs", "create a run", h.CreateRun, true},
		{http.MethodGet, "/runs/latest", "the most recent run", h.LatestRun, false},
		{http.MethodGet, "/runs/last/:days", "runs from the last {days} days", h.RunsSince, false},
		{http.MethodGet, "/runs/:id", "a single run", h.GetRun, false},
		{http.MethodPut, "/runs/:id", "update fields of a run", h.UpdateRun, true},
		{http.MethodDelete, "/runs/:id", "delete a run", h.DeleteRun, true},
		{http.MethodGet, "/stats/ytd", "year to date distance (?units=m|km|miles)", h.YearToDate, false},
		{http.MethodGet, "/stats/yearly/ranges/:year", "distance histogram for {year}", h.YearlyRanges, false},
		{http.MethodPost, "/auth/signin", "exchange credentials for a token", h.Signin, false},
		{http.MethodGet, "/help", "this list", h.Help, false},
	}
}

// Register mounts the API on e. Mutating run routes go through guard when
// it is non-nil.
func (h *Handler) Register(e *echo.Echo, guard echo.MiddlewareFunc) {
	h.routes = h.table()
	for _, r := range h.routes {
		var mw []echo.MiddlewareFunc
		if r.mutating && guard != nil {
			mw = append(mw, guard)
		}
		e.Add(r.method, r.path, r.handler, mw...)
	}
}

// Help describes every registered route, keyed by "METHOD path".
func (h *Handler) Help(c echo.Context) error {
	out := make(map[string]string, len(h.routes))
	for _, r := range h.routes {
		out[r.method+" "+r.path] = r.desc
	}
	return c.JSON(http.StatusOK, out)
}
