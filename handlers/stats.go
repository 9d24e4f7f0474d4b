package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/padraicbc/runlog/models"
	"github.com/padraicbc/runlog/stats"
)

type ytdJSON struct {
	YTD struct {
		Distance decimal.Decimal `json:"distance"`
		Units    string          `json:"units"`
	} `json:"ytd"`
}

type rangesJSON struct {
	Ranges map[string]int `json:"distance ranges"`
}

// YearToDate returns this year's total distance, in miles unless ?units= says otherwise.
func (h *Handler) YearToDate(c echo.Context) error {
	units := c.QueryParam("units")
	if units == "" {
		units = models.Miles
	}

	total, err := h.stats.YearToDateDistance(c.Request().Context(), units)
	if err != nil {
		return h.fail(c, err)
	}

	var out ytdJSON
	out.YTD.Distance = total
	out.YTD.Units = units
	return c.JSON(http.StatusOK, out)
}

// YearlyRanges returns the distance-range histogram for {year}.
func (h *Handler) YearlyRanges(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return h.fail(c, &stats.InvalidArgument{Arg: "year", Reason: "must be an integer"})
	}

	hist, err := h.stats.YearlyHistogram(c.Request().Context(), year)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, rangesJSON{Ranges: hist})
}
