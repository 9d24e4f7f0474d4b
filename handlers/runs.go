package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/runlog/models"
	"github.com/padraicbc/runlog/stats"
	"github.com/padraicbc/runlog/validate"
)

type runJSON struct {
	Run *models.Run `json:"run"`
}

type runsJSON struct {
	Runs []models.Run `json:"runs"`
}

func runID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "run id must be a positive integer")
	}
	return id, nil
}

func readBody(c echo.Context) ([]byte, error) {
	defer c.Request().Body.Close()
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return body, nil
}

// ListRuns returns every run.
func (h *Handler) ListRuns(c echo.Context) error {
	runs, err := h.runs.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, runsJSON{Runs: runs})
}

// GetRun returns a single run by id.
func (h *Handler) GetRun(c echo.Context) error {
	id, err := runID(c)
	if err != nil {
		return err
	}
	run, err := h.runs.Get(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, runJSON{Run: run})
}

// CreateRun validates a full run payload and stores it.
func (h *Handler) CreateRun(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	patch, err := validate.ParseAndValidate(body, false)
	if err != nil {
		return h.fail(c, err)
	}

	run, err := h.runs.Create(c.Request().Context(), patch)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("run created", zap.Int64("runid", run.RunID), zap.String("rdate", run.RDate.String()))

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/runs/%d", run.RunID))
	return c.JSON(http.StatusCreated, runJSON{Run: run})
}

// UpdateRun merges a partial payload into an existing run.
func (h *Handler) UpdateRun(c echo.Context) error {
	id, err := runID(c)
	if err != nil {
		return err
	}
	body, err := readBody(c)
	if err != nil {
		return err
	}
	patch, err := validate.ParseAndValidate(body, true)
	if err != nil {
		return h.fail(c, err)
	}

	run, err := h.runs.Update(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info("run updated", zap.Int64("runid", id), zap.Strings("fields", patch.Columns()))

	return c.JSON(http.StatusOK, runJSON{Run: run})
}

// DeleteRun removes a run.
func (h *Handler) DeleteRun(c echo.Context) error {
	id, err := runID(c)
	if err != nil {
		return err
	}
	if err := h.runs.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}
	h.log.Info("run deleted", zap.Int64("runid", id))
	return c.NoContent(http.StatusNoContent)
}

// LatestRun returns the most recent run.
func (h *Handler) LatestRun(c echo.Context) error {
	run, err := h.stats.Latest(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, runJSON{Run: run})
}

// RunsSince returns runs from the last {days} days, newest first.
func (h *Handler) RunsSince(c echo.Context) error {
	days, err := strconv.Atoi(c.Param("days"))
	if err != nil {
		return h.fail(c, &stats.InvalidArgument{Arg: "days", Reason: "must be a positive integer"})
	}
	runs, err := h.stats.ListSince(c.Request().Context(), days)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, runsJSON{Runs: runs})
}
