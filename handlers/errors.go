package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/runlog/stats"
	"github.com/padraicbc/runlog/store"
	"github.com/padraicbc/runlog/validate"
)

type errorJSON struct {
	Error string `json:"error"`
}

type validationJSON struct {
	Errors map[string]string `json:"errors"`
}

// fail maps a core error to its HTTP response. Validation failures are
// written directly; everything else becomes an echo.HTTPError rendered by
// ErrorHandler.
func (h *Handler) fail(c echo.Context, err error) error {
	var (
		ve *validate.ValidationError
		ia *stats.InvalidArgument
		se *store.StorageError
	)
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, validationJSON{Errors: ve.Fields})
	case errors.As(err, &ia):
		return echo.NewHTTPError(http.StatusBadRequest, ia.Error())
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrIncomplete):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &se):
		h.log.Error("storage failure", zap.String("op", se.Op), zap.Error(se.Err))
		return echo.NewHTTPError(http.StatusInternalServerError, se.Error()).SetInternal(err)
	default:
		h.log.Error("unexpected failure", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
}

// ErrorHandler renders every error as {"error": message}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, errorJSON{Error: msg})
}
