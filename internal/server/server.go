// Package server exposes the command catalogue over HTTP for the desktop
// shell. One route carries every command: POST /commands/:name with the
// command's argument record as the JSON body.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/srecha/invoice-core/internal/artefact"
	"github.com/srecha/invoice-core/internal/commands"
	"github.com/srecha/invoice-core/internal/logger"
)

type Server struct {
	dispatcher *commands.Dispatcher
}

func New(d *commands.Dispatcher) *Server {
	return &Server{dispatcher: d}
}

// Router builds the Echo instance with all routes and middleware attached.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(logger.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/commands/:name", s.handleCommand)

	return e
}

func (s *Server) handleCommand(c echo.Context) error {
	name := c.Param("name")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "read body: " + err.Error()})
	}
	args := json.RawMessage(body)
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	res, err := s.dispatcher.Dispatch(c.Request().Context(), name, args)
	if err != nil {
		return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// statusFor maps command errors onto HTTP statuses. The desktop adapter only
// looks at the error string, so the mapping is a courtesy for other clients.
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrUnknownCommand),
		errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, artefact.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, commands.ErrMissingID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
