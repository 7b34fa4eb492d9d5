package http

import (
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type createClientRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Phone string `json:"phone" validate:"required,max=50"`
}

func (s *Server) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateClientCommand(kernel.NewUUID(), req.Name, req.Phone)
	if err != nil {
		return err
	}

	created, err := s.h.CreateClient.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newClientResponse(queries.ClientViewOf(created)))
}

func (s *Server) ListClients(c echo.Context) error {
	views, err := s.h.ListClients.Handle(c.Request().Context(), queries.NewListClientsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, newClientResponse))
}

func (s *Server) GetClient(c echo.Context, id servers.Id) error {
	query, err := queries.NewGetClientQuery(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	view, err := s.h.GetClient.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newClientResponse(view))
}

func (s *Server) DeleteClient(c echo.Context, id servers.Id) error {
	cmd, err := commands.NewDeleteClientCommand(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	if err = s.h.DeleteClient.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
