package http

import (
	"errors"
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/visitor"
	"dealership/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type createVisitorRequest struct {
	Name      string            `json:"name" validate:"required,max=255"`
	Phone     string            `json:"phone" validate:"max=50"`
	CarBrand  string            `json:"carBrand" validate:"max=100"`
	CarModel  string            `json:"carModel" validate:"max=100"`
	Budget    string            `json:"budget" validate:"omitempty,numeric"`
	Interests []interestPayload `json:"interests" validate:"dive"`
}

func (r createVisitorRequest) parse() (visitor.Profile, []visitor.Interest, error) {
	budget, err := parseMoneyOrZero("budget", r.Budget)
	errList := []error{err}

	interests := make([]visitor.Interest, 0, len(r.Interests))
	for _, i := range r.Interests {
		offerID, idErr := parseID("offerId", i.OfferID)
		if idErr != nil {
			errList = append(errList, idErr)
			continue
		}
		interest, interestErr := visitor.NewInterest(offerID, i.Priority)
		if interestErr != nil {
			errList = append(errList, interestErr)
			continue
		}
		interests = append(interests, interest)
	}

	if err = errors.Join(errList...); err != nil {
		return visitor.Profile{}, nil, err
	}

	return visitor.Profile{
		Name:     r.Name,
		Phone:    r.Phone,
		CarBrand: r.CarBrand,
		CarModel: r.CarModel,
		Budget:   budget,
	}, interests, nil
}

func (s *Server) CreateVisitor(c echo.Context) error {
	var req createVisitorRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	profile, interests, err := req.parse()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateVisitorCommand(kernel.NewUUID(), profile, interests)
	if err != nil {
		return err
	}

	created, err := s.h.CreateVisitor.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newVisitorResponse(queries.VisitorViewOf(created)))
}

// ListVisitors handles GET /api/v1/visitors?status=.
func (s *Server) ListVisitors(c echo.Context, params servers.ListVisitorsParams) error {
	query, err := queries.NewListVisitorsQuery(visitor.Status(valueOf(params.Status)))
	if err != nil {
		return err
	}

	views, err := s.h.ListVisitors.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, newVisitorResponse))
}

func (s *Server) GetVisitor(c echo.Context, id servers.Id) error {
	query, err := queries.NewGetVisitorQuery(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	view, err := s.h.GetVisitor.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newVisitorResponse(view))
}

func (s *Server) ChangeVisitorStatus(c echo.Context, id servers.Id) error {
	var req statusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	status, err := visitor.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeVisitorStatusCommand(kernel.UUIDFromGoogle(id), status)
	if err != nil {
		return err
	}

	updated, err := s.h.ChangeVisitorStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newVisitorResponse(queries.VisitorViewOf(updated)))
}

func (s *Server) DeleteVisitor(c echo.Context, id servers.Id) error {
	cmd, err := commands.NewDeleteVisitorCommand(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	if err = s.h.DeleteVisitor.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
