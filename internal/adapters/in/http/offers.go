package http

import (
	"net/http"

	"dealership/internal/core/application/usecases/commands"
	"dealership/internal/core/application/usecases/queries"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/offer"
	"dealership/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type createOfferRequest struct {
	Brand      string   `json:"brand" validate:"required,max=100"`
	Model      string   `json:"model" validate:"required,max=100"`
	Year       int      `json:"year" validate:"required"`
	Km         int      `json:"km" validate:"min=0"`
	Price      string   `json:"price" validate:"required,numeric"`
	Location   string   `json:"location" validate:"max=255"`
	OwnerName  string   `json:"ownerName" validate:"max=255"`
	OwnerPhone string   `json:"ownerPhone" validate:"max=50"`
	Images     []string `json:"images" validate:"dive,required"`
}

type updateOfferRequest struct {
	Brand      *string   `json:"brand" validate:"omitempty,max=100"`
	Model      *string   `json:"model" validate:"omitempty,max=100"`
	Year       *int      `json:"year"`
	Km         *int      `json:"km" validate:"omitempty,min=0"`
	Price      *string   `json:"price" validate:"omitempty,numeric"`
	Location   *string   `json:"location" validate:"omitempty,max=255"`
	OwnerName  *string   `json:"ownerName" validate:"omitempty,max=255"`
	OwnerPhone *string   `json:"ownerPhone" validate:"omitempty,max=50"`
	Images     *[]string `json:"images" validate:"omitempty,dive,required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) CreateOffer(c echo.Context) error {
	var req createOfferRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	price, err := parseMoney("price", req.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOfferCommand(kernel.NewUUID(), offer.Listing{
		Brand:      req.Brand,
		Model:      req.Model,
		Year:       req.Year,
		Km:         req.Km,
		Price:      price,
		Location:   req.Location,
		OwnerName:  req.OwnerName,
		OwnerPhone: req.OwnerPhone,
		Images:     req.Images,
	})
	if err != nil {
		return err
	}

	created, err := s.h.CreateOffer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newOfferResponse(queries.OfferViewOf(created)))
}

// ListOffers handles GET /api/v1/offers?status=.
func (s *Server) ListOffers(c echo.Context, params servers.ListOffersParams) error {
	query, err := queries.NewListOffersQuery(offer.Status(valueOf(params.Status)))
	if err != nil {
		return err
	}

	views, err := s.h.ListOffers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, newOfferResponse))
}

func (s *Server) GetOffer(c echo.Context, id servers.Id) error {
	query, err := queries.NewGetOfferQuery(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	view, err := s.h.GetOffer.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOfferResponse(view))
}

func (s *Server) UpdateOffer(c echo.Context, id servers.Id) error {
	var req updateOfferRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	price, err := parseOptionalMoney("price", req.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOfferCommand(kernel.UUIDFromGoogle(id), commands.ListingPatch{
		Brand:      req.Brand,
		Model:      req.Model,
		Year:       req.Year,
		Km:         req.Km,
		Price:      price,
		Location:   req.Location,
		OwnerName:  req.OwnerName,
		OwnerPhone: req.OwnerPhone,
		Images:     req.Images,
	})
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateOffer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOfferResponse(queries.OfferViewOf(updated)))
}

// ChangeOfferStatus handles PUT /api/v1/offers/:id/status, the manual override
// for offers no order is holding.
func (s *Server) ChangeOfferStatus(c echo.Context, id servers.Id) error {
	var req statusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	status, err := offer.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOfferStatusCommand(kernel.UUIDFromGoogle(id), status)
	if err != nil {
		return err
	}

	updated, err := s.h.ChangeOfferStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOfferResponse(queries.OfferViewOf(updated)))
}

func (s *Server) DeleteOffer(c echo.Context, id servers.Id) error {
	cmd, err := commands.NewDeleteOfferCommand(kernel.UUIDFromGoogle(id))
	if err != nil {
		return err
	}

	if err = s.h.DeleteOffer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
