// Package http exposes the fulfillment engine over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/labstack/echo/v4"
	echoswagger "github.com/swaggo/echo-swagger"
)

// Server wires the REST endpoints to the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateFulfillmentHandler commands.UpdateFulfillmentCommandHandler
	attachEvidenceHandler    commands.AttachEvidenceCommandHandler
	removeEvidenceHandler    commands.RemoveEvidenceCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	statusCatalogHandler     queries.GetStatusCatalogQueryHandler

	// evidence images are streamed straight from storage
	evidenceStorage ports.EvidenceStorage
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateFulfillmentHandler commands.UpdateFulfillmentCommandHandler,
	attachEvidenceHandler commands.AttachEvidenceCommandHandler,
	removeEvidenceHandler commands.RemoveEvidenceCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	statusCatalogHandler queries.GetStatusCatalogQueryHandler,
	evidenceStorage ports.EvidenceStorage,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateFulfillmentHandler: updateFulfillmentHandler,
		attachEvidenceHandler:    attachEvidenceHandler,
		removeEvidenceHandler:    removeEvidenceHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		statusCatalogHandler:     statusCatalogHandler,
		evidenceStorage:          evidenceStorage,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance. API routes go
// through the OpenAPI request validation middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) error {
	validator, err := NewRequestValidator()
	if err != nil {
		return err
	}

	api := e.Group("/api/v1", validator.Middleware())
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/fulfillment", s.UpdateFulfillment)
	api.POST("/orders/:id/evidence/:slot", s.AttachEvidence)
	api.GET("/orders/:id/evidence/:slot", s.GetEvidence)
	api.DELETE("/orders/:id/evidence/:slot", s.RemoveEvidence)
	api.GET("/statuses", s.GetStatusCatalog)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return nil
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, request.CustomerName, request.ShippingArea, request.OrderType)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// GetOrdersByStatus handles GET /api/v1/orders?status=... - lists orders in
// one canonical status. Legacy status spellings are accepted.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	query := queries.NewGetOrdersByStatusQuery(ctx.QueryParam("status"))

	views, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	response := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toOrderResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateFulfillment handles PATCH /api/v1/orders/:id/fulfillment - applies
// an admin edit atomically. A rejected edit returns every violation at
// once and changes nothing.
func (s *Server) UpdateFulfillment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request UpdateFulfillmentRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateFulfillmentCommand(orderID, request.toPatch())
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	if err = s.updateFulfillmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return s.respondWithOrder(ctx, orderID)
}

// AttachEvidence handles POST /api/v1/orders/:id/evidence/:slot - uploads
// an evidence photo and advances the status to the slot's milestone when
// the transition table allows it.
func (s *Server) AttachEvidence(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Missing image file",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Unreadable image file",
		})
	}
	defer file.Close()

	cmd, err := commands.NewAttachEvidenceCommand(orderID, ctx.Param("slot"), file)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	if err = s.attachEvidenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return s.respondWithOrder(ctx, orderID)
}

// GetEvidence handles GET /api/v1/orders/:id/evidence/:slot - streams the
// stored photo.
func (s *Server) GetEvidence(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	imageRef, ok := view.Evidence[ctx.Param("slot")]
	if !ok {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "No evidence in slot",
		})
	}

	image, err := s.evidenceStorage.Open(ctx.Request().Context(), imageRef)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}
	defer image.Close()

	return ctx.Stream(http.StatusOK, "image/jpeg", image)
}

// RemoveEvidence handles DELETE /api/v1/orders/:id/evidence/:slot.
// Removing a photo never rolls the fulfillment status back.
func (s *Server) RemoveEvidence(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewRemoveEvidenceCommand(orderID, ctx.Param("slot"))
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	if err = s.removeEvidenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStatusCatalog handles GET /api/v1/statuses - returns the status
// catalog, optionally narrowed with ?area=.
func (s *Server) GetStatusCatalog(ctx echo.Context) error {
	var (
		query queries.GetStatusCatalogQuery
		err   error
	)
	if area := ctx.QueryParam("area"); area != "" {
		query, err = queries.NewGetStatusCatalogQueryForArea(area)
		if err != nil {
			return ctx.JSON(newErrorResponse(err))
		}
	} else {
		query = queries.NewGetStatusCatalogQuery()
	}

	entries, err := s.statusCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	response := make([]StatusCatalogResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, StatusCatalogResponse{
			Status: entry.Status,
			Label:  entry.Label,
			Color:  entry.Color,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondWithOrder re-reads the order and returns its fresh state, so
// mutating endpoints answer with the post-change view.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(newErrorResponse(err))
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}
