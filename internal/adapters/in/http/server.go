// Package http exposes the application use cases over a REST API.
// The server coordinates between HTTP handlers and application use cases;
// all business rules stay behind the command and query handlers.
package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP endpoints for the laundry operations API.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	bindTagHandler         commands.BindTagCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	createBagHandler       commands.CreateBagCommandHandler
	admitOrderHandler      commands.AdmitOrderCommandHandler
	removeOrderHandler     commands.RemoveOrderCommandHandler
	finalizeBagHandler     commands.FinalizeBagCommandHandler
	deleteBagHandler       commands.DeleteBagCommandHandler
	handoverBagHandler     commands.HandoverBagCommandHandler
	receiveBagHandler      commands.ReceiveBagCommandHandler

	// Query handlers
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getFillingBagsHandler       queries.GetFillingBagsQueryHandler
	getBagManifestHandler       queries.GetBagManifestQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	bindTagHandler commands.BindTagCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createBagHandler commands.CreateBagCommandHandler,
	admitOrderHandler commands.AdmitOrderCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	finalizeBagHandler commands.FinalizeBagCommandHandler,
	deleteBagHandler commands.DeleteBagCommandHandler,
	handoverBagHandler commands.HandoverBagCommandHandler,
	receiveBagHandler commands.ReceiveBagCommandHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getFillingBagsHandler queries.GetFillingBagsQueryHandler,
	getBagManifestHandler queries.GetBagManifestQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		bindTagHandler:              bindTagHandler,
		transitionOrderHandler:      transitionOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		createBagHandler:            createBagHandler,
		admitOrderHandler:           admitOrderHandler,
		removeOrderHandler:          removeOrderHandler,
		finalizeBagHandler:          finalizeBagHandler,
		deleteBagHandler:            deleteBagHandler,
		handoverBagHandler:          handoverBagHandler,
		receiveBagHandler:           receiveBagHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		getFillingBagsHandler:       getFillingBagsHandler,
		getBagManifestHandler:       getBagManifestHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:orderID/tag", s.BindTag)
	api.POST("/orders/:orderID/transition", s.TransitionOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/admit", s.AdmitOrder)

	api.POST("/bags", s.CreateBag)
	api.GET("/bags/filling", s.GetFillingBags)
	api.GET("/bags/:bagID/manifest", s.GetBagManifest)
	api.DELETE("/bags/:bagID", s.DeleteBag)
	api.DELETE("/bags/:bagID/orders/:orderID", s.RemoveOrder)
	api.POST("/bags/:bagID/finalize", s.FinalizeBag)
	api.POST("/bags/:bagID/handover", s.HandoverBag)
	api.POST("/bags/:bagID/receive", s.ReceiveBag)
}

// CreateOrder handles POST /api/v1/orders - registers a new order at intake.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItem{
			ServiceType:    item.ServiceType,
			WeightGrams:    item.WeightGrams,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			Express:        item.Express,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.CustomerRef, items, req.PaymentMethod, req.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active - lists uncompleted orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:               o.ID.String(),
			CustomerRef:      o.CustomerRef,
			ServiceType:      o.ServiceType,
			BusinessStatus:   o.BusinessStatus,
			CurrentStage:     o.CurrentStage,
			SortingStatus:    o.SortingStatus,
			Express:          o.Express,
			TotalGrams:       o.TotalGrams,
			EstimatedReadyAt: o.EstimatedReadyAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// BindTag handles POST /api/v1/orders/:orderID/tag - binds an identification
// tag. With "lost" set, issues a fallback code for an order whose tag went
// missing.
func (s *Server) BindTag(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req BindTagRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var cmd commands.BindTagCommand
	if req.Lost {
		cmd, err = commands.NewBindFallbackTagCommand(orderID, req.Actor)
	} else {
		cmd, err = commands.NewBindTagCommand(orderID, req.Code, req.Type, req.Actor)
	}
	if err != nil {
		return badRequest(ctx, "Invalid tag data: "+err.Error())
	}

	if err = s.bindTagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrder handles POST /api/v1/orders/:orderID/transition - advances
// the order to the named workflow stage.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, req.TargetStage, req.Actor, req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - soft-cancels an
// order, removing it from its bag when approval was given.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CancelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Actor, req.Note, req.Approved)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdmitOrder handles POST /api/v1/orders/:orderID/admit - places a sorted
// order into a bag. Without an explicit bag id the picker chooses one.
func (s *Server) AdmitOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AdmitRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var cmd commands.AdmitOrderCommand
	if req.BagID != "" {
		bagID, idErr := kernel.UUIDFromString(req.BagID)
		if idErr != nil {
			return badRequest(ctx, "Invalid bag id")
		}
		cmd, err = commands.NewAdmitOrderCommand(orderID, bagID)
	} else {
		cmd, err = commands.NewAutoAdmitOrderCommand(orderID)
	}
	if err != nil {
		return badRequest(ctx, "Invalid admission data: "+err.Error())
	}

	result, err := s.admitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdmissionResponse{
		Priority:    result.Priority.String(),
		BecameMixed: result.BecameMixed,
	})
}

// CreateBag handles POST /api/v1/bags - opens a new transport bag.
func (s *Server) CreateBag(ctx echo.Context) error {
	var req NewBag
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	bagID := kernel.NewUUID()
	cmd, err := commands.NewCreateBagCommand(bagID, req.Priority, req.Destination, req.CapacityGrams)
	if err != nil {
		return badRequest(ctx, "Invalid bag data: "+err.Error())
	}

	if err = s.createBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: bagID.String()})
}

// GetFillingBags handles GET /api/v1/bags/filling - lists bags still
// accepting admissions.
func (s *Server) GetFillingBags(ctx echo.Context) error {
	query := queries.NewGetFillingBagsQuery()

	bags, err := s.getFillingBagsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve bags")
	}

	response := make([]Bag, len(bags))
	for i, b := range bags {
		response[i] = Bag{
			ID:            b.ID.String(),
			Seq:           b.Seq,
			Name:          b.Name,
			Priority:      b.Priority,
			Destination:   b.Destination,
			MemberCount:   b.MemberCount,
			TotalGrams:    b.TotalGrams,
			CapacityGrams: b.CapacityGrams,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBagManifest handles GET /api/v1/bags/:bagID/manifest - returns the
// serializable manifest of one bag.
func (s *Server) GetBagManifest(ctx echo.Context) error {
	bagID, err := pathUUID(ctx, "bagID")
	if err != nil {
		return badRequest(ctx, "Invalid bag id")
	}

	query, err := queries.NewGetBagManifestQuery(bagID)
	if err != nil {
		return badRequest(ctx, "Invalid bag id")
	}

	manifest, err := s.getBagManifestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, manifest)
}

// RemoveOrder handles DELETE /api/v1/bags/:bagID/orders/:orderID - takes an
// order back out of a filling bag.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	bagID, err := pathUUID(ctx, "bagID")
	if err != nil {
		return badRequest(ctx, "Invalid bag id")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID, bagID)
	if err != nil {
		return badRequest(ctx, "Invalid removal data: "+err.Error())
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeBag handles POST /api/v1/bags/:bagID/finalize - locks the bag and
// issues its manifest code. Over-capacity is reported as a warning, not a
// failure.
func (s *Server) FinalizeBag(ctx echo.Context) error {
	bagID, err := pathUUID(ctx, "bagID")
	if err != nil {
		return badRequest(ctx, "Invalid bag id")
	}

	var req FinalizeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFinalizeBagCommand(bagID, req.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid finalization data: "+err.Error())
	}

	result, err := s.finalizeBagHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, FinalizeResponse{
		ManifestCode: result.ManifestCode,
		OverCapacity: result.OverCapacity,
		OverageGrams: result.Overage.Grams(),
	})
}

// DeleteBag handles DELETE /api/v1/bags/:bagID - destroys an empty filling
// bag.
func (s *Server) DeleteBag(ctx echo.Context) error {
	bagID, err := pathUUID(ctx, "bagID")
	if err != nil {
		return badRequest(ctx, "Invalid bag id")
	}

	cmd, err := commands.NewDeleteBagCommand(bagID)
	if err != nil {
		return badRequest(ctx, "Invalid bag id")
	}

	if err = s.deleteBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HandoverBag handles POST /api/v1/bags/:bagID/handover - records custody
// transfer to a courier after a full member scan.
func (s *Server) HandoverBag(ctx echo.Context) error {
	bagID, err := pathUUID(ctx, "bagID")
	if err != nil {
		return badRequest(ctx, "Invalid bag id")
	}

	var req HandoverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	scanned := make([]kernel.UUID, 0, len(req.ScannedOrderIDs))
	for _, raw := range req.ScannedOrderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid scanned order id")
		}
		scanned = append(scanned, id)
	}

	cmd, err := commands.NewHandoverBagCommand(bagID, req.Courier, scanned)
	if err != nil {
		return badRequest(ctx, "Invalid handover data: "+err.Error())
	}

	if err = s.handoverBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		var scanErr *bag.IncompleteScanError
		if errors.As(err, &scanErr) {
			missing := make([]string, 0, len(scanErr.Missing))
			for _, id := range scanErr.Missing {
				missing = append(missing, id.String())
			}
			return ctx.JSON(http.StatusConflict, IncompleteScanResponse{
				Code:    http.StatusConflict,
				Message: "Scan incomplete",
				Missing: missing,
			})
		}
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveBag handles POST /api/v1/bags/:bagID/receive - confirms arrival of
// an in-transit bag at its destination.
func (s *Server) ReceiveBag(ctx echo.Context) error {
	bagID, err := pathUUID(ctx, "bagID")
	if err != nil {
		return badRequest(ctx, "Invalid bag id")
	}

	var req ReceiveRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReceiveBagCommand(bagID, req.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid receive data: "+err.Error())
	}

	if err = s.receiveBagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// mapDomainError translates core errors into HTTP status codes: not-found to
// 404, input validation to 400, everything else (violated preconditions,
// illegal transitions) to 409.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}
}
