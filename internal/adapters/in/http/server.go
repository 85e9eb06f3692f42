package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	setPriceHandler       commands.SetPriceCommandHandler
	markProcessingHandler commands.MarkProcessingCommandHandler
	requestPaymentHandler commands.RequestPaymentCommandHandler
	payOrderHandler       commands.PayOrderCommandHandler
	uploadInvoiceHandler  commands.UploadInvoiceCommandHandler
	closeOrderHandler     commands.CloseOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	setTrackingHandler    commands.SetTrackingCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getNextOrderIDHandler queries.GetNextOrderIDQueryHandler
	getBalanceHandler     queries.GetBalanceQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	setPriceHandler commands.SetPriceCommandHandler,
	markProcessingHandler commands.MarkProcessingCommandHandler,
	requestPaymentHandler commands.RequestPaymentCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	uploadInvoiceHandler commands.UploadInvoiceCommandHandler,
	closeOrderHandler commands.CloseOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	setTrackingHandler commands.SetTrackingCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getNextOrderIDHandler queries.GetNextOrderIDQueryHandler,
	getBalanceHandler queries.GetBalanceQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		setPriceHandler:       setPriceHandler,
		markProcessingHandler: markProcessingHandler,
		requestPaymentHandler: requestPaymentHandler,
		payOrderHandler:       payOrderHandler,
		uploadInvoiceHandler:  uploadInvoiceHandler,
		closeOrderHandler:     closeOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		setTrackingHandler:    setTrackingHandler,
		getOrderHandler:       getOrderHandler,
		getNextOrderIDHandler: getNextOrderIDHandler,
		getBalanceHandler:     getBalanceHandler,
	}
}

// commandError maps a use case failure to the HTTP status that carries
// its kind: 403 for wrong role, 409 for wrong lifecycle status, 422 for
// wrong payment amount, 404 for missing aggregates.
func commandError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrBadStatus):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrIncorrectAmount):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message + ": " + err.Error(),
	})
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	caller, err := kernel.NewAddress(params.XCallerAddress)
	if err != nil {
		return badRequest(ctx, "Invalid caller address", err)
	}

	cmd, err := commands.NewCreateOrderCommand(caller)
	if err != nil {
		return badRequest(ctx, "Invalid order data", err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderId{Id: orderID})
}

// SetPrice handles POST /api/v1/orders/{orderId}/price - prices an order.
func (s *Server) SetPrice(ctx echo.Context, orderID int64, params servers.SetPriceParams) error {
	var body servers.SetPriceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	caller, err := kernel.NewAddress(params.XCallerAddress)
	if err != nil {
		return badRequest(ctx, "Invalid caller address", err)
	}

	fulfillmentFee, err := kernel.NewMoney(body.FulfillmentFee)
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment fee", err)
	}

	shipmentFee, err := kernel.NewMoney(body.ShipmentFee)
	if err != nil {
		return badRequest(ctx, "Invalid shipment fee", err)
	}

	cmd, err := commands.NewSetPriceCommand(caller, orderID, fulfillmentFee, shipmentFee)
	if err != nil {
		return badRequest(ctx, "Invalid price data", err)
	}

	if handleErr := s.setPriceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkProcessing handles POST /api/v1/orders/{orderId}/processing - starts processing.
func (s *Server) MarkProcessing(ctx echo.Context, orderID int64, params servers.MarkProcessingParams) error {
	caller, err := kernel.NewAddress(params.XCallerAddress)
	if err != nil {
		return badRequest(ctx, "Invalid caller address", err)
	}

	cmd, err := commands.NewMarkProcessingCommand(caller, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data", err)
	}

	if handleErr := s.markProcessingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestPayment handles POST /api/v1/orders/{orderId}/payment-request - requests payment.
func (s *Server) RequestPayment(ctx echo.Context, orderID int64, params servers.RequestPaymentParams) error {
	caller, err := kernel.NewAddress(params.XCallerAddress)
	if err != nil {
		return badRequest(ctx, "Invalid caller address", err)
	}

	cmd, err := commands.NewRequestPaymentCommand(caller, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data", err)
	}

	if handleErr := s.requestPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles POST /api/v1/orders/{orderId}/payment - pays the order total into escrow.
func (s *Server) PayOrder(ctx echo.Context, orderID int64, params servers.PayOrderParams) error {
	var body servers.PayOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	caller, err := kernel.NewAddress(params.XCallerAddress)
	if err != nil {
		return badRequest(ctx, "Invalid caller address", err)
	}

	amount, err := kernel.NewMoney(body.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid payment amount", err)
	}

	cmd, err := commands.NewPayOrderCommand(caller, orderID, amount)
	if err != nil {
		return badRequest(ctx, "Invalid payment data", err)
	}

	if handleErr := s.payOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadInvoice handles POST /api/v1/orders/{orderId}/invoice - attaches an invoice.
func (s *Server) UploadInvoice(ctx echo.Context, orderID int64, params servers.UploadInvoiceParams) error {
	var body servers.UploadInvoiceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	caller, err := kernel.NewAddress(params.XCallerAddress)
	if err != nil {
		return badRequest(ctx, "Invalid caller address", err)
	}

	cmd, err := commands.NewUploadInvoiceCommand(caller, orderID, body.InvoiceUri)
	if err != nil {
		return badRequest(ctx, "Invalid invoice data", err)
	}

	if handleErr := s.uploadInvoiceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseOrder handles POST /api/v1/orders/{orderId}/close - closes the order and releases funds.
func (s *Server) CloseOrder(ctx echo.Context, orderID int64, params servers.CloseOrderParams) error {
	caller, err := kernel.NewAddress(params.XCallerAddress)
	if err != nil {
		return badRequest(ctx, "Invalid caller address", err)
	}

	cmd, err := commands.NewCloseOrderCommand(caller, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data", err)
	}

	if handleErr := s.closeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an unprocessed order.
func (s *Server) CancelOrder(ctx echo.Context, orderID int64, params servers.CancelOrderParams) error {
	caller, err := kernel.NewAddress(params.XCallerAddress)
	if err != nil {
		return badRequest(ctx, "Invalid caller address", err)
	}

	cmd, err := commands.NewCancelOrderCommand(caller, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data", err)
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetTracking handles PUT /api/v1/orders/{orderId}/tracking - stores the shipment tracking code.
func (s *Server) SetTracking(ctx echo.Context, orderID int64, params servers.SetTrackingParams) error {
	var body servers.SetTrackingJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	caller, err := kernel.NewAddress(params.XCallerAddress)
	if err != nil {
		return badRequest(ctx, "Invalid caller address", err)
	}

	cmd, err := commands.NewSetTrackingCommand(caller, orderID, body.TrackingCode)
	if err != nil {
		return badRequest(ctx, "Invalid tracking data", err)
	}

	if handleErr := s.setTrackingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves the full order state.
func (s *Server) GetOrder(ctx echo.Context, orderID int64) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id", err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := servers.Order{
		Id:             result.ID,
		Status:         result.Status,
		FulfillmentFee: result.FulfillmentFee,
		ShipmentFee:    result.ShipmentFee,
		Paid:           result.Paid,
	}
	if result.InvoiceURI != "" {
		response.InvoiceUri = &result.InvoiceURI
	}
	if result.Tracking != "" {
		response.TrackingCode = &result.Tracking
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNextOrderId handles GET /api/v1/orders/next-id - returns the next identifier to be issued.
func (s *Server) GetNextOrderId(ctx echo.Context) error {
	query := queries.NewGetNextOrderIDQuery()

	nextID, err := s.getNextOrderIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.NextOrderId{NextId: nextID})
}

// GetBalance handles GET /api/v1/accounts/{party}/balance - returns a party's escrow ledger balance.
func (s *Server) GetBalance(ctx echo.Context, party string) error {
	address, err := kernel.NewAddress(party)
	if err != nil {
		return badRequest(ctx, "Invalid party address", err)
	}

	query, err := queries.NewGetBalanceQuery(address)
	if err != nil {
		return badRequest(ctx, "Invalid party address", err)
	}

	balance, err := s.getBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Balance{
		Party:   address.String(),
		Balance: balance,
	})
}
