// Package http exposes the order lifecycle over a JSON API. Customer
// endpoints are public and authorize through the customer token; operator
// endpoints sit behind HTTP basic auth verified by the auth collaborator.
package http

import (
	"net/http"

	"github.com/arrows94/3d-order-manager/internal/core/application/usecases/commands"
	"github.com/arrows94/3d-order-manager/internal/core/application/usecases/queries"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"
	"github.com/arrows94/3d-order-manager/internal/core/ports"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// operatorContextKey is the echo context key holding the authenticated operator.
const operatorContextKey = "operator"

// Server wires HTTP requests to the application's command and query handlers.
type Server struct {
	submitOrderHandler   commands.SubmitOrderCommandHandler
	acceptOrderHandler   commands.AcceptOrderCommandHandler
	rejectOrderHandler   commands.RejectOrderCommandHandler
	setPriceHandler      commands.SetPriceCommandHandler
	decidePriceHandler   commands.DecidePriceCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	orderQueueHandler queries.GetOrderQueueQueryHandler
	trackOrderHandler queries.TrackOrderQueryHandler

	uploads         ports.UploadStore
	auth            ports.OperatorAuthenticator
	defaultCurrency string
}

// NewServer creates an HTTP server with the required handlers and collaborators.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	setPriceHandler commands.SetPriceCommandHandler,
	decidePriceHandler commands.DecidePriceCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	orderQueueHandler queries.GetOrderQueueQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	uploads ports.UploadStore,
	auth ports.OperatorAuthenticator,
	defaultCurrency string,
) *Server {
	return &Server{
		submitOrderHandler:   submitOrderHandler,
		acceptOrderHandler:   acceptOrderHandler,
		rejectOrderHandler:   rejectOrderHandler,
		setPriceHandler:      setPriceHandler,
		decidePriceHandler:   decidePriceHandler,
		completeOrderHandler: completeOrderHandler,
		orderQueueHandler:    orderQueueHandler,
		trackOrderHandler:    trackOrderHandler,
		uploads:              uploads,
		auth:                 auth,
		defaultCurrency:      defaultCurrency,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Customer endpoints: the token in the path is the only credential.
	api.POST("/orders", s.SubmitOrder)
	api.GET("/track/:token", s.TrackOrder)
	api.POST("/track/:token/decision", s.DecidePrice)
	api.GET("/uploads/:scope/:name", s.ServeUpload)

	// Operator endpoints behind basic auth.
	ops := api.Group("", middleware.BasicAuth(s.verifyOperator))
	ops.GET("/orders/active", s.GetOrderQueue)
	ops.POST("/orders/:id/accept", s.AcceptOrder)
	ops.POST("/orders/:id/reject", s.RejectOrder)
	ops.POST("/orders/:id/price", s.SetPrice)
	ops.POST("/orders/:id/complete", s.CompleteOrder)
}

// verifyOperator is the basic auth callback: it delegates to the auth
// collaborator and stashes the verified identity on the request context.
func (s *Server) verifyOperator(username, password string, c echo.Context) (bool, error) {
	operator, err := s.auth.Authenticate(c.Request().Context(), username, password)
	if err != nil {
		return false, nil
	}
	c.Set(operatorContextKey, operator)
	return true, nil
}

func operatorFrom(c echo.Context) ports.Operator {
	operator, _ := c.Get(operatorContextKey).(ports.Operator)
	return operator
}

// SubmitOrder handles POST /api/v1/orders. The request is a multipart form
// with the customer's contact details and a model link and/or image file.
// The upload is stored first, under the new order's id, so a rejected
// submission leaves at worst an orphaned upload and never a partial order.
func (s *Server) SubmitOrder(c echo.Context) error {
	customer, err := order.NewCustomer(c.FormValue("name"), c.FormValue("email"))
	if err != nil {
		return writeError(c, err)
	}

	orderID := kernel.NewUUID()

	imageRef := ""
	if fileHeader, fileErr := c.FormFile("image"); fileErr == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return writeError(c, openErr)
		}
		defer file.Close()

		imageRef, err = s.uploads.Store(
			c.Request().Context(),
			orderID.String(),
			fileHeader.Filename,
			fileHeader.Header.Get("Content-Type"),
			file,
		)
		if err != nil {
			return writeError(c, err)
		}
	}

	submission, err := order.NewSubmission(c.FormValue("link"), imageRef, c.FormValue("description"))
	if err != nil {
		return writeError(c, err)
	}

	token, err := kernel.NewCustomerToken()
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(orderID, token, customer, submission)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.submitOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, SubmitOrderResponse{
		ID:            orderID.String(),
		CustomerToken: token.String(),
		Status:        order.New.String(),
	})
}

// TrackOrder handles GET /api/v1/track/:token.
func (s *Server) TrackOrder(c echo.Context) error {
	token, err := kernel.CustomerTokenFromString(c.Param("token"))
	if err != nil {
		// A malformed token reads the same as an unknown one.
		return writeCustomerError(c, errs.NewObjectNotFoundError("order", "presented token"))
	}

	query, err := queries.NewTrackOrderQuery(token)
	if err != nil {
		return writeCustomerError(c, err)
	}

	result, err := s.trackOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeCustomerError(c, err)
	}

	return c.JSON(http.StatusOK, trackedOrderFrom(result))
}

// DecidePrice handles POST /api/v1/track/:token/decision.
func (s *Server) DecidePrice(c echo.Context) error {
	token, err := kernel.CustomerTokenFromString(c.Param("token"))
	if err != nil {
		return writeCustomerError(c, errs.NewObjectNotFoundError("order", "presented token"))
	}

	var req PriceDecisionRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	decision, err := commands.ParsePriceDecision(req.Decision)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDecidePriceCommand(token, decision, req.Note)
	if err != nil {
		return writeCustomerError(c, err)
	}

	if err = s.decidePriceHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeCustomerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ServeUpload handles GET /api/v1/uploads/:scope/:name, streaming a stored
// image back to the client.
func (s *Server) ServeUpload(c echo.Context) error {
	ref := c.Param("scope") + "/" + c.Param("name")

	reader, err := s.uploads.Open(ref)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "upload not found",
		})
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, "application/octet-stream", reader)
}

// GetOrderQueue handles GET /api/v1/orders/active.
func (s *Server) GetOrderQueue(c echo.Context) error {
	queue, err := s.orderQueueHandler.Handle(c.Request().Context(), queries.NewGetOrderQueueQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]QueueEntry, len(queue))
	for i, entry := range queue {
		response[i] = QueueEntry{
			ID:            entry.ID.String(),
			CustomerName:  entry.CustomerName,
			CustomerEmail: entry.CustomerEmail,
			Link:          entry.Link,
			ImageRef:      entry.ImageRef,
			Status:        entry.Status,
			CreatedAt:     entry.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidError("order id"))
	}

	var req OperatorActionRequest
	if bindErr := c.Bind(&req); bindErr != nil && c.Request().ContentLength > 0 {
		return writeError(c, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, operatorFrom(c), req.Note)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.acceptOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidError("order id"))
	}

	var req OperatorActionRequest
	if bindErr := c.Bind(&req); bindErr != nil && c.Request().ContentLength > 0 {
		return writeError(c, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, operatorFrom(c), req.Note)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.rejectOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetPrice handles POST /api/v1/orders/:id/price.
func (s *Server) SetPrice(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidError("order id"))
	}

	var req SetPriceRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidError("request body"))
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	price, err := kernel.ParsePrice(req.Amount, currency)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewSetPriceCommand(orderID, operatorFrom(c), price)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.setPriceHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidError("order id"))
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, operatorFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	if err = s.completeOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func trackedOrderFrom(result queries.TrackOrderQueryResponse) TrackedOrder {
	tracked := TrackedOrder{
		ID:           result.ID.String(),
		Status:       result.Status,
		Link:         result.Link,
		ImageRef:     result.ImageRef,
		Description:  result.Description,
		OperatorNote: result.OperatorNote,
		CustomerNote: result.CustomerNote,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}
	if result.Price != nil {
		tracked.Price = &PriceView{
			Cents:    result.Price.Cents(),
			Currency: result.Price.Currency(),
			Display:  result.Price.String(),
		}
	}
	return tracked
}
