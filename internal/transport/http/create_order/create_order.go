package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ordersapi/orders-svc/internal/service/models/order"
	"github.com/ordersapi/orders-svc/internal/transport/http/apierror"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, req order.CreateOrderRequest) (*order.CreateOrderResponse, error)
}

// CreateOrder handles the create order request. Structurally invalid input is
// rejected with per-field errors before the service is invoked; service
// failures are mapped to a client or server error by kind.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	var req order.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Failed to decode create order request", "error", err)
		apierror.WriteJSON(w, http.StatusBadRequest, map[string][]string{
			"body": {"request body is not valid JSON"},
		})

		return
	}

	slog.Info("Received create order request", "customer_name", req.CustomerName)

	if err := validate.Struct(req); err != nil {
		slog.Warn("Create order request validation failed",
			"customer_name", req.CustomerName,
			"error", err,
		)
		apierror.WriteJSON(w, http.StatusBadRequest, fieldErrors(err))

		return
	}

	resp, err := service.CreateOrder(r.Context(), req)
	if err != nil {
		var validationErr *order.ValidationError
		if errors.As(err, &validationErr) {
			slog.Warn("Order creation failed: data validation error", "error", err)
			apierror.WriteProblem(w, http.StatusBadRequest,
				"Data validation failed", validationErr.Message)

			return
		}

		slog.Error("Unexpected error occurred while creating order", "error", err)
		apierror.WriteProblem(w, http.StatusInternalServerError,
			"Internal server error",
			"An error occurred while creating order, please try again later")

		return
	}

	w.Header().Set("Location", "/api/orders/"+resp.OrderID.String())
	apierror.WriteJSON(w, http.StatusCreated, resp)
}
