package handler

import (
	"net/http"
	"strconv"

	"loja-api/internal/model"
	"loja-api/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	baseURL string
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, baseURL string, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		baseURL: baseURL,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

func (h *OrderHandler) listURL() string {
	return h.baseURL + "/pedidos"
}

func (h *OrderHandler) view(o model.Order) model.OrderView {
	return model.OrderView{
		ID:        o.ID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Request:   requestInfo(http.MethodGet, "Retorna todos os pedidos", h.listURL()),
	}
}

// List handles GET /pedidos.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve orders", h.logger)
		return
	}

	views := make([]model.OrderDetailView, 0, len(orders))
	for _, o := range orders {
		views = append(views, model.OrderDetailView{
			ID:       o.ID,
			Quantity: o.Quantity,
			Product: model.OrderProduct{
				ID:    o.ProductID,
				Name:  o.ProductName,
				Price: o.ProductPrice,
			},
			Request: requestInfo(
				http.MethodGet,
				"Retorna os detalhes de um pedido em especifico",
				h.listURL()+"/"+strconv.FormatInt(o.ID, 10),
			),
		})
	}

	writeJSON(w, http.StatusOK, model.OrderListResponse{
		Count:  len(views),
		Orders: views,
	})
}

// GetByID handles GET /pedidos/{id_pedido}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id_pedido")
	if err != nil {
		writeServiceError(w, model.ErrOrderNotFound, "", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.OrderResponse{Order: h.view(*order)})
}

// Create handles POST /pedidos.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to create order", h.logger)
		return
	}
	auditLog(h.logger, r).Int64("order_id", order.ID).Int64("product_id", order.ProductID).Msg("order created")

	writeJSON(w, http.StatusCreated, model.OrderCreatedResponse{
		Message: "Pedido inserido com sucesso",
		Order:   h.view(*order),
	})
}

// Delete handles DELETE /pedidos.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req model.DeleteOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), req.ID); err != nil {
		writeServiceError(w, err, "failed to delete order", h.logger)
		return
	}
	auditLog(h.logger, r).Int64("order_id", req.ID).Msg("order deleted")

	next := requestInfo(http.MethodPost, "Insira um novo pedido", h.listURL())
	next.Body = map[string]any{
		"id_produto": "Number",
		"quantidade": "Number",
	}

	writeJSON(w, http.StatusAccepted, model.DeletedResponse{
		Message: "Pedido removido com sucesso",
		Request: next,
	})
}
