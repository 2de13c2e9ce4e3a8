package model

import "github.com/shopspring/decimal"

// Order represents a customer order for a single product.
type Order struct {
	ID        int64 `json:"id_pedido"`
	ProductID int64 `json:"id_produto"`
	Quantity  int   `json:"quantidade"`
}

// OrderDetail is an order joined with the product it references.
type OrderDetail struct {
	ID           int64
	Quantity     int
	ProductID    int64
	ProductName  string
	ProductPrice decimal.Decimal
}

// CreateOrderRequest represents the request payload for creating an order.
type CreateOrderRequest struct {
	ProductID int64 `json:"id_produto"`
	Quantity  int   `json:"quantidade"`
}

// DeleteOrderRequest represents the request payload for deleting an order.
type DeleteOrderRequest struct {
	ID int64 `json:"id_pedido"`
}

// OrderProduct is the product summary nested in an order listing.
type OrderProduct struct {
	ID    int64           `json:"id_produto"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"preco"`
}

// OrderDetailView is one entry of GET /pedidos.
type OrderDetailView struct {
	ID       int64        `json:"id_pedido"`
	Quantity int          `json:"quantidade"`
	Product  OrderProduct `json:"produto"`
	Request  RequestInfo  `json:"request"`
}

// OrderView is a single order with its navigation hint.
type OrderView struct {
	ID        int64       `json:"id_pedido"`
	ProductID int64       `json:"id_produto"`
	Quantity  int         `json:"quantidade"`
	Request   RequestInfo `json:"request"`
}

// OrderListResponse is the payload of GET /pedidos.
type OrderListResponse struct {
	Count  int               `json:"quantidadePedidos"`
	Orders []OrderDetailView `json:"pedidos"`
}

// OrderResponse is the payload of GET /pedidos/{id}.
type OrderResponse struct {
	Order OrderView `json:"pedido"`
}

// OrderCreatedResponse is the payload of POST /pedidos.
type OrderCreatedResponse struct {
	Message string    `json:"mensagem"`
	Order   OrderView `json:"pedidoCriado"`
}
