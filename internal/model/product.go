package model

import "github.com/shopspring/decimal"

func init() {
	// Prices go over the wire as JSON numbers, matching what clients send.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalogue item.
type Product struct {
	ID        int64           `json:"id_produto"`
	Name      string          `json:"nome"`
	Price     decimal.Decimal `json:"preco"`
	ImagePath *string         `json:"imagem_produto"`
}

// CreateProductRequest carries the multipart fields of a product creation.
type CreateProductRequest struct {
	Name  string
	Price decimal.Decimal
}

// UpdateProductRequest represents the request payload for updating a product.
type UpdateProductRequest struct {
	ID    int64           `json:"id_produto"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"preco"`
}

// DeleteProductRequest represents the request payload for deleting a product.
type DeleteProductRequest struct {
	ID int64 `json:"id_produto"`
}

// ProductView is a product as returned to clients, with its navigation hint.
type ProductView struct {
	ID        int64           `json:"id_produto"`
	Name      string          `json:"nome"`
	Price     decimal.Decimal `json:"preco"`
	ImagePath *string         `json:"imagem_produto"`
	Request   RequestInfo     `json:"request"`
}

// UpdatedProductView echoes the fields of an update.
type UpdatedProductView struct {
	ID      int64           `json:"id_produto"`
	Name    string          `json:"nome"`
	Price   decimal.Decimal `json:"preco"`
	Request RequestInfo     `json:"request"`
}

// ProductListResponse is the payload of GET /produtos.
type ProductListResponse struct {
	Count    int           `json:"quantidade"`
	Products []ProductView `json:"produtos"`
}

// ProductResponse is the payload of GET /produtos/{id}.
type ProductResponse struct {
	Product ProductView `json:"produto"`
}

// ProductCreatedResponse is the payload of POST /produtos.
type ProductCreatedResponse struct {
	Message string      `json:"mensagem"`
	Product ProductView `json:"produtoCriado"`
}

// ProductUpdatedResponse is the payload of PUT /produtos.
type ProductUpdatedResponse struct {
	Message string             `json:"mensagem"`
	Product UpdatedProductView `json:"produtoAtualizado"`
}
