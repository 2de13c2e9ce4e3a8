package handler

import (
	"errors"
	"net/http"
	"strconv"

	"loja-api/internal/model"
	"loja-api/internal/service"
	"loja-api/internal/storage"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	// multipartMemory is how much of a multipart body is held in memory before spilling to temp files.
	multipartMemory = 32 << 20
	// multipartOverhead leaves room for the text fields and part headers around the image.
	multipartOverhead = 1 << 20
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service        service.ProductService
	baseURL        string
	maxUploadBytes int64
	logger         zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, baseURL string, maxUploadBytes int64, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:        service,
		baseURL:        baseURL,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.With().Str("handler", "product").Logger(),
	}
}

func (h *ProductHandler) listURL() string {
	return h.baseURL + "/produtos"
}

func (h *ProductHandler) itemURL(id int64) string {
	return h.baseURL + "/produtos/" + strconv.FormatInt(id, 10)
}

func (h *ProductHandler) view(p model.Product, req model.RequestInfo) model.ProductView {
	return model.ProductView{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImagePath: p.ImagePath,
		Request:   req,
	}
}

// List handles GET /produtos.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve products", h.logger)
		return
	}

	views := make([]model.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, h.view(p, requestInfo(
			http.MethodGet,
			"Retorna os detalhes de um produto em especifico",
			h.itemURL(p.ID),
		)))
	}

	writeJSON(w, http.StatusOK, model.ProductListResponse{
		Count:    len(views),
		Products: views,
	})
}

// GetByID handles GET /produtos/{id_produto}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	// A non-numeric id can never match a row.
	id, err := pathID(r, "id_produto")
	if err != nil {
		writeServiceError(w, model.ErrProductNotFound, "", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.ProductResponse{
		Product: h.view(*product, requestInfo(http.MethodGet, "Retorna todos os produtos", h.listURL())),
	})
}

// Create handles POST /produtos with a multipart body: nome, preco and an
// optional produto_imagem file.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeServiceError(w, model.ErrImageTooLarge, "", h.logger)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form", h.logger)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.logger.Warn().Err(err).Msg("failed to remove multipart temp files")
		}
	}()

	price, err := decimal.NewFromString(r.FormValue("preco"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid price", h.logger)
		return
	}

	req := &model.CreateProductRequest{
		Name:  r.FormValue("nome"),
		Price: price,
	}

	var image *storage.Image
	file, header, err := r.FormFile("produto_imagem")
	switch {
	case err == nil:
		defer file.Close()
		image = &storage.Image{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        file,
		}
	case errors.Is(err, http.ErrMissingFile):
		// no image attached
	default:
		writeError(w, http.StatusBadRequest, "invalid image upload", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), req, image)
	if err != nil {
		writeServiceError(w, err, "failed to create product", h.logger)
		return
	}
	auditLog(h.logger, r).Int64("product_id", product.ID).Msg("product created")

	writeJSON(w, http.StatusCreated, model.ProductCreatedResponse{
		Message: "Produto inserido com sucesso",
		Product: h.view(*product, requestInfo(http.MethodGet, "Retorna todos os produtos", h.listURL())),
	})
}

// Update handles PUT /produtos.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if err := h.service.Update(r.Context(), &req); err != nil {
		writeServiceError(w, err, "failed to update product", h.logger)
		return
	}
	auditLog(h.logger, r).Int64("product_id", req.ID).Msg("product updated")

	writeJSON(w, http.StatusAccepted, model.ProductUpdatedResponse{
		Message: "Produto atualizado com sucesso",
		Product: model.UpdatedProductView{
			ID:    req.ID,
			Name:  req.Name,
			Price: req.Price,
			Request: requestInfo(
				http.MethodGet,
				"Retorna os detalhes de um produto especifico",
				h.itemURL(req.ID),
			),
		},
	})
}

// Delete handles DELETE /produtos.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req model.DeleteProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), req.ID); err != nil {
		writeServiceError(w, err, "failed to delete product", h.logger)
		return
	}
	auditLog(h.logger, r).Int64("product_id", req.ID).Msg("product deleted")

	next := requestInfo(http.MethodPost, "Insira um novo produto", h.listURL())
	next.Body = map[string]any{
		"nome":  "String",
		"preco": "Number",
	}

	writeJSON(w, http.StatusAccepted, model.DeletedResponse{
		Message: "Produto removido com sucesso",
		Request: next,
	})
}
