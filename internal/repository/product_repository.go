package repository

import (
	"context"
	"errors"
	"fmt"

	"loja-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves all products.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id_produto, nome, preco::text, imagem_produto
		FROM produtos
		ORDER BY id_produto
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, queryError("failed to query products", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, queryError("failed to scan product", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, queryError("error iterating products", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id_produto, nome, preco::text, imagem_produto
		FROM produtos
		WHERE id_produto = $1
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, queryError("failed to query product", err)
	}

	return p, nil
}

// Exists reports whether a product with the ID exists.
func (r *productRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM produtos WHERE id_produto = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to check product exists")
		return false, queryError("failed to check product exists", err)
	}

	return exists, nil
}

// Create inserts a product and sets its generated ID.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO produtos (nome, preco, imagem_produto)
		VALUES ($1, $2::numeric, $3)
		RETURNING id_produto
	`

	return withConn(ctx, r.pool, r.logger, func(conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, query, product.Name, product.Price.String(), product.ImagePath).Scan(&product.ID)
		if err != nil {
			r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
			return queryError("failed to insert product", err)
		}

		r.logger.Debug().Int64("product_id", product.ID).Msg("product created successfully")
		return nil
	})
}

// Update overwrites name and price. A missing ID is not an error.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE produtos
		SET nome = $1, preco = $2::numeric
		WHERE id_produto = $3
	`

	return withConn(ctx, r.pool, r.logger, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, query, product.Name, product.Price.String(), product.ID)
		if err != nil {
			r.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to update product")
			return queryError("failed to update product", err)
		}

		r.logger.Debug().
			Int64("product_id", product.ID).
			Int64("rows_affected", tag.RowsAffected()).
			Msg("product update executed")
		return nil
	})
}

// Delete removes a product. A missing ID is not an error.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM produtos WHERE id_produto = $1`

	return withConn(ctx, r.pool, r.logger, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, query, id)
		if err != nil {
			r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
			return queryError("failed to delete product", err)
		}

		r.logger.Debug().
			Int64("product_id", id).
			Int64("rows_affected", tag.RowsAffected()).
			Msg("product delete executed")
		return nil
	})
}

// scanProduct reads one produtos row selected as (id, nome, preco::text, imagem_produto).
func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p     model.Product
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &price, &p.ImagePath); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", price, err)
	}
	p.Price = parsed

	return &p, nil
}
