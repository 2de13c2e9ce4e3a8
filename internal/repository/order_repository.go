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

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// List retrieves all orders joined with their products.
// Orders whose product has since been deleted are left out by the inner join.
func (r *orderRepository) List(ctx context.Context) ([]model.OrderDetail, error) {
	query := `
		SELECT pedidos.id_pedido,
		       pedidos.quantidade,
		       produtos.id_produto,
		       produtos.nome,
		       produtos.preco::text
		FROM pedidos
		INNER JOIN produtos
		        ON produtos.id_produto = pedidos.id_produto
		ORDER BY pedidos.id_pedido
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, queryError("failed to query orders", err)
	}
	defer rows.Close()

	orders := []model.OrderDetail{}
	for rows.Next() {
		var (
			o     model.OrderDetail
			price string
		)
		if err := rows.Scan(&o.ID, &o.Quantity, &o.ProductID, &o.ProductName, &price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, queryError("failed to scan order", err)
		}

		o.ProductPrice, err = decimal.NewFromString(price)
		if err != nil {
			r.logger.Error().Err(err).Str("price", price).Msg("failed to parse product price")
			return nil, queryError("failed to scan order", fmt.Errorf("invalid price %q: %w", price, err))
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, queryError("error iterating orders", err)
	}

	return orders, nil
}

// GetByID retrieves a single order by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `
		SELECT id_pedido, id_produto, quantidade
		FROM pedidos
		WHERE id_pedido = $1
	`

	var o model.Order
	err := r.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.ProductID, &o.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to query order")
		return nil, queryError("failed to query order", err)
	}

	return &o, nil
}

// Create inserts an order and sets its generated ID.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `
		INSERT INTO pedidos (id_produto, quantidade)
		VALUES ($1, $2)
		RETURNING id_pedido
	`

	return withConn(ctx, r.pool, r.logger, func(conn *pgxpool.Conn) error {
		err := conn.QueryRow(ctx, query, order.ProductID, order.Quantity).Scan(&order.ID)
		if err != nil {
			r.logger.Error().
				Err(err).
				Int64("product_id", order.ProductID).
				Msg("failed to insert order")
			return queryError("failed to insert order", err)
		}

		r.logger.Debug().Int64("order_id", order.ID).Msg("order created successfully")
		return nil
	})
}

// Delete removes an order. A missing ID is not an error.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM pedidos WHERE id_pedido = $1`

	return withConn(ctx, r.pool, r.logger, func(conn *pgxpool.Conn) error {
		tag, err := conn.Exec(ctx, query, id)
		if err != nil {
			r.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete order")
			return queryError("failed to delete order", err)
		}

		r.logger.Debug().
			Int64("order_id", id).
			Int64("rows_affected", tag.RowsAffected()).
			Msg("order delete executed")
		return nil
	})
}
