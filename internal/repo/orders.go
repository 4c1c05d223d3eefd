package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// invalid_text_representation: id не является UUID
const pqInvalidTextRepresentation = "22P02"

var (
	orderColumns     = []string{"id", "user_id", "user_email", "created_at"}
	orderLineColumns = []string{"order_id", "line_no", "product_id", "product_title", "product_price", "quantity"}
)

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	q := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, o.UserID, o.UserEmail, o.CreatedAt)

	if err := r.exec(ctx, q); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveOrderLines(ctx context.Context, orderID string, lines []entities.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_lines").Columns(orderLineColumns...)
	for i, l := range lines {
		q = q.Values(orderID, i, l.Product.ID, l.Product.Title, l.Product.Price, l.Quantity)
	}

	if err := r.exec(ctx, q); err != nil {
		return fmt.Errorf("failed to save order lines: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	var order Order
	err := r.get(ctx, &order, q)
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	lines, err := r.orderLines(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, lines[orderID]), nil
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	return r.listOrders(ctx, q)
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count))

	return r.listOrders(ctx, q)
}

func (r *postgresRepo) listOrders(ctx context.Context, q sq.SelectBuilder) ([]entities.Order, error) {
	var orders []Order
	if err := r.selectAll(ctx, &orders, q); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	lines, err := r.orderLines(ctx, ids...)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, lines[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) orderLines(ctx context.Context, orderIDs ...string) (map[string][]OrderLine, error) {
	q := r.qb.Select(orderLineColumns...).
		From("order_lines").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "line_no")

	var lines []OrderLine
	if err := r.selectAll(ctx, &lines, q); err != nil {
		return nil, fmt.Errorf("failed to select order lines: %w", err)
	}

	byOrder := make(map[string][]OrderLine, len(orderIDs))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}
	return byOrder, nil
}

func isInvalidText(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqInvalidTextRepresentation
}
