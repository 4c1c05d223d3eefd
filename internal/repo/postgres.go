package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// postgresRepo реализует каталог товаров и хранилище заказов.
type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// runner возвращает транзакцию из контекста, если она открыта через trm.Manager.
func (r *postgresRepo) runner(ctx context.Context) sqlx.ExtContext {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx
	}
	return r.db
}

func (r *postgresRepo) exec(ctx context.Context, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	_, err = r.runner(ctx).ExecContext(ctx, query, args...)
	return err
}

func (r *postgresRepo) get(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	return sqlx.GetContext(ctx, r.runner(ctx), dest, query, args...)
}

func (r *postgresRepo) selectAll(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	return sqlx.SelectContext(ctx, r.runner(ctx), dest, query, args...)
}
