package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-deck-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-deck-api/internal/domain"
)

const (
	customersTable = "customers c"

	roleCustomer = "customer"
)

type CustomerRepository interface {
	CountCustomers(ctx context.Context) (int, error)
	CountRegisteredBetween(ctx context.Context, startDate, endDate time.Time) (int, error)
	MonthlyRegistrations(ctx context.Context, startDate, endDate time.Time) ([]*domain.MonthlyCount, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CountCustomers(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		Where(squirrel.Eq{"c.role": roleCustomer}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

func (r *customerRepository) CountRegisteredBetween(ctx context.Context, startDate, endDate time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		Where(squirrel.Eq{"c.role": roleCustomer}).
		Where(squirrel.GtOrEq{"c.registered_at": startDate}).
		Where(squirrel.Lt{"c.registered_at": endDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros de clientes no período: %w", err)
	}

	return count, nil
}

// MonthlyRegistrations agrupa cadastros de clientes por mês calendário (YYYY-MM),
// ascendente e esparso como MonthlyRevenue
func (r *customerRepository) MonthlyRegistrations(ctx context.Context, startDate, endDate time.Time) ([]*domain.MonthlyCount, error) {
	query, args, err := squirrel.
		Select(
			"to_char(date_trunc('month', c.registered_at), 'YYYY-MM') AS month",
			"COUNT(*) AS registrations",
		).
		From(customersTable).
		Where(squirrel.Eq{"c.role": roleCustomer}).
		Where(squirrel.GtOrEq{"c.registered_at": startDate}).
		Where(squirrel.Lt{"c.registered_at": endDate}).
		GroupBy("month").
		OrderBy("month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	buckets := make([]*domain.MonthlyCount, 0)
	for rows.Next() {
		bucket := &domain.MonthlyCount{}
		if err := rows.Scan(&bucket.Month, &bucket.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear cadastros mensais: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return buckets, nil
}
