package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-deck-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-deck-api/internal/domain"
)

const (
	ordersTable = "shop_orders o"
)

// Status de pedido que contam para receita e métricas de cliente
var qualifyingStatuses = []string{"completed", "processing"}

// OrderRepository expõe as consultas agregadas sobre pedidos.
// Ausência de linhas resulta em zero/vazio; falha de consulta é sempre propagada.
type OrderRepository interface {
	SumRevenue(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	AverageOrderValue(ctx context.Context) (decimal.Decimal, error)
	MonthlyRevenue(ctx context.Context, startDate, endDate time.Time) ([]*domain.MonthlyAmount, error)
	DistinctCustomerCount(ctx context.Context) (int, error)
	RepeatCustomerCount(ctx context.Context) (int, error)
	CustomerLifetimeValue(ctx context.Context) (decimal.Decimal, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// SumRevenue soma o total dos pedidos qualificados dentro da janela [startDate, endDate)
func (r *orderRepository) SumRevenue(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(o.total_amount), 0)").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": qualifyingStatuses}).
		Where(squirrel.GtOrEq{"o.created_at": startDate}).
		Where(squirrel.Lt{"o.created_at": endDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar receita do período: %w", err)
	}

	return total, nil
}

func (r *orderRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(o.total_amount), 0)").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": qualifyingStatuses}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar receita total: %w", err)
	}

	return total, nil
}

func (r *orderRepository) AverageOrderValue(ctx context.Context) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(o.total_amount), 0)").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": qualifyingStatuses}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var avg decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao calcular valor médio de pedido: %w", err)
	}

	return avg, nil
}

// MonthlyRevenue agrupa a receita qualificada por mês calendário (chave YYYY-MM),
// em ordem cronológica ascendente. Meses sem pedidos não aparecem no resultado.
func (r *orderRepository) MonthlyRevenue(ctx context.Context, startDate, endDate time.Time) ([]*domain.MonthlyAmount, error) {
	query, args, err := squirrel.
		Select(
			"to_char(date_trunc('month', o.created_at), 'YYYY-MM') AS month",
			"SUM(o.total_amount) AS total",
		).
		From(ordersTable).
		Where(squirrel.Eq{"o.status": qualifyingStatuses}).
		Where(squirrel.GtOrEq{"o.created_at": startDate}).
		Where(squirrel.Lt{"o.created_at": endDate}).
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

	buckets := make([]*domain.MonthlyAmount, 0)
	for rows.Next() {
		bucket := &domain.MonthlyAmount{}
		if err := rows.Scan(&bucket.Month, &bucket.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita mensal: %w", err)
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return buckets, nil
}

func (r *orderRepository) DistinctCustomerCount(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(DISTINCT o.customer_id)").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": qualifyingStatuses}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes distintos: %w", err)
	}

	return count, nil
}

// RepeatCustomerCount conta clientes com mais de um pedido qualificado
func (r *orderRepository) RepeatCustomerCount(ctx context.Context) (int, error) {
	sub := squirrel.
		Select("o.customer_id").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": qualifyingStatuses}).
		GroupBy("o.customer_id").
		Having("COUNT(*) > 1")

	query, args, err := squirrel.
		Select("COUNT(*)").
		FromSelect(sub, "repeat_customers").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes recorrentes: %w", err)
	}

	return count, nil
}

// CustomerLifetimeValue é a média, entre clientes com pelo menos um pedido
// qualificado, da soma dos totais de pedidos de cada cliente
func (r *orderRepository) CustomerLifetimeValue(ctx context.Context) (decimal.Decimal, error) {
	sub := squirrel.
		Select("SUM(o.total_amount) AS customer_total").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": qualifyingStatuses}).
		GroupBy("o.customer_id")

	query, args, err := squirrel.
		Select("COALESCE(AVG(customer_total), 0)").
		FromSelect(sub, "customer_totals").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var ltv decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&ltv); err != nil {
		return decimal.Zero, fmt.Errorf("erro ao calcular LTV: %w", err)
	}

	return ltv, nil
}
