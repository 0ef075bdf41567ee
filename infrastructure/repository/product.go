package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-deck-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-deck-api/internal/domain"
)

const (
	productsTable          = "products p"
	productCategoriesTable = "product_categories pc"

	statusPublished = "publish"
)

type ProductRepository interface {
	CountPublished(ctx context.Context) (int, error)
	CategoryBreakdown(ctx context.Context) ([]*domain.ProductCategory, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) CountPublished(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(productsTable).
		Where(squirrel.Eq{"p.status": statusPublished}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos publicados: %w", err)
	}

	return count, nil
}

// CategoryBreakdown lista as categorias com pelo menos um produto publicado,
// da mais popular para a menos popular. Taxonomia vazia resulta em lista vazia.
func (r *productRepository) CategoryBreakdown(ctx context.Context) ([]*domain.ProductCategory, error) {
	query, args, err := squirrel.
		Select("pc.name", "COUNT(p.id) AS product_count").
		From(productCategoriesTable).
		Join("products p ON p.category_id = pc.id").
		Where(squirrel.Eq{"p.status": statusPublished}).
		GroupBy("pc.id", "pc.name").
		Having("COUNT(p.id) > 0").
		OrderBy("product_count DESC", "pc.name ASC").
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

	categories := make([]*domain.ProductCategory, 0)
	for rows.Next() {
		category := &domain.ProductCategory{}
		if err := rows.Scan(&category.Name, &category.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear categorias: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}
