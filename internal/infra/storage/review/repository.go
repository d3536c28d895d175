package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	"github.com/plenkanet/CleanNet-Backend/pkg/dbmetrics"
	"github.com/plenkanet/CleanNet-Backend/pkg/psqlbuilder"
)

var reviewColumns = []string{
	"id",
	"user_id",
	"user_name",
	"rating",
	"comment",
	"service_type",
	"approved",
	"published",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с отзывами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый отзыв (неодобренный, неопубликованный)
func (r *Repository) Create(ctx context.Context, rev *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("user_id", "user_name", "rating", "comment", "service_type").
		Values(rev.UserID, rev.UserName, rev.Rating, rev.Comment, rev.ServiceType).
		Suffix("RETURNING id, approved, published, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rev.ID,
		&rev.Approved,
		&rev.Published,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rev.CreatedAt = createdAt.Time
	rev.UpdatedAt = updatedAt.Time

	return rev, nil
}

// ListPublished возвращает одобренные и опубликованные отзывы, сначала новые
func (r *Repository) ListPublished(ctx context.Context) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"approved": true, "published": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublished - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPublished - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReviews(rows)
}

// ListWithFilter возвращает отзывы по фильтру для админки, сначала новые
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		OrderBy("created_at DESC")

	if filter.Approved != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"approved": *filter.Approved})
	}
	if filter.Rating != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"rating": *filter.Rating})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReviews(rows)
}

// AverageRating возвращает средний рейтинг по опубликованным отзывам.
// При отсутствии отзывов возвращает 0.
func (r *Repository) AverageRating(ctx context.Context) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)").
		From("reviews").
		Where(squirrel.Eq{"approved": true, "published": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: AverageRating - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("%w: AverageRating - scan: %v", ErrScanRow, err)
	}

	return avg, nil
}

// SetModeration обновляет флаги модерации отзыва
func (r *Repository) SetModeration(ctx context.Context, id int64, approved, published bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reviews").
		Set("approved", approved).
		Set("published", published).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetModeration - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetModeration - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetModeration - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// Delete удаляет отзыв
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// GetByID получает отзыв по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rev domain.Review
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rev.ID,
		&rev.UserID,
		&rev.UserName,
		&rev.Rating,
		&rev.Comment,
		&rev.ServiceType,
		&rev.Approved,
		&rev.Published,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan review: %v", ErrScanRow, err)
	}

	rev.CreatedAt = createdAt.Time
	rev.UpdatedAt = updatedAt.Time

	return &rev, nil
}

// scanReviews сканирует результаты запроса в слайс отзывов
func (r *Repository) scanReviews(rows *sql.Rows) ([]*domain.Review, error) {
	reviews := make([]*domain.Review, 0)

	for rows.Next() {
		var rev domain.Review
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rev.ID,
			&rev.UserID,
			&rev.UserName,
			&rev.Rating,
			&rev.Comment,
			&rev.ServiceType,
			&rev.Approved,
			&rev.Published,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReviews - scan row: %v", ErrScanRow, err)
		}

		rev.CreatedAt = createdAt.Time
		rev.UpdatedAt = updatedAt.Time

		reviews = append(reviews, &rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReviews - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
