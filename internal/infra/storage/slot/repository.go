package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
	"github.com/plenkanet/CleanNet-Backend/pkg/dbmetrics"
	"github.com/plenkanet/CleanNet-Backend/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pqUniqueViolation = "23505"

var slotColumns = []string{
	"id",
	"slot_time",
	"reserved",
	"reserved_by",
	"reserved_at",
	"created_at",
}

// Repository репозиторий для работы со слотами календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает один свободный слот.
// Уникальность свободного слота на момент времени обеспечивается частичным
// уникальным индексом (slot_time WHERE NOT reserved): при конфликте
// возвращается ErrDuplicateSlot, независимо от гонок между администраторами.
func (r *Repository) Create(ctx context.Context, slotTime time.Time) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns("slot_time").
		Values(slotTime).
		Suffix("RETURNING id, slot_time, reserved, reserved_by, reserved_at, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SlotTime,
		&s.Reserved,
		&s.ReservedBy,
		&s.ReservedAt,
		&s.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &s, nil
}

// ListAll возвращает все слоты без гарантии порядка.
// Фильтрация и сортировка выполняются вызывающими компонентами.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ListByDateRange возвращает слоты с временем в диапазоне [from, to].
// Используется генератором для проверки дубликатов перед пакетной записью.
func (r *Repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.GtOrEq{"slot_time": from}).
		Where(squirrel.LtOrEq{"slot_time": to}).
		OrderBy("slot_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// Delete удаляет слот по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
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
		return ErrSlotNotFound
	}

	return nil
}

// Reserve атомарно переводит свободный слот на указанное время в зарезервированный.
// Проверка "слот свободен" и запись выполняются одним условным UPDATE,
// поэтому при N конкурентных вызовах на одно время ровно один получает слот,
// остальные - ErrSlotNotAvailable. Автоматических повторов нет: вызывающая
// сторона должна перечитать доступность и предложить пользователю другое время.
func (r *Repository) Reserve(ctx context.Context, slotTime time.Time, reservedBy string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("reserved", true).
		Set("reserved_by", reservedBy).
		Set("reserved_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slot_time": slotTime, "reserved": false}).
		Suffix("RETURNING id, slot_time, reserved, reserved_by, reserved_at, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Reserve - build update query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SlotTime,
		&s.Reserved,
		&s.ReservedBy,
		&s.ReservedAt,
		&s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Reserve - execute update: %v", ErrExecQuery, err)
	}

	return &s, nil
}

// Release снимает резервирование со слота на указанное время.
// Возвращает ErrSlotNotFound, если зарезервированного слота на это время нет.
func (r *Repository) Release(ctx context.Context, slotTime time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("reserved", false).
		Set("reserved_by", nil).
		Set("reserved_at", nil).
		Where(squirrel.Eq{"slot_time": slotTime, "reserved": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// BulkCreate записывает пакет слотов одним INSERT.
// Кандидаты, конфликтующие с уже существующими свободными слотами,
// молча пропускаются (ON CONFLICT DO NOTHING по частичному уникальному
// индексу), поэтому две конкурентные генерации по пересекающимся диапазонам
// не создают дубликатов. Возвращает количество реально записанных слотов.
func (r *Repository) BulkCreate(ctx context.Context, slotTimes []time.Time) (int, error) {
	if len(slotTimes) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slots").Columns("slot_time")
	for _, t := range slotTimes {
		insertBuilder = insertBuilder.Values(t)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (slot_time) WHERE NOT reserved DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkCreate - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: BulkCreate - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkCreate - get rows affected: %v", ErrExecQuery, err)
	}

	return int(rowsAffected), nil
}

// DeleteExpired удаляет все слоты с временем строго раньше before,
// включая зарезервированные. Возвращает количество удаленных слотов.
func (r *Repository) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Lt{"slot_time": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return int(rowsAffected), nil
}

// Stats возвращает сводную статистику календаря одним агрегирующим запросом.
// Просроченность считается по дням, а не по моментам: cutoff - начало текущего
// дня, слоты сегодняшнего дня учитываются как доступные/зарезервированные,
// даже если их время уже прошло
func (r *Repository) Stats(ctx context.Context, cutoff time.Time) (*domain.CalendarStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE slot_time >= ? AND NOT reserved)", cutoff)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE slot_time >= ? AND reserved)", cutoff)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE slot_time < ?)", cutoff)).
		From("slots").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.CalendarStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalSlots,
		&stats.AvailableSlots,
		&stats.ReservedSlots,
		&stats.ExpiredSlots,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Stats - scan stats: %v", ErrScanRow, err)
	}

	return &stats, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		err := rows.Scan(
			&s.ID,
			&s.SlotTime,
			&s.Reserved,
			&s.ReservedBy,
			&s.ReservedAt,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
