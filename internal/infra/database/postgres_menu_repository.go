package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"cafe_menu_service/internal/domain/menu"
)

// PostgresMenuRepository persists menu records in the menus table with
// the slot list as JSONB. The date column carries a uniqueness
// constraint, and Upsert relies on ON CONFLICT to stay atomic, so
// concurrent upserts for the same date serialize at the database.
type PostgresMenuRepository struct {
	db *sql.DB
}

func NewPostgresMenuRepository(db *sql.DB) *PostgresMenuRepository {
	return &PostgresMenuRepository{db: db}
}

func (r *PostgresMenuRepository) GetByDate(ctx context.Context, date string) (*menu.Record, error) {
	query := `SELECT date, slots, created_at, updated_at FROM menus WHERE date = $1`

	rec := &menu.Record{}
	var slotsJSON []byte
	err := r.db.QueryRowContext(ctx, query, date).Scan(&rec.Date, &slotsJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMenuNotFound
		}
		return nil, wrapStorageError("get menu by date", err)
	}

	// Historical rows may carry bare-string food items; FoodItem's
	// UnmarshalJSON normalizes them at this boundary.
	if err := json.Unmarshal(slotsJSON, &rec.Slots); err != nil {
		return nil, fmt.Errorf("error decoding slots for date %s: %w", date, err)
	}
	if rec.Slots == nil {
		rec.Slots = []menu.Slot{}
	}
	return rec, nil
}

func (r *PostgresMenuRepository) Upsert(ctx context.Context, date string, slots []menu.Slot) (*menu.Record, error) {
	query := `INSERT INTO menus (date, slots, created_at, updated_at)
               VALUES ($1, $2, NOW(), NOW())
               ON CONFLICT (date) DO UPDATE SET
                 slots = excluded.slots,
                 updated_at = NOW()
               RETURNING date, created_at, updated_at`

	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return nil, fmt.Errorf("error encoding slots: %w", err)
	}

	rec := &menu.Record{Slots: menu.CloneSlots(slots)}
	err = r.db.QueryRowContext(ctx, query, date, slotsJSON).Scan(&rec.Date, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, wrapStorageError("upsert menu", err)
	}
	if rec.Slots == nil {
		rec.Slots = []menu.Slot{}
	}
	return rec, nil
}

func (r *PostgresMenuRepository) Update(ctx context.Context, date string, slots []menu.Slot) (int64, error) {
	query := `UPDATE menus SET slots = $1, updated_at = NOW() WHERE date = $2`

	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return 0, fmt.Errorf("error encoding slots: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, slotsJSON, date)
	if err != nil {
		return 0, wrapStorageError("update menu", err)
	}
	changed, err := result.RowsAffected()
	if err != nil {
		return 0, wrapStorageError("update menu rows affected", err)
	}
	return changed, nil
}

func (r *PostgresMenuRepository) Delete(ctx context.Context, date string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menus WHERE date = $1`, date)
	if err != nil {
		return 0, wrapStorageError("delete menu", err)
	}
	changed, err := result.RowsAffected()
	if err != nil {
		return 0, wrapStorageError("delete menu rows affected", err)
	}
	return changed, nil
}

func (r *PostgresMenuRepository) ListAll(ctx context.Context) ([]*menu.Record, error) {
	query := `SELECT date, slots, created_at, updated_at FROM menus ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapStorageError("list menus", err)
	}
	defer rows.Close()

	records := make([]*menu.Record, 0)
	for rows.Next() {
		rec := &menu.Record{}
		var slotsJSON []byte
		if err := rows.Scan(&rec.Date, &slotsJSON, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, wrapStorageError("scan menu row", err)
		}
		if err := json.Unmarshal(slotsJSON, &rec.Slots); err != nil {
			return nil, fmt.Errorf("error decoding slots for date %s: %w", rec.Date, err)
		}
		if rec.Slots == nil {
			rec.Slots = []menu.Slot{}
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapStorageError("iterate menus", err)
	}
	return records, nil
}
