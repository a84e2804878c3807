package items

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backoffice/internal/platform/db"
)

var ErrNotFound = errors.New("item not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const itemColumns = "SELECT id, item_name, stock, unit, external_id, created_at, updated_at FROM items"

func scanItem(row pgx.Row) (Item, error) {
	var i Item
	err := row.Scan(&i.ID, &i.ItemName, &i.Stock, &i.Unit, &i.ExternalID, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Item, error) {
	query := itemColumns
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" WHERE item_name ILIKE $%d", len(args))
	}

	query += " ORDER BY id ASC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Item{}
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Item, error) {
	i, err := scanItem(s.DB.QueryRow(ctx, itemColumns+" WHERE id = $1", id))
	if db.IsNoRows(err) {
		return Item{}, ErrNotFound
	}
	return i, err
}

func (s *Store) Create(ctx context.Context, itemName string, stock int, unit string) (Item, error) {
	return scanItem(s.DB.QueryRow(ctx, `
    INSERT INTO items (item_name, stock, unit)
    VALUES ($1, $2, $3)
    RETURNING id, item_name, stock, unit, external_id, created_at, updated_at
  `, itemName, stock, unit))
}

func (s *Store) Update(ctx context.Context, id int64, itemName string, stock int, unit string) (Item, error) {
	i, err := scanItem(s.DB.QueryRow(ctx, `
    UPDATE items SET item_name = $1, stock = $2, unit = $3, updated_at = CURRENT_TIMESTAMP
    WHERE id = $4
    RETURNING id, item_name, stock, unit, external_id, created_at, updated_at
  `, itemName, stock, unit, id))
	if db.IsNoRows(err) {
		return Item{}, ErrNotFound
	}
	return i, err
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Sync upserts the external feed keyed on external_id and returns how many
// rows were newly inserted. Re-syncing the same feed counts zero. The whole
// batch commits or rolls back as one transaction.
func (s *Store) Sync(ctx context.Context, feed []SyncItem) (int, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	synced := 0
	for _, item := range feed {
		var existing int64
		err := tx.QueryRow(ctx, "SELECT id FROM items WHERE external_id = $1", item.ID).Scan(&existing)
		switch {
		case db.IsNoRows(err):
			if _, err := tx.Exec(ctx, `
        INSERT INTO items (item_name, stock, unit, external_id)
        VALUES ($1, $2, $3, $4)
      `, item.ItemName, item.Stock, item.Unit, item.ID); err != nil {
				return 0, err
			}
			synced++
		case err == nil:
			if _, err := tx.Exec(ctx, `
        UPDATE items SET item_name = $1, stock = $2, unit = $3, updated_at = CURRENT_TIMESTAMP
        WHERE external_id = $4
      `, item.ItemName, item.Stock, item.Unit, item.ID); err != nil {
				return 0, err
			}
		default:
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return synced, nil
}
