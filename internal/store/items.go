package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mvidmar/itemsvc/internal/model"
)

// ItemPatch carries the fields present in an update request. A nil field
// leaves the stored value untouched. Description with Valid=false sets
// the column to NULL.
type ItemPatch struct {
	Name        *string
	Description *sql.NullString
}

// CreateItem inserts a new item and returns the persisted row, including
// the generated id and created_at.
func CreateItem(ctx context.Context, db *sql.DB, name string, description *string) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (name, description) VALUES (?, ?)`,
		name, description,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	var description, imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, image_mime, created_at FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &description, &imageMime, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, itemNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	if description.Valid {
		item.Description = &description.String
	}
	item.ImageMime = imageMime.String
	return item, nil
}

// ListItems returns items ordered newest first, paginated by offset and
// limit. The id tiebreak keeps the order stable when created_at collides
// within sqlite's one-second timestamp resolution. Limit is deliberately
// not capped.
func ListItems(ctx context.Context, db *sql.DB, skip, limit int) ([]model.Item, error) {
	if skip < 0 {
		return nil, &BadRequestError{Message: "skip must be non-negative"}
	}
	if limit < 0 {
		return nil, &BadRequestError{Message: "limit must be non-negative"}
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, image_mime, created_at
		 FROM items ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description, imageMime sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &imageMime, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		if description.Valid {
			item.Description = &description.String
		}
		item.ImageMime = imageMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem applies the patch to an item and returns the updated row.
// It fails with NotFoundError before touching anything if the item does
// not exist. created_at is never modified.
func UpdateItem(ctx context.Context, db *sql.DB, id int64, patch ItemPatch) (*model.Item, error) {
	current, err := GetItem(ctx, db, id)
	if err != nil {
		return nil, err
	}

	name := current.Name
	if patch.Name != nil {
		name = *patch.Name
	}

	var description sql.NullString
	if current.Description != nil {
		description = sql.NullString{String: *current.Description, Valid: true}
	}
	if patch.Description != nil {
		description = *patch.Description
	}

	if _, err := db.ExecContext(ctx,
		`UPDATE items SET name = ?, description = ? WHERE id = ?`,
		name, description, id,
	); err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// DeleteItem permanently removes an item.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if affected == 0 {
		return itemNotFound(id)
	}
	return nil
}

// SetItemImage stores an item's image data.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, data []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ? WHERE id = ?`,
		data, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	if affected == 0 {
		return itemNotFound(id)
	}
	return nil
}

// GetItemImage returns an item's image data and MIME type. It returns
// nil data without an error when the item exists but has no image.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", itemNotFound(id)
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}
