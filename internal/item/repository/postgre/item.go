package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"item-catalog/internal/item"
	repo "item-catalog/internal/item/repository"
)

const itemColumns = "id, title, description, photo_url, created_at, updated_at"

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (item.Item, error) {
	var (
		it    item.Item
		photo sql.NullString
	)
	if err := s.Scan(&it.ID, &it.Title, &it.Description, &photo, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return item.Item{}, err
	}
	it.PhotoURL = photo.String
	return it, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateItem inserts a new Item row and returns the created entity.
// The database assigns id and both timestamps.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	const query = `
		INSERT INTO items (title, description, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + itemColumns

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.Title, opt.Description, nullable(opt.PhotoURL)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem retrieves a single Item by id.
// Returns zero-value Item (ID == "") when not found; do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = $1 LIMIT 1`

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return item.Item{}, nil // not found: zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns one page of Items and the total count matching the
// filters. The count query and the page fetch are independent reads, so they
// run concurrently on the pool.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	type countResult struct {
		total int
		err   error
	}
	countCh := make(chan countResult, 1)

	go func() {
		where, args := r.buildFilterQuery(opt)
		query := fmt.Sprintf("SELECT COUNT(*) FROM items WHERE %s", where)
		var total int
		err := r.db.QueryRowContext(ctx, query, args...).Scan(&total)
		countCh <- countResult{total: total, err: err}
	}()

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM items %s", itemColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		<-countCh
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			<-countCh
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		<-countCh
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	count := <-countCh
	if count.err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), count.err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, count.total, nil
}

// UpdateItem writes the full column set for an Item and returns the updated
// entity. Returns zero-value Item when the id does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	const query = `
		UPDATE items
		SET title = $1, description = $2, photo_url = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + itemColumns

	var photo sql.NullString
	if opt.PhotoURL != nil && *opt.PhotoURL != "" {
		photo = sql.NullString{String: *opt.PhotoURL, Valid: true}
	}

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.Title, opt.Description, photo, time.Now(), opt.ID))
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteItem removes an Item by id and returns the deleted row, so the caller
// learns which photo file to clean up. Zero-value Item when nothing matched.
func (r *implRepository) DeleteItem(ctx context.Context, id string) (item.Item, error) {
	const query = `DELETE FROM items WHERE id = $1 RETURNING ` + itemColumns

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return item.Item{}, repo.ErrFailedToDelete
	}
	return it, nil
}

// ListPhotoURLs returns every non-empty photo reference across all items.
func (r *implRepository) ListPhotoURLs(ctx context.Context) ([]string, error) {
	const query = `SELECT photo_url FROM items WHERE photo_url IS NOT NULL`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPhotoURLs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPhotoURLs"), err)
			return nil, repo.ErrFailedToList
		}
		urls = append(urls, url)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListPhotoURLs"), err)
		return nil, repo.ErrFailedToList
	}
	return urls, nil
}
