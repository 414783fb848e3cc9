package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/khlug/booking/internal/booking/domain"
)

type booksRepo struct {
	q queryer
}

// bookStockColumns joins book_info with book_collection. The LEFT JOIN and
// COALESCE mirror the possibility of a catalog entry without counters; in
// practice CreateBook always writes both rows.
const bookStockColumns = `bi.isbn, bi.title, bi.author, bi.publisher, bi.published_year,
	bi.language, bi.pages, bi.cover_url, bi.created_at, bi.updated_at,
	COALESCE(bc.total_count, 0), COALESCE(bc.available_count, 0)`

const bookStockFrom = ` FROM book_info bi LEFT JOIN book_collection bc ON bi.isbn = bc.isbn`

func scanBookStock(scanner interface{ Scan(dest ...any) error }) (domain.BookStock, error) {
	var (
		b         domain.BookStock
		author    sql.NullString
		publisher sql.NullString
		pubYear   sql.NullInt64
		language  sql.NullString
		pages     sql.NullInt64
		coverURL  sql.NullString
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&b.ISBN, &b.Title, &author, &publisher, &pubYear,
		&language, &pages, &coverURL, &createdAt, &updatedAt,
		&b.TotalCount, &b.AvailableCount,
	)
	if err != nil {
		return domain.BookStock{}, err
	}

	b.Author = mapNullString(author)
	b.Publisher = mapNullString(publisher)
	b.PublishedYear = int(pubYear.Int64)
	b.Language = mapNullString(language)
	b.Pages = int(pages.Int64)
	b.CoverURL = mapNullString(coverURL)

	if b.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.BookStock{}, err
	}
	if b.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.BookStock{}, err
	}
	return b, nil
}

func (r *booksRepo) GetBookStock(ctx context.Context, isbn string) (domain.BookStock, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+bookStockColumns+bookStockFrom+` WHERE bi.isbn = ?`, isbn)

	b, err := scanBookStock(row)
	if err != nil {
		return domain.BookStock{}, mapNotFound(err)
	}
	return b, nil
}

func (r *booksRepo) ListBookStock(ctx context.Context) ([]domain.BookStock, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+bookStockColumns+bookStockFrom+` ORDER BY bi.title, bi.isbn`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.BookStock
	for rows.Next() {
		b, err := scanBookStock(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *booksRepo) CreateBook(ctx context.Context, b domain.Book, totalCount int) error {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO book_info (isbn, title, author, publisher, published_year, language, pages, cover_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ISBN, b.Title, mapStringNull(b.Author), mapStringNull(b.Publisher),
		mapIntNull(b.PublishedYear), mapStringNull(b.Language), mapIntNull(b.Pages),
		mapStringNull(b.CoverURL), formatTime(b.CreatedAt), formatTime(b.UpdatedAt))
	if err != nil {
		return mapConstraint(err)
	}

	_, err = r.q.ExecContext(ctx,
		`INSERT INTO book_collection (isbn, total_count, available_count) VALUES (?, ?, ?)`,
		b.ISBN, totalCount, totalCount)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *booksRepo) UpdateBookInfo(ctx context.Context, b domain.Book) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE book_info
		 SET title = ?, author = ?, publisher = ?, published_year = ?, language = ?, pages = ?, cover_url = ?, updated_at = ?
		 WHERE isbn = ?`,
		b.Title, mapStringNull(b.Author), mapStringNull(b.Publisher),
		mapIntNull(b.PublishedYear), mapStringNull(b.Language), mapIntNull(b.Pages),
		mapStringNull(b.CoverURL), formatTime(time.Now()), b.ISBN)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *booksRepo) SetCounts(ctx context.Context, isbn string, total, available int) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE book_collection SET total_count = ?, available_count = ? WHERE isbn = ?`,
		total, available, isbn)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

// DecrementAvailable is the check-and-decrement half of a borrow. The guard
// in the WHERE clause keeps available_count from going negative even under
// concurrent borrows of the same last copy.
func (r *booksRepo) DecrementAvailable(ctx context.Context, isbn string) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE book_collection SET available_count = available_count - 1
		 WHERE isbn = ? AND available_count > 0`, isbn)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IncrementAvailable is the counterpart for a return; the guard refuses to
// push available_count past total_count.
func (r *booksRepo) IncrementAvailable(ctx context.Context, isbn string) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE book_collection SET available_count = available_count + 1
		 WHERE isbn = ? AND available_count < total_count`, isbn)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *booksRepo) DeleteBook(ctx context.Context, isbn string) error {
	// loans and book_collection cascade from book_info.
	res, err := r.q.ExecContext(ctx, `DELETE FROM book_info WHERE isbn = ?`, isbn)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
