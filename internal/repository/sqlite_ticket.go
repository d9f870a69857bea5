package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cutsheet/internal/db"
	"github.com/alexanderramin/cutsheet/internal/domain"
)

// SQLiteTicketRepo implements TicketRepo using a SQLite database.
type SQLiteTicketRepo struct {
	db db.DBTX
}

// NewSQLiteTicketRepo creates a repo over a database or a transaction.
func NewSQLiteTicketRepo(conn db.DBTX) *SQLiteTicketRepo {
	return &SQLiteTicketRepo{db: conn}
}

const ticketColumns = `id, number, customer, job_site, scheduled_date, work_types,
	description, recommendations, created_at, updated_at`

func (r *SQLiteTicketRepo) Create(ctx context.Context, t *domain.Ticket) error {
	workTypes, err := encodeList(t.WorkTypes)
	if err != nil {
		return fmt.Errorf("inserting ticket: %w", err)
	}
	recs, err := encodeList(t.Recommendations)
	if err != nil {
		return fmt.Errorf("inserting ticket: %w", err)
	}

	query := `INSERT INTO tickets (` + ticketColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		t.ID,
		t.Number,
		t.Customer,
		t.JobSite,
		nullableTimeToString(t.ScheduledDate, dateLayout),
		workTypes,
		t.Description,
		recs,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting ticket: %w", err)
	}

	for i, it := range t.Items {
		if err := r.insertItem(ctx, t.ID, i, it); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTicketRepo) insertItem(ctx context.Context, ticketID string, pos int, it domain.WorkItem) error {
	category, data, err := domain.MarshalDetails(it.Details)
	if err != nil {
		return fmt.Errorf("inserting %s work item: %w", it.WorkType, err)
	}
	query := `INSERT INTO ticket_work_items (ticket_id, work_type, position, quantity, unit, notes, details_category, details_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		ticketID,
		string(it.WorkType),
		pos,
		it.Quantity,
		string(it.Unit),
		it.Notes,
		nullableBytes([]byte(category)),
		nullableBytes(data),
	)
	if err != nil {
		return fmt.Errorf("inserting %s work item: %w", it.WorkType, err)
	}
	return nil
}

func (r *SQLiteTicketRepo) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = ?`
	return r.getOne(ctx, query, id)
}

func (r *SQLiteTicketRepo) GetByNumber(ctx context.Context, number string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE UPPER(number) = UPPER(?)`
	return r.getOne(ctx, query, number)
}

func (r *SQLiteTicketRepo) getOne(ctx context.Context, query string, arg string) (*domain.Ticket, error) {
	t, err := scanTicket(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ticket %s: %w", arg, domain.ErrNotFound)
		}
		return nil, err
	}
	if t.Items, err = r.listItems(ctx, t.ID); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *SQLiteTicketRepo) listItems(ctx context.Context, ticketID string) ([]domain.WorkItem, error) {
	query := `SELECT work_type, quantity, unit, notes, details_category, details_json
		FROM ticket_work_items WHERE ticket_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}
	defer rows.Close()

	var items []domain.WorkItem
	for rows.Next() {
		var it domain.WorkItem
		var workType, unit string
		var category, data sql.NullString
		if err := rows.Scan(&workType, &it.Quantity, &unit, &it.Notes, &category, &data); err != nil {
			return nil, fmt.Errorf("scanning work item row: %w", err)
		}
		it.WorkType = domain.WorkTypeID(workType)
		it.Unit = domain.Unit(unit)
		it.Details, err = domain.UnmarshalDetails(domain.DetailsCategory(category.String), []byte(data.String))
		if err != nil {
			return nil, fmt.Errorf("%s work item: %w", workType, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work items: %w", err)
	}
	return items, nil
}

func (r *SQLiteTicketRepo) List(ctx context.Context, f TicketFilter) ([]*domain.Ticket, error) {
	var where []string
	var args []any
	if f.Customer != "" {
		where = append(where, "customer LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(f.Customer)+"%")
	}
	query := `SELECT ` + ticketColumns + ` FROM tickets`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, number"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tickets: %w", err)
	}
	return tickets, nil
}

// Delete removes the ticket; its work items go with it via ON DELETE CASCADE.
func (r *SQLiteTicketRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting ticket: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting ticket: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanTicket(s scanner) (*domain.Ticket, error) {
	var t domain.Ticket
	var scheduled sql.NullString
	var workTypes, recs, createdAtStr, updatedAtStr string

	err := s.Scan(
		&t.ID, &t.Number, &t.Customer, &t.JobSite, &scheduled,
		&workTypes, &t.Description, &recs,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning ticket: %w", err)
	}

	if t.WorkTypes, err = decodeList[domain.WorkTypeID](workTypes); err != nil {
		return nil, fmt.Errorf("ticket %s work_types: %w", t.Number, err)
	}
	if t.Recommendations, err = decodeList[string](recs); err != nil {
		return nil, fmt.Errorf("ticket %s recommendations: %w", t.Number, err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	t.ScheduledDate = parseNullableTime(scheduled, dateLayout)
	return &t, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
