package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

const leadColumns = `id, product_id, customer_name, phone_number, email, form_data,
	status, notes, scheduled_at, created_at, updated_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		l           entity.Lead
		productID   sql.NullInt64
		formData    []byte
		status      string
		notes       sql.NullString
		scheduledAt sql.NullTime
	)
	err := row.Scan(
		&l.ID,
		&productID,
		&l.CustomerName,
		&l.PhoneNumber,
		&l.Email,
		&formData,
		&status,
		&notes,
		&scheduledAt,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if productID.Valid {
		id := productID.Int64
		l.ProductID = &id
	}
	if len(formData) > 0 {
		if err := json.Unmarshal(formData, &l.FormData); err != nil {
			return nil, fmt.Errorf("decode form_data of lead %s: %w", l.ID, err)
		}
	}
	l.Status = entity.LeadStatus(status)
	l.Notes = notes.String
	if scheduledAt.Valid {
		t := scheduledAt.Time
		l.ScheduledAt = &t
	}
	return &l, nil
}

// Create inserts one row. The returned lead keeps the caller's form_data order;
// jsonb does not preserve key order on read.
func (r *LeadRepository) Create(ctx context.Context, req *entity.LeadRequest) (*entity.Lead, error) {
	formData, err := json.Marshal(req.FormData)
	if err != nil {
		return nil, fmt.Errorf("encode form_data: %w", err)
	}

	lead := &entity.Lead{
		ID:           uuid.NewString(),
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		FormData:     req.FormData,
	}

	query := `
		INSERT INTO safety_call_requests (id, product_id, customer_name, phone_number, email, form_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING status, created_at, updated_at`

	var status string
	err = r.DB.QueryRowContext(ctx, query,
		lead.ID,
		req.ProductID,
		req.CustomerName,
		req.PhoneNumber,
		req.Email,
		formData,
	).Scan(&status, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("create lead: %w", entity.ErrProductNotFound)
		}
		return nil, fmt.Errorf("create lead: %w", err)
	}
	lead.Status = entity.LeadStatus(status)
	return lead, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entity.ErrLeadNotFound
	}

	l, err := scanLead(r.DB.QueryRowContext(ctx,
		`SELECT `+leadColumns+` FROM safety_call_requests WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find lead %s: %w", id, err)
	}
	return l, nil
}

// List applies equality filters and returns the newest leads first.
func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.ProductID != nil {
		args = append(args, *filter.ProductID)
		where = append(where, fmt.Sprintf("product_id = $%d", len(args)))
	}

	query := `SELECT ` + leadColumns + ` FROM safety_call_requests`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, update entity.LeadStatusUpdate) (*entity.Lead, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entity.ErrLeadNotFound
	}

	query := `
		UPDATE safety_call_requests
		SET status = $1,
			notes = COALESCE($2, notes),
			scheduled_at = COALESCE($3, scheduled_at),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + leadColumns

	l, err := scanLead(r.DB.QueryRowContext(ctx, query,
		string(update.Status),
		update.Notes,
		update.ScheduledAt,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update lead %s: %w", id, err)
	}
	return l, nil
}

func (r *LeadRepository) ListSnapshots(ctx context.Context) ([]entity.LeadSnapshot, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, created_at FROM safety_call_requests`)
	if err != nil {
		return nil, fmt.Errorf("list lead snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []entity.LeadSnapshot{}
	for rows.Next() {
		var (
			s      entity.LeadSnapshot
			status string
		)
		if err := rows.Scan(&status, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Status = entity.LeadStatus(status)
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lead snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *LeadRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
