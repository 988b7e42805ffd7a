package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

var leadCols = []string{"id", "product_id", "customer_name", "phone_number", "email", "form_data",
	"status", "notes", "scheduled_at", "created_at", "updated_at"}

const leadID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func TestCreateLead(t *testing.T) {
	_, repo, mock := newMock(t)
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	req := &entity.LeadRequest{
		CustomerName: "Ravi",
		PhoneNumber:  "9123456789",
		FormData:     entity.FormData{{Key: "name", Value: "Ravi"}, {Key: "phone", Value: "9123456789"}},
	}

	mock.ExpectQuery(`INSERT INTO safety_call_requests`).
		WithArgs(sqlmock.AnyArg(), nil, "Ravi", "9123456789", "", []byte(`{"name":"Ravi","phone":"9123456789"}`)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "created_at", "updated_at"}).AddRow("pending", now, now))

	lead, err := repo.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, lead.ID, 36)
	assert.Nil(t, lead.ProductID)
	assert.Equal(t, entity.LeadStatusPending, lead.Status)
	assert.Equal(t, now, lead.CreatedAt)
	assert.Equal(t, req.FormData, lead.FormData)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLeadUnknownProduct(t *testing.T) {
	_, repo, mock := newMock(t)
	id := int64(404)
	mock.ExpectQuery(`INSERT INTO safety_call_requests`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Create(context.Background(), &entity.LeadRequest{ProductID: &id})
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestListLeadsBuildsFilters(t *testing.T) {
	_, repo, mock := newMock(t)
	productID := int64(2)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM safety_call_requests WHERE status = \$1 AND product_id = \$2 ORDER BY created_at DESC LIMIT \$3`).
		WithArgs("pending", int64(2), 10).
		WillReturnRows(sqlmock.NewRows(leadCols).
			AddRow(leadID, 2, "Asha", "9999999999", "", []byte(`{"Name":"Asha"}`), "pending", nil, nil, now, now))

	leads, err := repo.List(context.Background(), entity.LeadFilter{Status: entity.LeadStatusPending, ProductID: &productID, Limit: 10})

	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, int64(2), *leads[0].ProductID)
	assert.Equal(t, "Asha", leads[0].FormData.First("Name"))
	assert.Nil(t, leads[0].ScheduledAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLeadsNoFilter(t *testing.T) {
	_, repo, mock := newMock(t)
	mock.ExpectQuery(`SELECT .* FROM safety_call_requests ORDER BY created_at DESC$`).
		WithoutArgs().
		WillReturnRows(sqlmock.NewRows(leadCols))

	leads, err := repo.List(context.Background(), entity.LeadFilter{})
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestFindLeadByID(t *testing.T) {
	_, repo, mock := newMock(t)

	_, err := repo.FindByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)

	mock.ExpectQuery(`WHERE id = \$1`).WithArgs(leadID).WillReturnRows(sqlmock.NewRows(leadCols))
	_, err = repo.FindByID(context.Background(), leadID)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestUpdateLeadStatus(t *testing.T) {
	_, repo, mock := newMock(t)
	now := time.Now().UTC()
	at := now.Add(48 * time.Hour)
	notes := "call after 6pm"

	mock.ExpectQuery(`UPDATE safety_call_requests SET status = \$1`).
		WithArgs("scheduled", notes, at, leadID).
		WillReturnRows(sqlmock.NewRows(leadCols).
			AddRow(leadID, nil, "Ravi", "9123456789", "", []byte(`{}`), "scheduled", notes, at, now, now))

	lead, err := repo.UpdateStatus(context.Background(), leadID, entity.LeadStatusUpdate{
		Status:      entity.LeadStatusScheduled,
		Notes:       &notes,
		ScheduledAt: &at,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusScheduled, lead.Status)
	assert.Equal(t, notes, lead.Notes)
	require.NotNil(t, lead.ScheduledAt)
	assert.True(t, at.Equal(*lead.ScheduledAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSnapshots(t *testing.T) {
	_, repo, mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT status, created_at FROM safety_call_requests`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "created_at"}).
			AddRow("pending", now).
			AddRow("completed", now.AddDate(0, 0, -10)))

	snapshots, err := repo.ListSnapshots(context.Background())

	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, entity.LeadStatusCompleted, snapshots[1].Status)
}
