package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nicsan-site/internal/entity"
)

func int64Ptr(v int64) *int64 { return &v }

func storedLead(req *entity.LeadRequest) *entity.Lead {
	return &entity.Lead{
		ID:           "7b4f2c1e-0d7a-4c55-9d1e-2f0a9c1b3e11",
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		FormData:     req.FormData,
		Status:       entity.LeadStatusPending,
		CreatedAt:    time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

// TestSubmitLeadReturnsStoreIdentity - id and created_at come from the store, never the caller
func TestSubmitLeadReturnsStoreIdentity(t *testing.T) {
	leads := new(MockLeadRepository)
	products := new(MockProductRepository)
	dispatcher := new(MockDispatcher)

	req := entity.LeadRequest{
		ProductID:    int64Ptr(1),
		CustomerName: "Asha",
		PhoneNumber:  "9999999999",
		Email:        "asha@example.com",
		FormData:     entity.FormData{{Key: "Name", Value: "Asha"}, {Key: "Age", Value: "34"}},
	}

	leads.On("Create", mock.Anything, mock.AnythingOfType("*entity.LeadRequest")).
		Return(func(_ context.Context, r *entity.LeadRequest) *entity.Lead { return storedLead(r) }, nil)
	products.On("FindByID", mock.Anything, int64(1)).Return(&entity.Product{ID: 1, Name: "Health"}, nil)
	dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(n entity.LeadNotification) bool {
		return n.ProductName == "Health" && n.Lead.ID != ""
	})).Return(nil).Once()

	uc := NewSubmitLeadUseCase(leads, products, dispatcher, time.Second, nil)
	lead, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.Equal(t, entity.LeadStatusPending, lead.Status)
	leads.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

// TestSubmitLeadNotificationFailureKeepsResult - a failing channel never fails the submission
func TestSubmitLeadNotificationFailureKeepsResult(t *testing.T) {
	leads := new(MockLeadRepository)
	dispatcher := new(MockDispatcher)

	leads.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r *entity.LeadRequest) *entity.Lead { return storedLead(r) }, nil)
	dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(errors.New("relay returned 500")).Once()

	uc := NewSubmitLeadUseCase(leads, nil, dispatcher, time.Second, nil)
	lead, err := uc.Execute(context.Background(), entity.LeadRequest{CustomerName: "Ravi"})

	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, "Ravi", lead.CustomerName)
	dispatcher.AssertExpectations(t)
}

func TestSubmitLeadPersistFailureIsSurfaced(t *testing.T) {
	leads := new(MockLeadRepository)
	dispatcher := new(MockDispatcher)

	leads.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert or update violates foreign key constraint"))

	uc := NewSubmitLeadUseCase(leads, nil, dispatcher, time.Second, nil)
	lead, err := uc.Execute(context.Background(), entity.LeadRequest{ProductID: int64Ptr(99)})

	assert.Nil(t, lead)
	require.Error(t, err)
	var te *TechnicalError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, CodeLeadPersistFailed, te.Code)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestSubmitLeadProductNameResolution(t *testing.T) {
	tests := []struct {
		name      string
		productID *int64
		lookup    func(*MockProductRepository)
		want      string
	}{
		{"general inquiry", nil, func(*MockProductRepository) {}, GeneralInquiry},
		{"known product", int64Ptr(4), func(m *MockProductRepository) {
			m.On("FindByID", mock.Anything, int64(4)).Return(&entity.Product{ID: 4, Name: "Travel"}, nil)
		}, "Travel"},
		{"lookup fails", int64Ptr(8), func(m *MockProductRepository) {
			m.On("FindByID", mock.Anything, int64(8)).Return(nil, entity.ErrProductNotFound)
		}, UnknownProduct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leads := new(MockLeadRepository)
			products := new(MockProductRepository)
			dispatcher := new(MockDispatcher)
			tt.lookup(products)

			leads.On("Create", mock.Anything, mock.Anything).
				Return(func(_ context.Context, r *entity.LeadRequest) *entity.Lead { return storedLead(r) }, nil)
			dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(n entity.LeadNotification) bool {
				return n.ProductName == tt.want
			})).Return(nil).Once()

			uc := NewSubmitLeadUseCase(leads, products, dispatcher, time.Second, nil)
			_, err := uc.Execute(context.Background(), entity.LeadRequest{ProductID: tt.productID})

			require.NoError(t, err)
			dispatcher.AssertExpectations(t)
		})
	}
}

// TestSubmitLeadHeroForm - generic hero form creates one general inquiry with the contact columns filled
func TestSubmitLeadHeroForm(t *testing.T) {
	leads := new(MockLeadRepository)
	dispatcher := new(MockDispatcher)

	var captured *entity.LeadRequest
	leads.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*entity.LeadRequest) }).
		Return(func(_ context.Context, r *entity.LeadRequest) *entity.Lead { return storedLead(r) }, nil).
		Once()
	dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil).Once()

	uc := NewSubmitLeadUseCase(leads, nil, dispatcher, time.Second, nil)
	lead, err := uc.Execute(context.Background(), entity.LeadRequest{
		FormData: entity.FormData{{Key: "name", Value: "Ravi"}, {Key: "phone", Value: "9123456789"}},
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Nil(t, captured.ProductID)
	assert.Equal(t, "Ravi", captured.CustomerName)
	assert.Equal(t, "9123456789", captured.PhoneNumber)
	assert.Equal(t, "Ravi", lead.CustomerName)
	assert.Nil(t, lead.ProductID)
	leads.AssertNumberOfCalls(t, "Create", 1)
	dispatcher.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestSubmitLeadNotifySurvivesCancelledRequest(t *testing.T) {
	leads := new(MockLeadRepository)
	dispatcher := new(MockDispatcher)

	ctx, cancel := context.WithCancel(context.Background())

	leads.On("Create", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(func(_ context.Context, r *entity.LeadRequest) *entity.Lead { return storedLead(r) }, nil)
	dispatcher.On("Dispatch", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), mock.Anything).
		Return(nil).Once()

	uc := NewSubmitLeadUseCase(leads, nil, dispatcher, time.Second, nil)
	_, err := uc.Execute(ctx, entity.LeadRequest{CustomerName: "Ravi"})

	require.NoError(t, err)
	dispatcher.AssertExpectations(t)
}

func TestSubmitLeadWithoutDispatcher(t *testing.T) {
	leads := new(MockLeadRepository)
	leads.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r *entity.LeadRequest) *entity.Lead { return storedLead(r) }, nil)

	uc := NewSubmitLeadUseCase(leads, nil, nil, 0, nil)
	lead, err := uc.Execute(context.Background(), entity.LeadRequest{})

	require.NoError(t, err)
	assert.NotNil(t, lead)
	assert.Equal(t, defaultNotifyTimeout, uc.NotifyTimeout)
}

func TestNormalizeLeadInput(t *testing.T) {
	tests := []struct {
		name string
		in   entity.LeadRequest
		want entity.LeadRequest
	}{
		{
			name: "product card labels",
			in:   entity.LeadRequest{FormData: entity.FormData{{Key: "Name", Value: "Asha"}, {Key: "Phone No.", Value: "9999999999"}}},
			want: entity.LeadRequest{CustomerName: "Asha", PhoneNumber: "9999999999", FormData: entity.FormData{{Key: "Name", Value: "Asha"}, {Key: "Phone No.", Value: "9999999999"}}},
		},
		{
			name: "explicit columns win",
			in:   entity.LeadRequest{CustomerName: " Ravi ", FormData: entity.FormData{{Key: "name", Value: "Someone"}, {Key: "email", Value: "r@example.com"}}},
			want: entity.LeadRequest{CustomerName: "Ravi", Email: "r@example.com", FormData: entity.FormData{{Key: "name", Value: "Someone"}, {Key: "email", Value: "r@example.com"}}},
		},
		{
			name: "everything empty",
			in:   entity.LeadRequest{},
			want: entity.LeadRequest{FormData: entity.FormData{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLeadInput(tt.in))
		})
	}
}
