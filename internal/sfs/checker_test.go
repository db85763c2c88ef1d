package sfs

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*HTTPChecker, *clients.MockHTTPClientI, *[]time.Duration) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	checker := NewHTTPChecker("http://sfs.local", client)
	var slept []time.Duration
	checker.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return ctx.Err()
	}
	return checker, client, &slept
}

func TestHTTPChecker_Check(t *testing.T) {
	app := domain.Application{
		ReferenceNumber:   "AES-2025-ABC123",
		PostsecondaryInfo: domain.PostsecondaryInfo{InstitutionName: "University of Calgary"},
	}
	const target = "http://sfs.local/api/enrollments/AES-2025-ABC123?institution=University+of+Calgary"

	tests := []struct {
		name          string
		prepareMock   func(client *clients.MockHTTPClientI)
		expected      Result
		expectedError string
		expectedSleep []time.Duration
	}{
		{
			name: "Confirmed",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), target, gomock.Any()).
					Return(http.StatusOK, []byte(`{"reference":"AES-2025-ABC123","status":"CONFIRMED","sfs_id":"SFS-9"}`), http.Header{}, nil)
			},
			expected: Result{Confirmed: true, SFSID: "SFS-9"},
		},
		{
			name: "Known but not confirmed",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), target, gomock.Any()).
					Return(http.StatusOK, []byte(`{"reference":"AES-2025-ABC123","status":"PENDING"}`), http.Header{}, nil)
			},
		},
		{
			name: "No record",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), target, gomock.Any()).Return(http.StatusNoContent, nil, http.Header{}, nil)
			},
		},
		{
			name: "Reference mismatch",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), target, gomock.Any()).
					Return(http.StatusOK, []byte(`{"reference":"AES-2025-FFFFFF","status":"CONFIRMED"}`), http.Header{}, nil)
			},
			expectedError: "reference mismatch: expected AES-2025-ABC123, got AES-2025-FFFFFF",
		},
		{
			name: "Bad body",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), target, gomock.Any()).Return(http.StatusOK, []byte(`{oops`), http.Header{}, nil)
			},
			expectedError: "failed to parse sfs response: invalid character 'o' looking for beginning of object key string",
		},
		{
			name: "Transport failure after retries",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), target, gomock.Any()).Return(0, nil, nil, errors.New("connection refused")).Times(3)
			},
			expectedError: "sfs lookup for AES-2025-ABC123 failed after 3 retries: connection refused",
			expectedSleep: []time.Duration{time.Second, 2 * time.Second},
		},
		{
			name: "Rate limit honours Retry-After",
			prepareMock: func(client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Get(gomock.Any(), target, gomock.Any()).
						Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"4"}}, nil),
					client.EXPECT().Get(gomock.Any(), target, gomock.Any()).Return(http.StatusNoContent, nil, http.Header{}, nil),
				)
			},
			expectedSleep: []time.Duration{4 * time.Second},
		},
		{
			name: "Unexpected status",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Get(gomock.Any(), target, gomock.Any()).Return(http.StatusTeapot, nil, http.Header{}, nil)
			},
			expectedError: ErrUnexpectedStatus.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, client, slept := NewMock(t)
			tt.prepareMock(client)

			res, err := checker.Check(context.Background(), app)
			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			}
			assert.Equal(t, tt.expectedSleep, *slept)
		})
	}
}

func TestHTTPChecker_CanceledContext(t *testing.T) {
	checker, _, _ := NewMock(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checker.Check(ctx, domain.Application{ReferenceNumber: "AES-2025-ABC123"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStub_Check(t *testing.T) {
	stub := NewStub(1)
	partTime := domain.Application{PostsecondaryInfo: domain.PostsecondaryInfo{EnrollmentStatus: "part_time"}}
	for i := 0; i < 50; i++ {
		res, err := stub.Check(context.Background(), partTime)
		assert.NoError(t, err)
		assert.False(t, res.Confirmed)
	}

	fullTime := domain.Application{PostsecondaryInfo: domain.PostsecondaryInfo{EnrollmentStatus: "full_time"}}
	hits := 0
	for i := 0; i < 1000; i++ {
		res, _ := stub.Check(context.Background(), fullTime)
		if res.Confirmed {
			hits++
			assert.Contains(t, res.SFSID, "SFS-")
		}
	}
	assert.InDelta(t, 300, hits, 80)
}

func TestNew(t *testing.T) {
	assert.IsType(t, &Stub{}, New("", nil))
	assert.IsType(t, &HTTPChecker{}, New("http://sfs", clients.NewHTTPClient()))
}
