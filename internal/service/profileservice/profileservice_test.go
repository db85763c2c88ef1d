package profileservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	users    *MockUserRepo
	banking  *MockBankingRepo
	lookups  *MockLookupRepo
	activity *MockActivity
	cipher   *MockCipher
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		users:    NewMockUserRepo(ctrl),
		banking:  NewMockBankingRepo(ctrl),
		lookups:  NewMockLookupRepo(ctrl),
		activity: NewMockActivity(ctrl),
		cipher:   NewMockCipher(ctrl),
	}
	service := New(m.users, m.banking, m.lookups, m.activity, m.cipher)
	service.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	defer ctrl.Finish()
	return service, m
}

func validInput(sin string) domain.ProfileInput {
	dob := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	yes := true
	return domain.ProfileInput{
		FirstName: "Jane", LastName: "Doe", DateOfBirth: &dob, SIN: sin,
		Phone: "(780) 555-1234", AddressLine1: "1 Main St", City: "Edmonton", Province: "AB",
		PostalCode: "t5j 2n9", CitizenshipStatus: "citizen", ResidencyStatus: &yes,
	}
}

func TestCreateProfile(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name          string
		input         domain.ProfileInput
		prepareMock   func()
		expectedError error
		check         func(t *testing.T, v *domain.ProfileView)
	}{
		{
			name:          "Validation errors are itemized",
			input:         domain.ProfileInput{SIN: "12"},
			prepareMock:   func() {},
			expectedError: &domain.Error{},
		},
		{
			name:  "Valid profile is saved and encrypted",
			input: validInput("046-454-286"),
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{ID: userID, Email: "jane@example.com"}, nil)
				m.cipher.EXPECT().Encrypt("046454286").Return("iv:ct", nil)
				m.users.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
					assert.Equal(t, "Jane Doe", u.DisplayName)
					assert.Equal(t, "7805551234", u.Phone)
					assert.Equal(t, "T5J 2N9", u.PostalCode)
					assert.Equal(t, "iv:ct", u.SINEncrypted)
					assert.True(t, u.ProfileComplete)
					return nil
				})
				m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())
				m.cipher.EXPECT().Mask("iv:ct").Return("***-***-286")
			},
			check: func(t *testing.T, v *domain.ProfileView) {
				assert.Equal(t, "***-***-286", v.SINMasked)
			},
		},
		{
			name:  "SIN failing checksum is flagged",
			input: validInput("123456789"),
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{ID: userID}, nil)
				m.cipher.EXPECT().Encrypt("123456789").Return("iv:ct", nil)
				m.users.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(nil)
				created := m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())
				m.activity.EXPECT().Audit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e domain.AuditEntry) {
					assert.Equal(t, domain.AuditSINChecksumFailed, e.Action)
				}).After(created)
				m.cipher.EXPECT().Mask("iv:ct").Return("***-***-789")
			},
		},
		{
			name:  "Unknown user",
			input: validInput("046454286"),
			prepareMock: func() {
				m.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			view, err := service.CreateProfile(context.Background(), userID, tt.input)
			if tt.expectedError != nil {
				assert.IsType(t, tt.expectedError, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, view)
			}
		})
	}
}

func TestCreateProfile_ListsEveryProblem(t *testing.T) {
	service, _ := NewMock(t)
	_, err := service.CreateProfile(context.Background(), uuid.New(), domain.ProfileInput{Phone: "123"})

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 400, de.Status)
	assert.Contains(t, de.Errors, "First name is required")
	assert.Contains(t, de.Errors, "Phone must be 10 digits")
	assert.Contains(t, de.Errors, "Date of birth is required")
}

func TestUpdateProfile(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	bad := "555"
	name := "Janet"

	_, err := service.UpdateProfile(context.Background(), userID, domain.ProfilePatch{Phone: &bad})
	assert.Equal(t, domain.Invalid("Validation failed", []string{"Phone must be 10 digits"}), err)

	split := "Jane|Doe"
	_, err = service.UpdateProfile(context.Background(), userID, domain.ProfilePatch{LastName: &split})
	assert.Equal(t, domain.Invalid("Validation failed", []string{"Last name contains invalid characters"}), err)

	m.users.EXPECT().FindByID(gomock.Any(), userID).Return(&domain.User{ID: userID, FirstName: "Jane", LastName: "Doe"}, nil)
	m.users.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
		assert.Equal(t, "Janet Doe", u.DisplayName)
		return nil
	})
	m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())
	m.cipher.EXPECT().Mask("").Return("")

	view, err := service.UpdateProfile(context.Background(), userID, domain.ProfilePatch{FirstName: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Janet", view.FirstName)
}

func TestSaveBanking(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	other := uuid.New()
	staff := uuid.New()
	in := domain.BankingInput{InstitutionNumber: "001", TransitNumber: "12345", AccountNumber: "9876543210", AuthorizationSigned: true}

	tests := []struct {
		name          string
		input         domain.BankingInput
		prepareMock   func()
		expectedError error
		duplicate     bool
	}{
		{
			name:  "Invalid numbers",
			input: domain.BankingInput{InstitutionNumber: "1", TransitNumber: "1", AccountNumber: "x", AuthorizationSigned: true},
			expectedError: domain.Invalid("Validation failed", []string{
				"Institution number must be exactly 3 digits",
				"Transit number must be exactly 5 digits",
				"Account number must be 1-12 digits",
			}),
			prepareMock: func() {},
		},
		{
			name:  "Saved without duplicates",
			input: in,
			prepareMock: func() {
				m.banking.EXPECT().SharedWith(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.banking.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.BankingInfo) (*domain.BankingInfo, error) {
					b.ID = uuid.New()
					return b, nil
				})
				m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
		},
		{
			name:  "Shared account alerts staff",
			input: in,
			prepareMock: func() {
				m.banking.EXPECT().SharedWith(gomock.Any(), gomock.Any()).Return([]uuid.UUID{other}, nil)
				m.banking.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.BankingInfo) (*domain.BankingInfo, error) {
					return b, nil
				})
				m.activity.EXPECT().Audit(gomock.Any(), gomock.Any()).Times(2)
				m.users.EXPECT().FindByRoles(gomock.Any(), domain.StaffRoles).Return([]domain.User{{ID: staff}}, nil)
				m.activity.EXPECT().NotifyMany(gomock.Any(), []uuid.UUID{staff}, nil, domain.NotifyActionRequired,
					"Duplicate Bank Account Detected", gomock.Any())
			},
			duplicate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			res, err := service.SaveBanking(context.Background(), userID, tt.input)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.duplicate, res.DuplicateFlag)
			assert.Equal(t, "****3210", res.AccountNumber)
		})
	}
}

func TestGetBanking(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()

	m.banking.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
	b, err := service.GetBanking(context.Background(), userID)
	assert.NoError(t, err)
	assert.Nil(t, b)

	m.banking.EXPECT().FindByUserID(gomock.Any(), userID).Return(&domain.BankingInfo{AccountNumber: "1234567"}, nil)
	b, err = service.GetBanking(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "****4567", b.AccountNumber)
}

func TestLookup(t *testing.T) {
	service, m := NewMock(t)

	statuses, err := service.Lookup(context.Background(), "application_statuses")
	assert.NoError(t, err)
	assert.Len(t, statuses, len(domain.AllStatuses))

	roles, err := service.Lookup(context.Background(), "user_roles")
	assert.NoError(t, err)
	assert.Equal(t, domain.Lookup{Code: "finance", Label: "Finance"}, roles[len(roles)-1])

	m.lookups.EXPECT().List(gomock.Any(), "provinces").Return([]domain.Lookup{{Code: "AB", Label: "Alberta"}}, nil)
	provinces, err := service.Lookup(context.Background(), "provinces")
	assert.NoError(t, err)
	assert.Len(t, provinces, 1)
}
