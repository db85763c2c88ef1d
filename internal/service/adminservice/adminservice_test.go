package adminservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	users        *MockUserRepo
	apps         *MockAppRepo
	scholarships *MockScholarshipRepo
	imports      *MockImportRepo
	audit        *MockAuditRepo
	syncer       *MockSyncer
	activity     *MockActivity
	tx           *pg.MockTXManager
}

var fixedNow = time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		users:        NewMockUserRepo(ctrl),
		apps:         NewMockAppRepo(ctrl),
		scholarships: NewMockScholarshipRepo(ctrl),
		imports:      NewMockImportRepo(ctrl),
		audit:        NewMockAuditRepo(ctrl),
		syncer:       NewMockSyncer(ctrl),
		activity:     NewMockActivity(ctrl),
		tx:           pg.NewMockTXManager(ctrl),
	}
	service := New(m.users, m.apps, m.scholarships, m.imports, m.audit, m.syncer, m.activity, m.tx)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, m
}

func (m *mocks) passthroughTx(times int) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Times(times).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestChangeRole(t *testing.T) {
	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	target := uuid.New()

	tests := []struct {
		name      string
		id        uuid.UUID
		role      string
		mockSetup func(m *mocks)
		wantErr   string
		wantMsg   string
	}{
		{
			name:    "Self demotion",
			id:      admin.ID,
			role:    "applicant",
			wantErr: "Cannot remove your own admin role",
		},
		{
			name: "Self change between admin roles",
			id:   admin.ID,
			role: "superadmin",
			mockSetup: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), admin.ID).Return(&domain.User{ID: admin.ID, Role: domain.RoleAdmin}, nil)
				m.users.EXPECT().SetRole(gomock.Any(), admin.ID, domain.RoleSuperadmin).Return(nil)
				m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())
			},
			wantMsg: "Role updated from admin to superadmin",
		},
		{
			name:    "Unknown role",
			id:      target,
			role:    "wizard",
			wantErr: "Invalid role: wizard. Valid roles: applicant, scholarship_staff, scholarship_manager, admin, superadmin, finance",
		},
		{
			name: "User not found",
			id:   target,
			role: "finance",
			mockSetup: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), target).Return(nil, nil)
			},
			wantErr: "User not found",
		},
		{
			name: "Changed",
			id:   target,
			role: "finance",
			mockSetup: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), target).Return(&domain.User{ID: target, Role: domain.RoleApplicant, DisplayName: "Bob"}, nil)
				m.users.EXPECT().SetRole(gomock.Any(), target, domain.RoleFinance).Return(nil)
				m.activity.EXPECT().Audit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e domain.AuditEntry) {
					assert.Equal(t, domain.AuditUserRoleChanged, e.Action)
					assert.Equal(t, domain.RoleApplicant, e.OldValues["role"])
					assert.Equal(t, domain.RoleFinance, e.NewValues["role"])
				})
			},
			wantMsg: "Role updated from applicant to finance",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			res, err := service.ChangeRole(context.Background(), admin, tt.id, tt.role)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, res.Message)
		})
	}
}

func TestSetBlocked(t *testing.T) {
	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("Self", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.SetBlocked(context.Background(), admin, admin.ID, true)
		assert.EqualError(t, err, "Cannot block yourself")
	})

	t.Run("Block and unblock", func(t *testing.T) {
		service, m := NewMock(t)
		target := uuid.New()
		m.users.EXPECT().FindByID(gomock.Any(), target).Return(&domain.User{ID: target}, nil).Times(2)
		m.users.EXPECT().SetBlocked(gomock.Any(), target, true).Return(nil)
		m.users.EXPECT().SetBlocked(gomock.Any(), target, false).Return(nil)
		var actions []string
		m.activity.EXPECT().Audit(gomock.Any(), gomock.Any()).Times(2).Do(func(_ context.Context, e domain.AuditEntry) {
			actions = append(actions, e.Action)
		})

		msg, err := service.SetBlocked(context.Background(), admin, target, true)
		require.NoError(t, err)
		assert.Equal(t, "User blocked", msg)
		msg, err = service.SetBlocked(context.Background(), admin, target, false)
		require.NoError(t, err)
		assert.Equal(t, "User unblocked", msg)
		assert.Equal(t, []string{domain.AuditUserBlocked, domain.AuditUserUnblocked}, actions)
	})
}

func TestRoles(t *testing.T) {
	service, _ := NewMock(t)
	roles := service.Roles()
	require.Len(t, roles, len(domain.Roles))
	assert.Equal(t, domain.RoleApplicant, roles[0].Code)
	assert.Equal(t, "Applicant", roles[0].Label)
}

func TestImportLegacy(t *testing.T) {
	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("Nothing to import", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.ImportLegacy(context.Background(), admin, nil, "")
		assert.EqualError(t, err, "No submissions provided")
	})

	t.Run("Mixed rows", func(t *testing.T) {
		service, m := NewMock(t)
		existing := &domain.User{ID: uuid.New(), Email: "old@example.com"}
		sch := &domain.Scholarship{ID: uuid.New(), Code: "RUTH"}
		subs := []domain.LegacySubmission{
			{Email: "old@example.com", FirstName: "Old", LastName: "Timer", ScholarshipCode: "RUTH"},
			{Email: "new@example.com", FirstName: "New", LastName: "Comer", ScholarshipName: "Rutherford", Status: domain.StatusApproved},
			{Email: "lost@example.com", ScholarshipCode: "NOPE"},
			{Email: "", ScholarshipCode: "RUTH"},
		}

		m.passthroughTx(1 + len(subs))
		m.users.EXPECT().FindByEmail(gomock.Any(), "old@example.com").Return(existing, nil)
		m.users.EXPECT().FindByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		m.users.EXPECT().FindByEmail(gomock.Any(), "lost@example.com").Return(existing, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleApplicant, u.Role)
			assert.Equal(t, "New Comer", u.DisplayName)
			u.ID = uuid.New()
			return u, nil
		})
		m.scholarships.EXPECT().FindByCodeOrName(gomock.Any(), "RUTH", "").Return(sch, nil)
		m.scholarships.EXPECT().FindByCodeOrName(gomock.Any(), "", "Rutherford").Return(sch, nil)
		m.scholarships.EXPECT().FindByCodeOrName(gomock.Any(), "NOPE", "").Return(nil, nil)

		var created []*domain.Application
		m.apps.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(func(_ context.Context, a *domain.Application) (*domain.Application, error) {
			created = append(created, a)
			return a, nil
		})
		m.imports.EXPECT().CreateHistory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h *domain.ImportHistory) error {
			assert.Equal(t, "legacy_import_2025-05-20", h.FileName)
			assert.Equal(t, 2, h.RecordsImported)
			assert.Equal(t, 2, h.RecordsFailed)
			assert.Equal(t, "completed_with_errors", h.Status)
			assert.Equal(t, &admin.ID, h.ImportedBy)
			return nil
		})
		m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())

		res, err := service.ImportLegacy(context.Background(), admin, subs, "")
		require.NoError(t, err)
		assert.Equal(t, 4, res.Total)
		assert.Equal(t, 2, res.Imported)
		assert.Equal(t, 2, res.Failed)
		assert.Equal(t, []domain.ImportRowError{
			{Email: "lost@example.com", Error: "Scholarship not found: NOPE"},
			{Email: "", Error: "Email is required"},
		}, res.Errors)

		require.Len(t, created, 2)
		assert.True(t, strings.HasPrefix(created[0].ReferenceNumber, "AES-LEG-"))
		assert.Equal(t, domain.StatusSubmitted, created[0].Status)
		assert.Equal(t, "Canadian Citizen", created[0].CitizenshipStatus)
		assert.True(t, created[0].PersonalInfo.Legacy)
		assert.Equal(t, fixedNow, *created[0].SubmittedAt)
		assert.Equal(t, domain.StatusApproved, created[1].Status)
	})

	t.Run("Name with a separator", func(t *testing.T) {
		service, m := NewMock(t)
		m.passthroughTx(2)
		m.imports.EXPECT().CreateHistory(gomock.Any(), gomock.Any()).Return(nil)
		m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())

		res, err := service.ImportLegacy(context.Background(), admin, []domain.LegacySubmission{
			{Email: "eve@example.com", FirstName: "Eve\nD|AES-2025-FFFFFF", LastName: "X", ScholarshipCode: "RUTH"},
		}, "")
		require.NoError(t, err)
		assert.Equal(t, 0, res.Imported)
		assert.Equal(t, []domain.ImportRowError{
			{Email: "eve@example.com", Error: "First name contains invalid characters"},
		}, res.Errors)
	})

	t.Run("History failure rolls back", func(t *testing.T) {
		service, m := NewMock(t)
		sch := &domain.Scholarship{ID: uuid.New()}
		m.passthroughTx(2)
		m.users.EXPECT().FindByEmail(gomock.Any(), "a@example.com").Return(&domain.User{ID: uuid.New()}, nil)
		m.scholarships.EXPECT().FindByCodeOrName(gomock.Any(), "RUTH", "").Return(sch, nil)
		m.apps.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Application{}, nil)
		m.imports.EXPECT().CreateHistory(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := service.ImportLegacy(context.Background(), admin,
			[]domain.LegacySubmission{{Email: "a@example.com", ScholarshipCode: "RUTH"}}, "batch.json")
		assert.EqualError(t, err, "db error")
	})
}

func TestExportAudit(t *testing.T) {
	service, m := NewMock(t)
	f := domain.AuditFilter{Action: domain.AuditLogin}
	m.audit.EXPECT().Export(gomock.Any(), f, 10000).Return([]domain.AuditEntry{
		{CreatedAt: fixedNow, Action: domain.AuditLogin, UserName: "Jane"},
	}, nil)

	name, content, err := service.ExportAudit(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, "audit_log_2025-05-20.csv", name)
	assert.Contains(t, content, `"2025-05-20T08:00:00Z","Jane","","","login","","",""`)
}

func TestAuditLogsAndActions(t *testing.T) {
	service, m := NewMock(t)
	f := domain.AuditFilter{Page: domain.Page{Page: 2, Limit: 10}}
	m.audit.EXPECT().List(gomock.Any(), f).Return([]domain.AuditEntry{{Action: "login"}}, 11, nil)
	m.audit.EXPECT().Actions(gomock.Any()).Return(nil, nil)

	page, err := service.AuditLogs(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.Page)

	actions, err := service.AuditActions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{}, actions)
}

func TestSyncSFS(t *testing.T) {
	admin := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("Audited", func(t *testing.T) {
		service, m := NewMock(t)
		m.syncer.EXPECT().Sync(gomock.Any()).Return(&domain.SFSSyncResult{EnrollmentChecks: 3, EnrollmentConfirmed: 1, EnrollmentPending: 2}, nil)
		m.activity.EXPECT().Audit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e domain.AuditEntry) {
			assert.Equal(t, domain.AuditSFSSync, e.Action)
			assert.Equal(t, 3, e.Details["enrollment_checks"])
		})

		res, err := service.SyncSFS(context.Background(), admin)
		require.NoError(t, err)
		assert.Equal(t, 1, res.EnrollmentConfirmed)
	})

	t.Run("Failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.syncer.EXPECT().Sync(gomock.Any()).Return(nil, errors.New("db error"))
		_, err := service.SyncSFS(context.Background(), admin)
		assert.Error(t, err)
	})
}
