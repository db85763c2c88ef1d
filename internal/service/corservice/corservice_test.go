package corservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/GlebRadaev/aescholar/internal/sfs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	apps     *MockAppRepo
	requests *MockRepo
	checker  *sfs.MockChecker
	activity *MockActivity
	tx       *pg.MockTXManager
}

var fixedNow = time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		apps:     NewMockAppRepo(ctrl),
		requests: NewMockRepo(ctrl),
		checker:  sfs.NewMockChecker(ctrl),
		activity: NewMockActivity(ctrl),
		tx:       pg.NewMockTXManager(ctrl),
	}
	service := New(m.apps, m.requests, m.checker, m.activity, m.tx)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, m
}

func (m *mocks) passthroughTx() {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func application() *domain.Application {
	return &domain.Application{
		ID:              uuid.New(),
		ReferenceNumber: "AES-2025-C0FFEE",
		ApplicantID:     uuid.New(),
		Status:          domain.StatusUnderReview,
		PersonalInfo:    domain.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
		PostsecondaryInfo: domain.PostsecondaryInfo{
			InstitutionName: "University of Alberta", Program: "BSc", EnrollmentStatus: "full_time",
		},
	}
}

func TestDefaultInstitutionEmail(t *testing.T) {
	assert.Equal(t, "registrar@universityofalberta.ca", DefaultInstitutionEmail("University of  Alberta"))
	assert.Equal(t, "registrar@nait.ca", DefaultInstitutionEmail("NAIT"))
}

func TestCheck(t *testing.T) {
	service, m := NewMock(t)
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleScholarshipStaff}

	t.Run("Hit confirms", func(t *testing.T) {
		app := application()
		m.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		m.checker.EXPECT().Check(gomock.Any(), *app).Return(sfs.Result{Confirmed: true, SFSID: "SFS-1"}, nil)
		m.apps.EXPECT().SetCOR(gomock.Any(), app.ID, domain.CORConfirmed, &fixedNow).Return(nil)
		m.activity.EXPECT().Audit(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e domain.AuditEntry) {
			assert.Equal(t, domain.AuditCORAutoConfirmed, e.Action)
		})

		res, err := service.Check(context.Background(), actor, app.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.CORConfirmed, res.Status)
	})

	t.Run("Miss leaves pending", func(t *testing.T) {
		app := application()
		m.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		m.checker.EXPECT().Check(gomock.Any(), *app).Return(sfs.Result{}, nil)
		m.apps.EXPECT().SetCOR(gomock.Any(), app.ID, domain.CORPending, nil).Return(nil)
		m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())

		res, err := service.Check(context.Background(), actor, app.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.CORPending, res.Status)
		assert.Equal(t, "No existing COR found. Manual COR request needed.", res.Message)
	})

	t.Run("Checker failure", func(t *testing.T) {
		app := application()
		m.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		m.checker.EXPECT().Check(gomock.Any(), *app).Return(sfs.Result{}, errors.New("timeout"))

		_, err := service.Check(context.Background(), actor, app.ID)
		assert.Error(t, err)
	})

	t.Run("Unknown application", func(t *testing.T) {
		id := uuid.New()
		m.apps.EXPECT().FindByID(gomock.Any(), id).Return(nil, nil)
		_, err := service.Check(context.Background(), actor, id)
		assert.Equal(t, domain.ErrApplicationNotFound, err)
	})
}

func TestRequest(t *testing.T) {
	service, m := NewMock(t)
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleScholarshipStaff}

	t.Run("Already confirmed", func(t *testing.T) {
		app := application()
		app.CORStatus = domain.CORConfirmed
		m.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)

		_, err := service.Request(context.Background(), actor, app.ID, domain.CORRequestInput{})
		assert.EqualError(t, err, "COR is already confirmed")
	})

	t.Run("Sent with default email", func(t *testing.T) {
		app := application()
		m.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		m.passthroughTx()
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.CORRequest) (*domain.CORRequest, error) {
			assert.Equal(t, "registrar@universityofalberta.ca", c.InstitutionEmail)
			assert.Equal(t, domain.CORRequestSent, c.Status)
			assert.Len(t, c.ResponseToken, domain.CORTokenLength)
			assert.Regexp(t, `^[A-Za-z0-9]+$`, c.ResponseToken)
			assert.Equal(t, "Jane Doe", c.ApplicantName)
			c.ID = uuid.New()
			return c, nil
		})
		m.apps.EXPECT().SetCOR(gomock.Any(), app.ID, domain.CORRequested, nil).Return(nil)
		m.activity.EXPECT().Notify(gomock.Any(), app.ApplicantID, &app.ID, domain.NotifyCORRequest, "COR Request Sent",
			"A Confirmation of Registration request has been sent to University of Alberta for your application AES-2025-C0FFEE.")
		m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())

		sent, err := service.Request(context.Background(), actor, app.ID, domain.CORRequestInput{})
		require.NoError(t, err)
		assert.Equal(t, domain.CORRequested, sent.Status)
		assert.Len(t, sent.ResponseToken, domain.CORTokenLength)
	})

	t.Run("Transaction failure writes nothing else", func(t *testing.T) {
		app := application()
		m.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		m.passthroughTx()
		m.requests.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.Request(context.Background(), actor, app.ID, domain.CORRequestInput{InstitutionEmail: "a@b.ca"})
		assert.EqualError(t, err, "db error")
	})
}

func TestRespond(t *testing.T) {
	service, m := NewMock(t)
	open := &domain.CORRequest{
		ID: uuid.New(), ApplicationID: uuid.New(), ApplicantID: uuid.New(),
		ReferenceNumber: "AES-2025-C0FFEE", InstitutionName: "NAIT", Status: domain.CORRequestSent,
	}

	t.Run("Confirmed", func(t *testing.T) {
		m.requests.EXPECT().FindOpenByToken(gomock.Any(), "tok").Return(open, nil)
		m.passthroughTx()
		m.requests.EXPECT().Respond(gomock.Any(), open.ID, domain.CORResponse{Status: "Confirmed", ConfirmedBy: "Institution"}).Return(nil)
		m.apps.EXPECT().SetCOR(gomock.Any(), open.ApplicationID, domain.CORConfirmed, &fixedNow).Return(nil)
		m.activity.EXPECT().Notify(gomock.Any(), open.ApplicantID, &open.ApplicationID, domain.NotifyCORRequest, "COR Confirmed", gomock.Any())
		m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())

		res, err := service.Respond(context.Background(), "tok", domain.CORResponse{Status: "Confirmed"})
		require.NoError(t, err)
		assert.Equal(t, domain.CORConfirmed, res.ApplicationStatus)
		assert.Equal(t, "COR response recorded: Confirmed", res.Message)
	})

	t.Run("Unable to confirm maps to failed", func(t *testing.T) {
		m.requests.EXPECT().FindOpenByToken(gomock.Any(), "tok").Return(open, nil)
		m.passthroughTx()
		m.requests.EXPECT().Respond(gomock.Any(), open.ID, gomock.Any()).Return(nil)
		m.apps.EXPECT().SetCOR(gomock.Any(), open.ApplicationID, domain.CORFailed, nil).Return(nil)
		m.activity.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "COR Not Confirmed", gomock.Any())
		m.activity.EXPECT().Audit(gomock.Any(), gomock.Any())

		res, err := service.Respond(context.Background(), "tok", domain.CORResponse{Status: "Unable to Confirm", ConfirmedBy: "Registrar"})
		require.NoError(t, err)
		assert.Equal(t, domain.CORFailed, res.ApplicationStatus)
	})

	t.Run("Invalid status", func(t *testing.T) {
		m.requests.EXPECT().FindOpenByToken(gomock.Any(), "tok").Return(open, nil)
		_, err := service.Respond(context.Background(), "tok", domain.CORResponse{Status: "Maybe"})
		assert.Equal(t, 400, domain.StatusOf(err))
	})

	t.Run("Replayed token", func(t *testing.T) {
		m.requests.EXPECT().FindOpenByToken(gomock.Any(), "used").Return(nil, nil)
		_, err := service.Respond(context.Background(), "used", domain.CORResponse{Status: "Confirmed"})
		assert.Equal(t, domain.ErrCORTokenNotFound, err)
	})

	t.Run("Answered concurrently", func(t *testing.T) {
		m.requests.EXPECT().FindOpenByToken(gomock.Any(), "tok").Return(open, nil)
		m.passthroughTx()
		m.requests.EXPECT().Respond(gomock.Any(), open.ID, gomock.Any()).Return(domain.ErrCORTokenNotFound)

		_, err := service.Respond(context.Background(), "tok", domain.CORResponse{Status: "Confirmed"})
		assert.Equal(t, domain.ErrCORTokenNotFound, err)
	})
}

func TestStatusAndList(t *testing.T) {
	service, m := NewMock(t)
	app := application()
	app.CORStatus = domain.CORRequested

	m.apps.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
	m.requests.EXPECT().ListByApplication(gomock.Any(), app.ID).Return([]domain.CORRequest{{Status: "Sent"}}, nil)
	view, err := service.Status(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CORRequested, view.CORStatus)
	assert.Equal(t, "University of Alberta", view.InstitutionName)
	assert.Len(t, view.Requests, 1)

	f := domain.CORFilter{Status: "Sent"}
	m.requests.EXPECT().List(gomock.Any(), f).Return(nil, 0, nil)
	page, err := service.List(context.Background(), f)
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Equal(t, 1, page.Page)
}
