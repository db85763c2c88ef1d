package applicationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

const applicationColumns = `a.id, a.reference_number, a.scholarship_id, a.applicant_id, a.status, a.submitted_at,
	a.personal_info, a.postsecondary_info, a.high_school_info, a.additional_info, a.academic_marks,
	a.citizenship_status, a.residency_status, a.indigenous_status, a.gender, a.essay,
	a.declaration_signed, a.privacy_consent, a.cor_status, a.cor_confirmed_date,
	a.reviewer_id, a.review_notes, a.decision, a.decision_date, a.created_at, a.updated_at`

const summaryColumns = `a.id, a.reference_number, a.status, a.scholarship_id, s.name, s.type, s.value, s.deadline_end,
	a.applicant_id, TRIM(u.first_name || ' ' || u.last_name), u.email, a.reviewer_id, COALESCE(r.display_name, ''),
	a.cor_status, a.decision, a.submitted_at, a.created_at, a.updated_at,
	COALESCE(EXTRACT(DAY FROM NOW() - a.submitted_at)::int, 0) AS days_in_queue`

const summaryJoins = `FROM applications a
	JOIN scholarships s ON s.id = a.scholarship_id
	JOIN users u ON u.id = a.applicant_id
	LEFT JOIN users r ON r.id = a.reviewer_id`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanApplication(row pgx.Row, a *domain.Application) error {
	return row.Scan(
		&a.ID, &a.ReferenceNumber, &a.ScholarshipID, &a.ApplicantID, &a.Status, &a.SubmittedAt,
		&a.PersonalInfo, &a.PostsecondaryInfo, &a.HighSchoolInfo, &a.AdditionalInfo, &a.AcademicMarks,
		&a.CitizenshipStatus, &a.ResidencyStatus, &a.IndigenousStatus, &a.Gender, &a.Essay,
		&a.DeclarationSigned, &a.PrivacyConsent, &a.CORStatus, &a.CORConfirmedDate,
		&a.ReviewerID, &a.ReviewNotes, &a.Decision, &a.DecisionDate, &a.CreatedAt, &a.UpdatedAt,
	)
}

func scanSummary(row pgx.Row, s *domain.ApplicationSummary) error {
	return row.Scan(
		&s.ID, &s.ReferenceNumber, &s.Status, &s.ScholarshipID, &s.ScholarshipName, &s.ScholarshipType,
		&s.ScholarshipValue, &s.DeadlineEnd, &s.ApplicantID, &s.ApplicantName, &s.ApplicantEmail,
		&s.ReviewerID, &s.ReviewerName, &s.CORStatus, &s.Decision, &s.SubmittedAt, &s.CreatedAt,
		&s.UpdatedAt, &s.DaysInQueue,
	)
}

// Create inserts a new draft. The partial unique index on
// (applicant_id, scholarship_id) turns a concurrent duplicate into a 409.
func (r *Repository) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	query := `
		INSERT INTO applications (reference_number, scholarship_id, applicant_id, status, submitted_at,
			personal_info, postsecondary_info, high_school_info, additional_info, academic_marks,
			citizenship_status, residency_status, indigenous_status, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		a.ReferenceNumber, a.ScholarshipID, a.ApplicantID, a.Status, a.SubmittedAt,
		a.PersonalInfo, a.PostsecondaryInfo, a.HighSchoolInfo, a.AdditionalInfo, a.AcademicMarks,
		a.CitizenshipStatus, a.ResidencyStatus, a.IndigenousStatus, a.Gender,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == "uq_applications_active" {
			return nil, domain.Conflict("You have already applied for this scholarship")
		}
		zap.L().Error("can't create application", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	return r.findOne(ctx, "SELECT "+applicationColumns+" FROM applications a WHERE a.id = $1", id)
}

// FindActive returns the applicant's non-withdrawn application for a scholarship.
func (r *Repository) FindActive(ctx context.Context, applicantID, scholarshipID uuid.UUID) (*domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		WHERE a.applicant_id = $1 AND a.scholarship_id = $2 AND a.status <> 'Withdrawn'
		LIMIT 1
	`
	return r.findOne(ctx, query, applicantID, scholarshipID)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Application, error) {
	var a domain.Application
	err := scanApplication(r.db.QueryRow(ctx, query, args...), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.ApplicationSummary, error) {
	query := "SELECT " + summaryColumns + " " + summaryJoins + " WHERE a.applicant_id = $1 ORDER BY a.updated_at DESC"
	return r.querySummaries(ctx, query, applicantID)
}

func (r *Repository) querySummaries(ctx context.Context, query string, args ...any) ([]domain.ApplicationSummary, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.ApplicationSummary
	for rows.Next() {
		var s domain.ApplicationSummary
		if err := scanSummary(rows, &s); err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SaveDraft writes the editable columns, but only while the row is still a draft.
func (r *Repository) SaveDraft(ctx context.Context, a *domain.Application) error {
	query := `
		UPDATE applications
		SET personal_info = $2, postsecondary_info = $3, high_school_info = $4, additional_info = $5,
			academic_marks = $6, citizenship_status = $7, residency_status = $8, indigenous_status = $9,
			gender = $10, essay = $11, declaration_signed = $12, privacy_consent = $13, updated_at = NOW()
		WHERE id = $1 AND status = 'Draft'
	`
	tag, err := r.db.Exec(ctx, query,
		a.ID, a.PersonalInfo, a.PostsecondaryInfo, a.HighSchoolInfo, a.AdditionalInfo,
		a.AcademicMarks, a.CitizenshipStatus, a.ResidencyStatus, a.IndigenousStatus,
		a.Gender, a.Essay, a.DeclarationSigned, a.PrivacyConsent,
	)
	if err != nil {
		zap.L().Error("can't save draft", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStatusChanged
	}
	return nil
}

// ChangeStatus moves an application from c.From to c.To. It fails with
// ErrStatusChanged when the stored status is no longer c.From.
func (r *Repository) ChangeStatus(ctx context.Context, c domain.StatusChange) error {
	query := `
		UPDATE applications
		SET status = $3,
			submitted_at = COALESCE($4, submitted_at),
			decision = COALESCE($5, decision),
			decision_date = COALESCE($6, decision_date),
			reviewer_id = COALESCE($7, reviewer_id),
			review_notes = CASE
				WHEN $8::text IS NULL THEN review_notes
				WHEN review_notes = '' THEN $8::text
				ELSE review_notes || E'\n' || $8::text
			END,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
	`
	tag, err := r.db.Exec(ctx, query, c.ID, c.From, c.To, c.SubmittedAt, c.Decision, c.DecisionDate, c.ReviewerID, c.NoteEntry)
	if err != nil {
		zap.L().Error("can't change application status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStatusChanged
	}
	return nil
}

// AppendNote adds a review note and claims the application for the author
// when nobody is assigned yet.
func (r *Repository) AppendNote(ctx context.Context, id uuid.UUID, entry string, author uuid.UUID) error {
	query := `
		UPDATE applications
		SET review_notes = CASE WHEN review_notes = '' THEN $2 ELSE review_notes || E'\n' || $2 END,
			reviewer_id = COALESCE(reviewer_id, $3),
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, entry, author)
	if err != nil {
		zap.L().Error("can't append review note", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// SetCOR records the enrollment confirmation state. A nil confirmedAt keeps
// the stored date.
func (r *Repository) SetCOR(ctx context.Context, id uuid.UUID, status domain.CORStatus, confirmedAt *time.Time) error {
	query := `
		UPDATE applications
		SET cor_status = $2, cor_confirmed_date = COALESCE($3, cor_confirmed_date), updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, status, confirmedAt)
	if err != nil {
		zap.L().Error("can't update cor status", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// Queue is the staff work list. Drafts are never shown.
func (r *Repository) Queue(ctx context.Context, f domain.QueueFilter) ([]domain.ApplicationSummary, int, error) {
	var filter pg.Filter
	filter.Add("a.status <> 'Draft'")
	if f.Status != "" {
		filter.Add("a.status = ?", f.Status)
	}
	if f.ScholarshipID != nil {
		filter.Add("a.scholarship_id = ?", *f.ScholarshipID)
	}
	if f.ReviewerID != nil {
		filter.Add("a.reviewer_id = ?", *f.ReviewerID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		filter.Add("(a.reference_number ILIKE ? OR u.email ILIKE ? OR u.first_name ILIKE ? OR u.last_name ILIKE ?)",
			like, like, like, like)
	}

	var total int
	countQuery := "SELECT COUNT(*) " + summaryJoins + " " + filter.Where()
	if err := r.db.QueryRow(ctx, countQuery, filter.Args()...).Scan(&total); err != nil {
		zap.L().Error("can't count queue", zap.Error(err))
		return nil, 0, err
	}

	direction := "ASC"
	if f.SortDesc {
		direction = "DESC"
	}
	page := f.Page.Normalize()
	query := fmt.Sprintf("SELECT %s %s %s ORDER BY %s %s NULLS LAST LIMIT %s OFFSET %s",
		summaryColumns, summaryJoins, filter.Where(), f.SortColumn(), direction,
		filter.Arg(page.Limit), filter.Arg(page.Offset()))
	list, err := r.querySummaries(ctx, query, filter.Args()...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *Repository) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{ByStatus: make(map[domain.Status]int)}

	rows, err := r.db.Query(ctx, "SELECT status, COUNT(*) FROM applications GROUP BY status")
	if err != nil {
		zap.L().Error("can't count applications by status", zap.Error(err))
		return nil, err
	}
	for rows.Next() {
		var status domain.Status
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			zap.L().Error("can't scan status count", zap.Error(err))
			return nil, err
		}
		stats.ByStatus[status] = n
		stats.Total += n
	}
	rows.Close()
	stats.PendingReview = stats.ByStatus[domain.StatusSubmitted] + stats.ByStatus[domain.StatusUnderReview]

	turnaround := `
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (decision_date - submitted_at)) / 86400), 0)::float8
		FROM applications
		WHERE decision_date IS NOT NULL AND submitted_at IS NOT NULL
	`
	if err := r.db.QueryRow(ctx, turnaround).Scan(&stats.AvgTurnaroundDays); err != nil {
		zap.L().Error("can't compute turnaround", zap.Error(err))
		return nil, err
	}

	byScholarship := `
		SELECT s.name, COUNT(a.id)
		FROM scholarships s
		JOIN applications a ON a.scholarship_id = s.id AND a.status <> 'Draft'
		GROUP BY s.name
		ORDER BY COUNT(a.id) DESC
		LIMIT 10
	`
	if stats.ByScholarship, err = r.namedCounts(ctx, byScholarship); err != nil {
		return nil, err
	}

	workload := `
		SELECT u.display_name, COUNT(a.id)
		FROM users u
		JOIN applications a ON a.reviewer_id = u.id AND a.status IN ('Submitted', 'Under Review', 'Missing Info')
		GROUP BY u.display_name
		ORDER BY COUNT(a.id) DESC
	`
	if stats.StaffWorkload, err = r.namedCounts(ctx, workload); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *Repository) namedCounts(ctx context.Context, query string) ([]domain.NamedCount, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't run dashboard query", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []domain.NamedCount{}
	for rows.Next() {
		var c domain.NamedCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			zap.L().Error("can't scan dashboard row", zap.Error(err))
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *Repository) Rankings(ctx context.Context, scholarshipID uuid.UUID) ([]domain.Ranking, error) {
	query := `
		SELECT a.id, a.reference_number, a.status, a.submitted_at, u.first_name, u.last_name,
			a.academic_marks, a.postsecondary_info->>'institution_name', a.postsecondary_info->>'program',
			a.postsecondary_info->>'year_of_study'
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.scholarship_id = $1 AND a.status NOT IN ('Draft', 'Withdrawn')
		ORDER BY a.submitted_at ASC
	`
	rows, err := r.db.Query(ctx, query, scholarshipID)
	if err != nil {
		zap.L().Error("can't load rankings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.Ranking
	for rows.Next() {
		var rk domain.Ranking
		var institution, program, year *string
		if err := rows.Scan(&rk.ID, &rk.ReferenceNumber, &rk.Status, &rk.SubmittedAt, &rk.FirstName, &rk.LastName,
			&rk.AcademicMarks, &institution, &program, &year); err != nil {
			zap.L().Error("can't scan ranking row", zap.Error(err))
			return nil, err
		}
		rk.Institution, rk.Program, rk.YearOfStudy = deref(institution), deref(program), deref(year)
		list = append(list, rk)
	}
	return list, rows.Err()
}

// ListForEnrollmentSync returns applications whose enrollment still has to
// be confirmed with the Student Finance System.
func (r *Repository) ListForEnrollmentSync(ctx context.Context) ([]domain.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		WHERE a.status IN ('Submitted', 'Under Review') AND a.cor_status IN ('', 'Pending')
		ORDER BY a.submitted_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list applications for sync", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var list []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := scanApplication(rows, &a); err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
