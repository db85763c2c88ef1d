package paymentservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/internal/export"
	"github.com/GlebRadaev/aescholar/internal/metrics"
	"github.com/GlebRadaev/aescholar/internal/pg"
	"github.com/GlebRadaev/aescholar/internal/settlement"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Eligible(ctx context.Context) ([]domain.PaymentCandidate, error)
	Candidates(ctx context.Context, ids []uuid.UUID) ([]domain.PaymentCandidate, error)
	CreateBatch(ctx context.Context, batch *domain.PaymentBatch, items []domain.PaymentItem) error
	ListBatches(ctx context.Context) ([]domain.PaymentBatch, error)
	FindBatch(ctx context.Context, id uuid.UUID) (*domain.PaymentBatch, error)
	Items(ctx context.Context, batchID uuid.UUID) ([]domain.PaymentItem, error)
	ConfirmBatch(ctx context.Context, id, confirmedBy uuid.UUID) error
}

type BankingRepo interface {
	Duplicates(ctx context.Context) ([]domain.DuplicateAccount, error)
}

type Activity interface {
	Notify(ctx context.Context, userID uuid.UUID, applicationID *uuid.UUID, typ, title, message string)
	Audit(ctx context.Context, e domain.AuditEntry)
}

type Service struct {
	repo      Repo
	banking   BankingRepo
	activity  Activity
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, banking BankingRepo, activity Activity, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		banking:   banking,
		activity:  activity,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *Service) Eligible(ctx context.Context) ([]domain.EligiblePayment, error) {
	candidates, err := s.repo.Eligible(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]domain.EligiblePayment, 0, len(candidates))
	for _, c := range candidates {
		e := domain.EligiblePayment{PaymentCandidate: c, HasBanking: c.HasBanking()}
		if c.HasBankingRow {
			e.AccountMasked = domain.MaskAccount(c.AccountNumber)
		}
		list = append(list, e)
	}
	return list, nil
}

// validate rejects the whole request when any selected application is
// missing, not Approved, or lacks signed banking details.
func validate(ids []uuid.UUID, candidates []domain.PaymentCandidate) error {
	found := make(map[uuid.UUID]bool, len(candidates))
	var problems []string
	for _, c := range candidates {
		found[c.ApplicationID] = true
		if c.Status != domain.StatusApproved {
			problems = append(problems, fmt.Sprintf("%s is %s, not Approved", c.ReferenceNumber, c.Status))
			continue
		}
		if !c.HasBanking() {
			problems = append(problems, fmt.Sprintf("%s is missing banking info", c.ReferenceNumber))
		}
	}
	for _, id := range ids {
		if !found[id] {
			problems = append(problems, fmt.Sprintf("%s not found", id))
		}
	}
	if len(problems) > 0 {
		return domain.Invalid(fmt.Sprintf("%d application(s) cannot be paid", len(problems)), problems)
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// CreateBatch groups the selected applications into one payment batch.
// Membership is all or nothing: a single ineligible application fails the
// request. The batch, its items, the status changes and the applicant
// notifications commit together.
func (s *Service) CreateBatch(ctx context.Context, actor domain.Actor, ids []uuid.UUID) (*domain.BatchResult, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, domain.BadRequest("No applications selected")
	}

	var result *domain.BatchResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		candidates, err := s.repo.Candidates(ctx, ids)
		if err != nil {
			return err
		}
		if err := validate(ids, candidates); err != nil {
			return err
		}

		now := s.now()
		number := settlement.BatchNumber(now)
		items := make([]domain.PaymentItem, 0, len(candidates))
		details := make([]settlement.Detail, 0, len(candidates))
		for _, c := range candidates {
			name := c.FirstName + " " + c.LastName
			items = append(items, domain.PaymentItem{
				ApplicationID:     c.ApplicationID,
				ApplicantID:       c.ApplicantID,
				ReferenceNumber:   c.ReferenceNumber,
				PayeeName:         name,
				ScholarshipName:   c.ScholarshipName,
				Amount:            c.Amount,
				InstitutionNumber: c.InstitutionNumber,
				TransitNumber:     c.TransitNumber,
				AccountNumber:     c.AccountNumber,
				Status:            domain.ItemPending,
			})
			details = append(details, settlement.Detail{
				Reference:   c.ReferenceNumber,
				FullName:    name,
				Institution: c.InstitutionNumber,
				Transit:     c.TransitNumber,
				Account:     c.AccountNumber,
				Amount:      c.Amount,
			})
		}
		total := settlement.Total(details)
		content, err := settlement.Build(number, now, details)
		if err != nil {
			return domain.BadRequest("Settlement file cannot be generated: " + err.Error())
		}

		batch := &domain.PaymentBatch{
			BatchNumber:      number,
			GeneratedBy:      actor.ID,
			ApplicationCount: len(items),
			TotalAmount:      total,
			FileName:         settlement.FileName(number),
			Status:           domain.BatchGenerated,
		}
		if err := s.repo.CreateBatch(ctx, batch, items); err != nil {
			return err
		}

		refs := make([]string, 0, len(items))
		for _, it := range items {
			refs = append(refs, it.ReferenceNumber)
			metrics.Transitions.WithLabelValues(string(domain.StatusPendingPayment)).Inc()
			s.activity.Notify(ctx, it.ApplicantID, &it.ApplicationID, domain.NotifyPaymentProcessed, "Payment Processing",
				fmt.Sprintf("Your scholarship payment for %s is being processed. Reference: %s.", it.ScholarshipName, it.ReferenceNumber))
		}
		s.activity.Audit(ctx, domain.AuditEntry{
			UserID:     &actor.ID,
			Action:     domain.AuditPaymentBatchGenerated,
			EntityType: "payment_batch",
			EntityID:   batch.ID.String(),
			Details: map[string]any{
				"batch_id": batch.ID, "batch_number": number, "count": len(items),
				"total_amount": total.StringFixed(2), "applications": refs,
			},
		})

		result = &domain.BatchResult{
			BatchID:          batch.ID,
			BatchNumber:      number,
			FileName:         batch.FileName,
			ApplicationCount: len(items),
			TotalAmount:      total,
			FileContent:      content,
		}
		return nil
	})
	if err != nil {
		metrics.PaymentBatches.WithLabelValues("rejected").Inc()
		return nil, err
	}

	metrics.PaymentBatches.WithLabelValues("generated").Inc()
	zap.L().Info("payment batch generated",
		zap.String("batch_number", result.BatchNumber),
		zap.Int("count", result.ApplicationCount),
		zap.String("total", result.TotalAmount.StringFixed(2)))
	return result, nil
}

func (s *Service) ListBatches(ctx context.Context) ([]domain.PaymentBatch, error) {
	return s.repo.ListBatches(ctx)
}

func (s *Service) batch(ctx context.Context, id uuid.UUID) (*domain.PaymentBatch, error) {
	b, err := s.repo.FindBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBatchNotFound
	}
	return b, nil
}

func (s *Service) GetBatch(ctx context.Context, id uuid.UUID) (*domain.BatchDetail, error) {
	b, err := s.batch(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.Items(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.BatchDetail{PaymentBatch: *b, Items: items}, nil
}

// ConfirmBatch records that the bank paid out the batch. It is
// irreversible, so a second call fails.
func (s *Service) ConfirmBatch(ctx context.Context, actor domain.Actor, id uuid.UUID) (int, error) {
	b, err := s.batch(ctx, id)
	if err != nil {
		return 0, err
	}
	if b.Status == domain.BatchPaid {
		return 0, domain.BadRequest("Batch already confirmed")
	}
	items, err := s.repo.Items(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.repo.ConfirmBatch(ctx, id, actor.ID); err != nil {
		return 0, err
	}

	metrics.PaymentBatches.WithLabelValues("confirmed").Inc()
	for _, it := range items {
		metrics.Transitions.WithLabelValues(string(domain.StatusPaid)).Inc()
		s.activity.Notify(ctx, it.ApplicantID, &it.ApplicationID, domain.NotifyPaymentProcessed, "Payment Complete",
			fmt.Sprintf("Your scholarship payment for %s has been deposited. Reference: %s.", it.ScholarshipName, it.ReferenceNumber))
	}
	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:     &actor.ID,
		Action:     domain.AuditPaymentBatchConfirmed,
		EntityType: "payment_batch",
		EntityID:   id.String(),
		Details:    map[string]any{"batch_id": id, "batch_number": b.BatchNumber, "count": len(items)},
	})
	return len(items), nil
}

// File regenerates the settlement file from the item snapshot, so later
// banking changes never alter a committed batch.
func (s *Service) File(ctx context.Context, id uuid.UUID) (name, content string, err error) {
	b, err := s.batch(ctx, id)
	if err != nil {
		return "", "", err
	}
	items, err := s.repo.Items(ctx, id)
	if err != nil {
		return "", "", err
	}
	details := make([]settlement.Detail, 0, len(items))
	for _, it := range items {
		details = append(details, settlement.Detail{
			Reference:   it.ReferenceNumber,
			FullName:    it.PayeeName,
			Institution: it.InstitutionNumber,
			Transit:     it.TransitNumber,
			Account:     it.AccountNumber,
			Amount:      it.Amount,
		})
	}
	if total := settlement.Total(details); !total.Equal(b.TotalAmount) {
		zap.L().Warn("payment batch total differs from items",
			zap.String("batch_number", b.BatchNumber),
			zap.String("batch_total", b.TotalAmount.StringFixed(2)),
			zap.String("items_total", total.StringFixed(2)))
	}
	content, err = settlement.Build(b.BatchNumber, b.CreatedAt, details)
	if err != nil {
		return "", "", err
	}
	return b.FileName, content, nil
}

func (s *Service) Workbook(ctx context.Context, id uuid.UUID) (name string, data []byte, err error) {
	detail, err := s.GetBatch(ctx, id)
	if err != nil {
		return "", nil, err
	}
	data, err = export.BatchWorkbook(detail.PaymentBatch, detail.Items)
	if err != nil {
		zap.L().Error("can't build batch workbook", zap.String("batch_number", detail.BatchNumber), zap.Error(err))
		return "", nil, err
	}
	return "payment_batch_" + detail.BatchNumber + ".xlsx", data, nil
}

func (s *Service) Duplicates(ctx context.Context) ([]domain.DuplicateAccount, error) {
	return s.banking.Duplicates(ctx)
}
