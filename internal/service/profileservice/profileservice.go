package profileservice

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SaveProfile(ctx context.Context, u *domain.User) error
	FindByRoles(ctx context.Context, roles []domain.Role) ([]domain.User, error)
}

type BankingRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.BankingInfo, error)
	Upsert(ctx context.Context, b *domain.BankingInfo) (*domain.BankingInfo, error)
	SharedWith(ctx context.Context, b *domain.BankingInfo) ([]uuid.UUID, error)
}

type LookupRepo interface {
	List(ctx context.Context, table string) ([]domain.Lookup, error)
}

type Activity interface {
	NotifyMany(ctx context.Context, ids []uuid.UUID, applicationID *uuid.UUID, typ, title, message string)
	Audit(ctx context.Context, e domain.AuditEntry)
}

type Cipher interface {
	Encrypt(plain string) (string, error)
	Mask(stored string) string
}

type Service struct {
	users    UserRepo
	banking  BankingRepo
	lookups  LookupRepo
	activity Activity
	cipher   Cipher
	now      func() time.Time
}

func New(users UserRepo, banking BankingRepo, lookups LookupRepo, activity Activity, cipher Cipher) *Service {
	return &Service{
		users:    users,
		banking:  banking,
		lookups:  lookups,
		activity: activity,
		cipher:   cipher,
		now:      time.Now,
	}
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *Service) view(u *domain.User) *domain.ProfileView {
	return &domain.ProfileView{User: *u, SINMasked: s.cipher.Mask(u.SINEncrypted)}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.ProfileView, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(user), nil
}

// CreateProfile validates a full submission, encrypts the SIN and marks the
// profile complete. A SIN failing its checksum is stored but flagged.
func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, in domain.ProfileInput) (*domain.ProfileView, error) {
	errs := validate.Profile{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		DateOfBirth:       in.DateOfBirth,
		SIN:               in.SIN,
		Phone:             in.Phone,
		AddressLine1:      in.AddressLine1,
		City:              in.City,
		Province:          in.Province,
		PostalCode:        in.PostalCode,
		CitizenshipStatus: in.CitizenshipStatus,
		ResidencyStatus:   in.ResidencyStatus,
	}.Validate(s.now())
	if len(errs) > 0 {
		return nil, domain.Invalid("Validation failed", errs)
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	sin := validate.NormalizeSIN(in.SIN)
	encrypted, err := s.cipher.Encrypt(sin)
	if err != nil {
		zap.L().Error("can't encrypt sin", zap.Error(err))
		return nil, err
	}

	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	user.DisplayName = user.FirstName + " " + user.LastName
	user.DateOfBirth = in.DateOfBirth
	user.SINEncrypted = encrypted
	user.ASN = in.ASN
	user.Phone = validate.NormalizePhone(in.Phone)
	user.AddressLine1 = in.AddressLine1
	user.AddressLine2 = in.AddressLine2
	user.City = in.City
	user.Province = in.Province
	user.PostalCode = strings.ToUpper(in.PostalCode)
	user.CitizenshipStatus = in.CitizenshipStatus
	user.ResidencyStatus = *in.ResidencyStatus
	user.IndigenousStatus = in.IndigenousStatus
	user.Gender = in.Gender
	user.ProfileComplete = true

	if err := s.users.SaveProfile(ctx, user); err != nil {
		return nil, err
	}

	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:     &userID,
		Action:     domain.AuditProfileCreated,
		EntityType: "user",
		EntityID:   userID.String(),
	})
	if !validate.SINChecksum(sin) {
		zap.L().Warn("sin failed checksum", zap.Stringer("user_id", userID))
		s.activity.Audit(ctx, domain.AuditEntry{
			UserID:     &userID,
			Action:     domain.AuditSINChecksumFailed,
			EntityType: "user",
			EntityID:   userID.String(),
		})
	}
	return s.view(user), nil
}

// UpdateProfile applies a partial update. Supplied phone and postal code
// values must still be well formed.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (*domain.ProfileView, error) {
	var errs []string
	if patch.Phone != nil {
		errs = append(errs, validate.Phone(*patch.Phone)...)
		normalized := validate.NormalizePhone(*patch.Phone)
		patch.Phone = &normalized
	}
	if patch.PostalCode != nil {
		errs = append(errs, validate.PostalCode(*patch.PostalCode)...)
		upper := strings.ToUpper(*patch.PostalCode)
		patch.PostalCode = &upper
	}
	if patch.FirstName != nil {
		if strings.TrimSpace(*patch.FirstName) == "" {
			errs = append(errs, "First name is required")
		}
		errs = append(errs, validate.Name("First name", *patch.FirstName)...)
	}
	if patch.LastName != nil {
		if strings.TrimSpace(*patch.LastName) == "" {
			errs = append(errs, "Last name is required")
		}
		errs = append(errs, validate.Name("Last name", *patch.LastName)...)
	}
	if len(errs) > 0 {
		return nil, domain.Invalid("Validation failed", errs)
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	patch.Apply(user)
	if err := s.users.SaveProfile(ctx, user); err != nil {
		return nil, err
	}
	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:     &userID,
		Action:     domain.AuditProfileUpdated,
		EntityType: "user",
		EntityID:   userID.String(),
	})
	return s.view(user), nil
}

// GetBanking returns nil when the user never saved banking details.
func (s *Service) GetBanking(ctx context.Context, userID uuid.UUID) (*domain.BankingInfo, error) {
	b, err := s.banking.FindByUserID(ctx, userID)
	if err != nil || b == nil {
		return nil, err
	}
	masked := b.Masked()
	return &masked, nil
}

// SaveBanking upserts the user's deposit details. An account already
// registered to someone else is saved anyway, but every staff and finance
// user is alerted and the event is audited.
func (s *Service) SaveBanking(ctx context.Context, userID uuid.UUID, in domain.BankingInput) (*domain.BankingResult, error) {
	errs := validate.Banking{
		InstitutionNumber:   in.InstitutionNumber,
		TransitNumber:       in.TransitNumber,
		AccountNumber:       in.AccountNumber,
		AuthorizationSigned: in.AuthorizationSigned,
	}.Validate()
	if len(errs) > 0 {
		return nil, domain.Invalid("Validation failed", errs)
	}

	b := &domain.BankingInfo{
		UserID:              userID,
		InstitutionNumber:   in.InstitutionNumber,
		TransitNumber:       in.TransitNumber,
		AccountNumber:       in.AccountNumber,
		AuthorizationSigned: in.AuthorizationSigned,
	}
	shared, err := s.banking.SharedWith(ctx, b)
	if err != nil {
		return nil, err
	}
	saved, err := s.banking.Upsert(ctx, b)
	if err != nil {
		return nil, err
	}

	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:     &userID,
		Action:     domain.AuditBankingUpdated,
		EntityType: "banking_info",
		EntityID:   saved.ID.String(),
	})

	duplicate := len(shared) > 0
	if duplicate {
		s.flagDuplicate(ctx, userID, shared)
	}
	return &domain.BankingResult{BankingInfo: saved.Masked(), DuplicateFlag: duplicate}, nil
}

func (s *Service) flagDuplicate(ctx context.Context, userID uuid.UUID, shared []uuid.UUID) {
	zap.L().Warn("duplicate bank account", zap.Stringer("user_id", userID), zap.Int("shared_with", len(shared)))

	others := make([]string, 0, len(shared))
	for _, id := range shared {
		others = append(others, id.String())
	}
	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:     &userID,
		Action:     domain.AuditDuplicateBankAccount,
		EntityType: "banking_info",
		Details:    map[string]any{"duplicate_users": others},
	})

	staff, err := s.users.FindByRoles(ctx, domain.StaffRoles)
	if err != nil {
		zap.L().Warn("can't load staff for duplicate alert", zap.Error(err))
		return
	}
	ids := make([]uuid.UUID, 0, len(staff))
	for _, u := range staff {
		ids = append(ids, u.ID)
	}
	s.activity.NotifyMany(ctx, ids, nil, domain.NotifyActionRequired, "Duplicate Bank Account Detected",
		"A potential duplicate bank account has been detected. "+
			"Multiple applicants share the same account details. Review required.")
}

// Lookup serves a code/label list. Statuses and roles come from the
// workflow itself; everything else is a reference table.
func (s *Service) Lookup(ctx context.Context, table string) ([]domain.Lookup, error) {
	switch table {
	case "application_statuses":
		list := make([]domain.Lookup, 0, len(domain.AllStatuses))
		for _, st := range domain.AllStatuses {
			list = append(list, domain.Lookup{Code: string(st), Label: string(st)})
		}
		return list, nil
	case "user_roles":
		list := make([]domain.Lookup, 0, len(domain.Roles))
		for _, r := range domain.Roles {
			list = append(list, domain.Lookup{Code: string(r), Label: r.Label()})
		}
		return list, nil
	}
	return s.lookups.List(ctx, table)
}
