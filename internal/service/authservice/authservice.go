package authservice

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/aescholar/internal/domain"
	"github.com/GlebRadaev/aescholar/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByACAID(ctx context.Context, acaID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	TouchLogin(ctx context.Context, id uuid.UUID) error
}

type Activity interface {
	Audit(ctx context.Context, e domain.AuditEntry)
}

type Options struct {
	TokenTTL time.Duration
	// Production disables the development login.
	Production bool
	// DevPasswordHash, when set, is a bcrypt hash the development login
	// password must match.
	DevPasswordHash string
}

type Service struct {
	userRepo    Repo
	activity    Activity
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	opts        Options
	now         func() time.Time
}

func New(repo Repo, activity Activity, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, opts Options) *Service {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	return &Service{
		userRepo:    repo,
		activity:    activity,
		hashService: hashService,
		jwtService:  jwtService,
		opts:        opts,
		now:         time.Now,
	}
}

func defaultDisplayName(email, displayName string) string {
	if displayName != "" {
		return displayName
	}
	name, _, _ := strings.Cut(email, "@")
	return name
}

// ACALogin is the mocked Alberta.ca Account callback. Unknown people are
// registered as applicants.
func (s *Service) ACALogin(ctx context.Context, email, displayName, acaID string) (*domain.Session, error) {
	if email == "" {
		return nil, domain.BadRequest("Email is required")
	}
	if acaID == "" {
		acaID = "aca-" + uuid.NewString()
	}

	user, err := s.userRepo.FindByACAID(ctx, acaID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		user, err = s.userRepo.Create(ctx, &domain.User{
			Email:         email,
			DisplayName:   defaultDisplayName(email, displayName),
			Role:          domain.RoleApplicant,
			OAuthProvider: domain.ProviderACA,
			ACAID:         acaID,
		})
		if err != nil {
			zap.L().Error("can't create applicant", zap.Error(err))
			return nil, err
		}
		zap.L().Info("applicant registered", zap.String("email", email))
	}
	return s.signIn(ctx, user, domain.ProviderACA)
}

// StaffLogin is the mocked staff SSO callback. Existing accounts must hold
// a staff role; unknown emails become scholarship staff.
func (s *Service) StaffLogin(ctx context.Context, email, displayName string) (*domain.Session, error) {
	if email == "" {
		return nil, domain.BadRequest("Email is required")
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil && !user.Role.IsStaff() {
		zap.L().Info("staff login refused", zap.String("email", email), zap.String("role", string(user.Role)))
		return nil, domain.Forbidden("Account is not authorized for staff access")
	}
	if user == nil {
		user, err = s.userRepo.Create(ctx, &domain.User{
			Email:         email,
			DisplayName:   defaultDisplayName(email, displayName),
			Role:          domain.RoleScholarshipStaff,
			OAuthProvider: domain.ProviderMicrosoft,
		})
		if err != nil {
			zap.L().Error("can't create staff user", zap.Error(err))
			return nil, err
		}
	}
	return s.signIn(ctx, user, domain.ProviderMicrosoft)
}

// DevLogin signs in as any email and role outside production.
func (s *Service) DevLogin(ctx context.Context, email, role, password string) (*domain.Session, error) {
	if s.opts.Production {
		return nil, domain.Forbidden("Dev login not available in production")
	}
	if email == "" {
		return nil, domain.BadRequest("Email is required")
	}
	if s.opts.DevPasswordHash != "" && !s.hashService.ComparePassword(s.opts.DevPasswordHash, password) {
		return nil, domain.Unauthorized("Invalid credentials")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		r := domain.RoleApplicant
		if role != "" {
			var ok bool
			if r, ok = domain.ParseRole(role); !ok {
				return nil, domain.BadRequest("Invalid role")
			}
		}
		user, err = s.userRepo.Create(ctx, &domain.User{
			Email:         email,
			DisplayName:   defaultDisplayName(email, ""),
			Role:          r,
			OAuthProvider: domain.ProviderLocal,
		})
		if err != nil {
			zap.L().Error("can't create dev user", zap.Error(err))
			return nil, err
		}
	}
	return s.signIn(ctx, user, domain.ProviderLocal)
}

func (s *Service) signIn(ctx context.Context, user *domain.User, provider string) (*domain.Session, error) {
	if user.IsBlocked {
		return nil, domain.Forbidden("Account is blocked")
	}
	if err := s.userRepo.TouchLogin(ctx, user.ID); err != nil {
		return nil, err
	}
	session, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.activity.Audit(ctx, domain.AuditEntry{
		UserID:  &user.ID,
		Action:  domain.AuditLogin,
		Details: map[string]any{"provider": provider},
	})
	return session, nil
}

func (s *Service) issue(user *domain.User) (*domain.Session, error) {
	expiresAt := s.now().Add(s.opts.TokenTTL)
	token, err := s.jwtService.GenerateJWT(user, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return nil, err
	}
	return &domain.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// Refresh issues a new token for a user that still exists and is not blocked.
func (s *Service) Refresh(ctx context.Context, userID uuid.UUID) (*domain.Session, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthorized("User not found")
	}
	if user.IsBlocked {
		return nil, domain.Forbidden("Account is blocked")
	}
	return s.issue(user)
}

// Logout only records the event; tokens expire on their own.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) {
	s.activity.Audit(ctx, domain.AuditEntry{UserID: &userID, Action: domain.AuditLogout})
}
