package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/ucsb-cslas/cslas-api/pkg/errors"
)

// AdminChecker decides whether the holder of a token may mutate office hours.
type AdminChecker interface {
	IsAdmin(ctx context.Context, token string) (bool, error)
}

type adminRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AuthorizationService resolves admin rights from token claims, a configured
// email allow-list and the admins table, in that order.
type AuthorizationService struct {
	auth    *AuthService
	admins  adminRepository
	emails  map[string]struct{}
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAuthorizationService constructs an AuthorizationService.
func NewAuthorizationService(auth *AuthService, admins adminRepository, adminEmails []string, metrics *MetricsService, logger *zap.Logger) *AuthorizationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	emails := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
			emails[e] = struct{}{}
		}
	}
	return &AuthorizationService{auth: auth, admins: admins, emails: emails, metrics: metrics, logger: logger}
}

// IsAdmin reports whether the token belongs to an admin. Invalid tokens are
// simply not admin; only a failing admins lookup yields an error.
func (s *AuthorizationService) IsAdmin(ctx context.Context, token string) (bool, error) {
	claims, err := s.auth.ValidateToken(token)
	if err != nil {
		s.metrics.ObserveAdminCheck("denied")
		return false, nil
	}
	if claims.Role.IsAdmin() {
		s.metrics.ObserveAdminCheck("granted")
		return true, nil
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		s.metrics.ObserveAdminCheck("denied")
		return false, nil
	}
	if _, ok := s.emails[email]; ok {
		s.metrics.ObserveAdminCheck("granted")
		return true, nil
	}
	if s.admins == nil {
		s.metrics.ObserveAdminCheck("denied")
		return false, nil
	}

	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		s.metrics.ObserveAdminCheck("error")
		s.logger.Warn("admin lookup failed", zap.String("email", email), zap.Error(err))
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check admin rights")
	}
	if exists {
		s.metrics.ObserveAdminCheck("granted")
	} else {
		s.metrics.ObserveAdminCheck("denied")
	}
	return exists, nil
}
