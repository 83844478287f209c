package auth

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/openlogistics-io/referencedata/internal/domain"
	"github.com/openlogistics-io/referencedata/internal/message"
)

// UserLoader loads the authorization view of a user, role assignments
// included. Implemented by the database layer.
type UserLoader interface {
	LoadUser(id uuid.UUID) (*domain.User, error)
}

// RightService evaluates whether the calling principal holds a given right,
// optionally scoped to a program, supervisory node or warehouse. All checks
// return nil on success and an UnauthorizedError otherwise; they never
// mutate state.
type RightService struct {
	users UserLoader
}

// NewRightService creates a right service backed by the given user loader.
func NewRightService(users UserLoader) *RightService {
	return &RightService{users: users}
}

// AdminCheckOption tweaks a CheckAdminRight call.
type AdminCheckOption func(*adminCheck)

type adminCheck struct {
	allowServiceTokens bool
	expectedUserID     uuid.UUID
}

// DenyServiceTokens makes the check fail for service-level tokens instead of
// letting them bypass the right lookup.
func DenyServiceTokens() AdminCheckOption {
	return func(c *adminCheck) { c.allowServiceTokens = false }
}

// AllowSelf lets the owner of the target resource pass the check without
// holding the right, e.g. a user reading their own account.
func AllowSelf(expectedUserID uuid.UUID) AdminCheckOption {
	return func(c *adminCheck) { c.expectedUserID = expectedUserID }
}

// CheckAdminRight verifies the principal holds the named general-admin right
// through a scope-free role assignment. Service-level tokens pass by
// default; DenyServiceTokens and AllowSelf adjust the rules.
func (s *RightService) CheckAdminRight(principal Principal, rightName string, opts ...AdminCheckOption) error {
	check := adminCheck{allowServiceTokens: true}
	for _, opt := range opts {
		opt(&check)
	}

	if principal.ServiceLevel {
		if check.allowServiceTokens {
			log.Debug().Str("right", rightName).Msg("admin right check passed: service level token")
			return nil
		}

		return message.NewUnauthorizedError(message.KeyUnauthorized, rightName)
	}

	if principal.UserID == uuid.Nil {
		return message.NewUnauthenticatedError(message.KeyTokenMissing)
	}

	if check.expectedUserID != uuid.Nil && check.expectedUserID == principal.UserID {
		log.Debug().Str("right", rightName).Msg("admin right check passed: self access")
		return nil
	}

	query := domain.RightQuery{Right: domain.NewRight(rightName, domain.RightTypeGeneralAdmin)}

	return s.check(principal, rightName, query)
}

// CheckSupervisionRight verifies the principal holds the named supervision
// right for the program, and, when facilityID is not uuid.Nil, that the
// grant covers that facility (by supervisory-node subtree or home facility).
func (s *RightService) CheckSupervisionRight(
	principal Principal, rightName string, programID, facilityID uuid.UUID,
) error {
	if principal.ServiceLevel {
		return nil
	}

	query := domain.RightQuery{
		Right:      domain.NewRight(rightName, domain.RightTypeSupervision),
		ProgramID:  programID,
		FacilityID: facilityID,
	}

	return s.check(principal, rightName, query)
}

// CheckFulfillmentRight verifies the principal holds the named
// order-fulfillment right at the warehouse.
func (s *RightService) CheckFulfillmentRight(principal Principal, rightName string, warehouseID uuid.UUID) error {
	if principal.ServiceLevel {
		return nil
	}

	query := domain.RightQuery{
		Right:       domain.NewRight(rightName, domain.RightTypeOrderFulfillment),
		WarehouseID: warehouseID,
	}

	return s.check(principal, rightName, query)
}

// CheckReportRight verifies the principal holds the named order-report
// right.
func (s *RightService) CheckReportRight(principal Principal, rightName string) error {
	if principal.ServiceLevel {
		return nil
	}

	query := domain.RightQuery{Right: domain.NewRight(rightName, domain.RightTypeOrderReport)}

	return s.check(principal, rightName, query)
}

// CheckRootAccess passes only for trusted service-level tokens.
func (s *RightService) CheckRootAccess(principal Principal) error {
	if principal.ServiceLevel {
		return nil
	}

	return message.NewUnauthorizedError(message.KeyUnauthorizedGeneric)
}

func (s *RightService) check(principal Principal, rightName string, query domain.RightQuery) error {
	if principal.UserID == uuid.Nil {
		return message.NewUnauthenticatedError(message.KeyTokenMissing)
	}

	user, err := s.users.LoadUser(principal.UserID)
	if err != nil {
		log.Error().Err(err).Stringer("user_id", principal.UserID).Msg("failed to load user for right check")
		return message.NewUnauthorizedError(message.KeyUnauthorized, rightName)
	}

	if user.HasRight(query) {
		return nil
	}

	log.Warn().
		Stringer("user_id", principal.UserID).
		Str("right", rightName).
		Msg("user lacks required right")

	return message.NewUnauthorizedError(message.KeyUnauthorized, rightName)
}
