// Package moderation validates and applies role and service-request status
// changes. Request status transitions are deliberately unordered: any status
// is directly settable, including regressions such as Completed back to
// Pending (operator corrections). The Pending → In Progress → Completed
// progression is a UI convention, not an invariant.
package moderation

import (
	"context"

	"talenthub/internal/apperr"
	"talenthub/internal/models"
	"talenthub/internal/repository"
)

// Machine holds the transition rules, including the protected identity set:
// profiles whose role can never be mutated through this path, so an admin
// cannot revoke a designated root account (or their own bootstrap account)
// by mistake.
type Machine struct {
	protected map[string]struct{}
}

func NewMachine(protectedIDs []string) *Machine {
	protected := make(map[string]struct{}, len(protectedIDs))
	for _, id := range protectedIDs {
		protected[id] = struct{}{}
	}
	return &Machine{protected: protected}
}

func (m *Machine) CheckRole(targetID, role string) error {
	if !models.ValidRole(role) {
		return apperr.Validation("unknown role %q", role)
	}
	if _, ok := m.protected[targetID]; ok {
		return apperr.Forbidden("profile %s is protected", targetID)
	}
	return nil
}

func (m *Machine) CheckStatus(status string) error {
	if !models.ValidStatus(status) {
		return apperr.Validation("unknown status %q", status)
	}
	return nil
}

func (m *Machine) IsProtected(profileID string) bool {
	_, ok := m.protected[profileID]
	return ok
}

// Service applies role changes against the store after the machine admits
// them. Admin gating happens at the transport layer.
type Service struct {
	machine  *Machine
	profiles repository.ProfileRepository
}

func NewService(machine *Machine, profiles repository.ProfileRepository) *Service {
	return &Service{machine: machine, profiles: profiles}
}

func (s *Service) SetRole(ctx context.Context, targetID, role string) error {
	if err := s.machine.CheckRole(targetID, role); err != nil {
		return err
	}
	return s.profiles.UpdateRole(ctx, targetID, role)
}

func (s *Service) Machine() *Machine {
	return s.machine
}
