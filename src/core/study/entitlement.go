package study

import "context"

// EntitlementChecker is the subscription gate consulted before the pipeline
// is allowed to run. How entitlement is established (payments, plans) lives
// outside this module; the core only needs the boolean answer.
type EntitlementChecker interface {
	Allowed(ctx context.Context, userID string) bool
}

// StaticEntitlement is a config-backed checker: when enforcement is off
// every user is allowed, otherwise only the listed subscribers are.
type StaticEntitlement struct {
	enforce     bool
	subscribers map[string]struct{}
}

func NewStaticEntitlement(enforce bool, subscribers []string) *StaticEntitlement {
	set := make(map[string]struct{}, len(subscribers))
	for _, s := range subscribers {
		set[s] = struct{}{}
	}
	return &StaticEntitlement{enforce: enforce, subscribers: set}
}

func (s *StaticEntitlement) Allowed(ctx context.Context, userID string) bool {
	if !s.enforce {
		return true
	}
	_, ok := s.subscribers[userID]
	return ok
}
