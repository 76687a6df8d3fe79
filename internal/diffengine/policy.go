package diffengine

import "github.com/netform-dev/netform/internal/compare"

// OrderPolicy and OrderPolicyConfig are aliases onto internal/compare's
// definitions. They live there (not here) because NormalizeOptions embeds
// OrderPolicyConfig and compare must not import diffengine, which in turn
// needs OrderPolicyConfig to resolve line-diff policy by Path.
type (
	OrderPolicy       = compare.OrderPolicy
	OrderPolicyConfig = compare.OrderPolicyConfig
	PolicyOverride    = compare.PolicyOverride
)

const (
	PolicyOrdered     = compare.PolicyOrdered
	PolicyUnordered   = compare.PolicyUnordered
	PolicyKeyedStable = compare.PolicyKeyedStable
)
