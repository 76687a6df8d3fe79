package compare

// OrderPolicy selects the line-diff semantics applied at a given Path.
type OrderPolicy string

const (
	PolicyOrdered      OrderPolicy = "ordered"
	PolicyUnordered    OrderPolicy = "unordered"
	PolicyKeyedStable  OrderPolicy = "keyed-stable"
)

// PolicyOverride pins a policy to every Path sharing the given prefix.
type PolicyOverride struct {
	PathPrefix Path        `json:"path_prefix"`
	Policy     OrderPolicy `json:"policy"`
}

// OrderPolicyConfig is a default policy plus path-prefix overrides.
// Resolution picks the override with the longest matching prefix; if none
// matches, the default applies.
type OrderPolicyConfig struct {
	Default   OrderPolicy      `json:"default"`
	Overrides []PolicyOverride `json:"overrides"`
}

// Resolve returns the effective policy at path.
func (c OrderPolicyConfig) Resolve(path Path) OrderPolicy {
	best := -1
	policy := c.Default
	for _, ov := range c.Overrides {
		if !isPrefix(ov.PathPrefix, path) {
			continue
		}
		if len(ov.PathPrefix) > best {
			best = len(ov.PathPrefix)
			policy = ov.Policy
		}
	}
	return policy
}

func isPrefix(prefix, path Path) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if prefix[i] != path[i] {
			return false
		}
	}
	return true
}

// NormalizeOptions configures flattening: the normalization pipeline and
// the order policy used during the line-diff tier.
type NormalizeOptions struct {
	Steps       []NormalizationStep
	OrderPolicy OrderPolicyConfig
}
