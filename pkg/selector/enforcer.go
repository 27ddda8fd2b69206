package selector

// ABOUTME: Strict capability enforcement layered above the selector
// ABOUTME: Selector returns empty on no match; this layer turns that into CapabilityError

import (
	"context"
	"fmt"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog"
	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
)

// CapabilityError reports that a requested capability cannot be satisfied by
// any model in the catalog while strict capability validation is enabled.
type CapabilityError struct {
	Capability domain.Capability
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("no model in catalog supports capability %q", e.Capability)
}

// CapabilityEnforcer validates capability requirements against the catalog.
// It sits above the selector, which itself never errors on "no match": in
// strict mode an unsatisfiable capability becomes a CapabilityError, while
// with AutoForce enabled (or strict mode off) the check is skipped and
// callers proceed at their own risk.
type CapabilityEnforcer struct {
	catalog   *catalog.Catalog
	strict    bool
	autoForce bool
}

// NewCapabilityEnforcer creates an enforcer. strict enables validation;
// autoForce suppresses it even when strict is set, mirroring the
// auto-force-on-unsupported-models escape hatch.
func NewCapabilityEnforcer(cat *catalog.Catalog, strict, autoForce bool) *CapabilityEnforcer {
	return &CapabilityEnforcer{catalog: cat, strict: strict, autoForce: autoForce}
}

// Validate checks that each requested capability is supported by at least
// one catalog model. Returns *CapabilityError for the first unsatisfiable
// capability, or a catalog availability error.
func (e *CapabilityEnforcer) Validate(ctx context.Context, caps ...domain.Capability) error {
	if !e.strict || e.autoForce {
		return nil
	}

	all, err := e.catalog.All(ctx)
	if err != nil {
		return err
	}

	for _, c := range caps {
		supported := false
		for _, record := range all {
			if record.HasCapability(c) {
				supported = true
				break
			}
		}
		if !supported {
			return &CapabilityError{Capability: c}
		}
	}
	return nil
}
