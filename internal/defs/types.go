// internal/defs/types.go
package defs

import (
	"fmt"
	"strings"
)

// Variant names a projectile behaviour.
type Variant string

const (
	VariantStraight Variant = "STRAIGHT"
	VariantBounce   Variant = "BOUNCE"
	VariantPierce   Variant = "PIERCE"
	VariantHoming   Variant = "HOMING"
	VariantBeam     Variant = "BEAM"
)

// ParseVariant accepts a variant name in any case.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToUpper(strings.TrimSpace(s)))
	switch v {
	case VariantStraight, VariantBounce, VariantPierce, VariantHoming, VariantBeam:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}
