package domain

import (
	"bytes"
	"encoding/json"
	"math"
)

// Slot returns the value held in the given slot and whether it is populated.
func (f *FieldValue) Slot(slot ValueSlot) (any, bool) {
	if f == nil {
		return nil, false
	}
	switch slot {
	case SlotString:
		if f.ValueString != nil {
			return *f.ValueString, true
		}
	case SlotDate:
		if f.ValueDate != nil {
			return *f.ValueDate, true
		}
	case SlotNumber:
		if f.ValueNumber != nil {
			return *f.ValueNumber, true
		}
	case SlotCountryRegion:
		if f.ValueCountryRegion != nil {
			return *f.ValueCountryRegion, true
		}
	case SlotGeneric:
		return decodeGeneric(f.Value)
	}
	return nil, false
}

// Resolve returns the first populated slot of f in SlotPriority order.
// A nil field, or one with no populated slot, resolves to (nil, false).
func (f *FieldValue) Resolve() (any, bool) {
	for _, slot := range SlotPriority {
		if v, ok := f.Slot(slot); ok {
			return v, true
		}
	}
	return nil, false
}

func decodeGeneric(raw json.RawMessage) (any, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil, false
	}
	return v, true
}

// Truthy reports whether a resolved value counts as present for fallback
// purposes: nil, empty strings, zero, NaN and false do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case bool:
		return t
	default:
		return true
	}
}
