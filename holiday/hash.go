package holiday

import (
	"encoding/json"
	"fmt"
)

// stableHash returns the cache key spec.md §3 calls "type_tag ||
// canonical_json(rule_body)": a byte-identical string for two rules with
// semantically equal bodies, independent of Go struct field order (Go's
// json.Marshal already emits map keys in sorted lexicographic order, so
// marshaling a map built from the rule's fields gives us the canonical
// form for free).
//
// Custom rules carry a function value, which cannot be serialized or
// compared for equality; those are hashed by identifier only, which
// means two distinct Custom rules sharing a name/id will collide. Callers
// registering Custom rules must give each a unique name or ID.
func stableHash(r Rule) string {
	body := map[string]any{}
	switch r.Type {
	case TypeFixed:
		body["month"] = r.Month
		body["day"] = r.Day
	case TypeNthWeekday:
		body["month"] = r.Month
		body["weekday"] = r.Weekday
		body["nth"] = r.Nth
	case TypeRelative:
		body["relative_to"] = r.RelativeTo
		body["offset_days"] = r.OffsetDays
	case TypeLunar:
		body["calendar"] = r.Calendar
		body["month"] = r.Month
		body["day"] = r.Day
	case TypeEasterBased:
		body["offset_days"] = r.OffsetDays
	case TypeCustom:
		body["identifier"] = r.identifier()
	}
	body["duration_days"] = r.DurationDays
	if len(r.Regions) > 0 {
		body["regions"] = r.Regions
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		// Every field above is a plain value (string/int/[]string); this
		// cannot fail in practice.
		encoded = []byte(fmt.Sprintf("%v", body))
	}
	return string(r.Type) + "|" + string(encoded)
}
