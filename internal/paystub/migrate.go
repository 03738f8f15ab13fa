package paystub

import (
	"encoding/json"
	"reflect"
	"time"

	"mbaxter/ledgerize/internal/models"
)

// Migrate upgrades a persisted paycheck collection to the canonical shape.
// Records written before the nested deduction shape or the FSA/Medicare
// guard existed get missing sub-fields zero-defaulted and the guard
// re-applied. Records that already conform are returned unchanged, so
// running the migration twice is the same as running it once. The boolean
// result reports whether anything changed and the collection needs saving.
func Migrate(raw []json.RawMessage) ([]models.Paycheck, bool, error) {
	changed := false
	out := make([]models.Paycheck, 0, len(raw))

	for _, data := range raw {
		var record map[string]interface{}
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, false, err
		}

		p := Normalize(record, time.Now().Year())
		if !recordConforms(record, p) {
			changed = true
		}
		out = append(out, p)
	}

	return out, changed, nil
}

// recordConforms reports whether the stored record is byte-for-byte
// equivalent to its canonical form.
func recordConforms(record map[string]interface{}, p models.Paycheck) bool {
	canonical, err := json.Marshal(p)
	if err != nil {
		return false
	}
	var canonicalMap map[string]interface{}
	if err := json.Unmarshal(canonical, &canonicalMap); err != nil {
		return false
	}
	return reflect.DeepEqual(record, canonicalMap)
}
