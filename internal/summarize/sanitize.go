package summarize

import (
	"encoding/json"
	"fmt"

	"github.com/MalithGihan/taxnotice-service/internal/validate"
	"github.com/MalithGihan/taxnotice-service/pkg/types"
)

var scalarKeys = []string{
	"noticeType", "noticeFor", "address", "ssn", "amountDue", "payBy", "noticeMeaning", "whyText",
}

// ParseSummary turns raw model text into a fully shaped NoticeSummary.
// Missing keys and nulls default to empty; bad syntax or wrong value types
// are an InvalidSummaryJsonError.
func ParseSummary(raw string) (types.NoticeSummary, error) {
	var doc any
	if err := json.Unmarshal([]byte(StripFence(raw)), &doc); err != nil {
		return types.NoticeSummary{}, fail(ErrInvalidSummaryJSON, "parse summary", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return types.NoticeSummary{}, fail(ErrInvalidSummaryJSON, "parse summary",
			fmt.Errorf("top-level value is %T, want object", doc))
	}

	m = Sanitize(m)
	if err := validate.ValidateSummary(m); err != nil {
		return types.NoticeSummary{}, fail(ErrInvalidSummaryJSON, "validate summary", err)
	}

	b, err := json.Marshal(m)
	if err != nil {
		return types.NoticeSummary{}, fail(ErrInvalidSummaryJSON, "parse summary", err)
	}
	var s types.NoticeSummary
	if err := json.Unmarshal(b, &s); err != nil {
		return types.NoticeSummary{}, fail(ErrInvalidSummaryJSON, "parse summary", err)
	}
	return s.Normalized(), nil
}

// Sanitize fills every key the summary schema requires and folds the
// ssnMasked alias into ssn. Values of the wrong type are left alone so that
// validation rejects them.
func Sanitize(m map[string]any) map[string]any {
	if v, ok := m["ssnMasked"]; ok {
		if m["ssn"] == nil {
			m["ssn"] = v
		}
		delete(m, "ssnMasked")
	}
	for _, k := range scalarKeys {
		ensureStr(m, k)
	}

	ensureArr(m, "breakdown")
	if items, ok := m["breakdown"].([]any); ok {
		for _, v := range items {
			if it, ok := v.(map[string]any); ok {
				ensureStr(it, "item")
				ensureStr(it, "amount")
			}
		}
	}

	ensureObj(m, "fixSteps", "agree", "disagree")
	ensureObj(m, "paymentOptions", "online", "mail", "plan")
	ensureObj(m, "helpInfo", "contact", "advocate")
	return m
}

func ensureStr(m map[string]any, k string) {
	if m[k] == nil {
		m[k] = ""
	}
}

func ensureArr(m map[string]any, k string) {
	if m[k] == nil {
		m[k] = []any{}
	}
}

func ensureObj(m map[string]any, k string, fields ...string) {
	if m[k] == nil {
		m[k] = map[string]any{}
	}
	if obj, ok := m[k].(map[string]any); ok {
		for _, f := range fields {
			ensureStr(obj, f)
		}
	}
}
