package summarize

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/MalithGihan/taxnotice-service/pkg/types"
)

var (
	reNoticeCode = regexp.MustCompile(`\b(?:CP|LTR|LT)\s?\d{1,4}[A-Z]?\b`)
	reAmount     = regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)
	reAmountDue  = regexp.MustCompile(`(?i)amount\s+(?:you\s+)?(?:due|owe)\b[^$]{0,40}(\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	rePayBy      = regexp.MustCompile(`(?i)(?:pay\s+by|due\s+date|payment\s+due)[:\s]+((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4})`)
	reMaskedSSN  = regexp.MustCompile(`\b(?:nnn|XXX|\*{3})-(?:nn|XX|\*{2})-(?:\d{4}|nnnn)\b`)
)

// MockModel answers without any network call. It reads the notice text back
// out of the prompt and fills the fields simple patterns can find.
type MockModel struct {
	Template PromptTemplate
}

func (m MockModel) Generate(ctx context.Context, prompt string) (Envelope, error) {
	if err := ctx.Err(); err != nil {
		return Envelope{}, fail(ErrTransport, "call model", err)
	}
	text, ok := m.Template.Embedded(prompt)
	if !ok {
		text = prompt
	}

	b, err := json.MarshalIndent(MockFromText(text), "", "  ")
	if err != nil {
		return Envelope{}, fail(ErrTransport, "call model", err)
	}
	return EnvelopeOK(fenceOpen + "\n" + string(b) + "\n" + fenceClose), nil
}

// MockFromText builds a summary from pattern matches alone.
func MockFromText(text string) types.NoticeSummary {
	s := types.NoticeSummary{
		NoticeType: strings.ReplaceAll(reNoticeCode.FindString(text), " ", ""),
		SSNMasked:  reMaskedSSN.FindString(text),
	}

	if m := reAmountDue.FindStringSubmatch(text); m != nil {
		s.AmountDue = m[1]
	} else if all := reAmount.FindAllString(text, -1); len(all) > 0 {
		s.AmountDue = all[len(all)-1]
	}
	if m := rePayBy.FindStringSubmatch(text); m != nil {
		s.PayBy = m[1]
	}
	return s.Normalized()
}
