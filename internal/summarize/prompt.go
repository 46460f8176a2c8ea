package summarize

import "strings"

// PromptTemplate wraps extracted notice text between a fixed head and tail.
// It is a plain value; copies share nothing mutable.
type PromptTemplate struct {
	Version string
	Head    string
	Tail    string
}

// Build embeds text verbatim. The same text always yields the same prompt.
func (t PromptTemplate) Build(text string) string {
	return t.Head + text + t.Tail
}

// Embedded recovers the text a prompt was built from.
func (t PromptTemplate) Embedded(prompt string) (string, bool) {
	s, ok := strings.CutPrefix(prompt, t.Head)
	if !ok {
		return "", false
	}
	return strings.CutSuffix(s, t.Tail)
}

func (t PromptTemplate) IsZero() bool {
	return t.Version == "" && t.Head == "" && t.Tail == ""
}

const noticeHeadV1 = `You are a meticulous tax notice analyst. Read the text of the IRS notice below and extract the requested information into one well-formed JSON object. Include every field. If the information for a field cannot be found, use an empty string "" for that value.

Return a JSON object with exactly this structure:
{
  "noticeType": "The notice code, like 'CP23' or 'CP503C'",
  "noticeFor": "The full name of the taxpayer, e.g., 'JAMES & KAREN Q. HINDS'",
  "address": "The full address of the taxpayer, with newlines as \n, e.g., '22 BOULDER STREET\nHANSON, CT 00000-7253'",
  "ssn": "The Social Security Number, masked, e.g., 'nnn-nn-nnnn'",
  "amountDue": "The final total amount due as a string, e.g., '$500.73'",
  "payBy": "The payment due date as a string, e.g., 'February 20, 2018'",
  "breakdown": [
    { "item": "The first line item in the billing summary", "amount": "Its corresponding amount" },
    { "item": "The second line item", "amount": "Its amount" }
  ],
  "noticeMeaning": "A concise, 2-line professional explanation of what this notice type means.",
  "whyText": "A paragraph explaining exactly why the taxpayer received this notice, based on the text.",
  "fixSteps": {
    "agree": "The steps to take if the taxpayer agrees.",
    "disagree": "The steps to take if the taxpayer disagrees."
  },
  "paymentOptions": {
    "online": "The URL for online payments, e.g., 'www.irs.gov/payments'",
    "mail": "Instructions for paying by mail.",
    "plan": "The URL for setting up a payment plan, e.g., 'www.irs.gov/paymentplan'"
  },
  "helpInfo": {
    "contact": "The primary contact phone number for questions.",
    "advocate": "Information about the Taxpayer Advocate Service, including their phone number."
  }
}

List breakdown items in the order they appear in the notice. Use an empty list when there is no billing summary.

Here is the text to analyze:
---
`

const noticeTailV1 = `
---
`

// DefaultTemplate returns the v1 notice template.
func DefaultTemplate() PromptTemplate {
	return PromptTemplate{Version: "v1", Head: noticeHeadV1, Tail: noticeTailV1}
}
