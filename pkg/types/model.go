package types

// NoticeSummary is the structured reading of one tax notice.
// Values are display strings; nothing is parsed into numbers or dates.
type NoticeSummary struct {
	NoticeType     string          `json:"noticeType"`
	NoticeFor      string          `json:"noticeFor"`
	Address        string          `json:"address"` // newline-delimited
	SSNMasked      string          `json:"ssn"`
	AmountDue      string          `json:"amountDue"`
	PayBy          string          `json:"payBy"`
	Breakdown      []BreakdownItem `json:"breakdown"` // document order
	NoticeMeaning  string          `json:"noticeMeaning"`
	WhyText        string          `json:"whyText"`
	FixSteps       FixSteps        `json:"fixSteps"`
	PaymentOptions PaymentOptions  `json:"paymentOptions"`
	HelpInfo       HelpInfo        `json:"helpInfo"`
}

type BreakdownItem struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
}

type FixSteps struct {
	Agree    string `json:"agree"`
	Disagree string `json:"disagree"`
}

type PaymentOptions struct {
	Online string `json:"online"`
	Mail   string `json:"mail"`
	Plan   string `json:"plan"`
}

type HelpInfo struct {
	Contact  string `json:"contact"`
	Advocate string `json:"advocate"`
}

// Normalized returns a copy whose Breakdown is never nil, so the summary
// always serializes with every key present.
func (s NoticeSummary) Normalized() NoticeSummary {
	out := s
	out.Breakdown = make([]BreakdownItem, len(s.Breakdown))
	copy(out.Breakdown, s.Breakdown)
	return out
}
