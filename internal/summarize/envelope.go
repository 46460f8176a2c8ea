package summarize

import "errors"

// Envelope is an unwrapped model response: either the text of the first part
// of the first candidate, or the reason that path was missing.
type Envelope struct {
	text   string
	reason string
	ok     bool
}

func EnvelopeOK(text string) Envelope { return Envelope{text: text, ok: true} }

func EnvelopeShapeError(reason string) Envelope { return Envelope{reason: reason} }

func (e Envelope) OK() bool { return e.ok }

// Text returns the payload or a ModelResponseShapeError.
func (e Envelope) Text() (string, error) {
	if !e.ok {
		reason := e.reason
		if reason == "" {
			reason = "empty envelope"
		}
		return "", fail(ErrResponseShape, "unwrap envelope", errors.New(reason))
	}
	return e.text, nil
}

// Wire shape of generateContent.

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content *responseContent `json:"content"`
}

type responseContent struct {
	Parts []responsePart `json:"parts"`
}

type responsePart struct {
	Text *string `json:"text"`
}

func newGenerateRequest(prompt string) generateRequest {
	return generateRequest{Contents: []requestContent{{Parts: []requestPart{{Text: prompt}}}}}
}

func (r generateResponse) envelope() Envelope {
	if len(r.Candidates) == 0 {
		return EnvelopeShapeError("no candidates")
	}
	c := r.Candidates[0].Content
	if c == nil {
		return EnvelopeShapeError("first candidate has no content")
	}
	if len(c.Parts) == 0 {
		return EnvelopeShapeError("first candidate has no parts")
	}
	if c.Parts[0].Text == nil {
		return EnvelopeShapeError("first part has no text")
	}
	return EnvelopeOK(*c.Parts[0].Text)
}
