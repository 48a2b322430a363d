package ai

// NoAnswer is substituted when the provider response carries no usable text.
const NoAnswer = "no answer"

// GenerateResponse mirrors the provider's nested generateContent response.
// Every level may be missing in practice, so extraction must not trust it.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content Content `json:"content"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// ExtractText pulls the first candidate's first text part out of a provider
// response. Any missing level of the structure yields NoAnswer.
func ExtractText(resp *GenerateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return NoAnswer
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return NoAnswer
	}
	return parts[0].Text
}
