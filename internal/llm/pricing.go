package llm

// Price is a model's list price in USD per million tokens.
type Price struct {
	Input  float64
	Output float64
}

// Cost returns the USD cost of usage at this price.
func (p Price) Cost(u Usage) float64 {
	return (float64(u.InputTokens)*p.Input + float64(u.OutputTokens)*p.Output) / 1e6
}

// LookupPrice returns the list price for a model ID.
func LookupPrice(model string) (Price, bool) {
	p, ok := prices[model]
	return p, ok
}

// prices covers the default model and the aliases each provider accepts.
var prices = map[string]Price{
	"gpt-4":       {Input: 30, Output: 60},
	"gpt-4-0613":  {Input: 30, Output: 60},
	"gpt-4-turbo": {Input: 10, Output: 30},
	"gpt-4o":      {Input: 2.5, Output: 10},
	"gpt-4o-mini": {Input: 0.15, Output: 0.6},
	"gpt-4.1":     {Input: 2, Output: 8},

	"claude-sonnet-4-20250514":  {Input: 3, Output: 15},
	"claude-haiku-4-5-20251001": {Input: 1, Output: 5},

	"gemini-2.0-flash": {Input: 0.1, Output: 0.4},
	"gemini-2.5-pro":   {Input: 1.25, Output: 10},
}
