package llm

import "context"

// fakeProvider returns canned structured output.
type fakeProvider struct {
	text  string
	err   error
	calls int
	last  Request
	// generateFunc overrides text/err when set.
	generateFunc func(ctx context.Context, req Request) (string, error)
}

func (f *fakeProvider) Name() string {
	return "fake"
}

func (f *fakeProvider) GenerateJSON(ctx context.Context, req Request) (string, error) {
	f.calls++
	f.last = req
	if f.generateFunc != nil {
		return f.generateFunc(ctx, req)
	}
	return f.text, f.err
}

const validPrescriptionJSON = `{
	"title": "Blanket Fort Retreat",
	"description": "A soft, slow evening built for recharging.",
	"suggestions": ["Build a pillow nest", "Sip warm oat milk", "Play rain sounds"],
	"link_text": "Enter the Fort",
	"link_url": "/nook/blanket-fort"
}`
