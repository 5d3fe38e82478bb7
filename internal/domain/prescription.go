package domain

// Recommendation is the comfort prescription shown after a check-in.
// @Description Comfort prescription. Every field is always present.
type Recommendation struct {
	// Short headline
	Title string `json:"title" example:"Restorative Rest"`
	// One-sentence summary
	Description string `json:"description" example:"Your body is asking for deep rest. Let's create the perfect sanctuary."`
	// Ordered comfort actions
	Suggestions []string `json:"suggestions"`
	// Call-to-action text
	LinkText string `json:"link_text" example:"Visit the Quiet Nook"`
	// Call-to-action path or URL
	LinkURL string `json:"link_url" example:"/nook/rest"`
}

// Clone returns a deep copy so callers cannot mutate shared suggestion slices.
func (r Recommendation) Clone() Recommendation {
	out := r
	out.Suggestions = append([]string(nil), r.Suggestions...)
	return out
}

// PrescriptionSource records which path produced a Recommendation.
type PrescriptionSource string

const (
	SourceAI     PrescriptionSource = "ai"
	SourceStatic PrescriptionSource = "static"
)

// Prescription is a Recommendation together with its provenance.
type Prescription struct {
	Recommendation Recommendation
	Source         PrescriptionSource
	// TraceID links the generation to feedback scores; empty for static results.
	TraceID string
}

// GeneratePrescriptionRequest is the request body for POST /api/generate-prescription.
// @Description Mood and comfort selection.
type GeneratePrescriptionRequest struct {
	Mood    MoodState   `json:"mood" validate:"required,oneof=energized calm neutral tired" example:"tired" enums:"energized,calm,neutral,tired"`
	Comfort ComfortType `json:"comfort" validate:"required,oneof=warmth stillness distraction" example:"stillness" enums:"warmth,stillness,distraction"`
}

// FeedbackRequest is the request body for POST /api/prescriptions/feedback.
// @Description User rating of a generated prescription.
type FeedbackRequest struct {
	// Trace ID returned in the X-Trace-ID header of the generation response
	TraceID string `json:"trace_id" validate:"required,max=64" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating from 1 (unhelpful) to 5 (very helpful)
	Score int `json:"score" validate:"required,min=1,max=5" example:"5"`
	// Optional free-text comment
	Comment string `json:"comment,omitempty" validate:"max=500" example:"The blanket fort idea was perfect"`
}
