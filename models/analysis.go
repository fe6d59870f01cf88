package models

// Carpet photo analysis outcomes. The three variants keep "the model said
// this is not a carpet" distinct from "the call or parse failed", so callers
// cannot mistake a transport failure for a rejection.
const (
	AnalysisAccepted = "accepted"
	AnalysisRejected = "rejected"
	AnalysisFailed   = "failed"
)

// CarpetAnalysis is the classifier verdict for one photo.
// Numeric fields are only meaningful when Outcome is AnalysisAccepted;
// rejected and failed results carry zeroed numerics and a Reason.
type CarpetAnalysis struct {
	Outcome    string  `json:"outcome"`
	Length     float64 `json:"length,omitempty"`     // meters
	Width      float64 `json:"width,omitempty"`      // meters
	FabricType string  `json:"fabricType,omitempty"` // e.g. "wool", "synthetic"
	Confidence float64 `json:"confidence,omitempty"` // 0-100
	Reason     string  `json:"reason,omitempty"`
}

// RejectedAnalysis builds the rejection variant with zeroed numeric fields.
func RejectedAnalysis(reason string) CarpetAnalysis {
	return CarpetAnalysis{Outcome: AnalysisRejected, Reason: reason}
}

// FailedAnalysis builds the failure variant (transport error, malformed reply).
func FailedAnalysis(reason string) CarpetAnalysis {
	return CarpetAnalysis{Outcome: AnalysisFailed, Reason: reason}
}
