package vision

import (
	"context"

	"cleansync/models"
)

// CarpetClassifier analyzes a carpet photo and returns a verdict. The verdict
// is always a suggestion the user can override, never an authoritative value.
type CarpetClassifier interface {
	Analyze(ctx context.Context, imageJPEG []byte) models.CarpetAnalysis
}

// Thresholds are the secondary heuristics applied on top of the model reply.
type Thresholds struct {
	ConfidenceFloor float64 // reject below this (0-100 scale)
	MaxMeters       float64 // plausible carpet dimension upper bound
}

// DefaultVisionService implements CarpetClassifier against the Gemini API.
type DefaultVisionService struct {
	client     *GeminiClient
	thresholds Thresholds
}

// NewDefaultVisionService wires the classifier with its remote client.
func NewDefaultVisionService(apiKey string, thresholds Thresholds) *DefaultVisionService {
	return &DefaultVisionService{
		client:     NewGeminiClient(apiKey),
		thresholds: thresholds,
	}
}
