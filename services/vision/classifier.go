package vision

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"cleansync/models"
	"cleansync/utils"

	"go.uber.org/zap"
)

// maxImageBytes caps the payload forwarded to the vision API. Clients are
// expected to downsample before upload; anything larger is refused here.
const maxImageBytes = 4 << 20

// analyzeTimeout bounds the remote vision call.
const analyzeTimeout = 30 * time.Second

const classifierPrompt = `You are a carpet inspection assistant. Look at the photo and answer with ONLY a JSON object, no prose, in this exact shape:
{"isCarpet": true|false, "length": <meters>, "width": <meters>, "fabricType": "<label>", "confidence": <0-100>, "errorMessage": "<why, when isCarpet is false>"}
Rules: if the photo does not clearly show a single carpet or rug, set isCarpet to false, zero the numbers and explain in errorMessage. Estimate length and width in meters. confidence reflects how sure you are about the dimensions.`

// rawReply mirrors the JSON object the model is instructed to produce.
type rawReply struct {
	IsCarpet     bool    `json:"isCarpet"`
	Length       float64 `json:"length"`
	Width        float64 `json:"width"`
	FabricType   string  `json:"fabricType"`
	Confidence   float64 `json:"confidence"`
	ErrorMessage string  `json:"errorMessage"`
}

// Analyze runs the carpet photo through the vision model and the validation
// cascade. Transport failures and malformed replies come back as the Failed
// variant; they are logged here and never retried.
func (s *DefaultVisionService) Analyze(ctx context.Context, imageJPEG []byte) models.CarpetAnalysis {
	logger := utils.GetLogger()

	if len(imageJPEG) == 0 {
		return models.FailedAnalysis("no image data")
	}
	if len(imageJPEG) > maxImageBytes {
		return models.FailedAnalysis("image too large; please use a smaller photo")
	}

	ctx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	reply, err := s.client.GenerateFromImage(ctx, imageJPEG, classifierPrompt)
	if err != nil {
		logger.Warn("vision: analysis call failed", zap.Error(err))
		return models.FailedAnalysis("carpet analysis is unavailable right now")
	}

	return EvaluateReply(reply, s.thresholds)
}

// EvaluateReply parses the model's textual reply and applies the validation
// cascade. Each step short-circuits to a rejection:
//  1. the model's own isCarpet flag,
//  2. dimension plausibility (0, MaxMeters] on both axes,
//  3. the confidence floor.
// Quoted numeric values are discarded on every rejection path.
func EvaluateReply(reply string, t Thresholds) models.CarpetAnalysis {
	var raw rawReply
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &raw); err != nil {
		utils.GetLogger().Warn("vision: malformed analysis reply", zap.Error(err))
		return models.FailedAnalysis("carpet analysis returned an unreadable result")
	}

	if !raw.IsCarpet {
		reason := raw.ErrorMessage
		if reason == "" {
			reason = "The photo does not appear to show a carpet"
		}
		return models.RejectedAnalysis(reason)
	}
	if raw.Length <= 0 || raw.Length > t.MaxMeters || raw.Width <= 0 || raw.Width > t.MaxMeters {
		return models.RejectedAnalysis("Carpet dimensions could not be detected from the photo")
	}
	if raw.Confidence < t.ConfidenceFloor {
		return models.RejectedAnalysis("The analysis confidence was too low; please enter dimensions manually")
	}

	return models.CarpetAnalysis{
		Outcome:    models.AnalysisAccepted,
		Length:     raw.Length,
		Width:      raw.Width,
		FabricType: raw.FabricType,
		Confidence: raw.Confidence,
	}
}

// stripCodeFence removes a markdown code fence the model may wrap around the
// JSON payload.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
