package vision

import (
	"testing"

	"cleansync/models"

	"github.com/stretchr/testify/assert"
)

var testThresholds = Thresholds{ConfidenceFloor: 50, MaxMeters: 10}

func TestEvaluateReply(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		wantOutcome string
	}{
		{
			name:        "accepted carpet",
			reply:       `{"isCarpet": true, "length": 3.0, "width": 2.0, "fabricType": "wool", "confidence": 87}`,
			wantOutcome: models.AnalysisAccepted,
		},
		{
			name:        "not a carpet",
			reply:       `{"isCarpet": false, "length": 0, "width": 0, "confidence": 0, "errorMessage": "photo shows a sofa"}`,
			wantOutcome: models.AnalysisRejected,
		},
		{
			name:        "zero dimensions rejected",
			reply:       `{"isCarpet": true, "length": 0, "width": 2, "confidence": 90}`,
			wantOutcome: models.AnalysisRejected,
		},
		{
			name:        "implausibly large rejected",
			reply:       `{"isCarpet": true, "length": 12, "width": 2, "confidence": 90}`,
			wantOutcome: models.AnalysisRejected,
		},
		{
			name:        "low confidence rejected",
			reply:       `{"isCarpet": true, "length": 3, "width": 2, "confidence": 40}`,
			wantOutcome: models.AnalysisRejected,
		},
		{
			name:        "confidence exactly at floor accepted",
			reply:       `{"isCarpet": true, "length": 3, "width": 2, "confidence": 50}`,
			wantOutcome: models.AnalysisAccepted,
		},
		{
			name:        "malformed json fails",
			reply:       `sorry, I cannot help with that`,
			wantOutcome: models.AnalysisFailed,
		},
		{
			name:        "empty reply fails",
			reply:       ``,
			wantOutcome: models.AnalysisFailed,
		},
		{
			name:        "fenced json accepted",
			reply:       "```json\n{\"isCarpet\": true, \"length\": 3, \"width\": 2, \"confidence\": 80}\n```",
			wantOutcome: models.AnalysisAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateReply(tt.reply, testThresholds)
			assert.Equal(t, tt.wantOutcome, got.Outcome)
		})
	}
}

func TestEvaluateReplyRejectionDiscardsDimensions(t *testing.T) {
	got := EvaluateReply(`{"isCarpet": true, "length": 3, "width": 2, "confidence": 40}`, testThresholds)
	assert.Equal(t, models.AnalysisRejected, got.Outcome)
	assert.Zero(t, got.Length)
	assert.Zero(t, got.Width)
	assert.NotEmpty(t, got.Reason)
}

func TestEvaluateReplyCarriesModelReason(t *testing.T) {
	got := EvaluateReply(`{"isCarpet": false, "errorMessage": "photo shows a sofa"}`, testThresholds)
	assert.Equal(t, models.AnalysisRejected, got.Outcome)
	assert.Equal(t, "photo shows a sofa", got.Reason)

	got = EvaluateReply(`{"isCarpet": false}`, testThresholds)
	assert.Equal(t, models.AnalysisRejected, got.Outcome)
	assert.NotEmpty(t, got.Reason)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
	assert.Equal(t, "", stripCodeFence("``````"))
}
