// Package prescriptions turns photographed handwritten prescriptions
// into structured treatment plans via the NLU boundary.
package prescriptions

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"ayursutra-server/internal/nlu"
)

// ErrSuperseded is returned when a newer analysis was started before
// this one resolved; its late response is discarded instead of
// overwriting newer state.
var ErrSuperseded = errors.New("analysis superseded by a newer request")

const analysisPrompt = `Analyze this image of a handwritten Ayurvedic prescription. Extract key information and return it ONLY as a single, valid JSON object. Do not include any explanatory text, markdown, or anything outside of the JSON structure. The required JSON structure is: { "patientName": "string", "patientAge": "number | null", "therapies": [ { "name": "string", "duration": "string" } ], "dosageAndTiming": [ { "period": "string", "instruction": "string" } ] }. If you cannot read something, use an empty string "", null for numbers, or an empty array []. Make your best guess for hard-to-read words.`

// Therapy is one prescribed treatment with an optional duration.
type Therapy struct {
	Name     string `json:"name"`
	Duration string `json:"duration,omitempty"`
}

// TimingDetail is one dosage or timing instruction.
type TimingDetail struct {
	Period      string `json:"period"`
	Instruction string `json:"instruction"`
}

// AnalysisResult is the structured interpretation of a prescription.
type AnalysisResult struct {
	PatientName     string         `json:"patientName"`
	PatientAge      *int           `json:"patientAge"`
	Therapies       []Therapy      `json:"therapies"`
	DosageAndTiming []TimingDetail `json:"dosageAndTiming"`
}

// Analysis is a completed result in the recent-results list.
type Analysis struct {
	AnalysisResult
	AnalyzedAt time.Time `json:"analyzedAt"`
	Accuracy   int       `json:"accuracy"`
}

// Service runs analyses and keeps the recent results. A failed or
// superseded analysis never modifies the recent list, so the caller
// can retry with the same image.
type Service struct {
	client nlu.Client
	log    *zap.Logger

	mu         sync.Mutex
	generation uint64
	recent     []Analysis
}

// NewService creates a prescription analysis service seeded with the
// given recent analyses.
func NewService(client nlu.Client, log *zap.Logger, seed []Analysis) *Service {
	return &Service{
		client: client,
		log:    log,
		recent: append([]Analysis(nil), seed...),
	}
}

// Analyze sends the prescription image through the NLU boundary,
// parses the embedded JSON, and prepends the result to the recent
// list. Each call supersedes any outstanding one: a response arriving
// after a newer Analyze started is dropped with ErrSuperseded.
func (s *Service) Analyze(ctx context.Context, image []byte, mimeType string) (*Analysis, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	raw, err := s.client.GenerateText(ctx, nlu.Request{
		Prompt:   analysisPrompt,
		Image:    image,
		MIMEType: mimeType,
	})
	if err != nil {
		s.log.Warn("prescription analysis failed", zap.String("kind", string(nlu.KindOf(err))), zap.Error(err))
		return nil, err
	}

	var result AnalysisResult
	if err := nlu.ExtractJSON(raw, &result); err != nil {
		s.log.Warn("prescription analysis returned unparsable content", zap.Error(err))
		return nil, err
	}

	analysis := Analysis{
		AnalysisResult: result,
		AnalyzedAt:     time.Now(),
		Accuracy:       95,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil, ErrSuperseded
	}
	s.recent = append([]Analysis{analysis}, s.recent...)
	return &analysis, nil
}

// Recent returns a copy of the recent analyses, newest first.
func (s *Service) Recent() []Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Analysis(nil), s.recent...)
}
