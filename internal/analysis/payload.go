package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mealsnap/serverless-backend/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParsePayload decodes the model's raw text output against the candidates
// contract: raw JSON, unknown fields rejected, exactly CandidateCount dishes
// with non-empty names. Dish names are normalized to title case so the
// stored record honors the contract even when the model is sloppy about
// capitalization.
func ParsePayload(raw string) (*models.AnalysisPayload, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var p models.AnalysisPayload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("model output is not contract JSON: %w", err)
	}
	if len(p.Candidates) != CandidateCount {
		return nil, fmt.Errorf("model output has %d candidates, want %d", len(p.Candidates), CandidateCount)
	}
	caser := cases.Title(language.English)
	for i := range p.Candidates {
		name := strings.TrimSpace(p.Candidates[i].Name)
		if name == "" {
			return nil, fmt.Errorf("candidate %d has an empty name", i)
		}
		p.Candidates[i].Name = caser.String(name)
	}
	return &p, nil
}
