package service

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/ridelog/faff-backend-go/internal/analysis"
	"github.com/ridelog/faff-backend-go/internal/fitfile"
	"github.com/ridelog/faff-backend-go/internal/models"
)

// AnalysisService orchestrates decode-then-analyze for one uploaded
// activity. It holds no state: every call is independent, and nothing is
// stored between requests.
type AnalysisService struct{}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService() *AnalysisService {
	return &AnalysisService{}
}

// AnalyzeFIT decodes one FIT stream and runs the faff pipeline over it.
// Decoding is the only failure mode; the pipeline itself cannot fail.
func (s *AnalysisService) AnalyzeFIT(r io.Reader, opts analysis.Options) (*models.AnalysisResult, error) {
	set, err := fitfile.Decode(r)
	if err != nil {
		return nil, err
	}

	res := analysis.Analyze(set.Samples, set.Summaries, opts)

	log.Printf("[AnalysisService] %d samples, %d summaries -> %d periods (%d slow runs, %d gaps), split=%s",
		len(set.Samples), len(set.Summaries), len(res.Periods),
		res.Summary.SlowRunCount, res.Summary.GapCount, opts.Split)

	return &models.AnalysisResult{
		AnalysisID:  uuid.NewString(),
		Sport:       set.Sport,
		SampleCount: len(set.Samples),
		Activity:    res.Times,
		Periods:     res.Periods,
		Gaps:        res.Gaps,
		SlowRuns:    res.SlowRuns,
		Summary:     res.Summary,
	}, nil
}
