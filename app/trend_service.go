package app

import (
	"context"
	"errors"
	"time"

	"gotrend/domain/core"
	"gotrend/domain/trend"
	"gotrend/internal"
	apperrors "gotrend/internal/errors"
	"gotrend/ports"
)

// TrendService runs ordered-alternative analyses end to end: validation,
// partitioning, the pairwise engine and descriptive summaries.
type TrendService struct {
	engine ports.EnginePort
	logger *internal.Logger
}

// AnalysisRequest defines the inputs for a single trend analysis.
type AnalysisRequest struct {
	Observations []trend.Observation
	Ordering     trend.Ordering  // nil means identity
	AnalysisID   core.AnalysisID // optional, will be generated if empty
}

// Analysis is the complete, self-describing output of one analysis run.
type Analysis struct {
	AnalysisID  core.AnalysisID      `json:"analysis_id"`
	CreatedAt   core.Timestamp       `json:"created_at"`
	DatasetHash core.DatasetHash     `json:"dataset_hash"`
	N           int                  `json:"n"`
	Ordering    trend.Ordering       `json:"ordering"`
	GroupSizes  []int                `json:"group_sizes"`
	Trend       *trend.TestResult    `json:"trend"`
	Kruskal     *trend.KruskalResult `json:"kruskal,omitempty"`
	Summaries   []trend.GroupSummary `json:"summaries"`
	RuntimeMs   int64                `json:"runtime_ms"`
}

// NewTrendService creates a trend analysis service
func NewTrendService(engine ports.EnginePort) *TrendService {
	return &TrendService{
		engine: engine,
		logger: internal.NewDefaultLogger().WithScope("TrendService"),
	}
}

// Run executes a full analysis over in-memory observations.
func (s *TrendService) Run(ctx context.Context, req AnalysisRequest) (*Analysis, error) {
	startTime := time.Now()

	analysisID := req.AnalysisID
	if analysisID.IsEmpty() {
		analysisID = core.NewAnalysisID()
	}

	part, err := trend.NewPartition(req.Observations, req.Ordering)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeValidationError, err)
	}

	s.logger.Info("Starting analysis %s (%d observations, %d groups)", analysisID, part.N(), part.K())

	result, err := s.engine.JonckheereTerpstra(ctx, part)
	if err != nil {
		return nil, classifyEngineError(err)
	}

	if s.logger.GetLevel() >= internal.LogLevelDebug {
		for _, pair := range result.Pairs {
			s.logger.Debug("Pair %s: U=%.1f of %d", pair.Label, pair.Uxy, pair.Nx*pair.Ny)
		}
	}

	// The omnibus companion can fail on inputs the trend test accepts,
	// all pooled values identical being the one real case. The analysis
	// then ships without it.
	kruskal, err := s.engine.KruskalWallis(ctx, part)
	if err != nil {
		if !errors.Is(err, trend.ErrDegenerateVariance) {
			return nil, classifyEngineError(err)
		}
		s.logger.Warn("Analysis %s: omnibus check dropped, pooled ranks are degenerate", analysisID)
		kruskal = nil
	}

	s.logger.Info("Analysis %s completed: JT=%.4f, p=%.4f in %.2fms",
		analysisID, result.JT, result.PValue, float64(time.Since(startTime).Nanoseconds())/1e6)

	return &Analysis{
		AnalysisID:  analysisID,
		CreatedAt:   core.Now(),
		DatasetHash: hashObservations(req.Observations),
		N:           part.N(),
		Ordering:    part.Ordering,
		GroupSizes:  part.Sizes(),
		Trend:       result,
		Kruskal:     kruskal,
		Summaries:   GroupSummaries(part),
		RuntimeMs:   time.Since(startTime).Milliseconds(),
	}, nil
}

// RunFile reads observations through the given reader and analyzes them.
func (s *TrendService) RunFile(ctx context.Context, reader ports.ReaderPort, ord trend.Ordering) (*Analysis, error) {
	observations, err := reader.ReadObservations()
	if err != nil {
		return nil, classifyReaderError(err)
	}
	return s.Run(ctx, AnalysisRequest{Observations: observations, Ordering: ord})
}

func classifyEngineError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case trend.IsValidationError(err) || trend.IsOrderingError(err):
		return apperrors.WithCode(apperrors.CodeValidationError, err)
	default:
		return apperrors.ComputeError("trend engine failed", err)
	}
}

func classifyReaderError(err error) error {
	switch {
	case core.IsNotFoundError(err):
		return apperrors.WithCode(apperrors.CodeNotFound, err)
	case core.IsIngestionError(err):
		return apperrors.WithCode(apperrors.CodeInvalidInput, err)
	default:
		return apperrors.IOError("failed to read observations", err)
	}
}

func hashObservations(obs []trend.Observation) core.DatasetHash {
	values := make([]float64, len(obs))
	labels := make([]float64, len(obs))
	for i, ob := range obs {
		values[i] = ob.Value
		labels[i] = ob.Group
	}
	return core.ComputeDatasetHash(values, labels)
}
