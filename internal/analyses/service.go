package analyses

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"mindscore-backend/internal/affect"
	"mindscore-backend/internal/affect/recommend"
	"mindscore-backend/internal/classifier"
	"mindscore-backend/internal/feedback"
	"mindscore-backend/internal/shared/metrics"
	"mindscore-backend/internal/shared/telemetry"
	"mindscore-backend/internal/shared/util"
)

// MaxTextLength bounds the text accepted for classification, in runes.
const MaxTextLength = 5000

// Service runs classifiers and the scoring core. It keeps no state between
// requests and is safe for concurrent use.
type Service struct {
	Classifiers classifier.Set
	Options     feedback.Options
	now         func() time.Time
}

// NewService constructs a Service.
func NewService(set classifier.Set, opts feedback.Options) *Service {
	return &Service{Classifiers: set, Options: opts, now: time.Now}
}

// ReadingsRequest scores caller-supplied readings.
type ReadingsRequest struct {
	Readings []affect.Reading
	// Seed makes the randomized recommendation fields reproducible.
	Seed *uint64
}

// TextRequest classifies text, then scores it.
type TextRequest struct {
	Text             string
	IncludeSentiment bool
	Seed             *uint64
}

// Result is one completed analysis.
type Result struct {
	ID        string           `json:"analysisId"`
	CreatedAt time.Time        `json:"createdAt"`
	Readings  []affect.Reading `json:"readings"`
	feedback.Feedback
}

// AnalyzeReadings composes feedback from readings that are already classified.
func (s *Service) AnalyzeReadings(ctx context.Context, req ReadingsRequest) (Result, error) {
	if len(req.Readings) == 0 {
		return Result{}, invalidInput("at least one reading is required")
	}
	return s.compose(ctx, req.Readings, req.Seed, "readings")
}

// SignalRequest classifies text for a single signal.
type SignalRequest struct {
	Kind affect.Kind
	Text string
}

// SignalResult is one classified and normalized reading.
type SignalResult struct {
	CreatedAt time.Time      `json:"createdAt"`
	Reading   affect.Reading `json:"reading"`
	Signal    affect.Signal  `json:"signal"`
}

// AnalyzeSignal runs only the classifier for req.Kind, text emotion or
// stress, and normalizes its reading. No MindScore is computed.
func (s *Service) AnalyzeSignal(ctx context.Context, req SignalRequest) (SignalResult, error) {
	text, err := validateText(req.Text)
	if err != nil {
		return SignalResult{}, err
	}
	var c classifier.Classifier
	switch req.Kind {
	case affect.KindTextEmotion:
		c = s.Classifiers.TextEmotion
	case affect.KindStress:
		c = s.Classifiers.Stress
	default:
		return SignalResult{}, invalidInput("unsupported signal kind %q", req.Kind)
	}
	if c == nil {
		return SignalResult{}, &ClassifierError{Kind: req.Kind, Err: classifier.ErrNotConfigured}
	}

	start := s.clock()
	reading, err := c.Classify(ctx, classifier.Input{Text: text})
	if err != nil {
		telemetry.Error("signal.classify_failed", map[string]any{
			"kind":             req.Kind,
			"text_fingerprint": util.TextFingerprint(text),
			"error":            err.Error(),
		})
		return SignalResult{}, &ClassifierError{Kind: req.Kind, Err: err}
	}
	reading.Kind = req.Kind

	sig, err := affect.Normalizer{Thresholds: s.Options.Thresholds}.Normalize(reading)
	if err != nil {
		return SignalResult{}, err
	}
	if !sig.Known {
		telemetry.Warn("signal.unknown_label", map[string]any{
			"kind":     req.Kind,
			"category": reading.Category,
		})
	}
	telemetry.Info("signal.completed", map[string]any{
		"kind":        req.Kind,
		"label":       sig.Label,
		"duration_ms": float64(s.clock().Sub(start).Microseconds()) / 1000.0,
	})
	return SignalResult{CreatedAt: start.UTC(), Reading: reading, Signal: sig}, nil
}

// AnalyzeText runs the text emotion, stress, and optionally sentiment
// classifiers concurrently and composes feedback from their readings.
func (s *Service) AnalyzeText(ctx context.Context, req TextRequest) (Result, error) {
	text, err := validateText(req.Text)
	if err != nil {
		return Result{}, err
	}

	readings, err := s.classify(ctx, text, req.IncludeSentiment)
	if err != nil {
		metrics.IncAnalysisStarted()
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.classify_failed", map[string]any{
			"text_fingerprint": util.TextFingerprint(text),
			"text_length":      utf8.RuneCountInString(text),
			"error":            err.Error(),
		})
		return Result{}, err
	}
	return s.compose(ctx, readings, req.Seed, "text")
}

func validateText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", invalidInput("text is required")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return "", invalidInput("text must be at most %d characters", MaxTextLength)
	}
	return text, nil
}

func (s *Service) classify(ctx context.Context, text string, includeSentiment bool) ([]affect.Reading, error) {
	jobs := []struct {
		kind affect.Kind
		c    classifier.Classifier
	}{
		{affect.KindTextEmotion, s.Classifiers.TextEmotion},
		{affect.KindStress, s.Classifiers.Stress},
	}
	if includeSentiment && s.Classifiers.Sentiment != nil {
		jobs = append(jobs, struct {
			kind affect.Kind
			c    classifier.Classifier
		}{affect.KindSentiment, s.Classifiers.Sentiment})
	}

	for _, job := range jobs {
		if job.c == nil {
			return nil, &ClassifierError{Kind: job.kind, Err: classifier.ErrNotConfigured}
		}
	}

	readings := make([]affect.Reading, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			r, err := job.c.Classify(gctx, classifier.Input{Text: text})
			if err != nil {
				return &ClassifierError{Kind: job.kind, Err: err}
			}
			// The collaborator decides the label; the kind is ours.
			r.Kind = job.kind
			readings[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return readings, nil
}

func (s *Service) compose(ctx context.Context, readings []affect.Reading, seed *uint64, source string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	metrics.IncAnalysisStarted()
	start := s.clock()
	id := uuid.NewString()

	fb, err := feedback.Compose(readings, s.Options, randFor(seed))
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Warn("analysis.rejected", map[string]any{
			"analysis_id": id,
			"source":      source,
			"error":       err.Error(),
		})
		return Result{}, err
	}

	for _, w := range fb.Warnings {
		telemetry.Warn("analysis.unknown_label", map[string]any{
			"analysis_id": id,
			"warning":     w,
		})
	}

	elapsed := s.clock().Sub(start)
	metrics.IncAnalysisCompleted()
	metrics.IncCategory(string(fb.MindScore.Category))
	if fb.Alignment != nil && !fb.Alignment.Aligned {
		metrics.IncMisaligned()
	}
	metrics.ObserveAnalysisDurationMs(float64(elapsed.Microseconds()) / 1000.0)

	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id": id,
		"source":      source,
		"mind_score":  fb.MindScore.Value,
		"category":    fb.MindScore.Category,
		"rule":        fb.Recommendations.Rule,
		"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
	})

	return Result{
		ID:        id,
		CreatedAt: start.UTC(),
		Readings:  readings,
		Feedback:  fb,
	}, nil
}

func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

const seedStream = 0x5851f42d4c957f2d

// randFor returns a deterministic source for seed, or nil for the shared one.
func randFor(seed *uint64) recommend.Rand {
	if seed == nil {
		return nil
	}
	return rand.New(rand.NewPCG(*seed, *seed^seedStream))
}
