package readiness

import (
	"context"
	"errors"

	"readiness-api/internal/shared/metrics"
	"readiness-api/internal/shared/telemetry"
)

// Service wraps Compute with logging and metrics.
type Service struct {
	Validator *Validator
}

func NewService() *Service {
	return &Service{Validator: NewValidator()}
}

// Calculate scores p and records the outcome. It returns ctx.Err() if the
// request was cancelled before scoring.
func (s *Service) Calculate(ctx context.Context, p Progress) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res := Compute(p)
	metrics.IncCalculation(string(res.Level))
	telemetry.Info("readiness.calculated", map[string]any{
		"score": res.Score,
		"level": string(res.Level),
	})
	return res, nil
}

// CalculateJSON decodes body, validates it and scores it. Validation
// failures are logged and counted before being returned.
func (s *Service) CalculateJSON(ctx context.Context, body []byte) (Result, error) {
	p, err := s.Validator.DecodeProgress(body)
	if err != nil {
		fields := map[string]any{"error": err.Error()}
		var verr *ValidationError
		if errors.As(err, &verr) {
			fields["violations"] = len(verr.Messages)
		}
		metrics.IncValidationFailure()
		telemetry.Warn("readiness.validation_failed", fields)
		return Result{}, err
	}
	return s.Calculate(ctx, p)
}
