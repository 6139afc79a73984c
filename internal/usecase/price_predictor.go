package usecase

import (
	"context"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/infrastructure/mlmodel"
	"airnova-service/pkg/logger"
	"airnova-service/pkg/metrics"
	"airnova-service/pkg/pricing"
)

// PricePredictor maps a flight's feature context to a predicted price using
// the trained regression artifact. The model handle is owned by the
// composition root and loaded at most once per process; a missing artifact
// fails the request with mlmodel.ErrModelUnavailable, never a made-up price.
type PricePredictor struct {
	model   *mlmodel.Handle
	builder *FlightContextBuilder
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewPricePredictor creates a new price predictor.
func NewPricePredictor(model *mlmodel.Handle, builder *FlightContextBuilder, m *metrics.Metrics, logger logger.Logger) *PricePredictor {
	return &PricePredictor{
		model:   model,
		builder: builder,
		metrics: m,
		logger:  logger,
	}
}

// Predict builds the flight context, assembles the feature vector in the
// canonical order and evaluates the model. The returned result echoes every
// feature so callers can audit the prediction.
func (p *PricePredictor) Predict(ctx context.Context, flightID uint) (*entity.PredictionResult, error) {
	start := time.Now()

	model, err := p.model.Get()
	if err != nil {
		p.fail()
		return nil, err
	}

	fc, err := p.builder.Build(ctx, flightID)
	if err != nil {
		p.fail()
		return nil, err
	}

	features := pricing.FeatureVector(
		fc.BasePrice,
		fc.DaysToDeparture,
		fc.SeatsLeft,
		fc.IsWeekend,
		fc.DelayRisk,
		fc.RoutePopularity,
	)

	predicted, err := model.Predict(features)
	if err != nil {
		p.fail()
		return nil, err
	}

	if p.metrics != nil {
		p.metrics.PredictionsComputed.Inc()
		p.metrics.PredictionLatency.Observe(time.Since(start).Seconds())
	}
	p.logger.Info("price predicted",
		"flightId", flightID, "basePrice", fc.BasePrice,
		"predictedPrice", pricing.Round2(predicted), "modelVersion", model.Version)

	return &entity.PredictionResult{
		FlightID:        flightID,
		BasePrice:       fc.BasePrice,
		PredictedPrice:  pricing.Round2(predicted),
		DaysToDeparture: fc.DaysToDeparture,
		SeatsLeft:       fc.SeatsLeft,
		IsWeekend:       fc.IsWeekend,
		DelayRisk:       fc.DelayRisk,
		RoutePopularity: fc.RoutePopularity,
		ModelVersion:    model.Version,
	}, nil
}

func (p *PricePredictor) fail() {
	if p.metrics != nil {
		p.metrics.PredictionsFailed.Inc()
	}
}
