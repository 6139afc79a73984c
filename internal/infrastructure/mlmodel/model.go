// Package mlmodel loads and evaluates the trained price-regression artifact.
//
// The artifact is a JSON coefficient file exported by the offline trainer:
//
//	{"version": "...", "features": [...], "weights": [...], "intercept": ...}
//
// The feature list must match pricing.FeatureNames; the weights are applied
// positionally, so the order is a hard contract with the training side.
package mlmodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrModelUnavailable is returned whenever the artifact cannot be loaded or
// is malformed. Callers must surface it, never a fabricated price.
var ErrModelUnavailable = errors.New("price model unavailable")

// LinearModel is a trained linear regression over a fixed feature order.
type LinearModel struct {
	Version   string    `json:"version"`
	Features  []string  `json:"features"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// Predict evaluates the regression for one feature vector.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d", len(features), len(m.Weights))
	}
	sum := m.Intercept
	for i, w := range m.Weights {
		sum += w * features[i]
	}
	return sum, nil
}

// Handle is a write-once holder for the loaded model. The composition root
// owns the single instance and injects it; the artifact is read from disk at
// most once per process, even under concurrent first use.
type Handle struct {
	path  string
	once  sync.Once
	model *LinearModel
	err   error
}

// NewHandle creates a handle for the artifact at path. Nothing is loaded
// until the first Get.
func NewHandle(path string) *Handle {
	return &Handle{path: path}
}

// Get returns the loaded model. The load outcome, success or failure, is
// latched: an operator installing the artifact later must restart the
// process.
func (h *Handle) Get() (*LinearModel, error) {
	h.once.Do(func() {
		h.model, h.err = load(h.path)
	})
	return h.model, h.err
}

func load(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrModelUnavailable, path, err)
	}

	var model LinearModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrModelUnavailable, path, err)
	}
	if len(model.Weights) == 0 || len(model.Weights) != len(model.Features) {
		return nil, fmt.Errorf("%w: %s has %d weights for %d features", ErrModelUnavailable, path, len(model.Weights), len(model.Features))
	}

	return &model, nil
}
