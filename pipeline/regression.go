package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Jivang0/mlproject/util/common"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
)

// CategoricalFeature holds the one-hot encoding of a single categorical
// column: one coefficient per fitted category, aligned by index.
type CategoricalFeature struct {
	Column       string    `toml:"column" json:"column"`
	Categories   []string  `toml:"categories" json:"categories"`
	Coefficients []float64 `toml:"coefficients" json:"coefficients"`
}

// NumericFeature holds the standard-scaler parameters and regression
// coefficient of a single numeric column.
type NumericFeature struct {
	Column      string  `toml:"column" json:"column"`
	Mean        float64 `toml:"mean" json:"mean"`
	Scale       float64 `toml:"scale" json:"scale"`
	Coefficient float64 `toml:"coefficient" json:"coefficient"`
}

// Regression is a linear model exported by the training pipeline:
// one-hot encoded categoricals plus standard-scaled numerics.
type Regression struct {
	Intercept   float64              `toml:"intercept" json:"intercept"`
	Categorical []CategoricalFeature `toml:"categorical" json:"categorical"`
	Numeric     []NumericFeature     `toml:"numeric" json:"numeric"`
}

// Load reads a pipeline artifact. The decoder is picked by file extension:
// ".toml" or ".json".
func Load(path string) (*Regression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	r := &Regression{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, r)
	case ".json":
		err = json.Unmarshal(data, r)
	default:
		return nil, common.NewErrorf("unsupported artifact format %q", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Regression) validate() error {
	for _, c := range r.Categorical {
		if _, ok := (Features{}).categorical(c.Column); !ok {
			return common.NewErrorf("unknown categorical column %q", c.Column)
		}
		if len(c.Categories) == 0 || len(c.Categories) != len(c.Coefficients) {
			return common.NewErrorf("column %q: %d categories but %d coefficients",
				c.Column, len(c.Categories), len(c.Coefficients))
		}
	}
	for _, n := range r.Numeric {
		if _, ok := (Features{}).numeric(n.Column); !ok {
			return common.NewErrorf("unknown numeric column %q", n.Column)
		}
		if n.Scale == 0 {
			return common.NewErrorf("column %q: zero scale", n.Column)
		}
	}
	if len(r.Categorical)+len(r.Numeric) == 0 {
		return common.NewError("artifact has no features")
	}
	return nil
}

// Predict evaluates the regression for one feature row. A category value the
// pipeline was not fitted on is an error, mirroring the encoder it was
// exported from.
func (r *Regression) Predict(f Features) (float64, error) {
	score := r.Intercept

	for _, c := range r.Categorical {
		value, _ := f.categorical(c.Column)
		idx := -1
		for i, category := range c.Categories {
			if category == value {
				idx = i
				break
			}
		}
		if idx < 0 {
			return 0, common.NewErrorf("unknown value %q for column %q", value, c.Column)
		}
		score += c.Coefficients[idx]
	}

	for _, n := range r.Numeric {
		value, _ := f.numeric(n.Column)
		score += (value - n.Mean) / n.Scale * n.Coefficient
	}

	return score, nil
}
