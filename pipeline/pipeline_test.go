package pipeline

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testModel() *Regression {
	return &Regression{
		Intercept: 10,
		Categorical: []CategoricalFeature{
			{
				Column:       "gender",
				Categories:   []string{"female", "male"},
				Coefficients: []float64{1, -1},
			},
			{
				Column:       "lunch",
				Categories:   []string{"free/reduced", "standard"},
				Coefficients: []float64{-2, 2},
			},
		},
		Numeric: []NumericFeature{
			{Column: "reading_score", Mean: 70, Scale: 10, Coefficient: 2},
			{Column: "writing_score", Mean: 60, Scale: 5, Coefficient: 3},
		},
	}
}

func TestValuesFollowColumnOrder(t *testing.T) {
	f := Features{
		Gender:                   "female",
		RaceEthnicity:            "group B",
		ParentalLevelOfEducation: "bachelor's degree",
		Lunch:                    "standard",
		TestPreparationCourse:    "none",
		ReadingScore:             72,
		WritingScore:             74,
	}

	want := []any{"female", "group B", "bachelor's degree", "standard", "none", 72, 74}
	if got := f.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	if len(Columns) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(Columns))
	}
}

func TestRegressionPredict(t *testing.T) {
	model := testModel()

	tests := []struct {
		name     string
		features Features
		expected float64
	}{
		{
			name: "female standard lunch",
			features: Features{
				Gender:       "female",
				Lunch:        "standard",
				ReadingScore: 72,
				WritingScore: 65,
			},
			// 10 + 1 + 2 + (72-70)/10*2 + (65-60)/5*3
			expected: 16.4,
		},
		{
			name: "male reduced lunch",
			features: Features{
				Gender:       "male",
				Lunch:        "free/reduced",
				ReadingScore: 70,
				WritingScore: 60,
			},
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.Predict(tt.features)
			if err != nil {
				t.Fatalf("Predict: %v", err)
			}
			if !almostEqual(got, tt.expected) {
				t.Errorf("Predict = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRegressionPredictUnknownCategory(t *testing.T) {
	model := testModel()

	_, err := model.Predict(Features{
		Gender:       "other",
		Lunch:        "standard",
		ReadingScore: 70,
		WritingScore: 60,
	})
	if err == nil {
		t.Fatal("expected error for unfitted category value")
	}
}

func TestLoadTOML(t *testing.T) {
	artifact := `
intercept = 10.0

[[categorical]]
column = "gender"
categories = ["female", "male"]
coefficients = [1.0, -1.0]

[[numeric]]
column = "reading_score"
mean = 70.0
scale = 10.0
coefficient = 2.0
`
	path := filepath.Join(t.TempDir(), "pipeline.toml")
	if err := os.WriteFile(path, []byte(artifact), 0o644); err != nil {
		t.Fatal(err)
	}

	model, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := model.Predict(Features{Gender: "male", ReadingScore: 80})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if !almostEqual(got, 11) {
		t.Errorf("Predict = %v, want 11", got)
	}
}

func TestLoadJSON(t *testing.T) {
	artifact := `{
	"intercept": 5,
	"categorical": [
		{"column": "lunch", "categories": ["free/reduced", "standard"], "coefficients": [-2, 2]}
	],
	"numeric": [
		{"column": "writing_score", "mean": 60, "scale": 5, "coefficient": 3}
	]
}`
	path := filepath.Join(t.TempDir(), "pipeline.json")
	if err := os.WriteFile(path, []byte(artifact), 0o644); err != nil {
		t.Fatal(err)
	}

	model, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := model.Predict(Features{Lunch: "standard", WritingScore: 65})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if !almostEqual(got, 10) {
		t.Errorf("Predict = %v, want 10", got)
	}
}

func TestLoadRejectsInvalidArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "unsupported extension",
			file:    "pipeline.pkl",
			content: "not a go artifact",
		},
		{
			name: "mismatched coefficients",
			file: "pipeline.toml",
			content: `
[[categorical]]
column = "gender"
categories = ["female", "male"]
coefficients = [1.0]
`,
		},
		{
			name: "zero scale",
			file: "pipeline.toml",
			content: `
[[numeric]]
column = "reading_score"
mean = 70.0
scale = 0.0
coefficient = 2.0
`,
		},
		{
			name: "unknown column",
			file: "pipeline.toml",
			content: `
[[numeric]]
column = "math_score"
mean = 70.0
scale = 10.0
coefficient = 2.0
`,
		},
		{
			name:    "empty artifact",
			file:    "pipeline.toml",
			content: `intercept = 1.0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected load error")
			}
		})
	}
}
