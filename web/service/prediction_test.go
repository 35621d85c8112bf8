package service

import (
	"reflect"
	"testing"

	"github.com/Jivang0/mlproject/pipeline"
)

type fakePredictor struct {
	calls  int
	got    pipeline.Features
	result float64
	err    error
}

func (f *fakePredictor) Predict(features pipeline.Features) (float64, error) {
	f.calls++
	f.got = features
	return f.result, f.err
}

func TestPredictInvokesPipelineOnce(t *testing.T) {
	fake := &fakePredictor{result: 76.9123}
	s := NewPredictionService(fake)

	form := PredictionForm{
		Gender:                   "female",
		RaceEthnicity:            "group B",
		ParentalLevelOfEducation: "bachelor's degree",
		Lunch:                    "standard",
		TestPreparationCourse:    "none",
		ReadingScore:             "72",
		WritingScore:             "74",
	}

	features, err := s.ParseFeatures(form)
	if err != nil {
		t.Fatalf("ParseFeatures: %v", err)
	}

	result, err := s.Predict(features)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if fake.calls != 1 {
		t.Fatalf("pipeline invoked %d times, want exactly 1", fake.calls)
	}
	if result != 76.9123 {
		t.Errorf("result = %v, want the pipeline output unmodified", result)
	}

	want := []any{"female", "group B", "bachelor's degree", "standard", "none", 72, 74}
	if got := fake.got.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("feature row = %v, want %v", got, want)
	}
}

func TestParseFeaturesRejectsBadScores(t *testing.T) {
	s := NewPredictionService(&fakePredictor{})

	tests := []struct {
		name    string
		reading string
		writing string
	}{
		{"empty reading score", "", "74"},
		{"empty writing score", "72", ""},
		{"non-numeric", "seventy", "74"},
		{"fractional", "72.5", "74"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := PredictionForm{
				Gender:        "female",
				RaceEthnicity: "group B",
				Lunch:         "standard",
				ReadingScore:  tt.reading,
				WritingScore:  tt.writing,
			}
			if _, err := s.ParseFeatures(form); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestServedCounter(t *testing.T) {
	fake := &fakePredictor{result: 50}
	s := NewPredictionService(fake)

	if s.Served() != 0 {
		t.Fatalf("served = %d before any prediction", s.Served())
	}
	for i := 0; i < 3; i++ {
		if _, err := s.Predict(pipeline.Features{}); err != nil {
			t.Fatalf("Predict: %v", err)
		}
	}
	if s.Served() != 3 {
		t.Errorf("served = %d, want 3", s.Served())
	}
}
