package service

import (
	"strconv"

	"github.com/Jivang0/mlproject/pipeline"
	"github.com/Jivang0/mlproject/util/common"

	"go.uber.org/atomic"
)

// PredictionForm carries the raw form fields of one prediction request.
// Scores arrive as strings and are parsed, not defaulted: a non-integer
// score rejects the whole request.
type PredictionForm struct {
	Gender                   string `json:"gender" form:"gender"`
	RaceEthnicity            string `json:"race_ethnicity" form:"race_ethnicity"`
	ParentalLevelOfEducation string `json:"parental_level_of_education" form:"parental_level_of_education"`
	Lunch                    string `json:"lunch" form:"lunch"`
	TestPreparationCourse    string `json:"test_preparation_course" form:"test_preparation_course"`
	ReadingScore             string `json:"reading_score" form:"reading_score"`
	WritingScore             string `json:"writing_score" form:"writing_score"`
}

// PredictionService marshals validated form input into a feature row and
// delegates to the external pipeline.
type PredictionService struct {
	predictor pipeline.Predictor
	served    atomic.Int64
}

func NewPredictionService(predictor pipeline.Predictor) *PredictionService {
	return &PredictionService{predictor: predictor}
}

// ParseFeatures validates the form and builds the single-row feature record.
func (s *PredictionService) ParseFeatures(form PredictionForm) (pipeline.Features, error) {
	readingScore, err := strconv.Atoi(form.ReadingScore)
	if err != nil {
		return pipeline.Features{}, common.NewErrorf("invalid reading score %q", form.ReadingScore)
	}
	writingScore, err := strconv.Atoi(form.WritingScore)
	if err != nil {
		return pipeline.Features{}, common.NewErrorf("invalid writing score %q", form.WritingScore)
	}

	return pipeline.Features{
		Gender:                   form.Gender,
		RaceEthnicity:            form.RaceEthnicity,
		ParentalLevelOfEducation: form.ParentalLevelOfEducation,
		Lunch:                    form.Lunch,
		TestPreparationCourse:    form.TestPreparationCourse,
		ReadingScore:             readingScore,
		WritingScore:             writingScore,
	}, nil
}

// Predict invokes the pipeline exactly once and returns its output unmodified.
func (s *PredictionService) Predict(features pipeline.Features) (float64, error) {
	result, err := s.predictor.Predict(features)
	if err != nil {
		return 0, err
	}
	s.served.Inc()
	return result, nil
}

// Served reports how many predictions this process has returned.
func (s *PredictionService) Served() int64 {
	return s.served.Load()
}
