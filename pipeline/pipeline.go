// Package pipeline exposes the pre-trained student performance regression
// pipeline. The model itself is trained elsewhere; this package only loads
// the exported artifact and evaluates it for a single feature row.
package pipeline

// Columns is the fixed column order the trained pipeline was fitted on.
// Predictors consume feature rows in exactly this order.
var Columns = [7]string{
	"gender",
	"race_ethnicity",
	"parental_level_of_education",
	"lunch",
	"test_preparation_course",
	"reading_score",
	"writing_score",
}

// Features is a single-row feature record. It is built fresh per request,
// handed to a Predictor once and discarded.
type Features struct {
	Gender                   string
	RaceEthnicity            string
	ParentalLevelOfEducation string
	Lunch                    string
	TestPreparationCourse    string
	ReadingScore             int
	WritingScore             int
}

// Values returns the row values in Columns order.
func (f Features) Values() []any {
	return []any{
		f.Gender,
		f.RaceEthnicity,
		f.ParentalLevelOfEducation,
		f.Lunch,
		f.TestPreparationCourse,
		f.ReadingScore,
		f.WritingScore,
	}
}

// categorical returns the value of a categorical column by name.
func (f Features) categorical(column string) (string, bool) {
	switch column {
	case "gender":
		return f.Gender, true
	case "race_ethnicity":
		return f.RaceEthnicity, true
	case "parental_level_of_education":
		return f.ParentalLevelOfEducation, true
	case "lunch":
		return f.Lunch, true
	case "test_preparation_course":
		return f.TestPreparationCourse, true
	}
	return "", false
}

// numeric returns the value of a numeric column by name.
func (f Features) numeric(column string) (float64, bool) {
	switch column {
	case "reading_score":
		return float64(f.ReadingScore), true
	case "writing_score":
		return float64(f.WritingScore), true
	}
	return 0, false
}

// Predictor is the contract of the external pipeline: a deterministic,
// side-effect-free function from one feature row to one numeric score.
type Predictor interface {
	Predict(f Features) (float64, error)
}
