package morphology

import "fmt"

// DatabaseParseError is returned when a morphology database file is
// malformed.
type DatabaseParseError struct {
	Msg string
}

func (e *DatabaseParseError) Error() string {
	return fmt.Sprintf("morphology: parsing database: %s", e.Msg)
}

func parseErrorf(format string, args ...any) *DatabaseParseError {
	return &DatabaseParseError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidDatabaseFlagError is returned when a database is opened with an
// unknown flag character.
type InvalidDatabaseFlagError struct {
	Flag rune
}

func (e *InvalidDatabaseFlagError) Error() string {
	return fmt.Sprintf("morphology: invalid database flag %q", e.Flag)
}

// AnalyzerError is returned for invalid analyzer configurations.
type AnalyzerError struct {
	Msg string
}

func (e *AnalyzerError) Error() string {
	return "morphology: " + e.Msg
}

// GeneratorError is returned for invalid generator configurations.
type GeneratorError struct {
	Msg string
}

func (e *GeneratorError) Error() string {
	return "morphology: " + e.Msg
}

// ReinflectorError is returned for invalid reinflector configurations.
type ReinflectorError struct {
	Msg string
}

func (e *ReinflectorError) Error() string {
	return "morphology: " + e.Msg
}

// InvalidGeneratorFeatureError is returned by Generator.Generate when a
// feature is not defined in the database.
type InvalidGeneratorFeatureError struct {
	Feat string
}

func (e *InvalidGeneratorFeatureError) Error() string {
	return fmt.Sprintf("morphology: invalid generator feature %q", e.Feat)
}

// InvalidGeneratorFeatureValueError is returned by Generator.Generate when a
// feature is given a value outside its defined value set.
type InvalidGeneratorFeatureValueError struct {
	Feat  string
	Value string
}

func (e *InvalidGeneratorFeatureValueError) Error() string {
	return fmt.Sprintf("morphology: invalid value %q for generator feature %q",
		e.Value, e.Feat)
}

// InvalidReinflectorFeatureError is returned by Reinflector.Reinflect when a
// feature is not defined in the database.
type InvalidReinflectorFeatureError struct {
	Feat string
}

func (e *InvalidReinflectorFeatureError) Error() string {
	return fmt.Sprintf("morphology: invalid reinflector feature %q", e.Feat)
}

// InvalidReinflectorFeatureValueError is returned by Reinflector.Reinflect
// when a feature is given a value outside its defined value set.
type InvalidReinflectorFeatureValueError struct {
	Feat  string
	Value string
}

func (e *InvalidReinflectorFeatureValueError) Error() string {
	return fmt.Sprintf("morphology: invalid value %q for reinflector feature %q",
		e.Value, e.Feat)
}
