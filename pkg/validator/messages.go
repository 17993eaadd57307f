package validator

// Message keys of the built-in operators. Each key has an entry in the
// default catalog (see DefaultCatalog).
const (
	ValueCannotBeNull     = "ValueCannotBeNull"
	ValueCannotBeEmpty    = "ValueCannotBeEmpty"
	InvalidEmail          = "InvalidEmail"
	PatternMismatch       = "PatternMismatch"
	MustBeOneOf           = "MustBeOneOf"
	MinimumValue          = "MinimumValue"
	MaximumValue          = "MaximumValue"
	LengthRange           = "LengthRange"
	GreaterThan           = "GreaterThan"
	LessThan              = "LessThan"
	CustomConditionFailed = "CustomConditionFailed"
	TagMismatch           = "TagMismatch"
)
