package diagnosis

// seedCategories defines the closed category taxonomy. Every entry needs a
// runtime rule or a detector here and a hint generator in package hints.
var seedCategories = []CategoryInfo{
	// Runtime errors (failed runs).
	{
		ID:          CategoryZeroDivision,
		Label:       "Division by zero",
		Description: "A division or modulo operation ran with a denominator of zero",
	},
	{
		ID:          CategoryOutOfBounds,
		Label:       "Index out of bounds",
		Description: "A list or text was accessed at an index that does not exist",
	},
	{
		ID:          CategoryNoneType,
		Label:       "Missing value",
		Description: "An operation was applied to a variable that holds no value",
	},
	{
		ID:          CategoryTypeError,
		Label:       "Type mismatch",
		Description: "An operation combines values of incompatible types, e.g. text + number",
	},
	{
		ID:          CategoryAmbiguousParameter,
		Label:       "Ambiguous parameter name",
		Description: "A function declares the same parameter name more than once",
	},

	// Silent defects (successful runs).
	{
		ID:          CategoryComparingLiterals,
		Label:       "Comparing literals",
		Description: "A comparison between two constants always has the same outcome",
	},
	{
		ID:          CategoryIncompleteBlocks,
		Label:       "Incomplete block sequence",
		Description: "A conditional block is missing its condition",
	},
	{
		ID:          CategoryParameterScope,
		Label:       "Parameter out of scope",
		Description: "A function parameter is referenced outside the function that declares it",
	},
}
