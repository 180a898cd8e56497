package hints

import "github.com/abhisek/blockhint/internal/diagnosis"

// generatorSpecs is the closed generator table. Every category in the
// taxonomy needs an entry; NewFactory enforces it.
var generatorSpecs = map[diagnosis.ErrorCategory]generatorSpec{
	diagnosis.CategoryComparingLiterals: {
		gather: comparingLiteralsFacts,
		sections: [sectionCount]string{
			SectionGeneral: "Warning: You are comparing literals in your code. This might be undesired and can " +
				"cause your code to behave wrongly. Here are some hints to resolve the potential issue:",
			SectionLocation: `{{if .Has "enclosing"}}The possible issue is in block '{{.Value "enclosing"}}' and ` +
				`with comparison '{{.Value "left"}} {{.Value "operator"}} {{.Value "right"}}'.` +
				`{{else}}The possible issue is with comparison '{{.Value "left"}} {{.Value "operator"}} ` +
				`{{.Value "right"}}'.{{end}}`,
			SectionData: `You are comparing {{.Value "left_kind"}} '{{.Value "left"}}' with ` +
				`{{.Value "right_kind"}} '{{.Value "right"}}'. We are expecting variables for comparison.`,
			SectionTransformation: "You should transform at least one of the literals into a variable before " +
				"comparing them.",
			SectionBehavior: "Think about your code and comparison. Are you comparing the right values? Currently " +
				"the outcome of the comparison is the same every time the program runs.",
			SectionExample: "When making a comparison, you usually want to compare variables. For example, if you " +
				"have a variable x with value 'test', you want to check x = 'test' instead of 'test' = 'test'.",
		},
	},

	diagnosis.CategoryIncompleteBlocks: {
		gather: incompleteBlocksFacts,
		sections: [sectionCount]string{
			SectionGeneral: "Warning: You have incomplete block sequences in your code. This might be undesired " +
				"and can cause your code to behave wrongly. Here are some hints to resolve the potential issue:",
			SectionLocation: `This issue was found in an "{{.Value "block"}}" block. Check those blocks and find ` +
				`the one where the if condition is missing.`,
			SectionData: `The "{{.Value "block"}}" block is incomplete: {{.Value "reason"}}. The first slot of ` +
				`the block should hold its condition.`,
			SectionTransformation: "To fix this issue, you need to ensure that the block is complete by filling " +
				"all empty fields.",
			SectionBehavior: "Incomplete block sequences can cause your code to behave unexpectedly. Not filling " +
				"in all empty fields makes a block incomplete. If do blocks should do an action based on a " +
				"condition. If do else do blocks should do an action based on a condition and another action if " +
				"the condition is false.",
			SectionExample: "If you have an if do block, you should have a condition in the block to determine " +
				"if the action should be executed or not. If you have an if do else do block, you should have a " +
				"condition and an action to execute if the condition is false. This condition should be in the " +
				"first field of the block and can be any logical comparison or boolean value.",
		},
	},

	diagnosis.CategoryParameterScope: {
		gather: parameterScopeFacts,
		sections: [sectionCount]string{
			SectionGeneral: "Warning: You are using parameters out of scope in your code. This might be " +
				"undesired and can cause your code to behave wrongly. Here are some hints to resolve the " +
				"potential issue:",
			SectionLocation: `The parameter '{{.Value "parameter"}}' is used outside of the function ` +
				`'{{.Value "function"}}'. Make sure to use the parameter only within the function definition.`,
			SectionData: `The parameter '{{.Value "parameter"}}' belongs to the function ` +
				`'{{.Value "function"}}', but it is used {{.Value "outside"}} time(s) outside that function.`,
			SectionTransformation: "To fix this issue, you need to ensure that the parameter is only used within " +
				"the scope of the function. Find the usages of the parameter outside of the scope of the function " +
				"and make sure they are removed or replaced with a different variable.",
			SectionBehavior: "Function parameters are supposed to be used only within the scope of the function. " +
				"Using them outside of the function can lead to unexpected behavior in your code. Ensure that " +
				"each parameter is used only within the function definition to avoid confusion and potential bugs.",
			SectionExample: "If the function greet has a parameter name, use name only inside the greet block. " +
				"Outside the function, create a separate variable and pass it to greet when you call the function.",
		},
	},

	diagnosis.CategoryTypeError: {
		gather: typeErrorFacts,
		sections: [sectionCount]string{
			SectionGeneral: "Warning: You have a type error in your code. Here are some hints to resolve the issue:",
			SectionLocation: `{{if .Has "left"}}The type error occurred when trying to perform an operation ` +
				`between '{{.Value "left"}}' and '{{.Value "right"}}'. Check the location in your code where ` +
				`these values are used together.{{else}}The type error occurred in operation ` +
				`'{{.Value "statement"}}'. Find the operation in your blocks.{{end}}`,
			SectionData: `{{if .Has "left"}}The value '{{.Value "left"}}' is of type '{{.Value "left_kind"}}', ` +
				`while the value '{{.Value "right"}}' is of type '{{.Value "right_kind"}}'. Ensure that both ` +
				`values are of the same type before performing operations on them.{{else}}The operation ` +
				`combines values of different types. Check the type of every value used in ` +
				`'{{.Value "statement"}}'.{{end}}`,
			SectionTransformation: "You should transform the code such that the types of the values being " +
				"combined are equal.",
			SectionBehavior: "Think about your code and the types of the values being combined. When applying " +
				"operations on multiple values they should have the same type.",
			SectionExample: "If you are trying to add a number and a text, you should convert the text to a " +
				"number first. For example, instead of `result = 5 + '10'`, use `result = 5 + int('10')`.",
		},
	},

	diagnosis.CategoryAmbiguousParameter: {
		gather: ambiguousParameterFacts,
		sections: [sectionCount]string{
			SectionGeneral: "Warning: You have ambiguous parameter names in your code. Here are some hints to " +
				"resolve the issue:",
			SectionLocation: `The function '{{.Value "function"}}' has an ambiguous parameter name ` +
				`'{{.Value "parameter"}}'. Check the function definition and ensure that each parameter name ` +
				`is unique.`,
			SectionData: `The parameter name '{{.Value "parameter"}}' is used more than once in the function ` +
				`'{{.Value "function"}}'.`,
			SectionTransformation: "You should rename the ambiguous parameter names in the function definition.",
			SectionBehavior: "Using ambiguous parameter names can lead to unexpected behavior in your functions. " +
				"Ensure that each parameter name is unique to avoid confusion and potential bugs.",
			SectionExample: "If you have a function with ambiguous parameter names, rename the parameters to be " +
				"unique. For example, instead of `def my_function(a, a):`, use `def my_function(a, b):`.",
		},
	},

	diagnosis.CategoryZeroDivision: {
		gather: statementFacts,
		sections: [sectionCount]string{
			SectionGeneral: "Error: You are attempting to divide a number by zero. Here are some hints to " +
				"resolve the issue:",
			SectionLocation: `The possible issue is with operation '{{.Value "statement"}}'. Find the division ` +
				`in your blocks.`,
			SectionData: "The denominator of the division evaluates to zero when the program runs. Check the " +
				"variables or expressions being used as the denominator.",
			SectionTransformation: "Add validation logic to ensure that the denominator is never zero before " +
				"performing the division.",
			SectionBehavior: "Dividing by zero has no defined result, so the program stops as soon as the " +
				"denominator of a division evaluates to zero.",
			SectionExample: "If you want to compute total / count, first check that count ≠ 0 with an if block, " +
				"and only divide inside that block.",
		},
	},

	diagnosis.CategoryOutOfBounds: {
		gather: outOfBoundsFacts,
		sections: [sectionCount]string{
			SectionGeneral: "Error: You have an out of bounds / index error in your code. Here are some hints to " +
				"resolve the issue:",
			SectionLocation: `{{if .Has "block"}}The possible issue is in block '{{.Value "block"}}' and with ` +
				`operation '{{.Value "statement"}}'.{{else}}The possible issue is with operation ` +
				`'{{.Value "statement"}}'.{{end}}`,
			SectionData: "The operation accesses a position that does not exist in the list or text it reads from.",
			SectionTransformation: "You should transform the code such that when an index of a list or a text " +
				"value is accessed, it is always available.",
			SectionBehavior: "Think about your code and accessing indexes. When the program is running, is it " +
				"trying to access indexes that do not exist?",
			SectionExample: "When accessing an index, you cannot access an index that does not exist. You can " +
				"put a check in place to make sure the index exists before accessing it. For example:\n" +
				"x = 'Hello World!'\nif len(x) > 7:\n\tprint(x[7])\nelse:\n\t" +
				"print('The index you are trying to access does not exist!')",
		},
	},

	diagnosis.CategoryNoneType: {
		gather: statementFacts,
		sections: [sectionCount]string{
			SectionGeneral: "Error: You have a none type error in your code. Here are some hints to resolve the " +
				"issue:",
			SectionLocation: `The possible issue is with operation '{{.Value "statement"}}'. Find the operation ` +
				`in your blocks.`,
			SectionData: "One of the variables in this operation holds no value when the operation runs.",
			SectionTransformation: "You should make sure that the variables are assigned a value before using " +
				"operations on them.",
			SectionBehavior: "Using variables that are not assigned a value can lead to unexpected behavior in " +
				"your code.",
			SectionExample: "To prevent a none type error, ensure that variables are assigned a value before " +
				"using them. If you have a variable a and want to compute a + 1, first set a to 0.",
		},
	},
}
