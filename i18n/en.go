package i18n

var EN = Messages{
	"duplicate_macro_definition": "Later definition of macro %s",
	"parse_failed":               "There was an error parsing the file. Review your recent changes.",
	"major_token":                "Major Token: @%s",
	"associated_minor_tokens":    "Associated Minor Tokens: %s",
	"other_minor_tokens":         "Other minor tokens of @%s: %s",
	"macro_defined_on_line":      "defined on line %d",
}
