package i18n

var RU = Messages{
	"duplicate_macro_definition": "Повторное определение макроса %s",
	"parse_failed":               "При разборе файла произошла ошибка. Проверьте последние изменения.",
	"major_token":                "Основной токен: @%s",
	"associated_minor_tokens":    "Связанные второстепенные токены: %s",
	"other_minor_tokens":         "Другие второстепенные токены @%s: %s",
	"macro_defined_on_line":      "определён в строке %d",
}
