package i18n

var UK = Messages{
	"duplicate_macro_definition": "Повторне визначення макросу %s",
	"parse_failed":               "Під час розбору файлу сталася помилка. Перевірте останні зміни.",
	"major_token":                "Основний токен: @%s",
	"associated_minor_tokens":    "Повʼязані другорядні токени: %s",
	"other_minor_tokens":         "Інші другорядні токени @%s: %s",
	"macro_defined_on_line":      "визначено в рядку %d",
}
