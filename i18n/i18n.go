package i18n

import "fmt"

var Locale = "en"

func L(key string, args ...any) string {
	msg, ok := translations[Locale][key]

	if !ok {
		msg = EN[key]
	}

	return fmt.Sprintf(msg, args...)
}

func SetLocale(locale string) error {
	_, exist := translations[locale]

	if !exist {
		return fmt.Errorf("unsupported locale %s", locale)
	}

	Locale = locale

	return nil
}
