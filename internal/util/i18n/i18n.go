package i18n

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

var UT *ut.UniversalTranslator

func init() {
	enLocale := en.New()
	UT = ut.New(enLocale, enLocale)
}
