package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// DefaultDateTimeLayout is the timestamp layout of search requests and responses.
const DefaultDateTimeLayout = "2006-01-02T15:04"

var (
	Validate = validator.New()
	trans    ut.Translator

	iataCode = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	ResponseCode int    `json:"responseCode"`
	Message      string `json:"message"`
	Error        string `json:"error"`
}

type Response struct {
	Message string `json:"message"`
}

// InitValidator registers translations and the custom tags. layout is the timestamp
// layout checked by the search_datetime tag, empty means DefaultDateTimeLayout.
func InitValidator(layout string) error {
	if layout == "" {
		layout = DefaultDateTimeLayout
	}

	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := registerValidation("iata", isIATACode,
		"{0} must be a 3-letter uppercase IATA airport code"); err != nil {
		return err
	}

	if err := registerValidation("search_datetime", isSearchDateTime(layout),
		"{0} must match the layout "+layout); err != nil {
		return err
	}

	Validate.RegisterStructValidation(searchWindowValidation(layout), SearchCriteria{})

	return registerTranslation("after_departure", "departureDateTime must be before {0}")
}

func registerValidation(tag string, fn validator.Func, message string) error {
	if err := Validate.RegisterValidation(tag, fn); err != nil {
		return err
	}

	return registerTranslation(tag, message)
}

func registerTranslation(tag, message string) error {
	return Validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	)
}

func isIATACode(fl validator.FieldLevel) bool {
	return iataCode.MatchString(fl.Field().String())
}

func isSearchDateTime(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}

// searchWindowValidation reports arrivalDateTime when the window does not move
// forward. Unparsable timestamps are left to the search_datetime tag.
func searchWindowValidation(layout string) validator.StructLevelFunc {
	return func(sl validator.StructLevel) {
		criteria := sl.Current().Interface().(SearchCriteria)

		window, err := criteria.Window(layout)
		if err != nil {
			return
		}

		if !window.Start.Before(window.End) {
			sl.ReportError(criteria.ArrivalDateTime, "arrivalDateTime", "ArrivalDateTime",
				"after_departure", "")
		}
	}
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}
