package validate

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hooksaurus/internal/domain"
	"hooksaurus/internal/platform/datetime"
)

// FieldErrors maps a form field name to a human readable message. Stores
// return it for rule violations only they can see, such as a taken email.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

var (
	once  sync.Once
	v     *validator.Validate
	trans ut.Translator
)

func get() (*validator.Validate, ut.Translator) {
	once.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ = uni.GetTranslator("en")

		v = validator.New(validator.WithRequiredStructEnabled())
		// messages and keys use the html field name
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("form"); name != "" && name != "-" {
				return name
			}
			return fld.Name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
			_, err := datetime.Parse(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
			return err == nil && !d.IsNegative()
		})
		registerMessage(v, trans, "timestamp", "{0} must be a date and time")
		registerMessage(v, trans, "decimal", "{0} must be a non-negative amount")

		v.RegisterStructValidation(auctionWindow, domain.AuctionForm{})
		v.RegisterStructValidation(itemWindow, domain.AuctionItemForm{})
		registerMessage(v, trans, "after_start", "{0} must not be before the start")
	})
	return v, trans
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, text, true) },
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Field() + " is invalid"
			}
			return msg
		})
}

func auctionWindow(sl validator.StructLevel) {
	f := sl.Current().Interface().(domain.AuctionForm)
	checkWindow(sl, f.StartDate, f.EndDate, "EndDate", "end_date")
}

func itemWindow(sl validator.StructLevel) {
	f := sl.Current().Interface().(domain.AuctionItemForm)
	checkWindow(sl, f.ActiveStartDate, f.ActiveEndDate, "ActiveEndDate", "active_end_date")
}

func checkWindow(sl validator.StructLevel, rawStart, rawEnd, field, name string) {
	start, err1 := datetime.Parse(rawStart)
	end, err2 := datetime.Parse(rawEnd)
	if err1 != nil || err2 != nil {
		return // field rules already report these
	}
	if end.Before(start) {
		sl.ReportError(rawEnd, name, field, "after_start", "")
	}
}

// Struct validates a form input struct. A nil map means the input is valid.
func Struct(in any) (FieldErrors, error) {
	val, tr := get()
	err := val.Struct(in)
	if err == nil {
		return nil, nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return nil, inv
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = fe.Translate(tr)
	}
	return out, nil
}

// ID validates a primary key from the route.
func ID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	return id, err == nil
}

