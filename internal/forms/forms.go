// Package forms validates the console's entity forms.
package forms

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"travelconsole/internal/domain"
	"travelconsole/internal/utils"

	"github.com/go-playground/validator/v10"
)

// Form is a submitted entity form.
type Form interface {
	// Entity names the record the form edits, e.g. "Bus operator".
	Entity() string
	// Success is the confirmation shown after a simulated submission.
	Success(edit bool) string
	messages() map[string]string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseDate(fl.Field().String())
		return err == nil
	})
	v.RegisterStructValidation(couponDates, CouponForm{})
	v.RegisterStructValidation(commissionDates, CommissionForm{})
	v.RegisterStructValidation(notificationSchedule, NotificationForm{})
	return v
}

// Names lists the form names New accepts.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var registry = map[string]func() Form{
	"operator":      func() Form { return &OperatorForm{} },
	"taxi-driver":   func() Form { return &DriverForm{} },
	"bike-rider":    func() Form { return &RiderForm{} },
	"hotel-manager": func() Form { return &ManagerForm{} },
	"coupon":        func() Form { return &CouponForm{} },
	"commission":    func() Form { return &CommissionForm{} },
	"notification":  func() Form { return &NotificationForm{} },
	"user":          func() Form { return &UserForm{} },
}

// New returns an empty form to bind a request into.
func New(name string) (Form, error) {
	mk, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, domain.NotFoundError{Resource: "form " + name}
	}
	return mk(), nil
}

// Validate checks f and returns domain.FieldErrors keyed by json field name.
func Validate(f Form) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.InternalError{Msg: "form validation failed", Err: err}
	}
	msgs := f.messages()
	out := domain.FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(msgs, field, fe.Tag())
	}
	return out
}

func message(msgs map[string]string, field, tag string) string {
	if m, ok := msgs[field+"."+tag]; ok {
		return m
	}
	if m, ok := msgs[field]; ok {
		return m
	}
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Valid email is required"
	case "date":
		return "Use the YYYY-MM-DD format"
	case "oneof":
		return "Unsupported value"
	default:
		return "Invalid value"
	}
}
