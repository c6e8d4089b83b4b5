package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("pin", pinValidator); err != nil {
			log.Fatal("register pin validator failed")
		}
		if err := v.RegisterValidation("otp", otpValidator); err != nil {
			log.Fatal("register otp validator failed")
		}
	}
}

// Account pins are five digits, assigned at verification time.
var pinValidator validator.Func = func(fl validator.FieldLevel) bool {
	matched, err := regexp.MatchString(`^\d{5}$`, fl.Field().String())
	if err != nil {
		return false
	}
	return matched
}

// OTP codes are six digits but arrive from clients with stray whitespace,
// so the rule trims before matching.
var otpValidator validator.Func = func(fl validator.FieldLevel) bool {
	matched, err := regexp.MatchString(`^\d{6}$`, strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return matched
}
