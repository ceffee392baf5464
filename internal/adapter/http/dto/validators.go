package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var walletNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _\-\.]{0,63}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wallet_name", validateWalletName)
	}
}

// validateWalletName allows the display names wallets register under,
// like "Petra" or "OKX Wallet".
func validateWalletName(fl validator.FieldLevel) bool {
	return walletNameRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace from every exported string field
// (including *string) of a struct pointer. Content is not escaped: it is
// written on chain verbatim and escaped by whoever renders it.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
