package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator"
	"github.com/vivuhq/vivu/catalog"
	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/services/search"
)

type Validator struct {
	validator                *validator.Validate
	logger                   logger.Logger
	tagValidationDetailsOnce sync.Once
	tagValidationDetailsMap  map[string]tagValidationDetails
}

type tagValidationDetails struct {
	validatorFunc validator.Func
	err           error
}

func New(logger logger.Logger) (*Validator, error) {
	validator := &Validator{validator: validator.New(), logger: logger}
	validator.validator.RegisterTagNameFunc(useFormFieldNames)
	if err := validator.registerCustomValidatorsForTags(); err != nil {
		return nil, err
	}

	return validator, nil
}

func (v *Validator) Validate(i any) error {

	if err := v.validator.Struct(i); err != nil {
		v.logger.Warn("validation failed", "err", err.Error())
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {

			tagValidationDetails, ok := v.getTagValidationDetails()[validationErrs[0].Tag()]
			if ok {
				return fmt.Errorf("field '%s': %w", validationErrs[0].Field(), tagValidationDetails.err)
			}

			switch validationErrs[0].Tag() {
			case "required":
				return fmt.Errorf("missing required field '%s'", validationErrs[0].Field())

			case "min", "max":
				return fmt.Errorf("value or length of field '%s' is not in the expected range", validationErrs[0].Field())

			}
		}
		return err
	}
	return nil
}

func (v *Validator) getTagValidationDetails() map[string]tagValidationDetails {
	v.tagValidationDetailsOnce.Do(func() {
		v.tagValidationDetailsMap = map[string]tagValidationDetails{
			"valid_type":  {validatorFunc: v.isValidItemType, err: errors.New("unknown catalog type")},
			"valid_sort":  {validatorFunc: v.isValidSortKey, err: errors.New("unknown sort key")},
			"valid_order": {validatorFunc: v.isValidSortOrder, err: errors.New("sort order must be asc or desc")},
		}
	})
	return v.tagValidationDetailsMap
}

func (v *Validator) registerCustomValidatorsForTags() error {

	tagValidationDetailsMap := v.getTagValidationDetails()

	for tag, tagValidationDetails := range tagValidationDetailsMap {
		if err := v.validator.RegisterValidation(tag, tagValidationDetails.validatorFunc); err != nil {
			v.logger.Error("failed to register custom validator function", "err", err.Error())
			return err
		}
	}
	return nil
}

// useFormFieldNames reports validation errors using the query-string names
// callers actually send.
func useFormFieldNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// An empty value passes the tag validators below: these fields are optional
// and the handler fills in defaults after binding.

func (v *Validator) isValidItemType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) == 0 {
		return true
	}

	_, ok := catalog.ParseItemType(value)
	if !ok {
		v.logger.Warn("unknown catalog type in request", "type", value)
	}
	return ok
}

func (v *Validator) isValidSortKey(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) == 0 {
		return true
	}

	switch search.SortKey(value) {
	case search.SortRelevance, search.SortPrice, search.SortRating, search.SortName:
		return true
	}
	v.logger.Warn("unknown sort key in request", "sort_by", value)
	return false
}

func (v *Validator) isValidSortOrder(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) == 0 {
		return true
	}

	switch search.SortOrder(value) {
	case search.OrderAsc, search.OrderDesc:
		return true
	}
	v.logger.Warn("unknown sort order in request", "sort_order", value)
	return false
}
