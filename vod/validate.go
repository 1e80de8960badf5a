package vod

import (
	"net/http"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	TagName = "validate"
)

var defaultValidator = &Validator{}

type Validator struct {
	once     sync.Once
	validate *validator.Validate
}

// Validate 参数验证
func (v *Validator) Validate(obj interface{}) error {
	if obj == nil {
		return nil
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.Validate(value.Elem().Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			if err := v.Validate(value.Index(i).Interface()); err != nil {
				return err
			}
		}
	case reflect.Struct:
		v.lazyInit()
		if err := v.validate.Struct(obj); err != nil {
			return ErrInfo(http.StatusBadRequest, err.Error())
		}
	}

	return nil
}

// lazyInit 延迟初始化，注册枚举类型的校验规则
// - videostatus: VideoStatus
// - sortby: SortBy
// - imagetype: ImageType
func (v *Validator) lazyInit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName(TagName)
		_ = v.validate.RegisterValidation("videostatus", func(fl validator.FieldLevel) bool {
			return VideoStatus(fl.Field().String()).Valid()
		})
		_ = v.validate.RegisterValidation("sortby", func(fl validator.FieldLevel) bool {
			return SortBy(fl.Field().String()).Valid()
		})
		_ = v.validate.RegisterValidation("imagetype", func(fl validator.FieldLevel) bool {
			return ImageType(fl.Field().String()).Valid()
		})
	})
}
