package debugui

import (
	"reflect"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// FieldInfo describes one editable field of a tuning struct.
type FieldInfo struct {
	Name       string
	Index      int
	IsPointer  bool
	IsDuration bool
}

// ReflectionCache remembers the exported fields of inspected struct types.
// It is only touched from the render thread.
type ReflectionCache struct {
	fields map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{fields: make(map[reflect.Type][]FieldInfo)}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if cached, ok := rc.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:       field.Name,
				Index:      i,
				IsPointer:  isPointer,
				IsDuration: fieldType == durationType,
			})
		}
	}

	rc.fields[t] = fields
	return fields
}

var tuningFields = NewReflectionCache()
