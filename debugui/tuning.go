package debugui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// TuningWindow edits the exported fields of a struct in place. Durations are
// shown in milliseconds.
type TuningWindow struct{}

func NewTuningWindow() *TuningWindow {
	return &TuningWindow{}
}

// Render draws an editor for target, which must be a pointer to a struct.
func (tw *TuningWindow) Render(title string, target any) {
	if !imgui.BeginV(title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("cannot inspect %T", target))
		imgui.End()
		return
	}

	tw.renderStruct(val.Elem())
	imgui.End()
}

func (tw *TuningWindow) renderStruct(val reflect.Value) {
	for _, field := range tuningFields.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		tw.renderField(field, fieldVal)
	}
}

func (tw *TuningWindow) renderField(field FieldInfo, val reflect.Value) {
	name := field.Name

	if field.IsDuration {
		ms := int32(time.Duration(val.Int()) / time.Millisecond)
		label(name + " (ms)")
		if imgui.InputInt(fmt.Sprintf("##%s", name), &ms) && ms > 0 && val.CanSet() {
			val.SetInt(int64(time.Duration(ms) * time.Millisecond))
		}
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		label(name)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		label(name)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		label(name)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			tw.renderStruct(val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func label(name string) {
	imgui.Text(fmt.Sprintf("%s:", name))
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
}
