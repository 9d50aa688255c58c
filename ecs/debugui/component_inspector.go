package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stardodge/ecs"
)

// ComponentInspector is the "Inspector" window: every component of the
// selected entity, with numeric, bool and string fields editable in place.
type ComponentInspector struct {
	storage   *ecs.Storage
	selection *Selection
}

func NewComponentInspector(storage *ecs.Storage, selection *Selection) *ComponentInspector {
	return &ComponentInspector{storage: storage, selection: selection}
}

func (ci *ComponentInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 430), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 260), imgui.CondOnce)
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if !ci.selection.Selected() {
		imgui.Text("No entity selected")
		return
	}
	id := ci.selection.Entity()
	archetype := ci.storage.GetArchetypeById(id.ArchetypeId())
	if id == 0 || archetype == nil {
		imgui.Text("Selected entity was deleted")
		return
	}

	imgui.Text(fmt.Sprintf("Entity %d in archetype 0x%X", id, id.ArchetypeId()))
	imgui.Separator()

	for _, compType := range archetype.Types() {
		component := ci.storage.GetComponent(id, compType)
		if component == nil {
			continue
		}
		value := reflect.ValueOf(component).Elem()
		if len(globalReflectionCache.Fields(compType)) == 0 && compType.Kind() == reflect.Struct {
			imgui.BulletText(compType.Name())
			continue
		}
		if imgui.TreeNodeStr(compType.Name()) {
			EditValue(compType.Name(), value)
			imgui.TreePop()
		}
	}
}

func (ci *ComponentInspector) Item() ImguiItem {
	return ImguiItem{Render: ci.Render}
}

// EditStruct draws editors for the exported fields of the struct ptr points
// to and reports whether any field changed.
func EditStruct(ptr any) bool {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		panic("EditStruct expects a pointer to a struct")
	}
	return editFields(v.Elem())
}

func editFields(v reflect.Value) bool {
	changed := false
	for _, field := range globalReflectionCache.Fields(v.Type()) {
		fv := v.Field(field.Index)
		if field.Embedded && fv.Kind() == reflect.Struct {
			changed = editFields(fv) || changed
			continue
		}
		changed = EditValue(field.Name, fv) || changed
	}
	return changed
}

// EditValue draws an editor for v labelled name. Values that cannot be set
// are shown read-only.
func EditValue(name string, v reflect.Value) bool {
	if !v.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return false
	}
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return false
		}
		v = v.Elem()
	}
	id := "##" + name

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := int32(numericValue(v))
		labelled(name, 150)
		if imgui.InputInt(id, &n) && v.CanSet() {
			return assignNumber(v, float64(n))
		}

	case reflect.Float32, reflect.Float64:
		f := float32(v.Float())
		labelled(name, 150)
		if imgui.InputFloat(id, &f) && v.CanSet() {
			return assignNumber(v, float64(f))
		}

	case reflect.Bool:
		b := v.Bool()
		if imgui.Checkbox(name, &b) && v.CanSet() {
			v.SetBool(b)
			return true
		}

	case reflect.String:
		s := v.String()
		labelled(name, 200)
		if imgui.InputTextWithHint(id, "", &s, imgui.InputTextFlagsNone, nil) && v.CanSet() {
			v.SetString(s)
			return true
		}

	case reflect.Struct:
		changed := false
		if imgui.TreeNodeStr(name) {
			changed = editFields(v)
			imgui.TreePop()
		}
		return changed

	case reflect.Slice, reflect.Map:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, v.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, v.Interface()))
	}
	return false
}

func labelled(name string, width float32) {
	imgui.Text(name + ":")
	imgui.SameLine()
	imgui.SetNextItemWidth(width)
}

func numericValue(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	return 0
}

// assignNumber stores f into the numeric value v. Negative values are
// rejected for unsigned kinds and values that overflow the kind are ignored.
func assignNumber(v reflect.Value, f float64) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := int64(f)
		if v.OverflowInt(n) {
			return false
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f < 0 || v.OverflowUint(uint64(f)) {
			return false
		}
		v.SetUint(uint64(f))
	case reflect.Float32, reflect.Float64:
		if v.OverflowFloat(f) {
			return false
		}
		v.SetFloat(f)
	default:
		return false
	}
	return true
}
