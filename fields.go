package verdict

import (
	"go/token"
	"reflect"

	"github.com/zoobzio/sentinel"
)

// TagName is the struct tag that renames a field for property lookups.
// A value of "-" hides the field.
//
//	type Account struct {
//	    Email string `verdict:"email"`
//	    Notes string `verdict:"-"`
//	}
const TagName = "verdict"

func init() {
	sentinel.Tag(TagName)
}

// structPlan maps property keys of one struct type to field access paths.
type structPlan struct {
	keys   []string // declaration order, nested keys after their parent
	fields map[string]fieldPlan
}

// fieldPlan describes how to reach a single field from its root struct.
type fieldPlan struct {
	index []int // reflect.Value.Field steps, one per struct level
	key   string
}

// buildStructPlan flattens meta into property keys. Nested structs and
// pointers to structs contribute dotted keys ("Address.City").
func buildStructPlan(rt reflect.Type, meta sentinel.Metadata) *structPlan {
	plan := &structPlan{
		fields: make(map[string]fieldPlan),
	}
	buildStructPlanRecursive(plan, meta, nil, "", map[reflect.Type]bool{rt: true})
	return plan
}

func buildStructPlanRecursive(plan *structPlan, meta sentinel.Metadata, parentIndex []int, keyPrefix string, visiting map[reflect.Type]bool) {
	for _, field := range meta.Fields {
		if !token.IsExported(field.Name) {
			continue
		}
		name := field.Name
		if alias, ok := field.Tags[TagName]; ok && alias != "" {
			if alias == "-" {
				continue
			}
			name = alias
		}
		key := name
		if keyPrefix != "" {
			key = keyPrefix + "." + name
		}

		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		if _, dup := plan.fields[key]; !dup {
			plan.fields[key] = fieldPlan{index: fullIndex, key: key}
			plan.keys = append(plan.keys, key)
		}

		var nested reflect.Type
		switch {
		case field.Kind == sentinel.KindStruct:
			nested = field.ReflectType
		case field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct:
			nested = field.ReflectType.Elem()
		default:
			continue
		}

		// Self-referential types would otherwise recurse forever.
		if visiting[nested] {
			continue
		}
		nestedMeta := scanNestedType(nested)
		if nestedMeta == nil {
			continue
		}
		visiting[nested] = true
		buildStructPlanRecursive(plan, *nestedMeta, fullIndex, key, visiting)
		delete(visiting, nested)
	}
}

// scanNestedType returns sentinel metadata for rt, building it by reflection
// when sentinel has not scanned the type. Cached metadata is keyed by the
// short type name, so it is only used when it describes rt's own fields.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok && describes(meta, rt) {
		return &meta
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(TagName); ok {
			fm.Tags[TagName] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return &meta
}

// get walks the field path from root, dereferencing intermediate pointers.
// A nil pointer on the way means the field is absent.
func (fp fieldPlan) get(root reflect.Value) (reflect.Value, bool) {
	current := root
	for _, idx := range fp.index {
		if current.Kind() == reflect.Pointer {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
		if current.Kind() != reflect.Struct || idx >= current.NumField() {
			return reflect.Value{}, false
		}
		current = current.Field(idx)
	}
	return current, current.IsValid() && current.CanInterface()
}

// FieldKeys returns the property keys Get resolves on values of struct
// type T, in declaration order.
func FieldKeys[T any]() ([]string, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, &ConfigError{Err: ErrInvalidArgument, Op: "verdict.FieldKeys", Arg: rt.String()}
	}
	plan := planFor(rt, func() sentinel.Metadata { return sentinel.Scan[T]() })
	return append([]string(nil), plan.keys...), nil
}

// Get looks up key on v. Propertied values answer for themselves; maps with
// string keys are indexed; structs and pointers to structs resolve field
// keys (see TagName). Anything else, and any missing key, yields nil, false.
func Get(v any, key string) (any, bool) {
	if p, ok := v.(Propertied); ok {
		return p.Property(key)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		var k reflect.Value
		switch {
		case kt.Kind() == reflect.String:
			k = reflect.ValueOf(key).Convert(kt)
		case reflect.TypeFor[string]().AssignableTo(kt):
			k = reflect.ValueOf(key)
		default:
			return nil, false
		}
		val := rv.MapIndex(k)
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true

	case reflect.Struct:
		plan := planFor(rv.Type(), nil)
		fp, ok := plan.fields[key]
		if !ok {
			return nil, false
		}
		field, ok := fp.get(rv)
		if !ok {
			return nil, false
		}
		return field.Interface(), true
	}

	return nil, false
}

// describes reports whether meta lists exactly the fields of struct type rt.
// Two types named pkg.T in different import paths share a lookup name.
func describes(meta sentinel.Metadata, rt reflect.Type) bool {
	if rt.Kind() != reflect.Struct || meta.PackageName != "" && meta.PackageName != rt.PkgPath() {
		return false
	}
	for _, field := range meta.Fields {
		if len(field.Index) != 1 || field.Index[0] >= rt.NumField() {
			return false
		}
		sf := rt.Field(field.Index[0])
		if sf.Name != field.Name || sf.Type != field.ReflectType {
			return false
		}
	}
	return true
}
