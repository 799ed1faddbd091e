package fab

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrConstructPanic is wrapped into a ConstructionError if field assignment
// panics. The argument checks in construct mirror reflect.Value.Set's panic
// conditions, so no input reaches this today; if the two ever drift, the
// caller gets a ConstructionError rather than a panic.
var ErrConstructPanic = errors.New("fab: panic during construction")

// typeName returns the string form of T, e.g. "examples.Widget".
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// typeKeyOf returns the registry key for T.
func typeKeyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// isStruct reports whether T's kind is struct, i.e. whether the default
// strategy can map positional arguments onto it.
func isStruct[T any]() bool {
	return typeKeyOf[T]().Kind() == reflect.Struct
}

// construct is the argument-driven construction path.
//
// Empty args produce the zero value (the Go analogue of a parameterless
// constructor, viable for every T). Non-empty args require T to be a struct;
// they are assigned positionally to T's exported fields in declaration
// order, which is the one construction signature resolvable without user
// code. Anything that does not fit returns a ConstructionError with a
// remediation hint.
func construct[T any](args Args) (out *T, err error) {
	out = new(T)
	if len(args) == 0 {
		return out, nil
	}

	target := reflect.ValueOf(out).Elem()
	if target.Kind() != reflect.Struct {
		return nil, ConstructionError{
			Type: typeName[T](),
			Hint: "type cannot accept constructor args; register a fabricator or pass none",
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = ConstructionError{
				Type:  typeName[T](),
				Hint:  "constructor invocation panicked",
				Cause: fmt.Errorf("%w: %v", ErrConstructPanic, rec),
			}
		}
	}()

	fields := exportedFields(target.Type())
	if len(args) > len(fields) {
		return nil, ConstructionError{
			Type: typeName[T](),
			Hint: "got " + strconv.Itoa(len(args)) + " constructor args but only " +
				strconv.Itoa(len(fields)) + " exported fields; drop the extras",
		}
	}

	for i, arg := range args {
		field := target.Field(fields[i])
		if arg == nil {
			// nil means "leave the zero value" for this position.
			continue
		}
		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(field.Type()) {
			converted, ok := convertNumeric(value, field.Type())
			if !ok {
				return nil, ConstructionError{
					Type: typeName[T](),
					Hint: "constructor arg " + strconv.Itoa(i) + " (" + value.Type().String() +
						") does not fit field " + target.Type().Field(fields[i]).Name +
						" (" + field.Type().String() + ")",
				}
			}
			value = converted
		}
		field.Set(value)
	}

	return out, nil
}

// exportedFields returns the indices of t's exported fields in declaration
// order. Embedded fields count like any other: positional args fill them too.
func exportedFields(t reflect.Type) []int {
	indices := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			indices = append(indices, i)
		}
	}
	return indices
}

// convertNumeric converts between numeric kinds only, and only when the
// value survives unchanged: it must round-trip back to its own type and keep
// its sign. General reflect conversion is deliberately not used: int ->
// string would "convert" to a rune string, and a lossy 300 -> int8 would
// silently corrupt the instance. Anything lossy reports does-not-fit
// instead.
func convertNumeric(v reflect.Value, to reflect.Type) (reflect.Value, bool) {
	if !isNumericKind(v.Kind()) || !isNumericKind(to.Kind()) {
		return reflect.Value{}, false
	}
	if !v.Type().ConvertibleTo(to) {
		return reflect.Value{}, false
	}
	if isNegative(v) && isUnsignedKind(to.Kind()) {
		return reflect.Value{}, false
	}
	converted := v.Convert(to)
	if !converted.Convert(v.Type()).Equal(v) {
		return reflect.Value{}, false
	}
	// uint64 -> int64 can wrap negative yet still round-trip.
	if isNegative(converted) != isNegative(v) {
		return reflect.Value{}, false
	}
	return converted, true
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return isUnsignedKind(k)
	}
}

func isUnsignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isNegative(v reflect.Value) bool {
	switch {
	case v.CanInt():
		return v.Int() < 0
	case v.CanFloat():
		return v.Float() < 0
	default:
		return false
	}
}
