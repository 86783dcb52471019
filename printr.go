// FILE: lixenwraith/bwdebug/printr.go
package bwdebug

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// printr renders values in an indented "[key] => value" layout, compact enough to scan
// in a tailing terminal while still showing nesting.
type printr struct {
	buf      []byte
	maxDepth int
	visited  map[uintptr]bool
}

// maxPrintDepth bounds recursion for deeply nested values
const maxPrintDepth = 15

// sprintr renders v in print layout
func sprintr(v any) string {
	p := &printr{
		buf:      make([]byte, 0, 256),
		maxDepth: maxPrintDepth,
		visited:  make(map[uintptr]bool),
	}
	p.write(reflect.ValueOf(v), 0, 0)
	return string(p.buf)
}

func (p *printr) pad(n int) {
	for i := 0; i < n; i++ {
		p.buf = append(p.buf, ' ')
	}
}

// write appends the representation of v; indent is the column of the enclosing block
func (p *printr) write(v reflect.Value, indent, depth int) {
	if !v.IsValid() {
		p.buf = append(p.buf, "nil"...)
		return
	}

	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		p.buf = append(p.buf, "nil"...)
		return
	}

	if v.CanInterface() {
		if s, ok := scalarString(v.Interface()); ok {
			p.buf = append(p.buf, s...)
			return
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			p.buf = append(p.buf, "nil"...)
			return
		}
		ptr := v.Pointer()
		if p.visited[ptr] {
			p.buf = append(p.buf, "*RECURSION*"...)
			return
		}
		p.visited[ptr] = true
		defer delete(p.visited, ptr)
		p.write(v.Elem(), indent, depth)

	case reflect.Interface:
		if v.IsNil() {
			p.buf = append(p.buf, "nil"...)
			return
		}
		p.write(v.Elem(), indent, depth)

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			p.buf = append(p.buf, "nil"...)
			return
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			p.buf = append(p.buf, bytesToString(v)...)
			return
		}
		p.openBlock("Array", indent, depth, v.Len() == 0, func() {
			for i := 0; i < v.Len(); i++ {
				p.writeItem(strconv.Itoa(i), v.Index(i), indent, depth)
			}
		})

	case reflect.Map:
		if v.IsNil() {
			p.buf = append(p.buf, "nil"...)
			return
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		p.openBlock("Map", indent, depth, len(keys) == 0, func() {
			for _, k := range keys {
				p.writeItem(fmt.Sprint(k.Interface()), v.MapIndex(k), indent, depth)
			}
		})

	case reflect.Struct:
		t := v.Type()
		p.openBlock(t.String()+" Object", indent, depth, t.NumField() == 0, func() {
			for i := 0; i < t.NumField(); i++ {
				name := t.Field(i).Name
				if !t.Field(i).IsExported() {
					name += ":private"
				}
				p.writeItem(name, v.Field(i), indent, depth)
			}
		})

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			p.buf = append(p.buf, "nil"...)
			return
		}
		p.buf = append(p.buf, v.Type().String()...)

	default:
		p.buf = append(p.buf, fmt.Sprint(valueInterface(v))...)
	}
}

// openBlock writes a "Title\n(\n ... )" block, or a one-line marker when too deep
func (p *printr) openBlock(title string, indent, depth int, empty bool, body func()) {
	p.buf = append(p.buf, title...)
	if depth >= p.maxDepth {
		p.buf = append(p.buf, " *MAX DEPTH*"...)
		return
	}
	p.buf = append(p.buf, '\n')
	p.pad(indent)
	p.buf = append(p.buf, "(\n"...)
	if !empty {
		body()
	}
	p.pad(indent)
	p.buf = append(p.buf, ')')
	if depth > 0 {
		p.buf = append(p.buf, '\n')
	}
	p.buf = append(p.buf, '\n')
}

// writeItem writes one "[key] => value" line of a block
func (p *printr) writeItem(key string, v reflect.Value, indent, depth int) {
	p.pad(indent + 4)
	p.buf = append(p.buf, '[')
	p.buf = append(p.buf, key...)
	p.buf = append(p.buf, "] => "...)
	start := len(p.buf)
	p.write(v, indent+8, depth+1)
	// Nested blocks end with their own newline
	if !strings.HasSuffix(string(p.buf[start:]), "\n") {
		p.buf = append(p.buf, '\n')
	}
}

// scalarString renders values that print as a single token
func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "nil", true
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return fmt.Sprint(val), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case time.Time:
		return val.Format(time.RFC3339Nano), true
	case time.Duration:
		return val.String(), true
	case error:
		return val.Error(), true
	case fmt.Stringer:
		return val.String(), true
	}
	return "", false
}

// bytesToString converts a byte slice or array value to text
func bytesToString(v reflect.Value) string {
	b := make([]byte, v.Len())
	for i := range b {
		b[i] = byte(v.Index(i).Uint())
	}
	return string(b)
}

// valueInterface returns v's underlying value even for unexported fields
func valueInterface(v reflect.Value) any {
	if v.CanInterface() {
		return v.Interface()
	}
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Complex64, reflect.Complex128:
		return v.Complex()
	case reflect.String:
		return v.String()
	default:
		return v.Type().String()
	}
}
