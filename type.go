// FILE: lixenwraith/bwdebug/type.go
package bwdebug

import (
	"fmt"
	"io"
)

// Frame is one resolved call stack frame
type Frame struct {
	File     string
	Line     int
	Function string // bare function or method name
	Class    string // receiver type for methods, empty for plain functions
	Package  string
}

// String renders the frame as "file:line Class::Function"
func (f Frame) String() string {
	name := f.Function
	if f.Class != "" {
		name = f.Class + "::" + f.Function
	}
	return fmt.Sprintf("%s:%d %s", f.File, f.Line, name)
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}
