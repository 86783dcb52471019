// FILE: lixenwraith/bwdebug/constant.go
package bwdebug

// Stream selects one of the two output files
type Stream int64

const (
	StreamPrimary   Stream = 1
	StreamSecondary Stream = 2
)

// Output methods for value rendering
const (
	MethodDump   = "dump"   // verbose, type-annotated (go-spew)
	MethodPrint  = "print"  // indented key => value layout
	MethodExport = "export" // Go-syntax representation
	MethodJSON   = "json"   // indented JSON
	MethodYAML   = "yaml"   // YAML document
)

// ANSI sequences
const (
	colorReset = "\033[0m"

	ColorGreen       = "\033[32m"
	ColorYellow      = "\033[33m"
	ColorBlue        = "\033[34m"
	ColorMagenta     = "\033[35m"
	ColorCyan        = "\033[36m"
	ColorGrey        = "\033[90m"
	ColorBrightGreen = "\033[92m"
	ColorBoldWhite   = "\033[1;37m"
)

// Color categories, one per kind of formatted output
const (
	CategoryRunHeader = "run_header"
	CategorySection   = "section"
	CategoryBody      = "body"
	CategoryCaller    = "caller"
	CategoryMemory    = "memory"
	CategoryTimer     = "timer"
	CategoryTrace     = "trace"
	CategoryLabel     = "label"
)

// Categories lists all color categories in display order
var Categories = []string{
	CategoryRunHeader,
	CategorySection,
	CategoryBody,
	CategoryCaller,
	CategoryMemory,
	CategoryTimer,
	CategoryTrace,
	CategoryLabel,
}

const (
	// Upper bound for trace depth
	maxTraceDepth = 10
	// Permissions for created files and directories
	filePerm = 0644
	dirPerm  = 0755
)
