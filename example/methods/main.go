// FILE: example/methods/main.go
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/bwdebug"
)

// TestPayload defines a struct for testing complex type serialization.
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
	Tags      []string
	Err       error
	secret    string
}

func main() {
	payload := TestPayload{
		RequestID: 9223372036854775807,
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
		Tags:   []string{"blue", "<b>bold</b>"},
		Err:    errors.New("upstream timeout"),
		secret: "hidden",
	}

	logger := bwdebug.NewLogger()

	// One section and one dump per output method, all in the same run
	for _, method := range []string{
		bwdebug.MethodPrint,
		bwdebug.MethodDump,
		bwdebug.MethodExport,
		bwdebug.MethodJSON,
		bwdebug.MethodYAML,
	} {
		if err := logger.ApplyOverride("output_method=" + method); err != nil {
			fmt.Printf("Failed to apply override: %v\n", err)
			return
		}
		logger.Section("**method#" + method)
		logger.Dump(payload, bwdebug.WithLabel("payload"))
	}

	logger.TimerStart("sleep")
	time.Sleep(25 * time.Millisecond)
	logger.TimerEnd("sleep")

	logger.Here()
	logger.Dump("with trace", bwdebug.WithTrace())

	fmt.Printf("Written to %s\n", logger.GetConfig().PrimaryFile)
}
