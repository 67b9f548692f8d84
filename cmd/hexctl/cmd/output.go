package cmd

import (
	"encoding/json"
	"fmt"
)

// outputFormatter renders command results as text or JSON depending on
// the --json flag, mirroring the teacher's OutputFormatter.
type outputFormatter struct {
	JSON bool
}

func newOutputFormatter() *outputFormatter {
	return &outputFormatter{JSON: isJSONOutput()}
}

func (f *outputFormatter) printJSON(data any) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func (f *outputFormatter) printText(text string) error {
	fmt.Println(text)
	return nil
}
