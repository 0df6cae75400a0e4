// Command studypilot manages the preferences kept on this device.
package main

import (
	"fmt"
	"os"
)

func main() {
	root, closeSlots := newRootCmd(os.Stdout, os.Stderr)
	err := root.Execute()
	if cerr := closeSlots(); cerr != nil {
		fmt.Fprintln(os.Stderr, "error: close local preferences:", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
