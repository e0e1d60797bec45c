// Command fhscan scans real estate listing text for fair housing problems.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/raysh454/fhscan/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(3)
		}
	}()

	os.Exit(cli.Execute(context.Background()))
}
