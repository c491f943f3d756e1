// Command hecto is a minimal terminal text editor.
package main

import "os"

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		os.Exit(1)
	}
}
