// Command dexpilint loads a Proteus plant-model document and reports the
// diagnostics collected during loading.
//
// Exit codes: 0 when no ERROR or CRITICAL diagnostics were recorded, 1
// when there were, 2 on usage or IO failure.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
