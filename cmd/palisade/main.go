// palisade — operator console for the hardened error-reporting core.
package main

import "github.com/ppiankov/palisade/internal/cli"

func main() {
	cli.Execute()
}
