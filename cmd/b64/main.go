// Command b64 encodes or decodes a file as padded Base64 and
// writes the result to standard output.
//
//    b64 encode <file>
//    b64 decode [--strict] [--ignore-newlines] <file>
//
// Use - as the file to read standard input.
package main

import (
	"os"

	"github.com/subtlecodec/b64/internal/cli"
)

func main() {
	app := cli.New(os.Stdin, os.Stdout, os.Stderr)
	cli.MustErrorNilOrExit(app.Run(os.Args[1:]))
}
