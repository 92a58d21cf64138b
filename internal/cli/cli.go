// Package cli implements the b64 command: it reads a whole file,
// encodes or decodes it, and writes the result to standard
// output.
package cli

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// App is a single invocation of the b64 command.
type App struct {
	parser *flags.Parser
	opts   GeneralOptions
	stdin  io.Reader
	stdout io.Writer
	log    *log.Logger
}

// New creates an App that reads "-" from stdin, writes results
// to stdout, and logs to stderr.
func New(stdin io.Reader, stdout, stderr io.Writer) *App {
	a := &App{
		stdin:  stdin,
		stdout: stdout,
		log:    log.New(),
	}
	a.log.SetOutput(stderr)
	a.parser = flags.NewNamedParser("b64", flags.HelpFlag)

	if _, err := a.parser.AddGroup("General", "General options", &a.opts); err != nil {
		// Only fails if the option tags are malformed.
		panic(err)
	}
	a.addCommand("encode",
		"Encode a file",
		"Read the whole file and write its Base64 encoding to standard output",
		&encodeCommand{app: a})
	a.addCommand("decode",
		"Decode a file",
		"Read the whole file, decode it as padded Base64 and write the bytes to standard output",
		&decodeCommand{app: a})
	return a
}

func (a *App) addCommand(name, short, long string, cmd flags.Commander) {
	if _, err := a.parser.AddCommand(name, short, long, cmd); err != nil {
		panic(err)
	}
}

// Run parses args (without the program name) and executes the
// selected command.
//
// A help request is written to stdout and reported as a
// *flags.Error of type flags.ErrHelp.
func (a *App) Run(args []string) error {
	_, err := a.parser.ParseArgs(args)
	if err == nil {
		return nil
	}
	if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
		io.WriteString(a.stdout, flagsErr.Message+"\n")
		return err
	}
	a.log.WithError(err).Error("b64 failed")
	return err
}

// readInput returns the whole contents of file, or of stdin if
// file is "-".
func (a *App) readInput(file string) ([]byte, error) {
	if file == "-" {
		b, err := io.ReadAll(a.stdin)
		return b, errors.Wrap(err, "reading standard input")
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	return b, errors.Wrapf(err, "reading %s", file)
}

func (a *App) writeOutput(b []byte) error {
	_, err := a.stdout.Write(b)
	return errors.Wrap(err, "writing output")
}
