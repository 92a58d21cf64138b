package cli

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/subtlecodec/b64/base64"
	"github.com/subtlecodec/b64/internal/subtle"
)

type encodeCommand struct {
	app  *App
	Args inputArgs `positional-args:"yes" required:"yes"`
}

func (c *encodeCommand) Execute(args []string) error {
	c.app.setupLogging()

	src, err := c.app.readInput(c.Args.File)
	if err != nil {
		return err
	}

	start := time.Now()
	dst := make([]byte, base64.EncodedLen(len(src)))
	n := base64.Encode(dst, src)
	c.app.log.WithFields(log.Fields{
		"file":    c.Args.File,
		"in":      len(src),
		"out":     n,
		"elapsed": time.Since(start),
	}).Debug("Encoded")

	return c.app.writeOutput(dst[:n])
}

type decodeCommand struct {
	app            *App
	Strict         bool      `long:"strict"          env:"B64_STRICT" description:"Reject encodings whose unused trailing bits are not zero"`
	IgnoreNewlines bool      `long:"ignore-newlines"                  description:"Remove CR and LF characters before decoding"`
	Args           inputArgs `positional-args:"yes" required:"yes"`
}

func (c *decodeCommand) Execute(args []string) error {
	c.app.setupLogging()

	src, err := c.app.readInput(c.Args.File)
	if err != nil {
		return err
	}
	if c.IgnoreNewlines {
		src = src[:subtle.ConstantTimeFilter(src, src, isNewline)]
	}

	codec := base64.StdCodec
	if c.Strict {
		codec = base64.StrictCodec
	}

	start := time.Now()
	dst := make([]byte, codec.DecodedLen(len(src)))
	n, err := codec.Decode(dst, src)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", c.Args.File)
	}
	c.app.log.WithFields(log.Fields{
		"file":    c.Args.File,
		"in":      len(src),
		"out":     n,
		"strict":  c.Strict,
		"elapsed": time.Since(start),
	}).Debug("Decoded")

	return c.app.writeOutput(dst[:n])
}

func isNewline(b byte) int {
	return subtle.ConstantTimeByteEq(b, '\r') | subtle.ConstantTimeByteEq(b, '\n')
}
