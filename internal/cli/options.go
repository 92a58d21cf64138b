package cli

// GeneralOptions are accepted before any command.
type GeneralOptions struct {
	Verbose   []bool `short:"v" long:"verbose"    env:"B64_VERBOSITY"  description:"Show verbose debug information (repeat for more)"`
	LogFormat string `short:"f" long:"log-format" env:"B64_LOG_FORMAT" description:"Log format (json or text)." choice:"text" choice:"json" default:"text"`
}

// inputArgs is the positional file argument shared by all
// commands.
type inputArgs struct {
	File string `positional-arg-name:"file" description:"File to read, or - for standard input"`
}
