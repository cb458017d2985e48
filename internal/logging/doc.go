// Package logger provides leveled console logging for secretstore commands.
//
// Verbosity is controlled by the --verbose and --debug persistent flags.
// Without flags, only errors and critical warnings are shown; --verbose adds
// info and warning messages, --debug adds everything.
//
// Commands create a logger in their PersistentPreRun and pass it down:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %d files", count)
package logger
