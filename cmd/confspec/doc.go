/*
confspec loads, merges, and interpolates configuration files.

# Usage

	confspec [flags] FILE

FILE is a JSON, YAML, or TOML configuration file; its suffix determines the
format. If an environment overlay name is given, either using --env or the
CONFSPEC_ENV environment variable, then the overlay file “NAME.ENV.SUFFIX” next
to FILE is merged on top, if present. Use “-” as FILE to read from stdin; this
requires --format and doesn't support overlays.

# Flags

	    --debug           enable debug logging
	-e, --env string      environment overlay name, defaults to $CONFSPEC_ENV
	-f, --format string   format of configuration read from stdin
	    --formats         list supported configuration formats and exit
	-h, --help            help for confspec
	-o, --output string   output format, either json or yaml (default "yaml")
	-v, --version         version for confspec

# Environment

	CONFSPEC_ENV      environment overlay name
	CONFSPEC_OUTPUT   default for --output
	CONFSPEC_DEBUG    default for --debug
*/
package main
