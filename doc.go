/*
Package confspec loads configuration documents in JSON, YAML, or TOML format,
interpolates environment variable references in their string values, and
optionally decodes the result into user-defined types.

“confspec” reads a base configuration file and, where present, an
environment-specific overlay file next to it:

  - config.yaml
  - config.prod.yaml (only when the environment name is “prod”)

The overlay is deep-merged on top of the base: nested mappings are merged key
by key, while all other values, including sequences, are replaced wholesale.
Afterwards, references such as “${DB_HOST}”, “${PORT:8080}”, “${HOSTS[,]~}”,
or “${PASSWORD?}” in string values are replaced with values from the
environment; see package [github.com/thediveo/confspec/interpolate] for the
details of the reference syntax.

# Usage

	tree, err := confspec.Load("config.yaml", confspec.WithEnv("prod"))

	type Config struct {
		Host  string   `json:"host"`
		Port  int      `json:"port"`
		Peers []string `json:"peers"`
	}
	cfg, err := confspec.LoadAs[Config]("config.yaml", confspec.MapDecoder{})

# Formats

Additional formats can be supported by registering a [Parser] with the
[DefaultRegistry] using [Register], or with a separate [Registry] passed via
[WithRegistry]. Parsers should return their trees in the canonical form
described in [Normalize].
*/
package confspec
