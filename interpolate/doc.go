/*
Package interpolate provides interpolation of environment variables into the
string values of configuration trees.

A configuration tree is what a format parser produces when decoding a JSON,
YAML, or TOML document into Go's generic types: map[string]any for mappings,
[]any for sequences, and scalars. Interpolation walks such a tree and evaluates
every string value; all other scalars are left as they are.

# References

The basic form references a variable by name:

	${FOO}

A name consists of letters, digits, and underscores, but must start with an
ASCII letter or underscore; the following characters might also be non-ASCII
letters and numbers. Evaluation fails with a [LookupError] if the variable is unset. Values
are substituted verbatim, so surrounding whitespace is preserved. Multiple
references can be embedded into a single string value:

	http://${HOST}:${PORT}/api

# Defaults

	${FOO:default}

evaluates to “default” if FOO is unset. The default text is everything after
the colon up to the closing brace and might be empty. In contrast to shell
syntax, an empty but set variable does not trigger the default.

# Trimming

	${FOO~}
	${FOO~:default}

removes leading and trailing whitespace from the value (or default).

# Null If Unset

	${FOO?}

evaluates to nil if FOO is unset, changing the type of the value from string to
null. This form must make up the whole string value; when embedded into other
text, an unset FOO is reported as a [SyntaxError].

# Lists

	${FOO[,]}
	${FOO[,]~}
	${FOO[, ]:a, b, c}

split the value on each occurrence of the delimiter between the brackets,
producing a sequence of strings. The delimiter can be more than a single
character, but cannot contain “]” or “}”. Trimming applies to each element
individually. This form must make up the whole string value; list expansion
within other text is always a [SyntaxError].

# Escaping

Prefixing a reference with another “$” turns it into literal text without
evaluating it, with only the escaping “$” removed:

	$${FOO}

evaluates to “${FOO}”, regardless of whether FOO is set.

Text that looks like the beginning of a reference but doesn't complete one,
such as “${FOO” or “${1FOO}”, is copied literally.

# Implementation Note

References are recognized by a small dedicated scanner instead of regular
expressions, in order to keep parsing linear in the length of the string value.
*/
package interpolate
