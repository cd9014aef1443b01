package gnedna

var (
	// Version of gnedna.
	Version = "v0.1.0"

	// Build timestamp, set during compilation.
	Build = "n/a"
)
