package interfaces

// ResultStore writes result records into a module's data folder.
type ResultStore interface {
	// Overwrite replaces the named file with v.
	Overwrite(name string, v any) error
	// Append adds v to the JSON array held in the named file.
	Append(name string, v any) error
	// Path resolves name inside the data folder.
	Path(name string) string
}

// Logger is the subset of a structured logger that modules use.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}
