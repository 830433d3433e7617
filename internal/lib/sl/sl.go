package sl

import (
	"log/slog"
)

// Err lets an error be passed into slog attributes as it is (error type).
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
