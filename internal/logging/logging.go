package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New — логгер процесса. Уровень из конфига, неизвестный уровень == info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
