package logger

import (
	"hotelier/config"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(consoleWriter())
	log.Trace().Msg("Zerolog initialized.")
}

// AttachFileSink tees log output into a rotating file when SERVER_LOG_FILE_FILENAME is set.
// The returned closer is nil when no file sink was configured.
func AttachFileSink(cfg *config.Config) io.Closer {
	fileCfg := cfg.Server.LogFile
	if fileCfg.Filename == "" {
		return nil
	}

	sink := &lumberjack.Logger{
		Filename:   fileCfg.Filename,
		MaxSize:    fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     fileCfg.MaxAgeDays,
		Compress:   fileCfg.Compress,
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(consoleWriter(), sink))
	log.Info().Str("file", fileCfg.Filename).Msg("File log sink attached.")

	return sink
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}
