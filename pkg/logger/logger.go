// Package logger expõe o logger estruturado da aplicação sobre zerolog.
//
// O motor de custos depende do nível Warn para as degradações que não podem
// virar erro para o caller: linha de ficha técnica pulada por insumo ausente e
// fórmula de frete que degrada para zero. Por isso o wrapper é injetado nos
// usecases em vez de usar o logger global.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opções de saída e verbosidade.
type Config struct {
	Env   string // development escreve console legível; qualquer outro, JSON
	Level string // debug, info, warn, error (default info)
}

var levels = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// Logger logger estruturado injetável.
type Logger struct {
	zl zerolog.Logger
}

// New cria o logger conforme a configuração e redireciona o logger global do
// zerolog para a mesma saída, cobrindo bibliotecas que logam por conta própria.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, ok := levels[cfg.Level]
	if !ok {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop devolve um logger que descarta tudo. Os testes do motor usam este para
// não poluir a saída com os warns esperados de degradação.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
