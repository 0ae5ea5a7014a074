// Package logger — единый вывод логов cdce-calc с префиксом и учётом quiet.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Quiet при true отключает информационные сообщения (Info, Debug); Error выводится всегда.
var Quiet bool

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetVerbose включает Debug.
func SetVerbose(v bool) {
	if v {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
}

// Debug выводит подробности перебора, если включён SetVerbose и Quiet == false.
func Debug(format string, args ...interface{}) {
	if Quiet {
		return
	}
	log.Debugf("cdce-calc: "+format, args...)
}

// Info выводит сообщение с префиксом "cdce-calc: ", если Quiet == false.
func Info(format string, args ...interface{}) {
	if Quiet {
		return
	}
	log.Infof("cdce-calc: "+format, args...)
}

// Error выводит сообщение об ошибке с префиксом "cdce-calc: " всегда.
func Error(format string, args ...interface{}) {
	log.Errorf("cdce-calc: "+format, args...)
}
