package log

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type severity int32

const (
	DEBUG severity = iota
	INFO
	WARNING
	ERROR
)

var names = []string{
	DEBUG:   "DEBUG",
	INFO:    "INFO",
	WARNING: "WARNING",
	ERROR:   "ERROR",
}

var levels = []logrus.Level{
	DEBUG:   logrus.DebugLevel,
	INFO:    logrus.InfoLevel,
	WARNING: logrus.WarnLevel,
	ERROR:   logrus.ErrorLevel,
}

func (s *severity) Get() interface{} {
	return *s
}

func (s *severity) Set(value string) error {
	value = strings.ToUpper(value)
	for i, name := range names {
		if name == value {
			*s = severity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown log level %q", value)
}

func (s *severity) String() string {
	return names[int(*s)]
}

type logger struct {
	sync.Once
	*logrus.Logger

	severity severity
	dir      string
}

// the default logger
var log = logger{severity: INFO}

func init() {
	flag.StringVar(&log.dir, "log_dir", "", "if non-empty, write log files in this directory")
	flag.Var(&log.severity, "log_level", "logs at and above this level")
}

// Setup builds the logger from the parsed flags
func Setup() {
	log.Once.Do(setup)
}

func setup() {
	if !flag.Parsed() {
		os.Stderr.Write([]byte("ERROR: logging before flag.Parse: "))
		flag.Parse()
	}

	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05.000000",
	})
	l.SetLevel(levels[log.severity])

	if log.dir != "" {
		program := filepath.Base(os.Args[0])
		pid := os.Getpid()
		fname := fmt.Sprintf("%s.%d.log", program, pid)
		path := filepath.Join(log.dir, fname)
		f, err := os.Create(path)
		if err != nil {
			l.Fatal(err)
		}
		l.SetOutput(io.MultiWriter(f, os.Stderr))
	} else {
		l.SetOutput(os.Stdout)
	}
	log.Logger = l
}

// SetOutput redirects every level to w
func SetOutput(w io.Writer) {
	Setup()
	log.SetOutput(w)
}

// SetLevel overrides the -log_level flag
func SetLevel(level string) error {
	Setup()
	if err := log.severity.Set(level); err != nil {
		return err
	}
	log.SetLevel(levels[log.severity])
	return nil
}

func Debug(v ...interface{}) {
	Setup()
	log.Debug(v...)
}

func Debugf(format string, v ...interface{}) {
	Setup()
	log.Debugf(format, v...)
}

func Info(v ...interface{}) {
	Setup()
	log.Info(v...)
}

func Infof(format string, v ...interface{}) {
	Setup()
	log.Infof(format, v...)
}

func Warning(v ...interface{}) {
	Setup()
	log.Warn(v...)
}

func Warningf(format string, v ...interface{}) {
	Setup()
	log.Warnf(format, v...)
}

func Error(v ...interface{}) {
	Setup()
	log.Error(v...)
}

func Errorf(format string, v ...interface{}) {
	Setup()
	log.Errorf(format, v...)
}

func Fatal(v ...interface{}) {
	Setup()
	log.Fatal(v...)
}

func Fatalf(format string, v ...interface{}) {
	Setup()
	log.Fatalf(format, v...)
}
