package logger

import (
	"log"
	"os"
	"strings"
	"time"
)

// Log is disabled unless the MDGO_LOG env var names a file.
var Log = Logger{ }

const layout = "2006-01-02 15:04:05.000"

type Logger struct {
	isEnabled bool
	file   *os.File
	stream chan string
	logger *log.Logger
}

func (this *Logger) Start() {
	logfilename, exists := os.LookupEnv("MDGO_LOG")
	if !exists { this.isEnabled = false; return }

	this.isEnabled = true

	file, err := os.OpenFile(logfilename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil { log.Fatal(err) }
	this.file = file

	this.logger = log.New(file, "", 0)

	this.stream = make(chan string)

	go func() {
		for message := range this.stream {
			this.write(message)
		}
	}()
}

func (this *Logger) write(message string) {
	if !this.isEnabled { return }
	now := time.Now().Format(layout)
	this.logger.Printf("%s %s", now, message)
}

func (this *Logger) Info(args ...string) {
	if !this.isEnabled { return }
	this.stream <- strings.Join(args, " ")
}

func (this *Logger) Error(args ...string) {
	if !this.isEnabled { return }
	this.stream <- "[error] " + strings.Join(args, " ")
}

func (this *Logger) Stop() {
	if !this.isEnabled { return }
	close(this.stream)
	err := this.file.Close()
	if err != nil { return }
}
