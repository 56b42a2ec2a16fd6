package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := LoadConfig()
	setupLogging(cfg)

	if envErr != nil {
		logf := LoggingFormat{Type: LogType.Startup, Function: "main"}
		logf.Level = logrus.DebugLevel
		logf.Message = "no .env file loaded, using existing environment variables"
		logf.Print()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	status := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout)
	cancel()

	os.Exit(int(status))
}

// run executes one command ("inbox" by default, or "prepare") over in and
// out.
func run(ctx context.Context, cfg Config, args []string, in io.Reader, out io.Writer) OpStatus {
	logf := LoggingFormat{Type: LogType.Startup, Function: "run"}

	command := "inbox"
	if len(args) > 0 {
		command = args[0]
	}

	stats := &Stats{}
	var status OpStatus

	switch command {
	case "inbox":
		inbox := &Inbox{SMSC: cfg.SMSC, Stats: stats, Queue: cfg.AMQPQueue}
		if cfg.AMQPURL != "" {
			client, err := NewMsgQueueClient(cfg.AMQPURL, cfg.AMQPQueue)
			if err != nil {
				// NewMsgQueueClient has already logged the failure.
				return OpErrInit
			}
			defer client.Close()
			inbox.Publisher = client
		}
		status = inbox.Run(ctx, in, out)

	case "prepare":
		outbox := &Outbox{Stats: stats}
		status = outbox.Run(ctx, in, out)

	default:
		logf.Level = logrus.ErrorLevel
		logf.Message = "unknown command"
		logf.AddField("command", command)
		logf.Print()
		return OpErrUnknown
	}

	if cfg.MetricsPushURL != "" {
		// A failed push is logged; it does not fail the run.
		_ = pushMetrics(cfg, NewMetricExporter(command, stats))
	}

	logf.Level = logrus.InfoLevel
	logf.Message = "finished"
	logf.AddField("command", command)
	logf.AddField("status", status.String())
	logf.AddField("scanned", stats.scanned.Load())
	logf.AddField("invalid", stats.invalid.Load())
	logf.Print()

	return status
}
