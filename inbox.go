package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"smsjson/coding"
)

var (
	errMalformedLine = errors.New("malformed inbox line")
	errInvalidIndex  = errors.New("invalid message index")
)

// InboxMessage is one received message as handed over by the modem layer.
// Body is big-endian UTF-16 and may or may not carry its terminator.
type InboxMessage struct {
	Index     int
	From      string
	Timestamp string
	Body      []byte
}

// maxLineBytes caps a single input line. A longer line fails the scanner
// and ends the batch.
const maxLineBytes = 1 << 20

func newLineScanner(in io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return scanner
}

// parseInboxLine reads "index<TAB>from<TAB>timestamp<TAB>hex body".
func parseInboxLine(line string) (InboxMessage, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		return InboxMessage{}, fmt.Errorf("%w: expected 4 fields, got %d", errMalformedLine, len(fields))
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil || index < 0 {
		return InboxMessage{}, fmt.Errorf("%w: %q", errInvalidIndex, fields[0])
	}

	body, err := hex.DecodeString(strings.TrimSpace(fields[3]))
	if err != nil {
		return InboxMessage{}, fmt.Errorf("%w: body: %w", errMalformedLine, err)
	}

	return InboxMessage{
		Index:     index,
		From:      fields[1],
		Timestamp: fields[2],
		Body:      body,
	}, nil
}

// Inbox renders received messages as JSON records.
type Inbox struct {
	SMSC  string
	Stats *Stats
	// Publisher, when set, receives every rendered record on Queue.
	Publisher RecordPublisher
	Queue     string
	// NewID returns the record id; defaults to a random UUID.
	NewID func() string
}

func (ib *Inbox) newID() string {
	if ib.NewID != nil {
		return ib.NewID()
	}
	return uuid.NewString()
}

// Render produces the JSON record for msg. A body that is not valid UTF-16
// is not an error: the record carries a null text and the first decoding
// error instead.
func (ib *Inbox) Render(msg InboxMessage) ([]byte, error) {
	id := ib.newID()
	logf := LoggingFormat{Type: LogType.Inbox, Function: "Render", TransactionID: id}

	info, ok := coding.UTF16BEInfo(msg.Body)
	ib.Stats.scanned.Add(1)

	w := newRecordWriter()
	w.String("id", id)
	w.Int("index", msg.Index)
	w.String("from", msg.From)
	w.String("timestamp", msg.Timestamp)
	w.String("smsc", ib.SMSC)

	if !ok {
		ib.Stats.invalid.Add(1)

		logf.Level = logrus.WarnLevel
		logf.Message = "message body contains invalid sequences"
		logf.AddField("index", msg.Index)
		logf.AddField("kind", info.Error.String())
		logf.AddField("offset", info.ErrorOffset)
		logf.AddField("invalid_bytes", info.InvalidBytes)
		logf.Print()

		w.Bool("valid", false)
		w.Null("text")
		w.Object("error", func(e *recordWriter) {
			e.String("kind", info.Error.String())
			e.Int("offset", info.ErrorOffset)
			e.Int("invalid_bytes", info.InvalidBytes)
		})
		return w.Bytes()
	}

	segments, gsm, err := coding.PlanSegments(msg.Body)
	if err != nil {
		ib.Stats.conversionFailures.Add(1)
		return nil, err
	}
	ib.Stats.countEncoding(gsm)

	w.Bool("valid", true)
	w.String("encoding", GetSMSEncoding(gsm))
	w.Int("symbols", info.Symbols)
	w.Int("segments", len(segments))
	w.Wide("text", msg.Body)

	record, err := w.Bytes()
	if err != nil {
		ib.Stats.conversionFailures.Add(1)
		return nil, err
	}
	return record, nil
}

// Run reads inbox lines from in and writes a JSON array of records to out.
// Per-message failures are logged and the rest of the batch continues.
func (ib *Inbox) Run(ctx context.Context, in io.Reader, out io.Writer) OpStatus {
	logf := LoggingFormat{Type: LogType.Inbox, Function: "Run"}
	status := OpErrNone

	array := newArrayWriter(out)
	scanner := newLineScanner(in)
	line := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			logf.Level = logrus.WarnLevel
			logf.Message = "interrupted, output is incomplete"
			logf.Error = err
			logf.AddField("line", line)
			logf.Print()
			status = worse(status, OpErrRetrieve)
			break
		}
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}

		msg, err := parseInboxLine(text)
		if err != nil {
			logf.Level = logrus.WarnLevel
			logf.Message = "skipping unreadable message"
			logf.Error = err
			logf.AddField("line", line)
			logf.Print()
			if errors.Is(err, errInvalidIndex) {
				status = worse(status, OpErrIndex)
			} else {
				status = worse(status, OpErrRetrieve)
			}
			continue
		}

		record, err := ib.Render(msg)
		if err != nil {
			logf.Level = logrus.ErrorLevel
			logf.Message = "failed to render message"
			logf.Error = err
			logf.AddField("line", line)
			logf.Print()
			status = worse(status, OpErrJSON)
			continue
		}
		array.Add(record)

		if ib.Publisher != nil {
			if err := ib.Publisher.Publish(ctx, ib.Queue, record); err != nil {
				logf.Level = logrus.ErrorLevel
				logf.Message = "failed to publish record"
				logf.Error = err
				logf.AddField("line", line)
				logf.Print()
			} else {
				ib.Stats.published.Add(1)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		logf.Level = logrus.ErrorLevel
		logf.Message = "failed to read input"
		logf.Error = err
		logf.Print()
		status = worse(status, OpErrRetrieve)
	}

	if err := array.Close(); err != nil {
		logf.Level = logrus.ErrorLevel
		logf.Message = "failed to write output"
		logf.Error = err
		logf.Print()
		status = worse(status, OpErrJSON)
	}

	return status
}
