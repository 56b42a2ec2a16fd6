package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	smppcoding "github.com/M2MGateway/go-smpp/coding"
	"github.com/sirupsen/logrus"

	"smsjson/coding"
)

// OutboundPlan describes how a message will be handed to the transport.
type OutboundPlan struct {
	Text       string
	Wide       []byte
	GSM        bool
	DataCoding smppcoding.DataCoding
	Segments   []string
}

// GetSMSEncoding returns "gsm7" or "ucs2" for the chosen alphabet.
func GetSMSEncoding(gsm bool) string {
	if gsm {
		return "gsm7"
	}
	return "ucs2"
}

// PlanOutbound converts text to the wide form and decides whether it can
// travel in the GSM default alphabet. The wide form ends at the first zero
// unit, so text containing a NUL is rejected.
func PlanOutbound(text string) (OutboundPlan, error) {
	if i := strings.IndexByte(text, 0); i >= 0 {
		return OutboundPlan{}, fmt.Errorf("%w: NUL at byte %d", coding.ErrInvalidInput, i)
	}

	wide, err := coding.UTF8ToUTF16BE([]byte(text))
	if err != nil {
		return OutboundPlan{}, err
	}

	plan := OutboundPlan{
		Text:       text,
		Wide:       wide,
		GSM:        coding.IsGSMString(wide),
		DataCoding: smppcoding.UCS2Coding,
	}
	if plan.GSM {
		plan.DataCoding = smppcoding.GSM7BitCoding
	}
	plan.Segments = coding.SplitSMS(text, plan.GSM)

	return plan, nil
}

// Outbox renders outbound plans for UTF-8 message lines.
type Outbox struct {
	Stats *Stats
}

func (o *Outbox) render(plan OutboundPlan) ([]byte, error) {
	w := newRecordWriter()
	w.Wide("text", plan.Wide)
	w.String("encoding", GetSMSEncoding(plan.GSM))
	w.Int("data_coding", int(plan.DataCoding))
	w.Int("segments", len(plan.Segments))
	w.String("wide_hex", hex.EncodeToString(coding.TrimNull16(plan.Wide)))
	return w.Bytes()
}

// Run reads one message per line from in and writes a JSON array of plans
// to out. Lines that cannot be converted are logged and skipped.
func (o *Outbox) Run(ctx context.Context, in io.Reader, out io.Writer) OpStatus {
	logf := LoggingFormat{Type: LogType.Prepare, Function: "Run"}
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
		text := scanner.Text()
		o.Stats.scanned.Add(1)

		plan, err := PlanOutbound(text)
		if err != nil {
			o.Stats.conversionFailures.Add(1)
			logf.Level = logrus.WarnLevel
			logf.Message = "message cannot be converted"
			logf.Error = err
			logf.AddField("line", line)
			logf.Print()
			status = worse(status, OpErrRetrieve)
			continue
		}
		o.Stats.countEncoding(plan.GSM)

		record, err := o.render(plan)
		if err != nil {
			logf.Level = logrus.ErrorLevel
			logf.Message = "failed to render plan"
			logf.Error = err
			logf.AddField("line", line)
			logf.Print()
			status = worse(status, OpErrJSON)
			continue
		}
		array.Add(record)
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
