package main

import (
	"bytes"
	"io"
	"strconv"

	"smsjson/coding"
)

// recordWriter builds one JSON object. String values are escaped and
// transcoded by coding.EncodeJSONUTF8; the first failure sticks and is
// reported by Bytes.
type recordWriter struct {
	buf   bytes.Buffer
	count int
	err   error
}

func newRecordWriter() *recordWriter {
	w := &recordWriter{}
	w.buf.WriteByte('{')
	return w
}

// key writes a separator and the object key. Keys are plain ASCII.
func (w *recordWriter) key(k string) {
	if w.count > 0 {
		w.buf.WriteByte(',')
	}
	w.count++
	w.buf.WriteByte('"')
	w.buf.WriteString(k)
	w.buf.WriteString(`":`)
}

// Wide writes a big-endian UTF-16 value as a JSON string.
func (w *recordWriter) Wide(k string, wide []byte) {
	if w.err != nil {
		return
	}
	out, err := coding.EncodeJSONUTF8(wide)
	if err != nil {
		w.err = err
		return
	}
	w.key(k)
	w.buf.WriteByte('"')
	w.buf.Write(coding.TrimNull(out))
	w.buf.WriteByte('"')
}

// String writes a UTF-8 value as a JSON string.
func (w *recordWriter) String(k, s string) {
	if w.err != nil {
		return
	}
	wide, err := coding.UTF8ToUTF16BE([]byte(s))
	if err != nil {
		w.err = err
		return
	}
	w.Wide(k, wide)
}

func (w *recordWriter) Int(k string, n int) {
	if w.err != nil {
		return
	}
	w.key(k)
	w.buf.WriteString(strconv.Itoa(n))
}

func (w *recordWriter) Bool(k string, b bool) {
	if w.err != nil {
		return
	}
	w.key(k)
	w.buf.WriteString(strconv.FormatBool(b))
}

func (w *recordWriter) Null(k string) {
	if w.err != nil {
		return
	}
	w.key(k)
	w.buf.WriteString("null")
}

// Object writes a nested object filled in by fn.
func (w *recordWriter) Object(k string, fn func(*recordWriter)) {
	if w.err != nil {
		return
	}
	nested := newRecordWriter()
	fn(nested)
	b, err := nested.Bytes()
	if err != nil {
		w.err = err
		return
	}
	w.key(k)
	w.buf.Write(b)
}

// Bytes closes the object and returns it.
func (w *recordWriter) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return append(w.buf.Bytes(), '}'), nil
}

// arrayWriter streams records to out as a JSON array.
type arrayWriter struct {
	out   io.Writer
	count int
	err   error
}

func newArrayWriter(out io.Writer) *arrayWriter {
	a := &arrayWriter{out: out}
	a.write([]byte("[\n"))
	return a
}

func (a *arrayWriter) write(b []byte) {
	if a.err != nil {
		return
	}
	_, a.err = a.out.Write(b)
}

func (a *arrayWriter) Add(record []byte) {
	if a.count > 0 {
		a.write([]byte(",\n"))
	}
	a.count++
	a.write([]byte("  "))
	a.write(record)
}

// Close terminates the array and returns the first write error.
func (a *arrayWriter) Close() error {
	if a.count > 0 {
		a.write([]byte("\n"))
	}
	a.write([]byte("]\n"))
	return a.err
}
