package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"smsjson/coding"
)

// wideBody returns s as big-endian UTF-16 without a terminator.
func wideBody(t *testing.T, s string) []byte {
	t.Helper()
	w, err := coding.UTF8ToUTF16BE([]byte(s))
	require.NoError(t, err)
	return coding.TrimNull16(w)
}

func decodeRecord(t *testing.T, b []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m), string(b))
	return m
}

func decodeArray(t *testing.T, b []byte) []map[string]interface{} {
	t.Helper()
	var a []map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &a), string(b))
	return a
}

type fakePublisher struct {
	queue   string
	records [][]byte
	err     error
}

func (p *fakePublisher) Publish(_ context.Context, queue string, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.queue = queue
	p.records = append(p.records, data)
	return nil
}
