package main

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricExporter(t *testing.T) {
	stats := &Stats{}
	stats.scanned.Add(3)
	stats.invalid.Add(1)
	stats.countEncoding(true)
	stats.countEncoding(false)

	exporter := NewMetricExporter("inbox", stats)
	assert.Equal(t, 6, testutil.CollectAndCount(exporter))

	expected := `
# HELP smsjson_messages_scanned Message bodies scanned
# TYPE smsjson_messages_scanned counter
smsjson_messages_scanned{instance="inbox"} 3
`
	require.NoError(t, testutil.CollectAndCompare(exporter, strings.NewReader(expected), "smsjson_messages_scanned"))
}
