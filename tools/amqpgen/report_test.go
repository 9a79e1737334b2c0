package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePlanReportGolden(t *testing.T) {
	fixtures := []string{"queue", "types"}

	for _, name := range fixtures {
		t.Run(name, func(t *testing.T) {
			plan, err := Plan(loadFixture(t, name+".xml"))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, WritePlanReport(&buf, plan))

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, name, buf.Bytes())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritePlanReportWriteError(t *testing.T) {
	plan, err := Plan(loadFixture(t, "queue.xml"))
	require.NoError(t, err)

	err = WritePlanReport(failingWriter{}, plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing plan report: disk full")
}
