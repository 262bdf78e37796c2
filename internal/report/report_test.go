package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatContainsRequestVerbatim(t *testing.T) {
	request := "Generate a report on Acme Corp"
	prompt := Format(request)
	assert.Contains(t, prompt, request, "prompt must contain the request verbatim")
}

func TestFormatContainsSectionHeadings(t *testing.T) {
	prompt := Format("Generate a report on Acme Corp")
	for _, section := range Sections {
		assert.Containsf(t, prompt, section, "prompt must instruct section %q", section)
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	request := "Tesla, Inc. (TSLA) pricing strategy impact on profitability and sentiment vs BYD"
	assert.Equal(t, Format(request), Format(request))
}

func TestWriterWritesExactBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "investment_research_report.md")
	text := "# Acme Corp Report\n..."

	err := NewWriter(path).Write(text)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(text), data, "file contents must equal the report byte-for-byte")
}

func TestWriterOverwritesPriorReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	w := NewWriter(path)

	require.NoError(t, w.Write("# Old Report\nwith much longer stale content that must fully disappear\n"))
	require.NoError(t, w.Write("# New Report\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# New Report\n", string(data))
}

func TestWriterIdenticalRunsProduceIdenticalFiles(t *testing.T) {
	dir := t.TempDir()
	text := "# Acme Corp Report\n\nIdentical agent response.\n"

	require.NoError(t, NewWriter(filepath.Join(dir, "a.md")).Write(text))
	require.NoError(t, NewWriter(filepath.Join(dir, "b.md")).Write(text))

	a, err := os.ReadFile(filepath.Join(dir, "a.md"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "b.md"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriterPropagatesWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "report.md")
	err := NewWriter(path).Write("text")
	assert.Error(t, err)
}
