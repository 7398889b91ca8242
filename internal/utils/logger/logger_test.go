package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&Config{Console: &buf})
	require.NoError(t, err)

	log.WithComponent("provider").Info("fetched global")
	log.Debug("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, "fetched global")
	assert.Contains(t, out, "provider")
	assert.NotContains(t, out, "hidden at info level")
}

func TestNew_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdk.log")
	log, err := New(&Config{LogFile: path, MaxSize: 1, Debug: true, Console: &bytes.Buffer{}})
	require.NoError(t, err)

	mint := solana.MustPublicKeyFromBase58("pumpCmXqMfrsAkQ5r49WcJnRayYRqmXz6ae8H7H9Dfn")
	log.WithMint(mint).Debug("quote computed")
	log.WithOperation("fetch_quote_state").Info("started")
	log.LogError("fetch failed", errors.New("boom"))
	require.NoError(t, log.Sync())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.Len(t, lines, 3)

	assert.Equal(t, mint.String(), lines[0]["mint"])
	assert.Equal(t, "fetch_quote_state", lines[1]["operation"])
	assert.NotEmpty(t, lines[1]["correlation_id"])
	assert.Equal(t, "boom", lines[2]["error"])
	assert.Equal(t, "ERROR", lines[2]["level"])
}

func TestTrackPerformance(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&Config{Console: &buf, Debug: true})
	require.NoError(t, err)

	opLog, end := log.TrackPerformance("decode")
	opLog.Debug("decoding")
	end()

	out := buf.String()
	assert.Contains(t, out, "Starting operation")
	assert.Contains(t, out, "decoding")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "decode")
}

func TestNamedAndComponentKeepWrapper(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&Config{Console: &buf})
	require.NoError(t, err)

	mint := solana.MustPublicKeyFromBase58("pumpCmXqMfrsAkQ5r49WcJnRayYRqmXz6ae8H7H9Dfn")
	log.WithComponent("pumpquote").Named("onchain").WithMint(mint).Info("curve fetched")

	out := buf.String()
	assert.Contains(t, out, "onchain")
	assert.Contains(t, out, "pumpquote")
	assert.Contains(t, out, mint.String())
}
