package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_DefaultPowerMode(t *testing.T) {
	code, out, errOut := runArgs(t)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Required power:      200.0 W")
	assert.Contains(t, out, "Classification:      Tempo")
}

func TestRun_SpeedModeJSON(t *testing.T) {
	code, out, errOut := runArgs(t, "--mode", "speed", "--speed", "30", "--climb", "0",
		"--rider-weight", "74", "--gear-weight", "1.5", "--bike-weight", "8",
		"--cda", "0.32", "--crr", "0.004", "--altitude", "0", "--temperature", "0", "-o", "json")
	require.Equal(t, 0, code, errOut)

	var decoded struct {
		Result struct {
			PowerWatts float64 `json:"power_watts"`
			FinishTime string  `json:"finish_time"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.InDelta(t, 144.33, decoded.Result.PowerWatts, 0.5)
	assert.Equal(t, "1:20:00", decoded.Result.FinishTime)
}

func TestRun_RaceWithCurveAndZones(t *testing.T) {
	code, out, errOut := runArgs(t, "--event", "road-race", "--curve", "--zones")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Event:               Road race")
	assert.Contains(t, out, "Speed (km/h)")
	assert.Contains(t, out, "Neuromuscular")
}

func TestRun_PlannedWorkout(t *testing.T) {
	code, out, errOut := runArgs(t, "--planned-intensity", "75", "--planned-hours", "2")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Planned workout:     75% of FTP for 2.00 h (188 W)")
	assert.Contains(t, out, "Training stress:     112.5 TSS")
}

func TestRun_ActualWorkout(t *testing.T) {
	code, out, errOut := runArgs(t, "--avg-power", "200", "--normalized-power", "210", "--actual-hours", "1.5")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Actual workout:      1.50 h, average 200 W (80% of FTP), normalized 210 W (84% of FTP)")
	assert.Contains(t, out, "Intensity factor:    0.84 IF (Tempo)")
	assert.Contains(t, out, "Training stress:     105.8 TSS")
	assert.Contains(t, out, "Difficulty:          Medium (recovery 24-36 hours)")
}

func TestRun_ZonesWithoutFTPWarns(t *testing.T) {
	code, out, errOut := runArgs(t, "--zones", "--ftp", "0")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "bike-calculator: warning: power zones unavailable")
	assert.NotContains(t, out, "Neuromuscular")

	code, _, errOut = runArgs(t, "--normalized-power", "210", "--ftp", "0")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, errOut, "bike-calculator: warning: actual workout unavailable")
}

func TestRun_InvalidFinishTime(t *testing.T) {
	for _, tm := range []string{"0:90:00", "-1h", "99999999999999:00:00"} {
		code, _, errOut := runArgs(t, "--mode", "time", "--time", tm)
		assert.Equal(t, 1, code, tm)
		assert.Contains(t, errOut, "finish time", tm)
	}
}

func TestRun_Batch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	doc := "scenarios:\n  - name: a\n    power: 180\n  - name: b\n    mode: speed\n    speed: 32\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	code, out, errOut := runArgs(t, "--scenarios", path, "-o", "yaml")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "name: a")
	assert.Contains(t, out, "name: b")
}

func TestRun_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "calc.log")
	code, _, errOut := runArgs(t, "--log-file", logPath)
	require.Equal(t, 0, code, errOut)

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Calculator: solve mode=power")
}

func TestRun_InvalidInputs(t *testing.T) {
	code, _, errOut := runArgs(t, "--efficiency", "0")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid configuration")

	code, _, _ = runArgs(t, "--temperature", "-280")
	assert.Equal(t, 2, code)

	code, _, _ = runArgs(t, "-o", "xml")
	assert.Equal(t, 2, code)

	code, _, _ = runArgs(t, "--no-such-flag")
	assert.Equal(t, 2, code)

	code, _, _ = runArgs(t, "--help")
	assert.Equal(t, 0, code)
}
