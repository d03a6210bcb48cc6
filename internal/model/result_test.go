package model

import (
	"testing"
	"time"
)

func TestExecutionResult_GetDurationString(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		elapsed  time.Duration
		expected string
	}{
		{0, "—"},
		{30 * time.Second, "00:30"},
		{90 * time.Second, "01:30"},
		{time.Hour, "01:00:00"},
		{3*time.Hour + 2*time.Minute + 5*time.Second, "03:02:05"},
	}

	for _, test := range tests {
		r := &ExecutionResult{StartedAt: start, FinishedAt: start.Add(test.elapsed)}
		if got := r.GetDurationString(); got != test.expected {
			t.Errorf("GetDurationString(%v) = %s, expected %s", test.elapsed, got, test.expected)
		}
	}
}

func TestExecutionResult_Unfinished(t *testing.T) {
	r := &ExecutionResult{StartedAt: time.Now(), Status: StageStatusRunning}
	if r.Duration() != 0 {
		t.Error("Unfinished run should have zero duration")
	}
	if r.Succeeded() {
		t.Error("Running result should not report success")
	}
}

func TestExecutionResult_Succeeded(t *testing.T) {
	ok := &ExecutionResult{Status: StageStatusCompleted, ExitCode: 0}
	if !ok.Succeeded() {
		t.Error("Completed run with exit 0 should succeed")
	}

	failed := &ExecutionResult{Status: StageStatusFailed, ExitCode: 2}
	if failed.Succeeded() {
		t.Error("Failed run should not succeed")
	}
}
