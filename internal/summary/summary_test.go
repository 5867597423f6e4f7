package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeOverall(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Status
	}{
		{name: "empty", text: "", want: StatusUnknown},
		{name: "no markers", text: "starting services\n", want: StatusUnknown},
		{name: "passed only", text: "[PASS] a\n[PASS] b\n", want: StatusPassed},
		{name: "failure wins", text: "[PASS] a\n[FAIL] b\n", want: StatusFailed},
		{name: "error marker fails", text: "[ERROR] boom\n", want: StatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text).Overall())
		})
	}
}

func TestAnalyze_CarriesContainers(t *testing.T) {
	data := Analyze("[PASS] up\npoc1_jumpserver   Up   running\n")
	assert.Equal(t, []string{"[PASS] up"}, data.Passed)
	assert.Equal(t, 1, data.Containers.Len())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "UNKNOWN", StatusUnknown.String())
	assert.Equal(t, "PASSED", StatusPassed.String())
	assert.Equal(t, "FAILED", StatusFailed.String())
}
