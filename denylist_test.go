package telemetry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBenignError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		msg    string
		benign bool
	}{
		{msg: "boom: syntax error near FROM", benign: true},
		{msg: "dial tcp 127.0.0.1:3306: ECONNREFUSED", benign: true},
		{msg: "FATAL: password authentication failed for user \"root\"", benign: true},
		{msg: "no such table: users", benign: true},
		{msg: "Duplicate entry '42' for key 'PRIMARY'", benign: true},
		{msg: "ORA-00942: table or view does not exist", benign: true},
		{msg: "unexpected null pointer", benign: false},
		{msg: "index out of range [3] with length 2", benign: false},
		{msg: "", benign: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.msg, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.benign, isBenignError(tc.msg))
		})
	}
}

func TestIsBenignErrorMatchesEveryEntry(t *testing.T) {
	t.Parallel()

	for _, substr := range benignErrors {
		assert.True(t, isBenignError(substr), "entry %q should match", substr)
		assert.True(t, isBenignError("prefix "+strings.ToUpper(substr)+" suffix"),
			"entry %q should match case-insensitively inside a message", substr)
	}
}
