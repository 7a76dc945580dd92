package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questbloom/questbloom-api/internal/errors"
)

func TestReportErrorRulePrecondition(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.InsufficientFunds("gacha box costs 100 coins"))

	out := buf.String()
	assert.Contains(t, out, "gacha box costs 100 coins")
	assert.NotContains(t, out, "Error:", "rule messages read as game feedback, not failures")
}

func TestReportErrorPersistenceFailure(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.WrapPersistence(fmt.Errorf("connection refused"), "failed to save profile"))

	out := buf.String()
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "QUESTBLOOM_REDIS_ADDR")
}

func TestReportErrorPlainError(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, fmt.Errorf("something broke"))

	out := buf.String()
	assert.Contains(t, out, "Error: something broke")
	assert.NotContains(t, out, "QUESTBLOOM_REDIS_ADDR")
}
