package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidation(t *testing.T) {
	var buf strings.Builder
	code := runValidation(&buf)
	out := buf.String()

	require.Equal(t, 0, code, "validation output:\n%s", out)
	assert.Contains(t, out, "All validations passed.")
	assert.NotContains(t, out, "FAIL")
}
