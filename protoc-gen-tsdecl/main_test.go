package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/tsdecl/protoc-gen-tsdecl/gentsdecl"
)

func resetFlags(t *testing.T) {
	t.Helper()
	for name, value := range map[string]string{
		"outpattern":              gentsdecl.DefaultOutputNamePattern,
		"original_names":          "false",
		"only_targets":            "false",
		"dump_request_descriptor": "false",
	} {
		require.NoError(t, flag.Set(name, value))
	}
}

func TestParseFlags(t *testing.T) {
	resetFlags(t)
	defer resetFlags(t)

	require.NoError(t, parseFlags(""))
	assert.Equal(t, gentsdecl.DefaultOutputNamePattern, *flagOutputFilenamePattern)
	assert.False(t, *flagOriginalNames)

	require.NoError(t, parseFlags("original_names,only_targets=true,outpattern={{.Module}}/{{.Name}}.d.ts"))
	assert.True(t, *flagOriginalNames)
	assert.True(t, *flagOnlyTargets)
	assert.False(t, *flagDumpDescriptor)
	assert.Equal(t, "{{.Module}}/{{.Name}}.d.ts", *flagOutputFilenamePattern)

	// values may themselves contain '='
	require.NoError(t, parseFlags("outpattern=key=value/{{.Name}}.d.ts"))
	assert.Equal(t, "key=value/{{.Name}}.d.ts", *flagOutputFilenamePattern)
}

func TestParseFlagsErrors(t *testing.T) {
	resetFlags(t)
	defer resetFlags(t)

	assert.Error(t, parseFlags("no_such_flag=1"))
	assert.Error(t, parseFlags("no_such_flag"))
	assert.Error(t, parseFlags("original_names=maybe"))
}
