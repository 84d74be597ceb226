// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	helloDigest256 = "2ae9d09891e899c4679dd6428a3822020bf7979a80059543dd5c93b63ccb3df4"
	helloDigest512 = helloDigest256 +
		"303178c4d48c83e3563d23a05361d8effb3d5d0e3f9ff4f3338b616f63ae5bb9"
)

// executeRoot runs a fresh root command with the given standard input
// and arguments, and returns its standard output.
func executeRoot(t *testing.T, stdin string, args ...string) (stdout string, err error) {
	t.Helper()

	cmd, err := NewRootCommand()
	require.NoError(t, err)

	buffer := bytes.NewBuffer(nil)
	cmd.SetOut(buffer)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err = cmd.Execute()
	return buffer.String(), err
}
