package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd, err := NewRootCommand()
	require.NoError(t, err)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	require.Subset(t, names, []string{"setup", "build", "push"})
}

func TestUnknownSubcommandFails(t *testing.T) {
	cmd, err := NewRootCommand()
	require.NoError(t, err)

	cmd.SetArgs([]string{"frobnicate"})
	require.Error(t, cmd.Execute())
}
