package cli

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, sub := range root.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"validate", "patch", "concepts", "controls", "serve"} {
		assert.NotNil(t, findCommand(t, root, name))
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := findCommand(t, newRootCommand(), "validate")
	assert.NotNil(t, cmd.Flags().Lookup("plan"))
}

func TestPatchCommandFlags(t *testing.T) {
	cmd := findCommand(t, newRootCommand(), "patch")
	assert.NotNil(t, cmd.Flags().Lookup("plan"))
	assert.NotNil(t, cmd.Flags().Lookup("set"))
}

func TestControlsCommandFlags(t *testing.T) {
	cmd := findCommand(t, newRootCommand(), "controls")
	assert.NotNil(t, cmd.Flags().Lookup("concept"))
	assert.NotNil(t, cmd.Flags().Lookup("schema-version"))
}

func TestServeCommandFlags(t *testing.T) {
	cmd := findCommand(t, newRootCommand(), "serve")
	flag := cmd.Flags().Lookup("addr")
	require.NotNil(t, flag)
	assert.Equal(t, ":8080", flag.DefValue)
}

func TestParseSetPairs(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  map[string]any
	}{
		{
			name:  "number",
			pairs: []string{"length=2.5"},
			want:  map[string]any{"length": 2.5},
		},
		{
			name:  "bool",
			pairs: []string{"enabled=true"},
			want:  map[string]any{"enabled": true},
		},
		{
			name:  "bare string stays a string",
			pairs: []string{"mode=free"},
			want:  map[string]any{"mode": "free"},
		},
		{
			name:  "quoted json string",
			pairs: []string{`fluidType="water"`},
			want:  map[string]any{"fluidType": "water"},
		},
		{
			name:  "multiple pairs",
			pairs: []string{"length=2.5", "gravity=1.62"},
			want:  map[string]any{"length": 2.5, "gravity": 1.62},
		},
		{
			name:  "value containing equals",
			pairs: []string{"note=a=b"},
			want:  map[string]any{"note": "a=b"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSetPairs(tc.pairs)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("delta mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSetPairsRejectsMalformedPair(t *testing.T) {
	for _, pair := range []string{"length", "=2.5", "  =x"} {
		_, err := parseSetPairs([]string{pair})
		require.Error(t, err, "pair %q", pair)
		assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	}
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("dup"),
			expected: 2,
		},
		{
			name: "rejected plan",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("scene plan rejected with 2 problem(s)"),
			expected: 3,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("plan file not found"),
			expected: 4,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeForError(tt.err))
		})
	}
}

func TestFlagChanged(t *testing.T) {
	root := newRootCommand()
	cmd := findCommand(t, root, "validate")

	assert.False(t, flagChanged(cmd, "plan"))
	require.NoError(t, cmd.Flags().Set("plan", "scene.yaml"))
	assert.True(t, flagChanged(cmd, "plan"))

	assert.False(t, flagChanged(cmd, ""))
	assert.False(t, flagChanged(nil, "plan"))
}
