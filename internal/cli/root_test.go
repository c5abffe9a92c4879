package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func aliasColumn(t *testing.T, out string) []string {
	t.Helper()
	var recs []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &recs), out)

	aliases := make([]string, len(recs))
	for i, rec := range recs {
		aliases[i] = rec["alias"]
	}
	return aliases
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"shorten", "tables", "columns", "dialects", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	for _, flag := range []string{"config", "dialect", "max-length", "rounds", "strict", "output", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCommand_ColumnsWithDialect(t *testing.T) {
	long := "t_payment_method.processing_contract_identifier_with_suffix"

	out, _, err := execute(t, "--dialect", "oracle", "-o", "json", "columns", "t_client.name", long)
	require.NoError(t, err)

	aliases := aliasColumn(t, out)
	require.Len(t, aliases, 2)
	assert.Equal(t, "c_name", aliases[0])
	assert.LessOrEqual(t, len(aliases[1]), 30)
	assert.Equal(t, "pm_processing_contract_ident_2", aliases[1])
}

func TestRootCommand_MaxLengthFlag(t *testing.T) {
	out, _, err := execute(t, "columns", "--max-length", "11", "-o", "json",
		"t_paysys.name", "t_passport.uid", "t_payment_method.paysys_id")
	require.NoError(t, err)
	assert.Equal(t, []string{"py_name", "ps_uid", "pm_paysys_3"}, aliasColumn(t, out))
}

func TestRootCommand_Env(t *testing.T) {
	t.Setenv("SQLALIAS_MAX_LENGTH", "11")
	t.Setenv("SQLALIAS_OUTPUT", "json")

	out, _, err := execute(t, "columns", "t_paysys.name", "t_passport.uid", "t_payment_method.paysys_id")
	require.NoError(t, err)
	assert.Equal(t, []string{"py_name", "ps_uid", "pm_paysys_3"}, aliasColumn(t, out))
}

func TestRootCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rounds: 7\noutput: json\n"), 0o600))

	out, stderr, err := execute(t, "--config", path, "--verbose", "tables", "abc", "longtable1", "longtable3", "longtable4")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "lngtbl1", "lngtbl3", "lngtbl4"}, aliasColumn(t, out))
	assert.Contains(t, stderr, "Using config file: "+path)
	assert.Contains(t, stderr, "table aliases resolved")
}

func TestRootCommand_YAMLOutput(t *testing.T) {
	out, _, err := execute(t, "-o", "yaml", "tables", "client", "order")
	require.NoError(t, err)
	assert.Equal(t, "- table: client\n  alias: c\n- table: order\n  alias: o\n", out)
}

func TestRootCommand_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		errSubstr string
	}{
		{"unknown dialect", []string{"--dialect", "db2", "tables", "client"}, "unsupported dialect"},
		{"unknown output", []string{"--output", "xml", "tables", "client"}, "unknown output format"},
		{"invalid rounds", []string{"--rounds", "0", "tables", "client"}, "rounds must be at least 1"},
		{"missing config", []string{"--config", "/nonexistent/sqlalias.yaml", "tables", "client"}, "error reading config file"},
		{"invalid identifier", []string{"tables", "client;"}, "invalid identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestRootCommand_Version(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "sqlalias "+Version+"\n", out)
}
