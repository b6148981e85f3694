package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caprock-civil/backoffice-cli/internal/payroll"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"serve", "payroll", "fleet", "compliance", "bids", "spec-search", "seed"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "backoffice", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestPayrollCommand_HasSubcommands(t *testing.T) {
	cmds := payrollCmd.Commands()
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	for _, name := range []string{"list", "stats", "generate", "export"} {
		assert.True(t, names[name], "payroll should have subcommand %q", name)
	}
}

func TestPayrollListCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"search", "status"} {
		flag := payrollListCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "payroll list should have --%s flag", flagName)
	}
}

func TestFormatPayrollList(t *testing.T) {
	var buf bytes.Buffer

	formatPayrollList(&buf, []payroll.CertifiedPayroll{
		{
			ID: "cp-1", PayrollNumber: "CP-2026-031", ProjectName: "Highway 12 Resurfacing",
			WeekEnding: time.Date(2026, time.August, 22, 0, 0, 0, 0, time.UTC),
			Status:     payroll.StatusSubmitted, EmployeeCount: 14, TotalGross: 31418.50,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "CP-2026-031")
	assert.Contains(t, out, "Highway 12 Resurfacing")
	assert.Contains(t, out, "SUBMITTED")
}
