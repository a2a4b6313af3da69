package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scaptail/scaptail/internal/repository"
	"github.com/scaptail/scaptail/internal/testutil"
	"github.com/scaptail/scaptail/internal/xccdf"
)

func testApp(t *testing.T, interactive bool) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &App{
		Tailorings:    repository.NewSQLiteTailoringRepo(database),
		Benchmark:     BuiltinBenchmark,
		IsInteractive: func() bool { return interactive },
	}
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func seedProfile(t *testing.T, app *App, id string) {
	t.Helper()
	profile := &xccdf.Profile{
		ID:           id,
		Titles:       []xccdf.TextEntry{{Lang: "en", Text: "Seeded Profile"}},
		Descriptions: []xccdf.TextEntry{{Lang: "en", Text: "seeded for tests"}},
	}
	require.NoError(t, app.Tailorings.Save(context.Background(), "xccdf_bench", profile))
}

func TestList_Empty(t *testing.T) {
	app := testApp(t, false)

	out, err := execute(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved profiles")
}

func TestList_ShowsSavedProfiles(t *testing.T) {
	app := testApp(t, false)
	seedProfile(t, app, "xccdf_profile_one")

	out, err := execute(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded Profile")
	assert.Contains(t, out, "xccdf_profile_one")
	assert.Contains(t, out, "seeded for tests")
}

func TestDelete_RemovesProfile(t *testing.T) {
	app := testApp(t, false)
	seedProfile(t, app, "xccdf_profile_gone")

	out, err := execute(t, app, "delete", "xccdf_profile_gone")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted profile")

	exists, err := app.Tailorings.Exists(context.Background(), "xccdf_profile_gone")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDelete_UnknownProfileFails(t *testing.T) {
	app := testApp(t, false)

	_, err := execute(t, app, "delete", "xccdf_profile_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile not found")
}

func TestEdit_RefusesNonInteractiveTerminal(t *testing.T) {
	app := testApp(t, false)

	_, err := execute(t, app, "edit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestEdit_UnknownProfileFails(t *testing.T) {
	app := testApp(t, true)

	_, err := execute(t, app, "edit", "--profile", "xccdf_profile_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile not found")
}

func TestEdit_ProfileAndNewAreExclusive(t *testing.T) {
	app := testApp(t, true)

	_, err := execute(t, app, "edit", "--profile", "xccdf_profile_one", "--new")
	require.Error(t, err)
}

func TestBuiltinBenchmark_Shape(t *testing.T) {
	b := BuiltinBenchmark()
	assert.Equal(t, xccdf.KindBenchmark, b.Kind)

	timeout := b.Find("xccdf_scaptail_value_ssh_idle_timeout")
	require.NotNil(t, timeout)
	assert.Equal(t, xccdf.TypeNumber, timeout.ValueType)
	assert.Equal(t, "300", timeout.DefaultInstance())

	rule := b.Find("xccdf_scaptail_rule_audit_rules_immutable")
	require.NotNil(t, rule)
	assert.False(t, rule.Selected)
}
