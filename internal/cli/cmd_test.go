package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/alexanderramin/mailforge/internal/llm"
	"github.com/alexanderramin/mailforge/internal/repository"
	"github.com/alexanderramin/mailforge/internal/service"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
	"github.com/alexanderramin/mailforge/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB and the builtin
// templates. No provider is configured, so generation is always local.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	templates, err := tmpl.LoadBuiltinTemplates()
	require.NoError(t, err)
	examples, err := tmpl.LoadBuiltinExamples()
	require.NoError(t, err)

	templateSvc := service.NewTemplateService(tmpl.NewRegistry(templates...))
	sessRepo := repository.NewSQLiteSessionRepo(database)
	emailRepo := repository.NewSQLiteEmailRepo(database)

	return &App{
		Templates:  templateSvc,
		Generation: service.NewGenerationService(templateSvc, nil, testutil.NewTestUoW(database), zerolog.Nop()),
		Sessions:   service.NewSessionService(sessRepo),
		History:    service.NewHistoryService(emailRepo),
		Examples:   service.NewExampleService(examples),
		Providers:  llm.NewRegistryWithClients(llm.DefaultConfig()),
		Logger:     zerolog.Nop(),
		HTTPAddr:   "127.0.0.1:0",
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

var supportVars = []string{
	"--var", "customerName=Jennifer",
	"--var", "supportRepName=Marcus",
	"--var", "issueType=Technical Problem",
	"--var", "issueDescription=Cannot log in after a password reset",
	"--var", "solution=We reset your token.",
	"--var", "priority=Urgent",
	"--var", "tone=Empathetic",
}

// --- template ---

func TestTemplateList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "professional-business")
	assert.Contains(t, out, "cold-outreach")
}

func TestTemplateList_Category(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "template", "list", "--category", "support")
	require.NoError(t, err)
	assert.Contains(t, out, "customer-support")
	assert.NotContains(t, out, "cold-outreach")
}

func TestTemplateList_SearchNoMatch(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "template", "list", "-s", "zzz-nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "No templates found.")
}

func TestTemplateShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "template", "show", "customer-support")
	require.NoError(t, err)
	assert.Contains(t, out, "customerName")
}

func TestTemplateShow_NotFound(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "template", "show", "nope")
	require.ErrorIs(t, err, service.ErrTemplateNotFound)
}

// --- prompt ---

func TestPrompt_SubstitutesVars(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "prompt", "cold-outreach",
		"--var", "recipientName=Dana", "--var", "senderCompany=Acme")
	require.NoError(t, err)
	assert.Contains(t, out, "related to Dana")
	assert.Contains(t, out, "from Acme")
	assert.NotContains(t, out, "{recipientName}")
}

func TestPrompt_BadVar(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "prompt", "cold-outreach", "--var", "noequals")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected name=value")
}

// --- generate ---

func TestGenerate_RawPersists(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	args := append([]string{"generate", "customer-support", "--raw"}, supportVars...)
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Subject: Re: Technical Problem - Resolution Update")
	assert.Contains(t, out, "Jennifer")

	emails, err := app.History.List(ctx, "customer-support", 0)
	require.NoError(t, err)
	require.Len(t, emails, 1)
	assert.Equal(t, domain.SourceFallback, emails[0].Source)
	assert.Equal(t, service.ReasonNoProvider, emails[0].FallbackReason)

	s, err := app.Sessions.Get(ctx, "customer-support")
	require.NoError(t, err)
	assert.Equal(t, "Jennifer", s.Values["customerName"])
	assert.Equal(t, emails[0].Content, s.GeneratedEmail)
}

func TestGenerate_NoSave(t *testing.T) {
	app := testApp(t)

	args := append([]string{"generate", "customer-support", "--offline", "--no-save"}, supportVars...)
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Resolution Update")

	emails, err := app.History.List(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, emails)
}

func TestGenerate_InvalidValues(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "generate", "customer-support", "--var", "priority=Whenever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need attention")
	assert.Contains(t, out, "Customer Name is required")
	assert.Contains(t, out, "Priority Level must be one of")
}

// --- session ---

func TestSession_ShowAndClear(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Sessions.SaveValues(ctx, "customer-support", map[string]string{"customerName": "Ann"}))

	out, err := executeCmd(t, app, "session", "show", "customer-support")
	require.NoError(t, err)
	assert.Contains(t, out, "customerName")
	assert.Contains(t, out, "Ann")

	out, err = executeCmd(t, app, "session", "clear", "customer-support")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared session for customer-support.")

	s, err := app.Sessions.Get(ctx, "customer-support")
	require.NoError(t, err)
	assert.Empty(t, s.Values)
}

func TestSession_ClearAll(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Sessions.SaveValues(ctx, "a", map[string]string{"x": "1"}))
	require.NoError(t, app.Sessions.SaveValues(ctx, "b", map[string]string{"x": "2"}))

	out, err := executeCmd(t, app, "session", "clear", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 2 sessions.")
}

func TestSession_ClearNeedsTarget(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "session", "clear")
	require.Error(t, err)
}

// --- history ---

func TestHistory_ListShowRemove(t *testing.T) {
	app := testApp(t)

	args := append([]string{"generate", "customer-support", "--offline"}, supportVars...)
	_, err := executeCmd(t, app, args...)
	require.NoError(t, err)

	emails, err := app.History.List(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, emails, 1)
	id := emails[0].ID

	out, err := executeCmd(t, app, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "customer-support")

	out, err = executeCmd(t, app, "history", "show", id, "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, emails[0].Subject)

	out, err = executeCmd(t, app, "history", "rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")

	_, err = executeCmd(t, app, "history", "show", id)
	require.ErrorIs(t, err, service.ErrEmailNotFound)
}

func TestHistory_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No emails generated yet.")
}

// --- example ---

func TestExample_ListAndShow(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "example", "list", "--template", "cold-outreach")
	require.NoError(t, err)
	assert.Contains(t, out, "cold-outreach")
	assert.NotContains(t, out, "customer-support")

	out, err = executeCmd(t, app, "example", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Meeting Request")
	assert.Contains(t, out, "PROFESSIONAL-BUSINESS")
}

func TestExample_ShowBadID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "example", "show", "first")
	require.Error(t, err)

	_, err = executeCmd(t, app, "example", "show", "999")
	require.ErrorIs(t, err, service.ErrExampleNotFound)
}

// --- providers ---

func TestProviders_JSON(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "providers", "--json")
	require.NoError(t, err)

	var got []llm.ProviderStatus
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(llm.KnownProviders))
	for _, p := range got {
		assert.False(t, p.Configured, p.Name)
		assert.Equal(t, p.Name == "openai", p.Default, p.Name)
	}
}

func TestProviders_Table(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "providers")
	require.NoError(t, err)
	assert.Contains(t, out, "anthropic")
	assert.Contains(t, out, "ollama")
}

type fakeProvider struct {
	name string
	up   bool
}

func (f fakeProvider) Name() string { return f.name }
func (f fakeProvider) Generate(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
	return nil, llm.ErrProviderUnavailable
}
func (f fakeProvider) Available(context.Context) bool { return f.up }

func TestProviders_Check(t *testing.T) {
	app := testApp(t)
	app.Providers = llm.NewRegistryWithClients(llm.DefaultConfig(),
		fakeProvider{name: llm.ProviderOpenAI, up: true},
		fakeProvider{name: llm.ProviderOllama, up: false},
	)

	out, err := executeCmd(t, app, "providers", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "REACHABLE")
	assert.Contains(t, out, "up")
	assert.Contains(t, out, "down")

	out, err = executeCmd(t, app, "providers", "--check", "--json")
	require.NoError(t, err)
	var got []llm.ProviderStatus
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	require.NotNil(t, got[0].Reachable)
	assert.True(t, *got[0].Reachable)
	assert.Nil(t, got[1].Reachable)
	require.NotNil(t, got[2].Reachable)
	assert.False(t, *got[2].Reachable)
}

func TestProviders_NoCheckOmitsReachability(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "providers")
	require.NoError(t, err)
	assert.NotContains(t, out, "REACHABLE")
}
