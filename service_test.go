package fixture_test

import (
	"context"
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/fixture"
	"github.com/viant/fixture/model"
	"github.com/viant/fixture/model/types"
	"github.com/viant/fixture/tracing"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestService_Exports(t *testing.T) {
	srv, err := fixture.New(fixture.WithSource(gofakeit.New(42)), fixture.WithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, err)

	exports := srv.Exports()
	assert.EqualValues(t, []string{"generateHostname", "generateIP", "generateTeamName"}, exports.Names())
	assert.True(t, strings.HasPrefix(exports.Lookup("generateTeamName")(), "team_"))
	assert.Regexp(t, `^host_[0-9a-z]+\.com$`, exports.Lookup("generateHostname")())
	assert.Regexp(t, `^192\.168\.\d+\.\d+$`, exports.Lookup("generateIP")())
	assert.NotNil(t, srv.Actions().Lookup("fixture"))
}

func TestService_Generate(t *testing.T) {
	srv, err := fixture.New()
	require.NoError(t, err)
	ctx := context.Background()

	testCases := []struct {
		description string
		function    string
		count       int
		expectErr   string
		prefix      string
	}{
		{description: "team names", function: "generateTeamName", count: 5, prefix: "team_"},
		{description: "ips", function: "generateIP", count: 2, prefix: "192.168."},
		{description: "unknown", function: "generateEmail", count: 1, expectErr: "unknown function generateEmail"},
		{description: "zero count", function: "generateIP", count: 0, expectErr: "invalid count 0"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			samples, err := srv.Generate(ctx, testCase.function, testCase.count)
			if testCase.expectErr != "" {
				assert.EqualError(t, err, testCase.expectErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, samples, testCase.count)
			for _, sample := range samples {
				assert.Equal(t, testCase.function, sample.Function)
				assert.True(t, strings.HasPrefix(sample.Value, testCase.prefix), sample.Value)
				assert.NotEmpty(t, sample.ID)
				assert.False(t, sample.GeneratedAt.IsZero())
			}
		})
	}
}

func TestService_GenerateCancelled(t *testing.T) {
	srv, err := fixture.New()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = srv.Generate(ctx, "generateIP", 3)
	assert.ErrorIs(t, err, context.Canceled)
}

type projectService struct {
	name   string
	method string
}

type projectOutput struct {
	Value string
}

func (p *projectService) Name() string {
	if p.name == "" {
		return "project"
	}
	return p.name
}

func (p *projectService) methodName() string {
	if p.method == "" {
		return "generateProjectName"
	}
	return p.method
}

func (p *projectService) Methods() types.Signatures {
	return types.Signatures{{
		Name:   p.methodName(),
		Input:  reflect.TypeOf(&struct{}{}),
		Output: reflect.TypeOf(&projectOutput{}),
	}}
}

func (p *projectService) Method(name string) (types.Executable, error) {
	if name != p.methodName() {
		return nil, types.NewMethodNotFoundError(name)
	}
	return func(ctx context.Context, in, out interface{}) error {
		out.(*projectOutput).Value = "project_static"
		return nil
	}, nil
}

func TestService_ExtensionServices(t *testing.T) {
	srv, err := fixture.New(fixture.WithExtensionServices(&projectService{}))
	require.NoError(t, err)
	assert.Len(t, srv.Exports(), 4)
	samples, err := srv.Generate(context.Background(), "generateProjectName", 1)
	require.NoError(t, err)
	assert.Equal(t, "project_static", samples[0].Value)
}

func TestService_ExtensionCollisions(t *testing.T) {
	testCases := []struct {
		description string
		service     *projectService
		expectErr   string
	}{
		{
			description: "extension replacing the fixture service",
			service:     &projectService{name: "fixture", method: "generateIP"},
			expectErr:   "failed to register extension: service fixture already registered",
		},
		{
			description: "extension exporting a built-in function",
			service:     &projectService{name: "zzz", method: "generateIP"},
			expectErr:   "failed to register extension: function generateIP exported by both fixture and zzz",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			srv, err := fixture.New(fixture.WithExtensionServices(testCase.service))
			assert.Nil(t, srv)
			assert.EqualError(t, err, testCase.expectErr)
		})
	}
}

func TestService_Generator(t *testing.T) {
	srv, err := fixture.New(fixture.WithSource(gofakeit.New(3)))
	require.NoError(t, err)
	assert.Regexp(t, `^192\.168\.\d+\.\d+$`, srv.Generator().IP())
	assert.Len(t, srv.Functions(), 3)
}

func TestService_GenerateLargeCount(t *testing.T) {
	srv, err := fixture.New()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var samples []*model.Sample
	assert.NotPanics(t, func() {
		samples, err = srv.Generate(ctx, "generateIP", math.MaxInt)
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, samples)
}

func TestService_TracingParents(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	srv, err := fixture.New(fixture.WithTracingExporter("fixture", "0.0.1", exporter))
	require.NoError(t, err)
	defer func() { require.NoError(t, tracing.Shutdown(context.Background())) }()
	ctx := context.Background()

	_, err = srv.Generate(ctx, "generateIP", 2)
	require.NoError(t, err)
	assertChildren(t, exporter.GetSpans(), "fixture.generate", "fixture.generateIP", 2)

	exporter.Reset()
	scenario, err := srv.Scenarios().Decode([]byte("name: hosts\nvariables:\n  ip: generateIP\n  host: generateHostname\n"))
	require.NoError(t, err)
	_, err = srv.Scenarios().Bind(ctx, scenario)
	require.NoError(t, err)
	spans := exporter.GetSpans()
	assertChildren(t, spans, "scenario.bind", "fixture.generateIP", 1)
	assertChildren(t, spans, "scenario.bind", "fixture.generateHostname", 1)
}

func assertChildren(t *testing.T, spans tracetest.SpanStubs, parentName, childName string, expect int) {
	t.Helper()
	var parent *tracetest.SpanStub
	for i := range spans {
		if spans[i].Name == parentName {
			parent = &spans[i]
		}
	}
	require.NotNil(t, parent, parentName)
	count := 0
	for _, span := range spans {
		if span.Name != childName {
			continue
		}
		count++
		assert.Equal(t, parent.SpanContext.TraceID(), span.SpanContext.TraceID(), childName)
		assert.Equal(t, parent.SpanContext.SpanID(), span.Parent.SpanID(), childName)
	}
	assert.Equal(t, expect, count, childName)
}

func TestService_Scenario(t *testing.T) {
	srv, err := fixture.New()
	require.NoError(t, err)
	ctx := context.Background()
	scenario, err := srv.Scenarios().Decode([]byte(`
name: hosts
variables:
  ip: generateIP
requests:
  - method: POST
    url: /api/hosts
    json:
      ip_address: "{{ ip }}"
`))
	require.NoError(t, err)
	binding, err := srv.Scenarios().Bind(ctx, scenario)
	require.NoError(t, err)
	assert.Equal(t, binding.Variables["ip"], binding.Requests[0].JSON["ip_address"])
	assert.Regexp(t, `^192\.168\.\d+\.\d+$`, binding.Variables["ip"])
}

func TestLoadConfig(t *testing.T) {
	location, err := filepath.Abs(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	cfg, err := fixture.LoadConfig(context.Background(), afs.New(), location)
	require.NoError(t, err)
	assert.Equal(t, "generateIP", cfg.Generate.Function)
	assert.Equal(t, 3, cfg.Generate.Count)
	assert.Equal(t, "json", cfg.Log.Encoder)
	assert.Equal(t, "fixture", cfg.Tracing.ServiceName)

	srv, err := fixture.New(fixture.WithConfig(cfg))
	require.NoError(t, err)
	assert.Same(t, cfg, srv.Config())
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		description string
		mutate      func(c *fixture.Config)
		expectErr   string
	}{
		{description: "default", mutate: func(c *fixture.Config) {}},
		{description: "empty function", mutate: func(c *fixture.Config) { c.Generate.Function = "" }, expectErr: "generate.function was empty"},
		{description: "negative count", mutate: func(c *fixture.Config) { c.Generate.Count = -1 }, expectErr: "generate.count must be > 0"},
		{description: "negative log level", mutate: func(c *fixture.Config) { c.Log.Level = -1 }, expectErr: "log.level must be within [0, 127], was -1"},
		{description: "log level overflow", mutate: func(c *fixture.Config) { c.Log.Level = 128 }, expectErr: "log.level must be within [0, 127], was 128"},
		{description: "highest log level", mutate: func(c *fixture.Config) { c.Log.Level = 127 }},
		{description: "bad encoder", mutate: func(c *fixture.Config) { c.Log.Encoder = "xml" }, expectErr: `log.encoder must be console or json, was "xml"`},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cfg := fixture.DefaultConfig()
			testCase.mutate(cfg)
			err := cfg.Validate()
			if testCase.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, testCase.expectErr)
			_, err = fixture.New(fixture.WithConfig(cfg))
			assert.EqualError(t, err, testCase.expectErr)
		})
	}
}
