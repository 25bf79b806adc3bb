// Package steps provides step definitions for the BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/config"
	"github.com/finance-tracker/client/internal/infra/dependency"
	"github.com/finance-tracker/client/internal/integration/persistence"
	"github.com/finance-tracker/client/test/integration/mock"
)

// TestContext holds the per-scenario state: an app instance over an
// in-memory store, wired against a mock remote backend.
type TestContext struct {
	store    *persistence.MemoryStore
	remote   *mock.RemoteBackend
	injector *dependency.Injector
	server   *httptest.Server
	client   *http.Client

	response     *http.Response
	responseBody []byte
}

// contextKey stores TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario wires a fresh app instance per scenario and registers
// every step definition.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			store:  persistence.NewMemoryStore(),
			remote: mock.NewRemoteBackend(),
			client: &http.Client{Timeout: 10 * time.Second},
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Remote.BaseURL = tc.remote.URL()
		cfg.Remote.RequestTimeout = 2 * time.Second
		cfg.Sync.Enabled = false

		injector, err := dependency.NewInjector(ctx, cfg, tc.store, func() bool { return true })
		if err != nil {
			return ctx, err
		}
		tc.injector = injector
		tc.server = httptest.NewServer(injector.Router.Setup("test"))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.remote != nil {
				tc.remote.Close()
			}
		}
		return ctx, nil
	})

	registerStoreSteps(ctx)
	registerRemoteSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerSyncSteps(ctx)
}
