package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// Store seeding steps.

func registerStoreSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the store contains "([^"]*)" records:$`, theStoreContainsRecords)
	ctx.Step(`^the stored schema version is (\d+)$`, theStoredSchemaVersionIs)
	ctx.Step(`^schema migrations run$`, schemaMigrationsRun)
}

func theStoreContainsRecords(ctx context.Context, kind string, records *godog.DocString) error {
	tc := GetTestContext(ctx)
	key := tc.injector.Keys.ForKind(entity.Kind(kind))
	return tc.store.Set(ctx, key, []byte(records.Content))
}

func theStoredSchemaVersionIs(ctx context.Context, version int) error {
	tc := GetTestContext(ctx)
	return tc.store.Set(ctx, tc.injector.Keys.SchemaVersion(), []byte(strconv.Itoa(version)))
}

func schemaMigrationsRun(ctx context.Context) error {
	tc := GetTestContext(ctx)
	return tc.injector.Migrations.Run(ctx)
}

// Remote backend steps.

func registerRemoteSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the remote backend is unavailable$`, theRemoteBackendIsUnavailable)
	ctx.Step(`^the remote backend becomes available$`, theRemoteBackendBecomesAvailable)
	ctx.Step(`^the remote backend will return the snapshot:$`, theRemoteBackendWillReturnTheSnapshot)
	ctx.Step(`^the remote backend should have received (\d+) "([^"]*)" requests? to "([^"]*)"$`,
		theRemoteBackendShouldHaveReceivedRequests)
}

func theRemoteBackendIsUnavailable(ctx context.Context) error {
	GetTestContext(ctx).remote.SetUnavailable(true)
	return nil
}

func theRemoteBackendBecomesAvailable(ctx context.Context) error {
	GetTestContext(ctx).remote.SetUnavailable(false)
	return nil
}

func theRemoteBackendWillReturnTheSnapshot(ctx context.Context, snapshot *godog.DocString) error {
	GetTestContext(ctx).remote.SetSnapshot(snapshot.Content)
	return nil
}

func theRemoteBackendShouldHaveReceivedRequests(ctx context.Context, count int, method, path string) error {
	got := GetTestContext(ctx).remote.Requests(method, path)
	if got != count {
		return fmt.Errorf("expected %d %s requests to %s, got %d", count, method, path, got)
	}
	return nil
}

// HTTP request steps.

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return sendRequest(ctx, method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return sendRequest(ctx, method, path, []byte(body.Content))
}

func sendRequest(ctx context.Context, method, path string, body []byte) error {
	tc := GetTestContext(ctx)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	request, err := http.NewRequestWithContext(ctx, method, tc.server.URL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := tc.client.Do(request)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()

	tc.response = response
	tc.responseBody, err = io.ReadAll(response.Body)
	return err
}

// Response assertion steps.

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)",
			status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}
	got := fmt.Sprint(value)
	if got != expected {
		return fmt.Errorf("expected field %s to be %q, got %q", field, expected, got)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := responseField(ctx, field)
	return err
}

func theResponseShouldContain(ctx context.Context, substring string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), substring) {
		return fmt.Errorf("expected response to contain %q, body: %s", substring, tc.responseBody)
	}
	return nil
}

// responseField navigates a dot-separated path through the decoded response
// body. Numeric path elements index into arrays.
func responseField(ctx context.Context, field string) (any, error) {
	tc := GetTestContext(ctx)

	var decoded any
	if err := json.Unmarshal(tc.responseBody, &decoded); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w (body: %s)", err, tc.responseBody)
	}

	current := decoded
	for _, part := range strings.Split(field, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %s not found in response (body: %s)", field, tc.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in field %s", part, field)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot navigate %s in field %s", part, field)
		}
	}
	return current, nil
}

// Sync steps.

func registerSyncSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a sync cycle completes$`, aSyncCycleCompletes)
	ctx.Step(`^(\d+) mutations? should be pending$`, mutationsShouldBePending)
}

func aSyncCycleCompletes(ctx context.Context) error {
	GetTestContext(ctx).injector.SyncEngine.SyncOnLoad(ctx)
	return nil
}

func mutationsShouldBePending(ctx context.Context, count int) error {
	status := GetTestContext(ctx).injector.SyncEngine.Status()
	if status.PendingCount != count {
		return fmt.Errorf("expected %d pending mutations, got %d", count, status.PendingCount)
	}
	return nil
}
