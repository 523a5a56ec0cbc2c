package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// TypeAwareSource supplies the list of rule names that need cross-file
// type information. The canonical list lives upstream with the oxlint
// project; a fixed fallback is embedded below for offline runs.
type TypeAwareSource interface {
	Load(ctx context.Context) ([]string, error)
}

// DefaultTypeAwareURL is the upstream list of type-aware rule names.
const DefaultTypeAwareURL = "https://raw.githubusercontent.com/oxc-project/oxc/main/tasks/website/src/linter/type-aware-rules.json"

// HTTPSource fetches the type-aware rule list over HTTP.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource returns an HTTPSource for the upstream list with a
// short timeout; a slow or unreachable source must never stall a run.
func NewHTTPSource() *HTTPSource {
	return &HTTPSource{
		URL:    DefaultTypeAwareURL,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Load fetches and decodes the rule name list.
func (s *HTTPSource) Load(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.URL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(body, &names); err != nil {
		return nil, fmt.Errorf("failed to parse type-aware rule list: %w", err)
	}
	return names, nil
}

// LoadTypeAwareRules obtains the type-aware rule name list from source,
// degrading to the embedded fallback on any failure. A fetch failure
// never fails the run; it only costs list freshness. Pass a nil source
// to use the fallback directly.
func LoadTypeAwareRules(ctx context.Context, source TypeAwareSource, verbose bool) []string {
	if source == nil {
		return fallbackTypeAwareRules
	}
	names, err := source.Load(ctx)
	if err != nil || len(names) == 0 {
		if verbose {
			fmt.Fprintf(os.Stderr, "warning: type-aware rule list unavailable, using built-in fallback: %v\n", err)
		}
		return fallbackTypeAwareRules
	}
	return names
}

// fallbackTypeAwareRules is the embedded snapshot of typescript rules
// that require type information, used when the upstream list cannot be
// fetched.
var fallbackTypeAwareRules = []string{
	"typescript/await-thenable",
	"typescript/no-array-delete",
	"typescript/no-base-to-string",
	"typescript/no-confusing-void-expression",
	"typescript/no-duplicate-type-constituents",
	"typescript/no-floating-promises",
	"typescript/no-for-in-array",
	"typescript/no-implied-eval",
	"typescript/no-meaningless-void-operator",
	"typescript/no-misused-promises",
	"typescript/no-misused-spread",
	"typescript/no-mixed-enums",
	"typescript/no-redundant-type-constituents",
	"typescript/no-unnecessary-boolean-literal-compare",
	"typescript/no-unnecessary-template-expression",
	"typescript/no-unnecessary-type-arguments",
	"typescript/no-unnecessary-type-assertion",
	"typescript/no-unsafe-argument",
	"typescript/no-unsafe-assignment",
	"typescript/no-unsafe-call",
	"typescript/no-unsafe-enum-comparison",
	"typescript/no-unsafe-member-access",
	"typescript/no-unsafe-return",
	"typescript/no-unsafe-type-assertion",
	"typescript/no-unsafe-unary-minus",
	"typescript/non-nullable-type-assertion-style",
	"typescript/only-throw-error",
	"typescript/prefer-promise-reject-errors",
	"typescript/prefer-reduce-type-parameter",
	"typescript/prefer-return-this-type",
	"typescript/promise-function-async",
	"typescript/related-getter-setter-pairs",
	"typescript/require-array-sort-compare",
	"typescript/require-await",
	"typescript/restrict-plus-operands",
	"typescript/restrict-template-expressions",
	"typescript/return-await",
	"typescript/switch-exhaustiveness-check",
	"typescript/unbound-method",
	"typescript/use-unknown-in-catch-callback-variable",
}
