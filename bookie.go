package emporium

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// The ledger must reconcile with an external ground truth: the balance of the
// real bookmaker account. Bookmakers don't share an API shape, so the balance
// is pulled from any JSON endpoint and located with a JSONPath expression,
// e.g. "$.account.balance".

// FetchBookieBalance fetches the bookmaker account balance from a JSON
// endpoint. Responses are cached on disk for the day: the reconciliation is a
// daily routine, not a live feed.
func FetchBookieBalance(addr, path, currency string) (Money, error) {
	return fetchBookieBalance(daily(), addr, path, currency)
}

func fetchBookieBalance(client *http.Client, addr, path, currency string) (Money, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error fetching bookmaker balance: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error locating balance with %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("balance at %q is not a number: %v", path, jval)
	}
	return M(val, currency), nil
}

// Reconciliation is the comparison of the book's computed balance against
// the bookmaker account.
type Reconciliation struct {
	Computed Money // the scope's CurrentBalance derived from the book.
	External Money // the bookmaker account balance.
}

// Difference returns external minus computed. Zero means the book reconciles.
func (r Reconciliation) Difference() Money {
	return r.External.Sub(r.Computed).RoundUnit()
}

// Reconciled reports whether the two balances agree to the smallest unit.
func (r Reconciliation) Reconciled() bool {
	return r.Difference().IsZero()
}
