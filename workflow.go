package investfolio

import (
	"context"
	"errors"
	"fmt"
)

// ErrAssetExists reports the backend conflict answer on asset creation. The
// conflict response carries no identifier and the backend exposes no
// lookup-by-ticker endpoint, so the workflow cannot proceed; it fails
// explicitly instead of guessing.
var ErrAssetExists = errors.New("asset already exists and the backend cannot return its identifier")

// ErrBusy reports a submission while a previous one is still in flight.
var ErrBusy = errors.New("a trade submission is already in progress")

// Resolution is the tagged outcome of an asset resolution attempt.
// Exactly one of the two fields is meaningful: ID when the asset was
// created, AlreadyExists when the backend reported a conflict. A failed
// attempt is an error, not a Resolution.
type Resolution struct {
	ID            string
	AlreadyExists bool
}

// AssetResolver maps a ticker and category to a durable asset identifier,
// creating the asset server-side at most once per call. It never retries
// creation on conflict.
type AssetResolver interface {
	ResolveAsset(ctx context.Context, ticker string, category Category, name string) (Resolution, error)
}

// TradeRecorder submits a resolved trade to the backend ledger.
type TradeRecorder interface {
	RecordTrade(ctx context.Context, rec Record) error
}

// State is the position of a workflow run.
type State int

const (
	Idle State = iota
	Resolving
	Recording
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Recording:
		return "recording"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Workflow orchestrates the two-step trade submission: resolve the asset,
// then record the trade. The user sees it as one action, but the two backend
// calls are not transactional: a created asset with no recorded trade is an
// accepted, surfaced outcome, never rolled back.
type Workflow struct {
	resolver   AssetResolver
	recorder   TradeRecorder
	invalidate func() // portfolio view invalidation, called once per success

	state State
}

// NewWorkflow builds a workflow. invalidate may be nil.
func NewWorkflow(resolver AssetResolver, recorder TradeRecorder, invalidate func()) *Workflow {
	return &Workflow{resolver: resolver, recorder: recorder, invalidate: invalidate}
}

// State returns the current workflow state.
func (w *Workflow) State() State { return w.state }

// Run validates the form and submits the trade. Validation failures are
// resolved locally: no network call is made and the workflow stays Idle so
// the user can fix the form and resubmit. After the first network call the
// run ends in Done or Failed; either way the workflow accepts a new Run.
func (w *Workflow) Run(ctx context.Context, form TradeForm) error {
	if w.state == Resolving || w.state == Recording {
		return ErrBusy
	}
	w.state = Idle

	trade, err := form.Validate()
	if err != nil {
		return err
	}
	return w.submit(ctx, trade)
}

func (w *Workflow) submit(ctx context.Context, trade Trade) error {
	w.state = Resolving
	res, err := w.resolver.ResolveAsset(ctx, trade.Ticker, trade.Category, trade.Ticker)
	if err != nil {
		w.state = Failed
		return fmt.Errorf("resolving asset %s: %w", trade.Ticker, err)
	}
	if res.AlreadyExists {
		w.state = Failed
		return fmt.Errorf("%s: %w", trade.Ticker, ErrAssetExists)
	}
	if res.ID == "" {
		w.state = Failed
		return fmt.Errorf("resolving asset %s: backend returned no identifier", trade.Ticker)
	}

	w.state = Recording
	rec := Record{
		AssetID:  res.ID,
		Type:     trade.Type,
		Quantity: trade.Quantity,
		Price:    trade.Price,
		Date:     trade.Date,
	}
	if err := w.recorder.RecordTrade(ctx, rec); err != nil {
		w.state = Failed
		return fmt.Errorf("recording %s of %s %s: %w", trade.Type, trade.Quantity, trade.Ticker, err)
	}

	w.state = Done
	if w.invalidate != nil {
		w.invalidate()
	}
	return nil
}
