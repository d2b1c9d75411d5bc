package fip

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/cloudscale-tools/fipctl/internal/cloudscale"
)

// Action is the corrective step selected by the reconciler.
type Action string

const (
	// ActionNone means observed and desired state already converge.
	ActionNone Action = "none"
	// ActionCreate requests a new floating IP.
	ActionCreate Action = "create"
	// ActionUpdate reassigns an existing floating IP.
	ActionUpdate Action = "update"
	// ActionDelete releases an existing floating IP.
	ActionDelete Action = "delete"
)

// Result describes the outcome of one reconciliation.
type Result struct {
	Record  Record `json:"record" yaml:"record"`
	Action  Action `json:"action" yaml:"action"`
	Changed bool   `json:"changed" yaml:"changed"`
}

// Reconciler converges a single floating IP towards a desired state.
// One invocation performs at most one fetch and at most one mutating
// API call, in strict sequence. It holds no state between invocations.
type Reconciler struct {
	api    cloudscale.FloatingIPAPI
	log    logr.Logger
	dryRun bool
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithLogger sets a logger for reconciliation progress.
func WithLogger(log logr.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		r.log = log
	}
}

// WithDryRun disables all mutating API calls. The reconciler still
// reports the action and changed flag a real run would produce.
func WithDryRun(dryRun bool) ReconcilerOption {
	return func(r *Reconciler) {
		r.dryRun = dryRun
	}
}

// NewReconciler creates a Reconciler backed by the given API client.
func NewReconciler(api cloudscale.FloatingIPAPI, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		api: api,
		log: logr.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Plan selects the action required to converge current towards
// desired. It is a pure function; dry-run and real runs share it, so
// both report the same decision. Rows are evaluated in order, first
// match wins:
//
//	absent  -> absent:  none
//	absent  -> present: create
//	present -> absent:  delete
//	present -> present, server matches: none
//	present -> present, server differs: update
//
// Note that a tags-only change with an unchanged server selects no
// action: reassignment is the only supported update trigger, tags ride
// along with it. This matches the long-standing upstream behavior.
func Plan(desired DesiredState, current Record) Action {
	switch {
	case !current.Exists() && desired.State == StateAbsent:
		return ActionNone
	case !current.Exists() && desired.State == StatePresent:
		return ActionCreate
	case current.Exists() && desired.State == StateAbsent:
		return ActionDelete
	case current.Server != desired.Server:
		return ActionUpdate
	default:
		return ActionNone
	}
}

// Reconcile fetches the observed state for the desired floating IP,
// then converges it. This is the entry point for one full
// fetch -> decide -> act -> remap cycle.
func (r *Reconciler) Reconcile(ctx context.Context, desired DesiredState) (Result, error) {
	if err := desired.Validate(); err != nil {
		return Result{}, err
	}

	current, err := r.observe(ctx, desired.IP)
	if err != nil {
		return Result{}, err
	}

	return r.Converge(ctx, desired, current)
}

// Converge diffs desired against an already-observed current record
// and executes the selected action. Parameter validation for the
// selected action happens before any network call, in dry-run mode
// included, so a dry run fails exactly where a real run would.
func (r *Reconciler) Converge(ctx context.Context, desired DesiredState, current Record) (Result, error) {
	action := Plan(desired, current)
	if err := checkActionParams(action, desired); err != nil {
		return Result{}, err
	}

	result := Result{
		Record:  current,
		Action:  action,
		Changed: action != ActionNone,
	}

	r.log.V(1).Info("reconciliation planned",
		"ip", current.IP, "action", string(action), "changed", result.Changed, "dryRun", r.dryRun)

	if action == ActionNone || r.dryRun {
		return result, nil
	}

	var (
		record Record
		err    error
	)
	switch action {
	case ActionCreate:
		record, err = r.create(ctx, desired)
	case ActionUpdate:
		record, err = r.update(ctx, desired, current)
	case ActionDelete:
		record, err = r.delete(ctx, current)
	default:
		return Result{}, fmt.Errorf("unknown action %q", action)
	}
	if err != nil {
		return Result{}, err
	}

	r.log.Info("floating IP reconciled", "ip", record.IP, "action", string(action))
	result.Record = record
	return result, nil
}

// observe fetches and normalizes the current state. Without an address
// to query, the floating IP cannot exist yet.
func (r *Reconciler) observe(ctx context.Context, ip string) (Record, error) {
	if ip == "" {
		return AbsentRecord(""), nil
	}

	raw, err := r.api.GetFloatingIP(ctx, ip)
	if err != nil {
		return Record{}, err
	}
	return Normalize(raw, ip)
}

// checkActionParams validates the parameters the selected action needs,
// before any mutating call is issued.
func checkActionParams(action Action, desired DesiredState) error {
	switch action {
	case ActionCreate:
		if desired.IPVersion == 0 {
			return &MissingParameterError{Parameter: "ip_version", Reason: "required to request a new floating IP"}
		}
	case ActionUpdate:
		if desired.Server == "" {
			return &MissingParameterError{Parameter: "server", Reason: "required to update a floating IP"}
		}
	}
	return nil
}

func (r *Reconciler) create(ctx context.Context, desired DesiredState) (Record, error) {
	raw, err := r.api.CreateFloatingIP(ctx, cloudscale.FloatingIPCreateRequest{
		IPVersion:    desired.IPVersion,
		Server:       desired.Server,
		PrefixLength: desired.PrefixLength,
		ReversePtr:   desired.ReversePtr,
		Type:         desired.Type,
		Region:       desired.Region,
		Tags:         tagsPayload(desired.Tags),
	})
	if err != nil {
		return Record{}, err
	}
	return Normalize(raw, desired.IP)
}

func (r *Reconciler) update(ctx context.Context, desired DesiredState, current Record) (Record, error) {
	// Only mutable attributes go over the wire; write-once attributes
	// are never re-applied.
	raw, err := r.api.UpdateFloatingIP(ctx, current.IP, cloudscale.FloatingIPUpdateRequest{
		Server: desired.Server,
		Tags:   tagsPayload(desired.Tags),
	})
	if err != nil {
		return Record{}, err
	}
	return Normalize(raw, current.IP)
}

func (r *Reconciler) delete(ctx context.Context, current Record) (Record, error) {
	if err := r.api.DeleteFloatingIP(ctx, current.IP); err != nil {
		return Record{}, err
	}
	// Delete returns no body; the resulting record is synthesized.
	return AbsentRecord(current.IP), nil
}

// tagsPayload maps desired tags onto the wire representation,
// preserving the distinction between "leave unchanged" (nil) and
// "clear all tags" (empty map).
func tagsPayload(tags map[string]string) *map[string]string {
	if tags == nil {
		return nil
	}
	return &tags
}
