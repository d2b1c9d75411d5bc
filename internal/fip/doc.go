// Package fip contains the reconciliation core for cloudscale.ch
// floating IPs: the canonical resource record, the mapper that
// normalizes raw API responses, and the reconciler that diffs desired
// against observed state and executes the minimal corrective action.
//
// The decision logic (Plan) is pure and fully separated from action
// execution, which is what makes dry-run reporting exact: a dry run
// computes the same plan as a real run and simply skips the API call.
package fip
