package export

import "github.com/handiism/osu-music-export/internal/model"

// Outcome is the result of processing one song folder.
type Outcome struct {
	Folder model.SongFolder

	// Plan is set on success.
	Plan *model.ExportPlan

	// Err is set on failure.
	Err error
}

// Succeeded reports whether the folder was exported.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Results collects per-folder outcomes of a run. Outcomes are only ever
// appended, in processing order.
type Results struct {
	outcomes  []Outcome
	succeeded int
	failed    int
}

// NewResults creates an empty Results.
func NewResults() *Results {
	return &Results{}
}

// RecordSuccess records an exported folder.
func (r *Results) RecordSuccess(folder model.SongFolder, plan *model.ExportPlan) {
	r.outcomes = append(r.outcomes, Outcome{Folder: folder, Plan: plan})
	r.succeeded++
}

// RecordFailure records a folder that could not be exported.
func (r *Results) RecordFailure(folder model.SongFolder, err error) {
	r.outcomes = append(r.outcomes, Outcome{Folder: folder, Err: err})
	r.failed++
}

// Summary returns the number of exported and failed folders.
func (r *Results) Summary() (succeeded, failed int) {
	return r.succeeded, r.failed
}

// Outcomes returns a copy of all outcomes in processing order.
func (r *Results) Outcomes() []Outcome {
	return append([]Outcome(nil), r.outcomes...)
}

// Failures returns the failed outcomes in processing order.
func (r *Results) Failures() []Outcome {
	var failures []Outcome
	for _, o := range r.outcomes {
		if !o.Succeeded() {
			failures = append(failures, o)
		}
	}
	return failures
}

// Plans returns the plans of every exported folder in processing order.
func (r *Results) Plans() []*model.ExportPlan {
	var plans []*model.ExportPlan
	for _, o := range r.outcomes {
		if o.Succeeded() {
			plans = append(plans, o.Plan)
		}
	}
	return plans
}
