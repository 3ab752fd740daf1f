package app

import (
	"context"
	"fmt"

	"github.com/Makepad-fr/smarthire/internal/client"
	"github.com/Makepad-fr/smarthire/internal/model"
	"github.com/Makepad-fr/smarthire/internal/ui"
)

// PopulateJobs fetches the catalog and fills the job selector.
func (p *Page) PopulateJobs(ctx context.Context) client.Result[[]model.Job] {
	r := p.FetchJobs(ctx)
	p.ApplyJobs(r)
	return r
}

// FetchJobs only performs the request; it does not touch the page.
func (p *Page) FetchJobs(ctx context.Context) client.Result[[]model.Job] {
	return client.From(p.svc.Jobs(ctx))
}

// ApplyJobs replaces the selector content with the placeholder followed by
// one option per job, in service order. On failure only the placeholder is
// left and the status line carries the error.
func (p *Page) ApplyJobs(r client.Result[[]model.Job]) {
	opts := []ui.Child{ui.Option("", PlaceholderJobLabel)}
	if !r.IsOK() {
		p.doc.Replace(IDJobSelect, opts...)
		p.setStatus(ui.El("span", "error", ui.Text("Could not load jobs: "+r.Err.Error())))
		p.log.WithError(r.Err).Warn("job catalog load failed", map[string]interface{}{"kind": string(r.Kind())})
		return
	}
	for _, j := range r.Value {
		opts = append(opts, ui.Option(j.ID, JobLabel(j)))
	}
	p.doc.Replace(IDJobSelect, opts...)
	p.setStatus(ui.Text(fmt.Sprintf("%d jobs loaded", len(r.Value))))
	p.log.Info("job catalog loaded", map[string]interface{}{"jobs": len(r.Value)})
}

// JobLabel is the option label for j.
func JobLabel(j model.Job) string {
	return j.ID + " — " + j.Title
}
