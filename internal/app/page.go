package app

import (
	"context"

	"github.com/Makepad-fr/smarthire/internal/logger"
	"github.com/Makepad-fr/smarthire/internal/model"
	"github.com/Makepad-fr/smarthire/internal/ui"
)

// Service is the remote scoring service as the page sees it.
// *client.Client satisfies it.
type Service interface {
	Jobs(ctx context.Context) ([]model.Job, error)
	Recommend(ctx context.Context, req model.RecommendRequest) (model.RecommendResponse, error)
	Analyze(ctx context.Context, req model.AnalyzeRequest) (model.AnalysisResponse, error)
}

// Page binds the layout to the service. It holds no state between actions
// besides what is in the Document.
type Page struct {
	doc  *ui.Document
	svc  Service
	log  logger.Logger
	name string
}

// Triggers are the click handlers for the two buttons. Nil fields fall back
// to running the action synchronously with the Init context.
type Triggers struct {
	Recommend ui.Handler
	Analyze   ui.Handler
}

// NewPage mounts NewLayout when doc is nil.
func NewPage(doc *ui.Document, svc Service, log logger.Logger) *Page {
	if doc == nil {
		doc = ui.NewDocument(NewLayout())
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Page{doc: doc, svc: svc, log: log}
}

func (p *Page) Document() *ui.Document { return p.doc }

// SetCandidateName sets the optional name sent with recommendations.
func (p *Page) SetCandidateName(name string) { p.name = name }

// Init is the one-time setup a host runs after mounting: it attaches the
// button handlers and loads the job catalog.
func (p *Page) Init(ctx context.Context, t Triggers) {
	if t.Recommend == nil {
		t.Recommend = func(*ui.Element) { p.Recommend(ctx) }
	}
	if t.Analyze == nil {
		t.Analyze = func(*ui.Element) { p.Analyze(ctx) }
	}
	p.Bind(t)
	p.PopulateJobs(ctx)
}

// Bind attaches t to the buttons without loading anything.
func (p *Page) Bind(t Triggers) {
	p.doc.View(func(root *ui.Element) {
		if btn := root.Find(IDBtnRecommend); btn != nil {
			btn.On(ui.EventClick, t.Recommend)
		}
		if btn := root.Find(IDBtnAnalyze); btn != nil {
			btn.On(ui.EventClick, t.Analyze)
		}
	})
}

// Click dispatches a click on the element with the id.
func (p *Page) Click(id string) bool {
	return p.doc.Dispatch(id, ui.EventClick)
}

func (p *Page) setStatus(children ...ui.Child) {
	p.doc.Replace(IDStatusBar, children...)
}
