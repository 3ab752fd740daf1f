package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/Makepad-fr/smarthire/internal/client"
	"github.com/Makepad-fr/smarthire/internal/model"
	"github.com/Makepad-fr/smarthire/internal/ui"
)

// RecommendCall is a recommend request read from the form, not yet sent.
type RecommendCall struct {
	Request model.RecommendRequest
	svc     Service
}

func (c RecommendCall) Run(ctx context.Context) client.Result[model.RecommendResponse] {
	return client.From(c.svc.Recommend(ctx, c.Request))
}

// AnalyzeCall is an analyze request read from the form, not yet sent.
type AnalyzeCall struct {
	Request model.AnalyzeRequest
	svc     Service
}

func (c AnalyzeCall) Run(ctx context.Context) client.Result[model.AnalysisResponse] {
	return client.From(c.svc.Analyze(ctx, c.Request))
}

// BeginRecommend reads the résumé and skills fields.
func (p *Page) BeginRecommend() RecommendCall {
	return RecommendCall{
		Request: model.RecommendRequest{
			Candidate: model.Candidate{
				Name:       p.name,
				ResumeText: p.doc.Value(IDResumeText),
				Skills:     ParseSkills(p.doc.Value(IDSkillsInput)),
			},
			TopK: model.DefaultTopK,
		},
		svc: p.svc,
	}
}

// BeginAnalyze reads the résumé field and the selected job.
func (p *Page) BeginAnalyze() AnalyzeCall {
	return AnalyzeCall{
		Request: model.AnalyzeRequest{
			ResumeText:  p.doc.Value(IDResumeText),
			TargetJobID: targetJobID(p.doc.Value(IDJobSelect)),
		},
		svc: p.svc,
	}
}

// Recommend reads the form, posts /recommend and renders the answer.
func (p *Page) Recommend(ctx context.Context) client.Result[model.RecommendResponse] {
	r := p.BeginRecommend().Run(ctx)
	p.ApplyRecommend(r)
	return r
}

// Analyze reads the form, posts /analyze and renders the answer.
func (p *Page) Analyze(ctx context.Context) client.Result[model.AnalysisResponse] {
	r := p.BeginAnalyze().Run(ctx)
	p.ApplyAnalyze(r)
	return r
}

// ApplyRecommend replaces recoList with one item per result, in the order
// received, or with a single error item.
func (p *Page) ApplyRecommend(r client.Result[model.RecommendResponse]) {
	if !r.IsOK() {
		p.renderError(IDRecoList, "recommend", r.Err, r.Kind())
		return
	}
	items := make([]ui.Child, 0, len(r.Value.Results))
	for _, res := range r.Value.Results {
		items = append(items, RecommendationItem(res))
	}
	p.doc.Replace(IDRecoList, items...)
	p.log.Info("recommendations rendered", map[string]interface{}{"count": len(items)})
}

// ApplyAnalyze replaces analyzeList with one item per suggestion plus, when
// any are reported, one missing-keywords item.
func (p *Page) ApplyAnalyze(r client.Result[model.AnalysisResponse]) {
	if !r.IsOK() {
		p.renderError(IDAnalyzeList, "analyze", r.Err, r.Kind())
		return
	}
	items := make([]ui.Child, 0, len(r.Value.Suggestions)+1)
	for _, s := range r.Value.Suggestions {
		items = append(items, SuggestionItem(s))
	}
	if len(r.Value.MissingKeywords) > 0 {
		items = append(items, MissingKeywordsItem(r.Value.MissingKeywords))
	}
	p.doc.Replace(IDAnalyzeList, items...)
	p.log.Info("analysis rendered", map[string]interface{}{
		"suggestions":      len(r.Value.Suggestions),
		"missing_keywords": len(r.Value.MissingKeywords),
	})
}

func (p *Page) renderError(listID, action string, err error, kind client.ErrorKind) {
	p.doc.Replace(listID, ErrorItem(kind, err))
	p.log.WithError(err).Warn(action+" failed", map[string]interface{}{"kind": string(kind)})
}

// -------------- item builders --------------

func RecommendationItem(r model.RecommendationResult) *ui.Element {
	return ui.El("li", "border rounded-xl p-3",
		ui.El("div", "font-medium", ui.Text(r.Title+" ("+r.JobID+") — score "+ScoreText(r.Score))),
		ui.El("div", "text-sm text-gray-700", ui.Text("Why: "+r.Why)),
		ui.El("div", "text-xs text-gray-500", ui.Text("Matched skills: "+strings.Join(r.MatchedSkills, ", "))),
	)
}

func SuggestionItem(s model.AnalysisSuggestion) *ui.Element {
	return ui.El("li", "border rounded-xl p-3 text-sm",
		ui.El("div", "font-medium", ui.Text(strings.ToUpper(s.Type))),
		ui.El("div", "", ui.Text(s.Message)),
	)
}

func MissingKeywordsItem(keywords []string) *ui.Element {
	return ui.El("li", "border rounded-xl p-3 text-sm bg-yellow-50",
		ui.El("div", "font-medium", ui.Text("Missing Keywords")),
		ui.El("div", "", ui.Text(strings.Join(keywords, ", "))),
	)
}

// ErrorItem is the single item shown in place of results when a request fails.
func ErrorItem(kind client.ErrorKind, err error) *ui.Element {
	title := "Request failed"
	switch kind {
	case client.KindNetwork:
		title = "Service unreachable"
	case client.KindHTTP:
		title = "Service returned an error"
	case client.KindParse:
		title = "Unexpected response from service"
	}
	return ui.El("li", "border rounded-xl p-3 error",
		ui.El("div", "font-medium", ui.Text(title)),
		ui.El("div", "text-sm", ui.Text(err.Error())),
	)
}

// ScoreText prints the score as received: shortest decimal form, no rounding.
func ScoreText(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
