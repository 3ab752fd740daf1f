package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/smarthire/internal/client"
	"github.com/Makepad-fr/smarthire/internal/config"
	"github.com/Makepad-fr/smarthire/internal/logger"
	"github.com/Makepad-fr/smarthire/internal/model"
	"github.com/Makepad-fr/smarthire/internal/ui"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeService struct {
	jobs      func(ctx context.Context) ([]model.Job, error)
	recommend func(ctx context.Context, req model.RecommendRequest) (model.RecommendResponse, error)
	analyze   func(ctx context.Context, req model.AnalyzeRequest) (model.AnalysisResponse, error)
}

func (f *fakeService) Jobs(ctx context.Context) ([]model.Job, error) { return f.jobs(ctx) }
func (f *fakeService) Recommend(ctx context.Context, req model.RecommendRequest) (model.RecommendResponse, error) {
	return f.recommend(ctx, req)
}
func (f *fakeService) Analyze(ctx context.Context, req model.AnalyzeRequest) (model.AnalysisResponse, error) {
	return f.analyze(ctx, req)
}

func newTestPage(t *testing.T, svc Service) *Page {
	t.Helper()
	return NewPage(nil, svc, logger.NewTestLogger(t))
}

type option struct{ value, label string }

func options(p *Page) []option {
	var out []option
	p.Document().View(func(root *ui.Element) {
		for _, o := range root.Find(IDJobSelect).Elements() {
			v, _ := o.Attr("value")
			out = append(out, option{v, o.Text()})
		}
	})
	return out
}

func itemTexts(p *Page, listID string) [][]string {
	var out [][]string
	p.Document().View(func(root *ui.Element) {
		for _, li := range root.Find(listID).Elements() {
			var lines []string
			for _, div := range li.Elements() {
				lines = append(lines, div.Text())
			}
			out = append(out, lines)
		}
	})
	return out
}

func listItems(p *Page, listID string) []*ui.Element {
	var out []*ui.Element
	p.Document().View(func(root *ui.Element) { out = root.Find(listID).Elements() })
	return out
}

// ==========================
// Skills parsing
// ==========================

func TestParseSkills(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"Python, , SQL ,  Go", []string{"Python", "SQL", "Go"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"Go,Go, go", []string{"Go", "Go", "go"}},
		{"  Machine Learning  ", []string{"Machine Learning"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkills(tt.raw))
		})
	}
}

func TestParseSkills_Idempotent(t *testing.T) {
	for _, raw := range []string{"Python, , SQL ,  Go", ",a,,b ,", "", "x", " a b , c "} {
		once := ParseSkills(raw)
		twice := ParseSkills(strings.Join(once, ","))
		assert.Equal(t, once, twice, raw)
	}
}

// ==========================
// Job catalog
// ==========================

func TestPopulateJobs(t *testing.T) {
	p := newTestPage(t, &fakeService{jobs: func(context.Context) ([]model.Job, error) {
		return []model.Job{{ID: "J1", Title: "Engineer"}}, nil
	}})

	r := p.PopulateJobs(context.Background())
	require.True(t, r.IsOK())
	assert.Equal(t, []option{
		{"", "Select target job (optional)"},
		{"J1", "J1 — Engineer"},
	}, options(p))
	assert.Equal(t, "", p.Document().Value(IDJobSelect))
}

func TestPopulateJobs_ReplacesPreviousOptionsInOrder(t *testing.T) {
	calls := 0
	p := newTestPage(t, &fakeService{jobs: func(context.Context) ([]model.Job, error) {
		calls++
		if calls == 1 {
			return []model.Job{{ID: "OLD", Title: "Old"}}, nil
		}
		return []model.Job{{ID: "J2", Title: "B"}, {ID: "J1", Title: "A"}}, nil
	}})

	p.PopulateJobs(context.Background())
	p.Document().SetValue(IDJobSelect, "OLD")
	p.PopulateJobs(context.Background())

	assert.Equal(t, []option{
		{"", PlaceholderJobLabel},
		{"J2", "J2 — B"},
		{"J1", "J1 — A"},
	}, options(p))
	assert.Equal(t, "", p.Document().Value(IDJobSelect))
}

func TestPopulateJobs_Failure(t *testing.T) {
	p := newTestPage(t, &fakeService{jobs: func(context.Context) ([]model.Job, error) {
		return nil, &client.RequestError{Kind: client.KindParse, Op: "GET /jobs", Message: "bad shape"}
	}})

	r := p.PopulateJobs(context.Background())
	assert.False(t, r.IsOK())
	assert.Equal(t, client.KindParse, r.Kind())
	assert.Equal(t, []option{{"", PlaceholderJobLabel}}, options(p))

	status := p.Document().GetElementByID(IDStatusBar)
	require.NotNil(t, status)
	assert.Contains(t, status.Text(), "Could not load jobs")
	assert.Contains(t, status.Text(), "bad shape")
}

// ==========================
// Recommend
// ==========================

func TestRecommend_PayloadAndRendering(t *testing.T) {
	var got model.RecommendRequest
	p := newTestPage(t, &fakeService{recommend: func(_ context.Context, req model.RecommendRequest) (model.RecommendResponse, error) {
		got = req
		return model.RecommendResponse{Results: []model.RecommendationResult{
			{JobID: "J2", Title: "Data Analyst", Score: 0.91, Why: "Strong SQL", MatchedSkills: []string{"SQL", "Python"}},
			{JobID: "J1", Title: "Engineer", Score: 0.5, Why: "Some overlap", MatchedSkills: []string{"Go"}},
		}}, nil
	}})
	p.Document().SetValue(IDResumeText, "I build things")
	p.Document().SetValue(IDSkillsInput, "Python, , SQL ,  Go")

	r := p.Recommend(context.Background())
	require.True(t, r.IsOK())

	assert.Equal(t, model.RecommendRequest{
		Candidate: model.Candidate{ResumeText: "I build things", Skills: []string{"Python", "SQL", "Go"}},
		TopK:      5,
	}, got)

	assert.Equal(t, [][]string{
		{"Data Analyst (J2) — score 0.91", "Why: Strong SQL", "Matched skills: SQL, Python"},
		{"Engineer (J1) — score 0.5", "Why: Some overlap", "Matched skills: Go"},
	}, itemTexts(p, IDRecoList))
}

func TestRecommend_CandidateName(t *testing.T) {
	var got model.RecommendRequest
	p := newTestPage(t, &fakeService{recommend: func(_ context.Context, req model.RecommendRequest) (model.RecommendResponse, error) {
		got = req
		return model.RecommendResponse{}, nil
	}})
	p.SetCandidateName("Ada")
	p.Recommend(context.Background())
	assert.Equal(t, "Ada", got.Candidate.Name)
	assert.Empty(t, listItems(p, IDRecoList))
}

func TestRecommend_FailureRendersOneErrorItem(t *testing.T) {
	fail := false
	p := newTestPage(t, &fakeService{recommend: func(context.Context, model.RecommendRequest) (model.RecommendResponse, error) {
		if fail {
			return model.RecommendResponse{}, &client.RequestError{Kind: client.KindHTTP, Op: "POST /recommend", Status: 500, Message: "boom"}
		}
		return model.RecommendResponse{Results: []model.RecommendationResult{{JobID: "J1", Title: "T"}}}, nil
	}})
	p.Recommend(context.Background())
	require.Len(t, listItems(p, IDRecoList), 1)

	fail = true
	r := p.Recommend(context.Background())
	assert.Equal(t, client.KindHTTP, r.Kind())

	items := listItems(p, IDRecoList)
	require.Len(t, items, 1)
	assert.True(t, items[0].HasClass("error"))
	assert.Contains(t, items[0].Text(), "Service returned an error")
	assert.Contains(t, items[0].Text(), "status 500")
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "0.87", ScoreText(0.87))
	assert.Equal(t, "1", ScoreText(1))
	assert.Equal(t, "0.123456789", ScoreText(0.123456789))
}

// ==========================
// Analyze
// ==========================

func TestAnalyze_EmptySelectionSendsNull(t *testing.T) {
	var got model.AnalyzeRequest
	p := newTestPage(t, &fakeService{analyze: func(_ context.Context, req model.AnalyzeRequest) (model.AnalysisResponse, error) {
		got = req
		return model.AnalysisResponse{}, nil
	}})
	p.Document().SetValue(IDResumeText, "cv")

	p.Analyze(context.Background())
	assert.Nil(t, got.TargetJobID)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"resume_text":"cv","target_job_id":null}`, string(b))
}

func TestAnalyze_SelectedJob(t *testing.T) {
	var got model.AnalyzeRequest
	p := newTestPage(t, &fakeService{
		jobs: func(context.Context) ([]model.Job, error) { return []model.Job{{ID: "J1", Title: "Engineer"}}, nil },
		analyze: func(_ context.Context, req model.AnalyzeRequest) (model.AnalysisResponse, error) {
			got = req
			return model.AnalysisResponse{}, nil
		},
	})
	p.PopulateJobs(context.Background())
	p.Document().SetValue(IDJobSelect, "J1")

	p.Analyze(context.Background())
	require.NotNil(t, got.TargetJobID)
	assert.Equal(t, "J1", *got.TargetJobID)
}

func TestAnalyze_Rendering(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
		want    [][]string
	}{
		{
			name:    "no missing keywords",
			missing: []string{},
			want:    [][]string{{"STRUCTURE", "Add missing sections: projects"}},
		},
		{
			name:    "absent missing keywords",
			missing: nil,
			want:    [][]string{{"STRUCTURE", "Add missing sections: projects"}},
		},
		{
			name:    "two missing keywords",
			missing: []string{"SQL", "Docker"},
			want: [][]string{
				{"STRUCTURE", "Add missing sections: projects"},
				{"Missing Keywords", "SQL, Docker"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPage(t, &fakeService{analyze: func(context.Context, model.AnalyzeRequest) (model.AnalysisResponse, error) {
				return model.AnalysisResponse{
					Suggestions:     []model.AnalysisSuggestion{{Type: "structure", Message: "Add missing sections: projects"}},
					MissingKeywords: tt.missing,
				}, nil
			}})
			p.Analyze(context.Background())
			assert.Equal(t, tt.want, itemTexts(p, IDAnalyzeList))

			items := listItems(p, IDAnalyzeList)
			last := items[len(items)-1]
			assert.Equal(t, len(tt.missing) > 0, last.HasClass("bg-yellow-50"))
		})
	}
}

// ==========================
// Init and triggers
// ==========================

func TestInit_WiresButtonsAndLoadsCatalogOnce(t *testing.T) {
	var jobsCalls, recoCalls, analyzeCalls int
	p := newTestPage(t, &fakeService{
		jobs: func(context.Context) ([]model.Job, error) {
			jobsCalls++
			return []model.Job{{ID: "J1", Title: "Engineer"}}, nil
		},
		recommend: func(context.Context, model.RecommendRequest) (model.RecommendResponse, error) {
			recoCalls++
			return model.RecommendResponse{}, nil
		},
		analyze: func(context.Context, model.AnalyzeRequest) (model.AnalysisResponse, error) {
			analyzeCalls++
			return model.AnalysisResponse{}, nil
		},
	})

	assert.False(t, p.Click(IDBtnRecommend), "nothing bound before Init")

	p.Init(context.Background(), Triggers{})
	assert.Equal(t, 1, jobsCalls)
	assert.Len(t, options(p), 2)

	assert.True(t, p.Click(IDBtnRecommend))
	assert.True(t, p.Click(IDBtnAnalyze))
	assert.True(t, p.Click(IDBtnAnalyze))
	assert.Equal(t, 1, recoCalls)
	assert.Equal(t, 2, analyzeCalls)
	assert.Equal(t, 1, jobsCalls)
}

func TestInit_CustomTriggers(t *testing.T) {
	var clicked []string
	p := newTestPage(t, &fakeService{jobs: func(context.Context) ([]model.Job, error) { return nil, nil }})
	p.Init(context.Background(), Triggers{
		Recommend: func(e *ui.Element) { clicked = append(clicked, e.ID()) },
		Analyze:   func(e *ui.Element) { clicked = append(clicked, e.ID()) },
	})
	p.Click(IDBtnAnalyze)
	p.Click(IDBtnRecommend)
	assert.Equal(t, []string{IDBtnAnalyze, IDBtnRecommend}, clicked)
}

// ==========================
// Double submission
// ==========================

func TestRecommend_DoubleSubmitLastResponseWins(t *testing.T) {
	first := model.RecommendResponse{Results: []model.RecommendationResult{{JobID: "A1", Title: "First"}}}
	second := model.RecommendResponse{Results: []model.RecommendationResult{
		{JobID: "B1", Title: "Second"}, {JobID: "B2", Title: "Second"},
	}}

	release := make(chan struct{})
	var n int
	var mu sync.Mutex
	p := newTestPage(t, &fakeService{recommend: func(context.Context, model.RecommendRequest) (model.RecommendResponse, error) {
		mu.Lock()
		n++
		mine := n
		mu.Unlock()
		<-release
		if mine == 1 {
			return first, nil
		}
		return second, nil
	}})

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Recommend(context.Background())
		}()
	}
	close(release)
	wg.Wait()

	items := itemTexts(p, IDRecoList)
	switch len(items) {
	case 1:
		assert.Equal(t, "First (A1) — score 0", items[0][0])
	case 2:
		assert.Equal(t, "Second (B1) — score 0", items[0][0])
		assert.Equal(t, "Second (B2) — score 0", items[1][0])
	default:
		t.Fatalf("rendered list matches neither response: %v", items)
	}
}

func TestRecommend_SplitStepsApplyInArrivalOrder(t *testing.T) {
	p := newTestPage(t, &fakeService{})
	older := client.Ok(model.RecommendResponse{Results: []model.RecommendationResult{{JobID: "OLD", Title: "x"}}})
	newer := client.Ok(model.RecommendResponse{Results: []model.RecommendationResult{{JobID: "NEW", Title: "y"}}})

	p.ApplyRecommend(newer)
	p.ApplyRecommend(older)

	items := itemTexts(p, IDRecoList)
	require.Len(t, items, 1)
	assert.Contains(t, items[0][0], "OLD")
}

// ==========================
// Against a live HTTP fake
// ==========================

func TestPage_WithHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/jobs":
			_, _ = io.WriteString(w, `[{"id":"J1","title":"Engineer"},{"id":"J2","title":"Analyst"}]`)
		case "/recommend":
			_, _ = io.WriteString(w, `{"results":[{"job_id":"J1","title":"Engineer","score":0.75,"why":"Go match","matched_skills":["Go"]}]}`)
		case "/analyze":
			_, _ = io.WriteString(w, `{"suggestions":[{"type":"keywords","message":"Add Docker"}],"missing_keywords":["Docker"]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := client.New(config.APIConfig{BaseURL: srv.URL}, logger.NewTestLogger(t))
	p := NewPage(nil, c, logger.NewTestLogger(t))
	p.Init(context.Background(), Triggers{})

	p.Document().SetValue(IDSkillsInput, "Go")
	p.Document().SetValue(IDJobSelect, "J2")
	p.Click(IDBtnRecommend)
	p.Click(IDBtnAnalyze)

	assert.Len(t, options(p), 3)
	assert.Equal(t, [][]string{{"Engineer (J1) — score 0.75", "Why: Go match", "Matched skills: Go"}}, itemTexts(p, IDRecoList))
	assert.Equal(t, [][]string{{"KEYWORDS", "Add Docker"}, {"Missing Keywords", "Docker"}}, itemTexts(p, IDAnalyzeList))
}

func TestPage_NetworkFailureIsVisible(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewPage(nil, client.New(config.APIConfig{BaseURL: url}, nil), nil)
	r := p.Analyze(context.Background())
	assert.Equal(t, client.KindNetwork, r.Kind())
	assert.True(t, errors.As(r.Err, new(*client.RequestError)))

	items := listItems(p, IDAnalyzeList)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Text(), "Service unreachable")
}
