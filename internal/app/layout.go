package app

import (
	"github.com/Makepad-fr/smarthire/internal/ui"
)

// Element ids the controller reads and writes.
const (
	IDJobSelect    = "jobSelect"
	IDResumeText   = "resumeText"
	IDSkillsInput  = "skillsInput"
	IDRecoList     = "recoList"
	IDAnalyzeList  = "analyzeList"
	IDBtnRecommend = "btnRecommend"
	IDBtnAnalyze   = "btnAnalyze"
	IDStatusBar    = "statusBar"
)

const PlaceholderJobLabel = "Select target job (optional)"

// NewLayout builds the page every host mounts: form controls, the two
// triggers, a status line and the two result lists.
func NewLayout() *ui.Element {
	return ui.El("body", "",
		withID("select", IDJobSelect, nil, ui.Option("", PlaceholderJobLabel)),
		withID("textarea", IDResumeText, map[string]string{"placeholder": "Paste your résumé here"}),
		withID("input", IDSkillsInput, map[string]string{"placeholder": "Skills, comma separated (e.g. Python, SQL, Go)"}),
		withID("button", IDBtnRecommend, nil, ui.Text("Recommend Jobs")),
		withID("button", IDBtnAnalyze, nil, ui.Text("Analyze Résumé")),
		ui.Build(ui.Spec{
			Tag:        "div",
			ClassNames: []string{"text-xs", "text-gray-500"},
			Attributes: map[string]string{"id": IDStatusBar},
		}),
		withID("ul", IDRecoList, nil),
		withID("ul", IDAnalyzeList, nil),
	)
}

func withID(tag, id string, attrs map[string]string, children ...ui.Child) *ui.Element {
	a := map[string]string{"id": id}
	for k, v := range attrs {
		a[k] = v
	}
	return ui.Build(ui.Spec{Tag: tag, Attributes: a, Children: children})
}
