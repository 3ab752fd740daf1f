package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Makepad-fr/smarthire/internal/app"
	"github.com/Makepad-fr/smarthire/internal/client"
	"github.com/Makepad-fr/smarthire/internal/config"
	"github.com/Makepad-fr/smarthire/internal/logger"
	"github.com/Makepad-fr/smarthire/internal/model"
	"github.com/Makepad-fr/smarthire/internal/store/jsonstore"
	"github.com/Makepad-fr/smarthire/internal/tui"
	"github.com/Makepad-fr/smarthire/internal/ui"
)

// Options carry the root flags and the streams commands talk to.
type Options struct {
	ConfigFile string
	Theme      string // overrides ui.theme when set
	NoColor    bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// errUsage marks errors that should exit with code 2.
var errUsage = errors.New("usage")

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string, opt Options) int {
	opt.defaults()

	cmd, a := "ui", args
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	case "ui", "jobs", "recommend", "analyze", "health":
	default:
		ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return 2
	}

	env, err := setup(opt)
	if err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 2
	}
	defer func() { _ = env.log.Sync() }()

	switch cmd {
	case "ui":
		err = env.runUI(ctx)
	case "jobs":
		err = env.runJobs(ctx)
	case "recommend":
		err = env.runRecommend(ctx, a)
	case "analyze":
		err = env.runAnalyze(ctx, a)
	case "health":
		err = env.runHealth(ctx)
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	default:
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `smarthire - job recommendations and résumé analysis from the terminal

Usage:
  smarthire [root flags] [subcommand] [args]

Subcommands:
  ui                 Interactive client (default)
  jobs               List the job catalog
  recommend          Recommend jobs for a résumé and skill list
  analyze            Analyze a résumé, optionally against one job
  health             Check that the service is up

Root flags:
  -config PATH       Config file (default: config.yaml in ./configs, . or ~/.smarthire)
  -theme NAME        %s
  -no-color          Disable colors

Examples:
  smarthire recommend -resume cv.txt -skills "Go, SQL"
  smarthire analyze -resume cv.txt -job J42 -save analysis.json
  SMARTHIRE_API_BASE_URL=http://scoring:8000 smarthire jobs
`, strings.Join(ui.Themes, "|"))
}

// env is what every subcommand needs once configuration is resolved.
type env struct {
	opt    Options
	cfg    *config.Config
	log    logger.Logger
	client *client.Client
}

func setup(opt Options) (*env, error) {
	cfg, err := config.Load(opt.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opt.Theme != "" {
		if !ui.KnownTheme(opt.Theme) {
			return nil, fmt.Errorf("unknown theme %q (want one of %s)", opt.Theme, strings.Join(ui.Themes, ", "))
		}
		cfg.UI.Theme = opt.Theme
	}
	cfg.UI.NoColor = cfg.UI.NoColor || opt.NoColor

	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorForcing(false, cfg.UI.NoColor)
	if cfg.UI.NoColor {
		pterm.DisableColor()
	}

	log, err := logger.NewStructured(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return &env{
		opt:    opt,
		cfg:    cfg,
		log:    log,
		client: client.New(cfg.API, log),
	}, nil
}

func (e *env) page() *app.Page {
	return app.NewPage(nil, e.client, e.log)
}

// -------------- subcommand impls ----------------

func (e *env) runUI(ctx context.Context) error {
	e.log.Info("starting interactive client", map[string]interface{}{"base_url": e.client.BaseURL()})
	return tui.Run(ctx, e.page())
}

func (e *env) runHealth(ctx context.Context) error {
	h, err := e.client.Health(ctx)
	if err != nil {
		return err
	}
	ui.OK(e.opt.Stdout, fmt.Sprintf("%s is %s", e.client.BaseURL(), h.Status))
	return nil
}

func (e *env) runJobs(ctx context.Context) error {
	p := e.page()
	r := p.PopulateJobs(ctx)
	if !r.IsOK() {
		return r.Err
	}
	if len(r.Value) == 0 {
		fmt.Fprintln(e.opt.Stdout, ui.Muted("no jobs"))
		return nil
	}
	data := pterm.TableData{{"ID", "Title"}}
	for _, j := range r.Value {
		data = append(data, []string{j.ID, j.Title})
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(e.opt.Stdout, s)
	return nil
}

func (e *env) runRecommend(ctx context.Context, args []string) error {
	fs := e.flagSet("recommend")
	resume := fs.String("resume", "", "résumé text file (- for stdin)")
	skills := fs.String("skills", "", "comma separated skills")
	name := fs.String("name", "", "candidate name")
	save := fs.String("save", "", "write request and response to this JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text, err := e.readResume(*resume)
	if err != nil {
		return err
	}

	p := e.page()
	p.SetCandidateName(*name)
	doc := p.Document()
	doc.SetValue(app.IDResumeText, text)
	doc.SetValue(app.IDSkillsInput, *skills)

	var (
		req model.RecommendRequest
		res client.Result[model.RecommendResponse]
	)
	p.Bind(app.Triggers{Recommend: func(*ui.Element) {
		call := p.BeginRecommend()
		req = call.Request
		res = call.Run(ctx)
		p.ApplyRecommend(res)
	}})
	p.Click(app.IDBtnRecommend)

	e.printList(doc, "Recommendations", app.IDRecoList)
	if err := e.save(*save, "recommend", req, res.Value, res.Err); err != nil {
		return err
	}
	return res.Err
}

func (e *env) runAnalyze(ctx context.Context, args []string) error {
	fs := e.flagSet("analyze")
	resume := fs.String("resume", "", "résumé text file (- for stdin)")
	job := fs.String("job", "", "target job id")
	save := fs.String("save", "", "write request and response to this JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text, err := e.readResume(*resume)
	if err != nil {
		return err
	}

	var (
		req model.AnalyzeRequest
		res client.Result[model.AnalysisResponse]
	)
	p := e.page()
	trig := app.Triggers{Analyze: func(*ui.Element) {
		call := p.BeginAnalyze()
		req = call.Request
		res = call.Run(ctx)
		p.ApplyAnalyze(res)
	}}
	p.Bind(trig)
	doc := p.Document()
	if *job != "" {
		// the selector only accepts ids the catalog offers
		if r := p.PopulateJobs(ctx); !r.IsOK() {
			return r.Err
		}
		doc.SetValue(app.IDJobSelect, *job)
		if doc.Value(app.IDJobSelect) != *job {
			ui.Fail(e.opt.Stderr, fmt.Sprintf("analyze: job %q is not in the catalog", *job))
			return errUsage
		}
	}
	doc.SetValue(app.IDResumeText, text)
	p.Click(app.IDBtnAnalyze)

	e.printList(doc, "Résumé analysis", app.IDAnalyzeList)
	if err := e.save(*save, "analyze", req, res.Value, res.Err); err != nil {
		return err
	}
	return res.Err
}

// -------------- helpers --------------

func (e *env) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.opt.Stderr)
	return fs
}

func (e *env) readResume(path string) (string, error) {
	switch path {
	case "":
		ui.Fail(e.opt.Stderr, "missing -resume FILE")
		return "", errUsage
	case "-":
		b, err := io.ReadAll(e.opt.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read résumé: %w", err)
	}
	return string(b), nil
}

func (e *env) printList(doc *ui.Document, title, id string) {
	th := ui.Current()
	body := doc.Render(id, th)
	if body == "" {
		body = ui.Muted("(none)")
	}
	ui.Panel(e.opt.Stdout, []string{th.Title.Render(title), "", body})
}

func (e *env) save(path, action string, req, resp any, reqErr error) error {
	if path == "" {
		return nil
	}
	x, err := jsonstore.NewExport(action, e.client.BaseURL(), req, resp, reqErr)
	if err != nil {
		return err
	}
	p, err := jsonstore.Save(path, x)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	ui.OK(e.opt.Stdout, "saved "+p)
	return nil
}
