package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/686f6c6/goldbach/internal/config"
	"github.com/686f6c6/goldbach/internal/errors"
	"github.com/686f6c6/goldbach/internal/goldbach"
	"github.com/686f6c6/goldbach/internal/logging"
	"github.com/686f6c6/goldbach/internal/tui/keymap"
	"github.com/686f6c6/goldbach/internal/tui/styles"
	"github.com/686f6c6/goldbach/internal/viz"
)

// screen identifies which view the model is showing.
type screen int

const (
	screenWelcome screen = iota
	screenSingle
	screenRange
	screenResults
)

// resultsTab identifies a tab on the range results screen.
type resultsTab int

const (
	tabScatter resultsTab = iota
	tabHistogram
	tabTable
)

var resultsTabTitles = []string{"Scatter", "Histogram", "Table"}

// menu entries on the welcome screen, in display order.
var menuEntries = []string{
	"Analyze a single even number",
	"Analyze a range of even numbers",
	"Quit",
}

// Model holds the TUI application state.
type Model struct {
	cfg      *config.Config
	st       *styles.Styles
	keys     keymap.KeyMap
	log      *logging.Logger
	analyzer *goldbach.Analyzer

	screen   screen
	width    int
	height   int
	quitting bool

	// Welcome screen
	menuIndex int

	// Single-number screen
	numberInput textinput.Model
	singleN     int
	singlePairs []goldbach.Pair
	singleDone  bool
	singleErr   string

	// Range screen
	minInput    textinput.Model
	maxInput    textinput.Model
	rangeFocus  int // 0 = min input, 1 = max input
	rangeErr    string
	rangeNotice string
	confirming  bool
	pendingMin  int
	pendingMax  int
	computing   bool
	spin        spinner.Model
	cancel      context.CancelFunc

	// Results screen
	result      *goldbach.RangeResult
	activeTab   resultsTab
	resultTable table.Model
	resultView  viewport.Model

	help     help.Model
	showHelp bool
}

// NewModel creates the TUI model from loaded configuration.
func NewModel(cfg *config.Config, log *logging.Logger) Model {
	if log == nil {
		log = logging.NopLogger()
	}
	st := styles.New(cfg.TUI.Theme)

	numberInput := textinput.New()
	numberInput.Placeholder = "10"
	numberInput.CharLimit = 9
	numberInput.Width = 12
	numberInput.Prompt = "> "

	minInput := textinput.New()
	minInput.Placeholder = "4"
	minInput.CharLimit = 9
	minInput.Width = 10
	minInput.Prompt = "from: "

	maxInput := textinput.New()
	maxInput.Placeholder = "20"
	maxInput.CharLimit = 9
	maxInput.Width = 10
	maxInput.Prompt = "to: "

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = st.Primary

	return Model{
		cfg:         cfg,
		st:          st,
		keys:        keymap.Default(),
		log:         log.WithComponent("tui"),
		analyzer:    goldbach.NewAnalyzer(cfg.Analysis.Workers, log),
		numberInput: numberInput,
		minInput:    minInput,
		maxInput:    maxInput,
		spin:        spin,
		help:        help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// scatterPolicy returns the configured scatter policy.
func (m Model) scatterPolicy() viz.ScatterPolicy {
	return viz.ScatterPolicy(m.cfg.Analysis.ScatterPolicy)
}

// runAnalysis starts a range analysis as a background command. The cancel
// function is stored on the model so esc can interrupt long scans.
func (m *Model) runAnalysis(min, max int) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.computing = true

	analyzer := m.analyzer
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		result, err := analyzer.AnalyzeRange(ctx, min, max)
		if err != nil {
			return analysisErrMsg{err: err}
		}
		return analysisDoneMsg{result: result}
	})
}

// parseEntry reads a textinput as an integer, using the placeholder as the
// default for an empty field (matching the pre-filled defaults).
func parseEntry(input textinput.Model) (int, bool) {
	raw := strings.TrimSpace(input.Value())
	if raw == "" {
		raw = input.Placeholder
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

// analyzeSingle validates and decomposes the entered number in place.
// Single-number analysis is fast enough to run inside the update loop.
func (m *Model) analyzeSingle() {
	m.singleDone = false
	m.singleErr = ""
	m.singlePairs = nil

	n, ok := parseEntry(m.numberInput)
	if !ok {
		m.singleErr = "please enter a valid number"
		return
	}

	pairs, err := goldbach.DecomposeNumber(n)
	if err != nil {
		if errors.IsUserFacing(err) {
			m.singleErr = err.Error()
		} else {
			m.singleErr = "analysis failed, see debug log"
			m.log.Error("single analysis failed", "n", n, "error", err)
		}
		return
	}

	m.singleN = n
	m.singlePairs = pairs
	m.singleDone = true
	m.log.Debug("single analysis complete", "n", n, "pairs", len(pairs))
}

// prepareRange validates range inputs and either starts the analysis or
// asks for confirmation when the range is wide. Minimums below 4 round up
// to 4 with a notice instead of failing, mirroring the welcome-path UX;
// the engine itself stays strict.
func (m *Model) prepareRange() tea.Cmd {
	m.rangeErr = ""
	m.rangeNotice = ""

	min, okMin := parseEntry(m.minInput)
	max, okMax := parseEntry(m.maxInput)
	if !okMin || !okMax {
		m.rangeErr = "please enter valid numbers"
		return nil
	}

	if min < 4 {
		min = 4
		m.rangeNotice = "range start raised to 4 (smallest even number above 2)"
	}
	if min%2 != 0 {
		min++
		m.rangeNotice = "range start rounded up to the next even number"
	}
	if max%2 != 0 {
		max--
		m.rangeNotice = "range end rounded down to the previous even number"
	}
	if max < min {
		m.rangeErr = "range end must not be below range start"
		return nil
	}

	if threshold := m.cfg.Analysis.WarnThreshold; threshold > 0 && max-min > threshold {
		m.confirming = true
		m.pendingMin = min
		m.pendingMax = max
		return nil
	}

	return m.runAnalysis(min, max)
}

// buildResults populates the results widgets from a completed analysis.
func (m *Model) buildResults(result *goldbach.RangeResult) {
	m.result = result
	m.activeTab = tabScatter

	rows := make([]table.Row, 0, result.Len())
	for _, entry := range result.Entries {
		rows = append(rows, table.Row{
			strconv.Itoa(entry.N),
			strconv.Itoa(entry.Count()),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Even number", Width: 14},
			{Title: "Pairs", Width: 8},
		}),
		table.WithRows(rows),
		table.WithHeight(m.tableHeight()),
		table.WithFocused(true),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).Foreground(m.st.Palette.Primary)
	ts.Selected = ts.Selected.Foreground(m.st.Palette.Text).Background(m.st.Palette.Surface)
	t.SetStyles(ts)
	m.resultTable = t

	m.resultView = viewport.New(m.contentWidth(), m.contentHeight())
	m.resultView.SetContent(m.renderActiveTab())
}

func (m Model) contentWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width - 4
}

func (m Model) contentHeight() int {
	if m.height == 0 {
		return 24
	}
	// Header, tab row, help bar.
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	return h
}

func (m Model) tableHeight() int {
	h := m.contentHeight() - 2
	if h < 3 {
		h = 3
	}
	return h
}
