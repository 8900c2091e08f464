package dash

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulseboard/pulse/internal/api"
	"github.com/pulseboard/pulse/internal/errors"
	"github.com/pulseboard/pulse/internal/logger"
	"github.com/pulseboard/pulse/internal/metrics"
)

// panelState represents the fetch lifecycle of a single dashboard panel.
type panelState int

const (
	panelUnfetched panelState = iota
	panelLoading
	panelLoaded
	panelErrored
)

// String returns a human-readable state label.
func (s panelState) String() string {
	switch s {
	case panelUnfetched:
		return "unfetched"
	case panelLoading:
		return "loading"
	case panelLoaded:
		return "loaded"
	case panelErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// panel tracks the lifecycle and last error of one dashboard region.
// Each panel fails independently so one unhealthy endpoint cannot
// blank the rest of the dashboard.
type panel struct {
	state panelState
	err   string
}

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	// LayoutMinimal is for terminals < 80 columns: stacked cards, no chart
	LayoutMinimal LayoutMode = iota
	// LayoutCompact is for terminals 80-120 columns: 2x2 card grid
	LayoutCompact
	// LayoutStandard is for terminals 120-160 columns: full 4-card row
	LayoutStandard
	// LayoutWide is for terminals 160+ columns: chart and insights side by side
	LayoutWide
)

// Width breakpoints for layout modes
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
	BreakpointWide     = 160
)

// HeightMinimal is the minimum terminal height for showing the footer.
const HeightMinimal = 24

// spinnerInterval is the animation frame rate for loading panels.
const spinnerInterval = 150 * time.Millisecond

// Options configures a dashboard model.
type Options struct {
	Workspace string
	User      string
	Version   string
	Interval  time.Duration // Refresh cadence (0 uses 30s)
	Timeout   time.Duration // Per-fetch timeout (0 uses 10s)
	Log       logger.Logger
}

// Model is the Bubble Tea model for the business dashboard.
type Model struct {
	client api.Client
	log    logger.Logger

	workspace string
	user      string
	version   string

	interval time.Duration
	timeout  time.Duration

	// gen is the current fetch generation. Every refresh bumps it and
	// stamps its fetch commands; results carrying an older generation
	// are dropped so a slow response can never overwrite a newer one.
	gen int

	kpiPanel     panel
	record       *metrics.Record
	healthPanel  panel
	sources      []metrics.SourceStatus
	insightPanel panel
	advice       []metrics.Insight
	chartPanel   panel
	series       *metrics.Series

	history    *History
	lastUpdate time.Time

	width  int
	height int

	spinnerFrame int
	showHelp     bool
	showUserMenu bool
	quitting     bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// spinnerTickMsg signals a spinner animation frame update.
type spinnerTickMsg time.Time

// metricsMsg carries a KPI snapshot fetch result.
type metricsMsg struct {
	gen    int
	record *metrics.Record
	err    error
}

// healthMsg carries a source health fetch result.
type healthMsg struct {
	gen     int
	sources []metrics.SourceStatus
	err     error
}

// insightsMsg carries an insight feed fetch result.
type insightsMsg struct {
	gen    int
	advice []metrics.Insight
	err    error
}

// seriesMsg carries a revenue series fetch result.
type seriesMsg struct {
	gen    int
	series *metrics.Series
	err    error
}

// NewModel creates a new dashboard model backed by the given API client.
func NewModel(client api.Client, opts Options) Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	log := opts.Log
	if log == nil {
		log = logger.Default()
	}

	return Model{
		client:    client,
		log:       log,
		workspace: opts.Workspace,
		user:      opts.User,
		version:   opts.Version,
		interval:  interval,
		timeout:   timeout,
		history:   NewHistory(DefaultHistorySize),
	}
}

// Init starts the spinner and triggers the initial fetch cycle. The
// first tick is immediate so the dashboard starts loading right away;
// subsequent ticks follow the refresh interval.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinnerTickCmd(),
		func() tea.Msg { return tickMsg(time.Now()) },
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.refresh())

	case spinnerTickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10000
		return m, m.spinnerTickCmd()

	case metricsMsg:
		if msg.gen != m.gen {
			m.log.Debug("dropping stale metrics result (gen %d, current %d)", msg.gen, m.gen)
			return m, nil
		}
		m.lastUpdate = time.Now()
		if msg.err != nil {
			m.kpiPanel = panel{state: panelErrored, err: errors.Summary(msg.err)}
			m.record = nil
			return m, nil
		}
		m.kpiPanel = panel{state: panelLoaded}
		m.record = msg.record
		m.history.Push(msg.record)

	case healthMsg:
		if msg.gen != m.gen {
			m.log.Debug("dropping stale health result (gen %d, current %d)", msg.gen, m.gen)
			return m, nil
		}
		m.lastUpdate = time.Now()
		if msg.err != nil {
			m.healthPanel = panel{state: panelErrored, err: errors.Summary(msg.err)}
			return m, nil
		}
		m.healthPanel = panel{state: panelLoaded}
		m.sources = msg.sources

	case insightsMsg:
		if msg.gen != m.gen {
			m.log.Debug("dropping stale insights result (gen %d, current %d)", msg.gen, m.gen)
			return m, nil
		}
		m.lastUpdate = time.Now()
		if msg.err != nil {
			m.insightPanel = panel{state: panelErrored, err: errors.Summary(msg.err)}
			return m, nil
		}
		m.insightPanel = panel{state: panelLoaded}
		m.advice = msg.advice

	case seriesMsg:
		if msg.gen != m.gen {
			m.log.Debug("dropping stale series result (gen %d, current %d)", msg.gen, m.gen)
			return m, nil
		}
		m.lastUpdate = time.Now()
		if msg.err != nil {
			m.chartPanel = panel{state: panelErrored, err: errors.Summary(msg.err)}
			m.series = nil
			return m, nil
		}
		m.chartPanel = panel{state: panelLoaded}
		m.series = msg.series
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// refresh starts a new fetch generation and kicks off one command per
// panel. Panels that already have data keep showing it while the new
// fetch is in flight; unfetched panels show a loading state.
func (m *Model) refresh() tea.Cmd {
	m.gen++

	if m.kpiPanel.state != panelLoaded {
		m.kpiPanel = panel{state: panelLoading}
	}
	if m.healthPanel.state != panelLoaded {
		m.healthPanel = panel{state: panelLoading}
	}
	if m.insightPanel.state != panelLoaded {
		m.insightPanel = panel{state: panelLoading}
	}
	if m.chartPanel.state != panelLoaded {
		m.chartPanel = panel{state: panelLoading}
	}

	return tea.Batch(
		m.fetchMetricsCmd(m.gen),
		m.fetchHealthCmd(m.gen),
		m.fetchInsightsCmd(m.gen),
		m.fetchSeriesCmd(m.gen),
	)
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// spinnerTickCmd returns a command that sends a spinner tick for animation.
func (m Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (m Model) fetchMetricsCmd(gen int) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		record, err := client.Metrics(ctx)
		return metricsMsg{gen: gen, record: record, err: err}
	}
}

func (m Model) fetchHealthCmd(gen int) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		sources, err := client.Health(ctx)
		return healthMsg{gen: gen, sources: sources, err: err}
	}
}

func (m Model) fetchInsightsCmd(gen int) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		advice, err := client.Insights(ctx)
		return insightsMsg{gen: gen, advice: advice, err: err}
	}
}

func (m Model) fetchSeriesCmd(gen int) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		series, err := client.RevenueSeries(ctx)
		return seriesMsg{gen: gen, series: series, err: err}
	}
}

// Record returns the latest KPI snapshot, or nil before the first load.
func (m Model) Record() *metrics.Record {
	return m.record
}

// Sources returns the latest source health report.
func (m Model) Sources() []metrics.SourceStatus {
	return m.sources
}

// SecondsSinceUpdate returns how many seconds have passed since the last update.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// LoadingSpinner returns the current spinner character for loading panels.
func (m Model) LoadingSpinner() string {
	return LoadingSpinnerFrames[m.spinnerFrame%len(LoadingSpinnerFrames)]
}

// LayoutMode returns the current layout mode based on terminal width.
func (m Model) LayoutMode() LayoutMode {
	switch {
	case m.width >= BreakpointWide:
		return LayoutWide
	case m.width >= BreakpointStandard:
		return LayoutStandard
	case m.width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// ShowFooter returns true if the terminal is tall enough to show the footer.
func (m Model) ShowFooter() bool {
	return m.height >= HeightMinimal
}
