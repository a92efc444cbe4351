package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"genviz/internal/analysis"
	"genviz/internal/composition"
	"genviz/internal/config"
	"genviz/internal/export"
	"genviz/internal/fasta"
	"genviz/internal/logging"
	"genviz/internal/motif"
	"genviz/internal/viewer"
)

// Colors for modern design
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
	errorColor     = lipgloss.Color("#EF4444") // Red
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(mutedColor)
	valueStyle = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(primaryColor)
	errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(0, 1)

	// base colours follow the sequence viewer: A blue, T red, G yellow, C green
	baseStyles = map[viewer.Class]lipgloss.Style{
		viewer.Adenine:  lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
		viewer.Thymine:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")),
		viewer.Guanine:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")),
		viewer.Cytosine: lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80")),
		viewer.Other:    lipgloss.NewStyle().Foreground(mutedColor),
	}
	motifBackground = lipgloss.Color("#CA8A04")
)

type listItem struct {
	index  int
	record fasta.Record
}

func (i listItem) FilterValue() string {
	return i.record.Header
}

func (i listItem) Title() string {
	if i.record.Header != "" {
		return i.record.Header
	}
	return fmt.Sprintf("record %d", i.index+1)
}

func (i listItem) Description() string {
	return fmt.Sprintf("%d bp    GC %.2f%%", i.record.Len(), composition.GCPercent(i.record.Sequence))
}

type mode int

const (
	modeOverview mode = iota
	modeFrames
	modeSequence
	modeCount
)

func (m mode) String() string {
	switch m {
	case modeOverview:
		return "📊 Overview"
	case modeFrames:
		return "🧪 Reading frames"
	case modeSequence:
		return "🧬 Sequence"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	records       []fasta.Record
	analysis      analysis.Result
	matches       []motif.Match
	motifInput    textinput.Model
	searching     bool
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	selectedIndex int
	lineWidth     int
	exportDir     string
	status        string
	statusErr     bool
	logger        *log.Logger
}

func newModel(records []fasta.Record, lineWidth int, logger *log.Logger) model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = listItem{index: i, record: record}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sequences"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	ti := textinput.New()
	ti.Placeholder = "ATG, TATA.*"
	ti.Prompt = "motif> "
	ti.CharLimit = 256

	m := model{
		list:        l,
		records:     records,
		motifInput:  ti,
		currentMode: modeOverview,
		lineWidth:   lineWidth,
		exportDir:   ".",
		logger:      logger,
	}
	return m.selectRecord(0)
}

// initialModel parses the FASTA file at path.
func initialModel(path string, lineWidth int, logger *log.Logger) (model, error) {
	f, err := os.Open(path)
	if err != nil {
		return model{}, err
	}
	defer f.Close()
	records, err := fasta.Parse(f)
	if err != nil {
		return model{}, err
	}
	logger.Info("loaded records", "path", path, "records", len(records))
	return newModel(records, lineWidth, logger), nil
}

// selectRecord recomputes the analysis for record idx and clears any motif
// matches from the previous selection.
func (m model) selectRecord(idx int) model {
	m.selectedIndex = idx
	m.matches = nil
	if idx < 0 || idx >= len(m.records) {
		m.analysis = analysis.Result{}
		return m
	}
	m.analysis = analysis.Analyze(m.records[idx])
	return m
}

func (m model) selectedRecord() (fasta.Record, bool) {
	item, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return fasta.Record{}, false
	}
	return item.record, true
}

func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % modeCount
	return m
}

func (m model) setStatus(msg string, isErr bool) model {
	m.status = msg
	m.statusErr = isErr
	return m
}

// runMotifSearch searches the selected record for the pattern in the input box.
func (m model) runMotifSearch() model {
	rec, ok := m.selectedRecord()
	if !ok {
		return m
	}
	pattern := strings.TrimSpace(m.motifInput.Value())
	matches, err := motif.Find(rec.Sequence, pattern)
	if err != nil {
		m.logger.Warn("motif search failed", "pattern", pattern, "err", err)
		m.matches = nil
		return m.setStatus(err.Error(), true)
	}
	m.logger.Debug("motif search", "header", rec.Header, "pattern", pattern, "matches", len(matches))
	m.matches = matches
	return m.setStatus(fmt.Sprintf("found %d matches for %s", len(matches), pattern), false)
}

// exportSelected writes the JSON export for the selected record.
func (m model) exportSelected() model {
	rec, ok := m.selectedRecord()
	if !ok {
		return m
	}
	path := filepath.Join(m.exportDir, export.FileName(rec.Header))
	f, err := os.Create(path)
	if err != nil {
		m.logger.Error("export failed", "path", path, "err", err)
		return m.setStatus("export failed: "+err.Error(), true)
	}
	err = export.Write(f, export.New(rec, m.analysis, m.matches))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		m.logger.Error("export failed", "path", path, "err", err)
		return m.setStatus("export failed: "+err.Error(), true)
	}
	m.logger.Info("wrote export", "path", path)
	return m.setStatus("exported "+path, false)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate list dimensions (left panel takes 1/3 of width)
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4) // Account for borders and status
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.motifInput.Blur()
				return m.runMotifSearch(), nil
			case "esc":
				m.searching = false
				m.motifInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.motifInput, cmd = m.motifInput.Update(msg)
			return m, cmd
		}

		// keys belong to the list while its filter is being typed
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "h":
				m.showHelp = !m.showHelp
				return m, nil
			case "1":
				m.currentMode = modeOverview
				return m, nil
			case "2":
				m.currentMode = modeFrames
				return m, nil
			case "3":
				m.currentMode = modeSequence
				return m, nil
			case "tab":
				return m.cycleMode(), nil
			case "m":
				m.searching = true
				return m, m.motifInput.Focus()
			case "e":
				return m.exportSelected(), nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if item, ok := m.list.SelectedItem().(listItem); ok && item.index != m.selectedIndex {
		m = m.selectRecord(item.index)
	}
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpModal()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderLeftPanel(),
		m.renderRightPanel(),
	)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatusBar(),
	)
}

func (m model) renderLeftPanel() string {
	return containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) rightWidth() int {
	return (m.width*2)/3 - 6
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3
	panel := containerStyle.Width(rightWidth - 2).Height(m.height - 4)

	rec, ok := m.selectedRecord()
	if !ok {
		return panel.Render("No record selected")
	}

	lines := m.buildRightLines(rec)
	if limit := m.height - 6; limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	return panel.Render(strings.Join(lines, "\n"))
}

// buildRightLines renders the content of the right panel for the current mode.
func (m model) buildRightLines(rec fasta.Record) []string {
	lines := []string{titleStyle.Render(rec.Header), m.statsLine(), ""}
	if m.searching || m.motifInput.Value() != "" {
		lines = append(lines, m.motifInput.View(), "")
	}
	switch m.currentMode {
	case modeOverview:
		lines = append(lines, m.overviewLines()...)
	case modeFrames:
		lines = append(lines, m.frameLines()...)
	case modeSequence:
		lines = append(lines, m.sequenceLines(rec.Sequence)...)
	}
	return lines
}

func (m model) statsLine() string {
	a := m.analysis
	parts := []string{
		labelStyle.Render("Length ") + valueStyle.Render(fmt.Sprintf("%d", a.Length)),
		labelStyle.Render("GC ") + valueStyle.Render(fmt.Sprintf("%.2f%%", a.GCPercent)),
		labelStyle.Render("Mol. weight ") + valueStyle.Render(fmt.Sprintf("%.2f", a.MolecularWeight)),
		labelStyle.Render("Motifs ") + valueStyle.Render(fmt.Sprintf("%d", len(m.matches))),
	}
	return strings.Join(parts, "    ")
}

func bar(count, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	n := count * width / total
	if n == 0 && count > 0 {
		n = 1
	}
	return barStyle.Render(strings.Repeat("█", n))
}

func (m model) overviewLines() []string {
	a := m.analysis
	width := m.rightWidth() - 30
	if width < 10 {
		width = 10
	}

	lines := []string{sectionStyle.Render("Nucleotide composition")}
	maxCount := 0
	for _, e := range a.Composition {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	for _, e := range a.Composition {
		pct := composition.Percent(e.Count, a.Length)
		lines = append(lines, fmt.Sprintf("%s %8d %6.2f%% %s", e.Base, e.Count, pct, bar(e.Count, maxCount, width)))
	}

	lines = append(lines, "", sectionStyle.Render("Top codon usage (frame +1)"))
	if len(a.TopCodons) == 0 {
		lines = append(lines, labelStyle.Render("No complete codons"))
	}
	maxCodon := 0
	if len(a.TopCodons) > 0 {
		maxCodon = a.TopCodons[0].Count
	}
	for _, c := range a.TopCodons {
		lines = append(lines, fmt.Sprintf("%s %8d %s", c.Codon, c.Count, bar(c.Count, maxCodon, width)))
	}
	return lines
}

func (m model) frameLines() []string {
	lines := []string{sectionStyle.Render("Protein translation (6 reading frames)")}
	for _, f := range m.analysis.Frames {
		protein := f.Protein
		if protein == "" {
			protein = labelStyle.Render("(too short)")
		}
		lines = append(lines, titleStyle.Render(f.Label))
		lines = append(lines, strings.Split(sequenceStyle.Width(m.rightWidth()).Render(protein), "\n")...)
	}
	return lines
}

func (m model) sequenceLines(seq string) []string {
	if seq == "" {
		return []string{labelStyle.Render("Empty sequence")}
	}
	covered := motif.Coverage(m.matches, len(seq))
	rows := viewer.Lines(seq, m.lineWidth)
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, sectionStyle.Render("Sequence viewer"))
	for _, row := range rows {
		var b strings.Builder
		b.WriteString(labelStyle.Render(row.Label()))
		b.WriteByte(' ')
		for i := 0; i < len(row.Text); i++ {
			style := baseStyles[viewer.BaseClass(row.Text[i])]
			if covered[row.Offset+i] {
				style = style.Copy().Background(motifBackground)
			}
			b.WriteString(style.Render(string(row.Text[i])))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (m model) positionInfo() string {
	if len(m.records) == 0 {
		return "0/0 sequences"
	}
	return fmt.Sprintf("%d/%d sequences", m.selectedIndex+1, len(m.records))
}

func (m model) renderStatusBar() string {
	leftInfo := m.positionInfo()
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode.String())
	rightInfo := "Press 'h' for help • 'q' to quit"
	if m.status != "" {
		rightInfo = m.status
	}

	totalUsed := lipgloss.Width(leftInfo) + lipgloss.Width(centerInfo) + lipgloss.Width(rightInfo)
	spacing := m.width - totalUsed - 6

	if m.statusErr {
		rightInfo = errorStyle.Render(rightInfo)
	}
	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		statusContent = leftInfo + strings.Repeat(" ", leftSpacing) + centerInfo + strings.Repeat(" ", spacing-leftSpacing) + rightInfo
	} else {
		// Fallback for narrow terminals
		statusContent = fmt.Sprintf("%s | %s", leftInfo, rightInfo)
	}

	return statusBarStyle.
		Width(m.width).
		Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `🧬 Sequence Analyzer - Help

Navigation:
  ↑/↓, j/k     Navigate sequences
  /            Filter by header

View Modes:
  1            Overview (composition, codon usage)
  2            Six reading frames
  3            Sequence viewer
  tab          Next mode

Motifs:
  m            Search motif (enter runs, esc cancels)
  e            Export analysis (JSON)

General:
  h            Toggle this help
  q, Ctrl+C    Quit application

Current Mode: ` + m.currentMode.String() + `
Total Sequences: ` + fmt.Sprintf("%d", len(m.records)) + `
`

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(helpContent),
	)
}

func main() {
	cfg, err := config.LoadConfig(os.Getenv("GENVIZ_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Quiet: true})
	defer closeLog()

	path := cfg.InputFasta
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: tui <fasta>  (or set input_fasta in config.json)")
		os.Exit(2)
	}

	m, err := initialModel(path, cfg.LineWidth, logger)
	if err != nil {
		logger.Error("failed to load fasta", "path", path, "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
