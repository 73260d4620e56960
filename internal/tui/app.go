package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flywithpoints/flywithpoints/internal/catalog"
	"github.com/flywithpoints/flywithpoints/internal/config"
	"github.com/flywithpoints/flywithpoints/internal/engine"
	"github.com/flywithpoints/flywithpoints/internal/flights"
	"github.com/flywithpoints/flywithpoints/internal/llm"
	"github.com/flywithpoints/flywithpoints/internal/prefs"
	"github.com/flywithpoints/flywithpoints/internal/secrets"
	"github.com/flywithpoints/flywithpoints/internal/service"
)

// debounceDelay is how long typing has to pause before the engine
// recomputes. Stale ticks are dropped via the sequence counter.
const debounceDelay = 300 * time.Millisecond

// App ties together views.
type App struct {
	ctx      context.Context
	cat      *catalog.Catalog
	engine   *engine.Engine
	services Services
	cfg      config.Config
	state    appState

	balances      []engine.PointBalance
	accessible    []engine.AccessibleProgram
	opportunities []engine.AwardOpportunity
	positioning   []engine.PositioningOption
	summary       engine.Summary
	advice        *llm.AdviceResponse
	flightResults []flights.AwardFlight
	searchResults []catalog.DestinationMatch

	destInput   string
	homeInput   string
	filterSeq   int
	focusField  exploreField
	searchInput string

	oppCursor     int
	balanceCursor int
	programCursor int
	searchCursor  int

	modal            modalState
	inputBuffer      string
	editingProgramID string
	apiKeyCached     string
	showAPIKey       bool
	currency         string
	status           string
}

type Services struct {
	Portfolio *service.PortfolioService
	Advisor   *service.AdvisorService
	Flights   flights.Provider
}

type appState string

const (
	viewDashboard appState = "dashboard"
	viewExplore   appState = "explore"
	viewBalances  appState = "balances"
	viewSearch    appState = "search"
	viewFlights   appState = "flights"
	viewSettings  appState = "settings"
)

type exploreField string

const (
	fieldDestination exploreField = "destination"
	fieldHome        exploreField = "home"
)

type modalState string

const (
	modalNone          modalState = ""
	modalProgramPicker modalState = "programPicker"
	modalBalanceInput  modalState = "balanceInput"
	modalEditHome      modalState = "editHome"
	modalEditAPIKey    modalState = "editAPIKey"
)

func New(ctx context.Context, cfg config.Config, cat *catalog.Catalog, services Services) *App {
	apiKey := resolveAPIKey(cfg)
	return &App{
		ctx:          ctx,
		cat:          cat,
		engine:       engine.New(cat),
		services:     services,
		cfg:          cfg,
		homeInput:    cfg.UI.HomeAirport,
		focusField:   fieldDestination,
		apiKeyCached: apiKey,
		currency:     cfg.UI.CurrencySymbol,
	}
}

// resolveAPIKey checks env first, then the secrets store, then config.
func resolveAPIKey(cfg config.Config) string {
	if key := strings.TrimSpace(os.Getenv(cfg.Advisor.APIKeyEnv)); key != "" {
		return key
	}
	if key, err := secrets.FetchProviderKey(cfg.Advisor.Provider); err == nil && key != "" {
		return key
	}
	return cfg.Advisor.APIKey
}

func (a *App) Init() tea.Cmd {
	return a.loadBalances()
}

func (a *App) loadBalances() tea.Cmd {
	return func() tea.Msg {
		snap, err := a.services.Portfolio.Snapshot(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return balancesMsg(snap)
	}
}

// recompute runs the full pipeline against the current balances and
// inputs. The engine is pure so this is safe to call on every change.
func (a *App) recompute() tea.Cmd {
	balances := a.balances
	dest := a.destInput
	home := a.homeInput
	return func() tea.Msg {
		opps := a.engine.AwardOpportunities(balances, dest)
		return exploreMsg{
			accessible:    a.engine.AccessiblePrograms(balances),
			opportunities: opps,
			positioning:   a.engine.PositioningOptions(home, opps, dest),
			summary:       a.engine.Summarize(opps),
		}
	}
}

func (a *App) debounce() tea.Cmd {
	a.filterSeq++
	seq := a.filterSeq
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{seq}
	})
}

func (a *App) adviseCmd() tea.Cmd {
	dest := a.destInput
	home := a.homeInput
	opps := a.opportunities
	summary := a.summary
	return func() tea.Msg {
		resp := a.services.Advisor.Advise(a.ctx, dest, home, opps, summary)
		return adviceMsg(resp)
	}
}

func (a *App) setBalanceCmd(programID string, balance int) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if err := a.services.Portfolio.SetBalance(a.ctx, programID, balance); err != nil {
				return errMsg{err}
			}
			return statusMsg("balance saved")
		},
		a.loadBalances(),
	)
}

func (a *App) removeBalanceCmd(programID string) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			if err := a.services.Portfolio.Remove(a.ctx, programID); err != nil {
				return errMsg{err}
			}
			return statusMsg("balance removed")
		},
		a.loadBalances(),
	)
}

func (a *App) searchFlightsCmd() tea.Cmd {
	if a.services.Flights == nil {
		return func() tea.Msg { return errMsg{fmt.Errorf("flight search not configured")} }
	}
	if len(a.opportunities) == 0 {
		return func() tea.Msg { return statusMsg("no opportunities to search flights for") }
	}
	opp := a.opportunities[a.oppCursor]
	region, ok := a.cat.ResolveRegion(opp.SweetSpot.DestinationRegion)
	dest := ""
	if ok && len(region.Airports) > 0 {
		dest = region.Airports[0]
	}
	q := flights.Query{
		Origin:        a.homeInput,
		Destination:   dest,
		DepartureDate: time.Now().AddDate(0, 2, 0).Format("2006-01-02"),
		CabinClass:    opp.SweetSpot.CabinClass,
		Passengers:    1,
	}
	return func() tea.Msg {
		results, err := a.services.Flights.SearchAwards(a.ctx, q)
		if err != nil {
			return errMsg{err}
		}
		return flightsMsg(results)
	}
}

func (a *App) saveHomeAirportCmd(code string) tea.Cmd {
	return func() tea.Msg {
		a.cfg.UI.HomeAirport = strings.ToUpper(strings.TrimSpace(code))
		if err := config.Save(a.cfg); err != nil {
			return errMsg{err}
		}
		return statusMsg("home airport saved")
	}
}

func (a *App) saveAPIKeyCmd(key string) tea.Cmd {
	return func() tea.Msg {
		key = strings.TrimSpace(key)
		if err := secrets.StoreProviderKey(a.cfg.Advisor.Provider, key); err != nil {
			return errMsg{err}
		}
		a.apiKeyCached = key
		return statusMsg("API key saved to secrets store (restart to apply)")
	}
}

func (a *App) rememberSearchCmd() tea.Cmd {
	dest := a.destInput
	home := a.homeInput
	return func() tea.Msg {
		if err := prefs.RememberSearch(dest, home); err != nil {
			return errMsg{err}
		}
		return statusMsg("search saved")
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch a.state {
		case viewExplore:
			return a.handleExploreKey(m)
		case viewSearch:
			return a.handleSearchKey(m)
		case viewSettings:
			return a.handleSettingsKey(m)
		case viewFlights:
			return a.handleFlightsKey(m)
		}
		switch m.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "e":
			a.state = viewExplore
			a.status = ""
			return a, a.recompute()
		case "b":
			a.state = viewBalances
			a.status = ""
		case "s":
			a.state = viewSearch
			a.status = ""
		case "p":
			a.state = viewSettings
			a.status = ""
		case "d", "esc":
			a.state = viewDashboard
		case "up", "k":
			if a.state == viewBalances && a.balanceCursor > 0 {
				a.balanceCursor--
			}
		case "down", "j":
			if a.state == viewBalances && a.balanceCursor < len(a.balances)-1 {
				a.balanceCursor++
			}
		case "a":
			if a.state == viewBalances {
				a.modal = modalProgramPicker
				a.programCursor = 0
			}
		case "enter":
			if a.state == viewBalances && len(a.balances) > 0 {
				b := a.balances[a.balanceCursor]
				a.editingProgramID = b.ProgramID
				a.inputBuffer = fmt.Sprintf("%d", b.Balance)
				a.modal = modalBalanceInput
			}
		case "backspace", "delete":
			if a.state == viewBalances && len(a.balances) > 0 {
				return a, a.removeBalanceCmd(a.balances[a.balanceCursor].ProgramID)
			}
		}
	case balancesMsg:
		a.balances = []engine.PointBalance(m)
		if a.balanceCursor >= len(a.balances) {
			a.balanceCursor = 0
		}
		return a, a.recompute()
	case exploreMsg:
		a.accessible = m.accessible
		a.opportunities = m.opportunities
		a.positioning = m.positioning
		a.summary = m.summary
		if a.oppCursor >= len(a.opportunities) {
			a.oppCursor = 0
		}
	case debounceMsg:
		if m.seq != a.filterSeq {
			return a, nil // superseded by later keystrokes
		}
		if a.state == viewSearch {
			a.searchResults = a.cat.SearchDestinations(a.searchInput)
			if a.searchCursor >= len(a.searchResults) {
				a.searchCursor = 0
			}
			return a, nil
		}
		return a, a.recompute()
	case adviceMsg:
		resp := llm.AdviceResponse(m)
		a.advice = &resp
		a.status = ""
	case flightsMsg:
		a.flightResults = []flights.AwardFlight(m)
		a.state = viewFlights
		a.status = ""
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleExploreKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = viewDashboard
		a.status = ""
		return a, nil
	case "tab":
		if a.focusField == fieldDestination {
			a.focusField = fieldHome
		} else {
			a.focusField = fieldDestination
		}
		return a, nil
	case "up", "ctrl+k":
		if a.oppCursor > 0 {
			a.oppCursor--
		}
		return a, nil
	case "down", "ctrl+j":
		if a.oppCursor < len(a.opportunities)-1 {
			a.oppCursor++
		}
		return a, nil
	case "ctrl+a":
		a.status = "thinking..."
		return a, a.adviseCmd()
	case "ctrl+f":
		a.status = "searching flights..."
		return a, a.searchFlightsCmd()
	case "ctrl+s":
		return a, a.rememberSearchCmd()
	}
	switch m.Type {
	case tea.KeyEnter:
		return a, a.recompute()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if a.focusField == fieldHome {
			if len(a.homeInput) > 0 {
				a.homeInput = a.homeInput[:len(a.homeInput)-1]
			}
		} else if len(a.destInput) > 0 {
			a.destInput = a.destInput[:len(a.destInput)-1]
		}
		return a, a.debounce()
	case tea.KeySpace:
		if a.focusField == fieldDestination {
			a.destInput += " "
			return a, a.debounce()
		}
	case tea.KeyRunes:
		if a.focusField == fieldHome {
			a.homeInput += strings.ToUpper(string(m.Runes))
		} else {
			a.destInput += string(m.Runes)
		}
		return a, a.debounce()
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = viewDashboard
		a.status = ""
		return a, nil
	case "up", "ctrl+k":
		if a.searchCursor > 0 {
			a.searchCursor--
		}
		return a, nil
	case "down", "ctrl+j":
		if a.searchCursor < len(a.searchResults)-1 {
			a.searchCursor++
		}
		return a, nil
	}
	switch m.Type {
	case tea.KeyEnter:
		if len(a.searchResults) == 0 {
			return a, nil
		}
		a.destInput = a.searchResults[a.searchCursor].Value
		a.state = viewExplore
		a.focusField = fieldDestination
		return a, a.recompute()
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.searchInput) > 0 {
			a.searchInput = a.searchInput[:len(a.searchInput)-1]
		}
		return a, a.debounce()
	case tea.KeySpace:
		a.searchInput += " "
		return a, a.debounce()
	case tea.KeyRunes:
		a.searchInput += string(m.Runes)
		return a, a.debounce()
	}
	return a, nil
}

func (a *App) handleFlightsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "e":
		a.state = viewExplore
		a.status = ""
	case "d":
		a.state = viewDashboard
		a.status = ""
	}
	return a, nil
}

func (a *App) handleSettingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "d":
		a.state = viewDashboard
		a.status = ""
	case "h":
		a.modal = modalEditHome
		a.inputBuffer = a.homeInput
	case "e":
		a.modal = modalEditAPIKey
		a.inputBuffer = a.apiKeyCached
	case "v":
		a.showAPIKey = !a.showAPIKey
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalProgramPicker:
		programs := a.cat.Programs()
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "up", "k":
			if a.programCursor > 0 {
				a.programCursor--
			}
		case "down", "j":
			if a.programCursor < len(programs)-1 {
				a.programCursor++
			}
		case "enter":
			if len(programs) == 0 {
				a.modal = modalNone
				return a, nil
			}
			a.editingProgramID = programs[a.programCursor].ID
			a.inputBuffer = ""
			a.modal = modalBalanceInput
		}
	case modalBalanceInput, modalEditHome, modalEditAPIKey:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.inputBuffer = ""
		case tea.KeyEnter:
			text := strings.TrimSpace(a.inputBuffer)
			if text == "" {
				a.status = "enter a value"
				return a, nil
			}
			mode := a.modal
			a.modal = modalNone
			a.inputBuffer = ""
			switch mode {
			case modalBalanceInput:
				balance, err := parsePoints(text)
				if err != nil {
					a.status = "enter a whole number of points"
					return a, nil
				}
				return a, a.setBalanceCmd(a.editingProgramID, balance)
			case modalEditHome:
				a.homeInput = strings.ToUpper(text)
				return a, tea.Batch(a.saveHomeAirportCmd(text), a.recompute())
			case modalEditAPIKey:
				return a, a.saveAPIKeyCmd(text)
			}
		case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
			if len(a.inputBuffer) > 0 {
				a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
			}
		case tea.KeySpace:
			a.inputBuffer += " "
		case tea.KeyRunes:
			a.inputBuffer += string(m.Runes)
		}
	}
	return a, nil
}

func parsePoints(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative")
	}
	return n, nil
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewExplore:
		body = a.renderExplore()
	case viewBalances:
		body = a.renderBalances()
	case viewSearch:
		body = a.renderSearch()
	case viewFlights:
		body = a.renderFlights()
	case viewSettings:
		body = a.renderSettings()
	default:
		body = a.renderDashboard()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

// messages
type balancesMsg []engine.PointBalance

type exploreMsg struct {
	accessible    []engine.AccessibleProgram
	opportunities []engine.AwardOpportunity
	positioning   []engine.PositioningOption
	summary       engine.Summary
}

type debounceMsg struct{ seq int }

type adviceMsg llm.AdviceResponse

type flightsMsg []flights.AwardFlight

type statusMsg string

type errMsg struct{ error }

// styles
var titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func (a *App) renderDashboard() string {
	title := titleStyle.Render("FlyWithPoints Dashboard")
	var total int
	for _, b := range a.balances {
		total += b.Balance
	}
	body := fmt.Sprintf("Programs with balances: %d  Total points: %s", len(a.balances), formatPoints(total))
	body += fmt.Sprintf("\nAccessible programs: %d  Opportunities: %d  Affordable now: %d", len(a.accessible), a.summary.Total, a.summary.Affordable)
	if a.summary.BestValue != nil {
		bv := a.summary.BestValue
		body += fmt.Sprintf("\nBest value: %s (%.1f cpp, ~%s%d)", bv.SweetSpot.Title, bv.SweetSpot.ValueCpp, a.currency, bv.EstimatedValue)
	}
	if a.summary.ClosestToAffording != nil && !a.summary.ClosestToAffording.CanAfford {
		ca := a.summary.ClosestToAffording
		body += fmt.Sprintf("\nClosest to affording: %s (%d%%, %s points short)", ca.SweetSpot.Title, ca.PercentageOwned, formatPoints(ca.PointsShortfall))
	}
	body += "\n[e] Explore  [b] Balances  [s] Search destinations  [p] Settings  [q] Quit"
	if a.status != "" {
		body += "\n" + a.status
	}
	return fmt.Sprintf("%s\n%s", title, body)
}

func (a *App) renderExplore() string {
	title := titleStyle.Render("Explore Opportunities")
	destMarker, homeMarker := " ", " "
	if a.focusField == fieldDestination {
		destMarker = "▶"
	} else {
		homeMarker = "▶"
	}
	out := fmt.Sprintf("%s\n%s Destination: %s\n%s Home airport: %s\n", title, destMarker, a.destInput, homeMarker, a.homeInput)
	out += fmt.Sprintf("%d opportunities, %d affordable", a.summary.Total, a.summary.Affordable)
	if a.summary.AlmostAffordable > 0 {
		out += fmt.Sprintf(", %d almost there", a.summary.AlmostAffordable)
	}
	if a.summary.TotalPotentialValue > 0 {
		out += fmt.Sprintf("  (potential value %s%d)", a.currency, a.summary.TotalPotentialValue)
	}
	out += "\n"
	if strings.TrimSpace(a.destInput) == "" && len(a.accessible) > 0 {
		reachable := map[string]bool{}
		for _, ap := range a.accessible {
			reachable[ap.ProgramID] = true
		}
		if dests := a.cat.DestinationsWithSweetSpots(reachable); len(dests) > 0 {
			out += "Destinations in reach: " + strings.Join(dests, ", ") + "\n"
		}
	}
	for i, o := range a.opportunities {
		marker := " "
		if i == a.oppCursor {
			marker = "▶"
		}
		status := fmt.Sprintf("%d%% there, %s short", o.PercentageOwned, formatPoints(o.PointsShortfall))
		if o.CanAfford {
			status = "bookable now"
		}
		via := ""
		if o.TransferSource != nil {
			via = fmt.Sprintf(" via %s", o.TransferSource.ProgramName)
		}
		out += fmt.Sprintf("%s %-44s %s  %s / %s pts%s  %s\n",
			marker, o.SweetSpot.Title, o.Program.Name, formatPoints(o.UserBalance), formatPoints(o.PointsRequired), via, status)
	}
	if len(a.positioning) > 0 {
		out += "\nPositioning flights:\n"
		for _, p := range a.positioning {
			out += fmt.Sprintf("  %s (%s): %s, position for ~%s%d, net value %s%d\n",
				p.AlternateOrigin, p.AlternateOriginCity, p.Opportunity.SweetSpot.Title, a.currency, p.EstimatedPositioningCost, a.currency, p.TotalValue)
		}
	}
	if a.advice != nil {
		out += "\n" + titleStyle.Render(a.advice.Title) + "\n" + a.advice.Summary + "\n"
		for _, step := range a.advice.NextSteps {
			out += "  - " + step + "\n"
		}
	}
	out += "\n[tab] Switch field  [ctrl+a] Advice  [ctrl+f] Award flights  [ctrl+s] Save search  [esc] Back"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderBalances() string {
	title := titleStyle.Render("Point Balances")
	out := title + "\n"
	if len(a.balances) == 0 {
		out += "No balances yet. Press [a] to add one.\n"
	}
	for i, b := range a.balances {
		marker := " "
		if i == a.balanceCursor {
			marker = "▶"
		}
		name := b.ProgramID
		if p, ok := a.cat.ProgramByID(b.ProgramID); ok {
			name = p.Name
		}
		out += fmt.Sprintf("%s %-28s %12s  updated %s\n", marker, name, formatPoints(b.Balance), b.LastUpdated.Format(a.cfg.UI.DateFormat))
	}
	out += "[a] Add  [enter] Edit  [del] Remove  [d] Dashboard  [e] Explore  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderSearch() string {
	title := titleStyle.Render("Search Destinations")
	out := fmt.Sprintf("%s\nQuery: %s\n", title, a.searchInput)
	for i, r := range a.searchResults {
		marker := " "
		if i == a.searchCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-28s %s\n", marker, r.Value, r.Kind)
	}
	out += "[enter] Explore this destination  [esc] Back"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderFlights() string {
	title := titleStyle.Render("Award Flights")
	if len(a.flightResults) == 0 {
		return title + "\nNo award space found.\n[esc] Back"
	}
	out := title + "\n"
	for _, f := range a.flightResults {
		name := f.ProgramID
		if p, ok := a.cat.ProgramByID(f.ProgramID); ok {
			name = p.Name
		}
		out += fmt.Sprintf("%s %s  %s-%s  %s-%s  %s pts + %s%d  %s  %d seats  (%s)\n",
			f.Airline, f.FlightNumber, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime,
			formatPoints(f.PointsRequired), a.currency, f.TaxesFees, f.Duration, f.SeatsAvailable, name)
	}
	out += "[e] Explore  [d] Dashboard  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderSettings() string {
	title := titleStyle.Render("Settings")
	out := title + "\n"
	home := a.homeInput
	if home == "" {
		home = "(not set)"
	}
	out += fmt.Sprintf("Home airport: %s\n", home)
	out += fmt.Sprintf("Currency symbol: %s\n", a.currency)
	apiValue := "(not set)"
	if a.apiKeyCached != "" {
		if a.showAPIKey {
			apiValue = a.apiKeyCached
		} else {
			apiValue = strings.Repeat("*", len(a.apiKeyCached))
		}
	}
	out += fmt.Sprintf("Advisor API key (%s): %s\n", a.cfg.Advisor.APIKeyEnv, apiValue)
	out += "[h] Edit home airport  [e] Edit API key  [v] Toggle visibility\n"
	out += "[d] Dashboard  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalProgramPicker:
		out := titleStyle.Render("Select Program") + "\n"
		for i, p := range a.cat.Programs() {
			marker := " "
			if i == a.programCursor {
				marker = "▶"
			}
			kind := "airline"
			if p.Type == catalog.TypeCreditCard {
				kind = "credit card"
			}
			out += fmt.Sprintf("%s %-28s %s\n", marker, p.Name, kind)
		}
		out += "[enter] Select  [esc] Cancel"
		return out
	case modalBalanceInput:
		name := a.editingProgramID
		if p, ok := a.cat.ProgramByID(a.editingProgramID); ok {
			name = p.Name
		}
		return titleStyle.Render("Balance for "+name) + fmt.Sprintf("\n%s\n[enter] Save  [esc] Cancel", a.inputBuffer)
	case modalEditHome:
		return titleStyle.Render("Home airport (IATA code)") + fmt.Sprintf("\n%s\n[enter] Save  [esc] Cancel", a.inputBuffer)
	case modalEditAPIKey:
		return titleStyle.Render("Set advisor API key (stored encrypted)") + fmt.Sprintf("\n%s\n[enter] Save  [esc] Cancel", a.inputBuffer)
	default:
		return ""
	}
}

func formatPoints(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
