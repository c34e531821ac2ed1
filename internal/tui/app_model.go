// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/pipeline"
	"github.com/MKhiriev/go-user-dashboard/internal/service"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
)

type appModel struct {
	ctx       context.Context
	queries   service.UserQueryService
	mutations service.MutationService
	prefs     service.PreferencesService
	version   string

	currentScreen screen

	paginator   *pipeline.Paginator
	view        pipeline.Params
	page        models.UsersPage
	rows        []models.User
	companies   []string
	cursor      int
	loading     bool
	fetchingKey string

	search    textinput.Model
	searching bool

	detail detailModel
	form   formModel

	showConfirm  bool
	confirm      confirmModel
	showError    bool
	errorOverlay errorOverlayModel

	status    string
	statusSeq int

	showActivity bool
	preferences  models.Preferences

	now    func() time.Time
	logger *logger.Logger
}

func newAppModel(ctx context.Context, services *service.Services, perPage int, version string, log *logger.Logger) appModel {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "name"
	search.CharLimit = 64

	return appModel{
		ctx:           ctx,
		queries:       services.Queries,
		mutations:     services.Mutations,
		prefs:         services.Preferences,
		version:       version,
		currentScreen: screenList,
		paginator:     pipeline.NewPaginator(perPage),
		view:          pipeline.Params{Company: pipeline.AllCompanies, Order: pipeline.Asc},
		loading:       true,
		search:        search,
		preferences:   services.Preferences.Snapshot(),
		now:           time.Now,
		logger:        log,
	}
}

func (m appModel) params() models.PageParams {
	return models.PageParams{Page: m.paginator.Page(), Limit: m.paginator.PerPage()}
}

// Init asks the event loop to load the first page, so that the state set by
// loadPage is kept by Update.
func (m appModel) Init() tea.Cmd {
	key := service.UsersListKey(m.params())
	return tea.Batch(func() tea.Msg { return pageChangedMsg{key: key} }, cmdTick())
}

// loadPage shows whatever the cache holds for the current page and fetches
// it when it is missing or stale. A warm page never shows a loading state.
func (m *appModel) loadPage() tea.Cmd {
	params := m.params()
	key := service.UsersListKey(params)

	if page, stale, ok := m.queries.Peek(params); ok {
		m.setPage(page)
		m.loading = false
		if !stale {
			return nil
		}
	} else {
		m.loading = true
	}

	if m.fetchingKey == key {
		return nil
	}
	m.fetchingKey = key
	return cmdListUsers(m.ctx, m.queries, params)
}

func (m *appModel) setPage(page models.UsersPage) {
	m.page = page
	m.paginator.SetTotal(page.Total)
	m.refreshRows()
}

func (m *appModel) refreshRows() {
	m.rows = pipeline.Apply(m.page.Items, m.view)
	m.companies = pipeline.Companies(m.page.Items)
	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
}

func (m appModel) selected() (models.User, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return models.User{}, false
	}
	return m.rows[m.cursor], true
}

// changePage moves the paginator. A read of the page being left is cancelled
// so it cannot store a result nobody is waiting for.
func (m *appModel) changePage(move func(*pipeline.Paginator)) tea.Cmd {
	before := m.params()
	move(m.paginator)
	if m.params() == before {
		return nil
	}

	if m.fetchingKey == service.UsersListKey(before) {
		m.queries.CancelPendingReads(before)
		m.fetchingKey = ""
	}
	m.cursor = 0
	return m.loadPage()
}

func (m *appModel) setStatus(status string) tea.Cmd {
	m.statusSeq++
	m.status = status
	return cmdClearStatus(m.statusSeq)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case pageLoadedMsg:
		return m.onPageLoaded(msg)
	case pageChangedMsg:
		if msg.key != service.UsersListKey(m.params()) {
			return m, nil
		}
		cmd := m.loadPage()
		return m, cmd
	case userLoadedMsg:
		if m.currentScreen != screenDetail || msg.id != m.detail.id {
			return m, nil
		}
		m.detail.loading = false
		m.detail.err = nil
		if msg.err != nil {
			m.detail.err = errors.New(service.FaultMessage(msg.err))
			return m, nil
		}
		m.detail.user = msg.user
		return m, nil
	case mutationDoneMsg:
		return m.onMutationDone(msg)
	case preferencesChangedMsg:
		m.preferences = m.prefs.Snapshot()
		return m, nil
	case preferencesSavedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("error saving preferences")
			m.showErrorf("Failed to save preferences.")
		}
		m.preferences = m.prefs.Snapshot()
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("error copying to clipboard")
			m.showErrorf("Failed to copy to clipboard.")
			return m, nil
		}
		cmd := m.setStatus("Copied " + msg.text)
		return m, cmd
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tickMsg:
		return m, cmdTick()
	}

	switch m.currentScreen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	default:
		return m.updateList(msg)
	}
}

func (m appModel) onPageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	if m.fetchingKey == service.UsersListKey(msg.params) {
		m.fetchingKey = ""
	}
	if msg.params != m.params() {
		return m, nil
	}

	m.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.logger.Err(msg.err).Msg("error loading users page")
		m.showErrorf(service.FaultMessage(msg.err))
		return m, nil
	}

	m.setPage(msg.page)
	// the total may have shrunk below the current page
	if m.params() != msg.params {
		m.cursor = 0
		cmd := m.loadPage()
		return m, cmd
	}
	return m, nil
}

func (m appModel) onMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.showErrorf(service.FaultMessage(msg.err))
	}

	cmds := []tea.Cmd{m.loadPage()}
	if msg.err == nil {
		cmds = append(cmds, m.setStatus(models.ActivityMessage(msg.action, msg.name)))
	}

	if m.currentScreen == screenDetail && m.detail.id == msg.id {
		if msg.action == models.ActionDelete && msg.err == nil {
			m.currentScreen = screenList
		} else {
			m.detail.loading = true
			cmds = append(cmds, cmdGetUser(m.ctx, m.queries, msg.id))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		target := m.confirm
		m.confirm = confirmModel{}

		handle := m.mutations.DispatchDelete(m.ctx, m.params(), target.id)
		m.refreshFromCache()
		return m, cmdAwaitMutation(m.ctx, handle, models.ActionDelete, target.id, target.name)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

// refreshFromCache shows the optimistic state written by a dispatch.
func (m *appModel) refreshFromCache() {
	if page, _, ok := m.queries.Peek(m.params()); ok {
		m.setPage(page)
		m.loading = false
	}
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.prevPage):
		cmd := m.changePage((*pipeline.Paginator).Prev)
		return m, cmd
	case key.Matches(keyMsg, keys.nextPage):
		cmd := m.changePage((*pipeline.Paginator).Next)
		return m, cmd
	case key.Matches(keyMsg, keys.goToPage):
		n := int(keyMsg.String()[0] - '0')
		cmd := m.changePage(func(p *pipeline.Paginator) { p.GoTo(n) })
		return m, cmd
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		m.search.SetValue(m.view.Search)
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.company):
		m.view.Company = nextCompany(m.view.Company, m.companies)
		m.refreshRows()
		cmd := m.changePage((*pipeline.Paginator).Reset)
		return m, cmd
	case key.Matches(keyMsg, keys.sort):
		m.view.Order = m.view.Order.Toggle()
		m.refreshRows()
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		if u, ok := m.selected(); ok {
			m.form = newFormModel(&u)
			m.currentScreen = screenForm
		}
	case key.Matches(keyMsg, keys.delete):
		if u, ok := m.selected(); ok {
			m.showConfirm = true
			m.confirm = confirmModel{id: u.ID, name: u.Name}
		}
	case key.Matches(keyMsg, keys.enter):
		if u, ok := m.selected(); ok {
			m.currentScreen = screenDetail
			m.detail = detailModel{id: u.ID, user: u, loading: true}
			return m, cmdGetUser(m.ctx, m.queries, u.ID)
		}
	case key.Matches(keyMsg, keys.copy):
		if u, ok := m.selected(); ok && u.Email != "" {
			return m, cmdCopy(u.Email)
		}
	case key.Matches(keyMsg, keys.darkMode):
		return m, cmdToggleDarkMode(m.ctx, m.prefs)
	case key.Matches(keyMsg, keys.activity):
		m.showActivity = !m.showActivity
	case key.Matches(keyMsg, keys.clearActivity):
		if m.showActivity {
			return m, cmdClearActivity(m.ctx, m.prefs)
		}
	case key.Matches(keyMsg, keys.refresh):
		m.queries.Refresh(m.ctx)
		cmd := m.loadPage()
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
			m.searching = false
			m.search.Blur()
			return m, nil
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if term := m.search.Value(); term != m.view.Search {
		m.view.Search = term
		m.refreshRows()
		pageCmd := m.changePage((*pipeline.Paginator).Reset)
		return m, tea.Batch(cmd, pageCmd)
	}
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case m.detail.err != nil:
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		u := m.detail.user
		m.form = newFormModel(&u)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm = confirmModel{id: m.detail.user.ID, name: m.detail.user.Name}
	case key.Matches(keyMsg, keys.copy):
		if m.detail.user.Email != "" {
			return m, cmdCopy(m.detail.user.Email)
		}
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = backFromForm(m.form.editing, m.detail)
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter) && !m.form.onLastField():
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.submit):
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitForm dispatches the mutation and closes the dialog right away. The
// remote call keeps running after the dialog is gone.
func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	input, err := m.form.input(m.ctx)
	if err != nil {
		m.form.err = err
		return m, nil
	}

	params := m.params()
	var cmd tea.Cmd
	if m.form.editing == nil {
		handle := m.mutations.DispatchCreate(m.ctx, params, input)
		cmd = cmdAwaitMutation(m.ctx, handle, models.ActionAdd, 0, input.Name)
		m.currentScreen = screenList
	} else {
		id := m.form.editing.ID
		handle := m.mutations.DispatchUpdate(m.ctx, params, id, input)
		cmd = cmdAwaitMutation(m.ctx, handle, models.ActionEdit, id, input.Name)
		m.currentScreen = backFromForm(m.form.editing, m.detail)
		if m.currentScreen == screenDetail {
			m.detail.user = input.MergeInto(m.detail.user)
		}
	}

	m.refreshFromCache()
	return m, cmd
}

func backFromForm(editing *models.User, detail detailModel) screen {
	if editing != nil && detail.id == editing.ID && detail.user.ID == editing.ID {
		return screenDetail
	}
	return screenList
}

// nextCompany cycles through "all" followed by the companies of the page.
func nextCompany(current string, companies []string) string {
	options := append([]string{pipeline.AllCompanies}, companies...)
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}

func (m appModel) View() string {
	t := themeFor(m.preferences.DarkMode)

	var body string
	switch m.currentScreen {
	case screenDetail:
		body = m.detail.View(t)
	case screenForm:
		body = m.form.View(t)
	default:
		body = m.listView(t)
		if m.showActivity {
			body += "\n" + activityView(t, m.preferences.ActivityLog, m.now())
		}
		body += "\n" + t.help.Render(listHelp)
	}

	var b strings.Builder
	b.WriteString(m.headerView(t))
	b.WriteString("\n\n")
	b.WriteString(body)

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(t.status.Render(m.status))
	}
	if m.showConfirm {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View(t))
	}
	if m.showError {
		b.WriteString("\n\n")
		b.WriteString(m.errorOverlay.View(t))
	}

	return t.app.Render(b.String())
}

const listHelp = "↑/↓ select  ←/→ page  1-9 go to page  / search  f company  s sort  enter details  " +
	"n add  e edit  d delete  c copy email  a activity  t theme  r refresh  q quit"

func (m appModel) headerView(t theme) string {
	title := t.title.Render("User Dashboard")

	mode := "light"
	if m.preferences.DarkMode {
		mode = "dark"
	}

	user := "not signed in"
	if u := m.preferences.LoggedInUser; u != nil {
		user = "[" + u.Initials() + "] " + u.Name
	}

	return title + "  " + t.muted.Render(user+"  ·  "+mode+"  ·  version "+m.version)
}
