package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/686f6c6/goldbach/internal/errors"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.result != nil {
			m.buildResults(m.result)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.computing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case analysisDoneMsg:
		m.computing = false
		m.cancel = nil
		m.buildResults(msg.result)
		m.screen = screenResults
		return m, nil

	case analysisErrMsg:
		m.computing = false
		m.cancel = nil
		switch {
		case errors.Is(msg.err, context.Canceled):
			m.rangeErr = "analysis cancelled"
		case errors.IsUserFacing(msg.err):
			m.rangeErr = msg.err.Error()
		default:
			m.rangeErr = "analysis failed, see debug log"
			m.log.Error("range analysis failed", "error", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while an input is focused.
	if msg.String() == "ctrl+c" {
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) && m.screen != screenSingle && m.screen != screenRange {
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch m.screen {
	case screenWelcome:
		return m.handleWelcomeKey(msg)
	case screenSingle:
		return m.handleSingleKey(msg)
	case screenRange:
		return m.handleRangeKey(msg)
	case screenResults:
		return m.handleResultsKey(msg)
	}
	return m, nil
}

func (m Model) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}

	case key.Matches(msg, m.keys.Down):
		if m.menuIndex < len(menuEntries)-1 {
			m.menuIndex++
		}

	case key.Matches(msg, m.keys.Select):
		switch m.menuIndex {
		case 0:
			m.screen = screenSingle
			m.singleDone = false
			m.singleErr = ""
			return m, m.numberInput.Focus()
		case 1:
			m.screen = screenRange
			m.rangeFocus = 0
			m.rangeErr = ""
			m.rangeNotice = ""
			m.maxInput.Blur()
			return m, m.minInput.Focus()
		case 2:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleSingleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.numberInput.Blur()
		m.screen = screenWelcome
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.analyzeSingle()
		return m, nil
	}

	var cmd tea.Cmd
	m.numberInput, cmd = m.numberInput.Update(msg)
	return m, cmd
}

func (m Model) handleRangeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.computing {
		// The only action during a scan is cancelling it.
		if key.Matches(msg, m.keys.Back) && m.cancel != nil {
			m.cancel()
		}
		return m, nil
	}

	if m.confirming {
		switch msg.String() {
		case "y", "enter":
			m.confirming = false
			return m, m.runAnalysis(m.pendingMin, m.pendingMax)
		case "n", "esc":
			m.confirming = false
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.minInput.Blur()
		m.maxInput.Blur()
		m.screen = screenWelcome
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m, m.prepareRange()

	case msg.String() == "tab", key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		if m.rangeFocus == 0 {
			m.rangeFocus = 1
			m.minInput.Blur()
			return m, m.maxInput.Focus()
		}
		m.rangeFocus = 0
		m.maxInput.Blur()
		return m, m.minInput.Focus()
	}

	var cmd tea.Cmd
	if m.rangeFocus == 0 {
		m.minInput, cmd = m.minInput.Update(msg)
	} else {
		m.maxInput, cmd = m.maxInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.screen = screenRange
		m.rangeErr = ""
		if m.rangeFocus == 0 {
			return m, m.minInput.Focus()
		}
		return m, m.maxInput.Focus()

	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % resultsTab(len(resultsTabTitles))
		m.resultView.SetContent(m.renderActiveTab())
		m.resultView.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab + resultsTab(len(resultsTabTitles)) - 1) % resultsTab(len(resultsTabTitles))
		m.resultView.SetContent(m.renderActiveTab())
		m.resultView.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	if m.activeTab == tabTable {
		m.resultTable, cmd = m.resultTable.Update(msg)
	} else {
		m.resultView, cmd = m.resultView.Update(msg)
	}
	return m, cmd
}
