package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/ganjoor/ganjoor"
)

// Messages

type poemMsg struct {
	poem *ganjoor.Poem
}

type errMsg struct {
	err error
}

// Commands

func fetchPoemCmd(ctx context.Context, src PoemSource, id int) tea.Cmd {
	return func() tea.Msg {
		return poemResult(src.PoemByID(ctx, id, readerQuery))
	}
}

func fetchRandomCmd(ctx context.Context, src PoemSource, poetID int) tea.Cmd {
	return func() tea.Msg {
		return poemResult(src.RandomPoem(ctx, poetID))
	}
}

func fetchFaalCmd(ctx context.Context, src PoemSource) tea.Cmd {
	return func() tea.Msg {
		return poemResult(src.HafezFaal(ctx))
	}
}

func poemResult(p *ganjoor.Poem, err error) tea.Msg {
	if err != nil {
		return errMsg{err: err}
	}
	return poemMsg{poem: p}
}
