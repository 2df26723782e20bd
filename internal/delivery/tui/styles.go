package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = lipgloss.Color("#4f46e5")
	colorSuccess = lipgloss.Color("#22c55e")
	colorDanger  = lipgloss.Color("#ef4444")
	colorMuted   = lipgloss.Color("#6b7280")
	colorText    = lipgloss.Color("#f9fafb")
)

type styles struct {
	header       lipgloss.Style
	user         lipgloss.Style
	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
	title        lipgloss.Style
	card         lipgloss.Style
	cardLabel    lipgloss.Style
	cardValue    lipgloss.Style
	toastSuccess lipgloss.Style
	toastError   lipgloss.Style
	help         lipgloss.Style
	muted        lipgloss.Style
	userMessage  lipgloss.Style
	aiMessage    lipgloss.Style
	confirm      lipgloss.Style
}

func newStyles() *styles {
	return &styles{
		header:       lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		user:         lipgloss.NewStyle().Foreground(colorMuted),
		tabActive:    lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(colorText).Background(colorPrimary),
		tabInactive:  lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted),
		title:        lipgloss.NewStyle().Bold(true).MarginBottom(1),
		card:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary).Padding(0, 2).MarginRight(1),
		cardLabel:    lipgloss.NewStyle().Foreground(colorMuted),
		cardValue:    lipgloss.NewStyle().Bold(true),
		toastSuccess: lipgloss.NewStyle().Foreground(colorText).Background(colorSuccess).Padding(0, 1),
		toastError:   lipgloss.NewStyle().Foreground(colorText).Background(colorDanger).Padding(0, 1),
		help:         lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		muted:        lipgloss.NewStyle().Foreground(colorMuted),
		userMessage:  lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		aiMessage:    lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		confirm:      lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
	}
}
