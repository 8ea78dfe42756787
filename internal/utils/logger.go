package utils

import (
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
)

var (
	Info  = log.New(os.Stdout, "[INFO] ", log.LstdFlags|log.Lshortfile)
	Error = log.New(os.Stderr, "[ERROR] ", log.LstdFlags|log.Lshortfile)
)

var Print *charm.Logger

func Init() {
	Print = charm.NewWithOptions(os.Stderr, charm.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	styles := charm.DefaultStyles()
	styles.Levels[charm.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ♠").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#1E3A2FFF")).
		Foreground(lipgloss.Color("#7CFC00FF")).Bold(true)

	styles.Levels[charm.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ♦").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#4A3B00FF")).
		Foreground(lipgloss.Color("#FFD700FF")).Bold(true)

	styles.Levels[charm.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR ♥").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#3A0000FF")).
		Foreground(lipgloss.Color("#FF4444FF")).Bold(true)

	styles.Levels[charm.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL ♣").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#000000FF")).
		Foreground(lipgloss.Color("#FF00FFFF")).Bold(true)
	Print.SetStyles(styles)
}
