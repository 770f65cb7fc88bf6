package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"news-app/cmd/newsconsole/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:8080", "News API base URL")
	timeout := flag.Duration("timeout", 15*time.Second, "Request timeout")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(ui.NewSession(*baseURL, *timeout)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "console error:", err)
		os.Exit(1)
	}
}
