package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	labelStyle   = lipgloss.NewStyle().Width(15)
)

// Output is where console messages are written.
var Output io.Writer = os.Stdout

func PrintHeader(msg string) {
	fmt.Fprintf(Output, "\n%s\n", headerStyle.Render(msg))
}

func PrintSuccess(label, detail string) {
	printLine(successStyle, "✔", label, detail)
}

func PrintError(label, detail string) {
	printLine(errorStyle, "✘", label, detail)
}

func PrintWarning(label, detail string) {
	printLine(warningStyle, "!", label, detail)
}

func printLine(style lipgloss.Style, mark, label, detail string) {
	fmt.Fprintf(Output, "  %s %s %s\n", style.Render(mark), labelStyle.Render(label), style.Render(detail))
}

// Prompt asks the user for input with a label. When stdin is not a
// terminal the default value is returned without prompting.
func Prompt(label string, defaultValue string) string {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return defaultValue
	}
	return prompt(os.Stdin, label, defaultValue)
}

func prompt(in io.Reader, label string, defaultValue string) string {
	fmt.Fprintf(Output, "%s? ", label)
	if defaultValue != "" {
		fmt.Fprintf(Output, "[%s] ", defaultValue)
	}

	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}
