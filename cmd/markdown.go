package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown pretty-prints markdown on the terminal, falling back to the
// raw text when the terminal cannot be styled.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
