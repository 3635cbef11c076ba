package cli

import (
	"fmt"
	"strconv"
	"text/template"
)

// parseIndex разбирает неотрицательное целое из аргумента команды
func parseIndex(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %q", what, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative: %d", what, n)
	}
	return n, nil
}

// render выводит данные через шаблон
func (c *Cli) render(tmpl *template.Template, data any) error {
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}
