package menu

import (
	"fmt"
	"strings"
	"time"

	"github.com/Makepad-fr/faraway/internal/model"
	"github.com/Makepad-fr/faraway/internal/ui"
)

const emptyMenuText = "We're still working on our menu. Please come back later!"

// Render builds the full menu panel: header, available pizzas and footer.
func Render(pizzas []model.Pizza, hours Hours, now time.Time) string {
	th := ui.Current()
	var lines []string
	lines = append(lines, th.Title.Render("Fast React Pizza Co."), "")
	lines = append(lines, th.Accent.Render("Our Menu"))

	avail := Available(pizzas)
	if len(avail) == 0 {
		lines = append(lines, th.Muted.Render(emptyMenuText))
	} else {
		lines = append(lines, th.Muted.Render(fmt.Sprintf(
			"Authentic Italian cuisine. %d creative dishes to choose from. All from our stone oven, all organic, all delicious.",
			len(avail))))
		lines = append(lines, "")
		for _, p := range avail {
			lines = append(lines, pizzaLines(p)...)
		}
	}

	lines = append(lines, "")
	footer := hours.FooterText(now)
	if hours.IsOpen(now.Hour()) {
		footer = th.Success.Render(footer) + "  " + th.Pending.Render("[Order]")
	} else {
		footer = th.Muted.Render(footer)
	}
	lines = append(lines, footer)
	return ui.PanelString(strings.Join(lines, "\n"))
}

func pizzaLines(p model.Pizza) []string {
	th := ui.Current()
	return []string{
		fmt.Sprintf("%s  %s", th.Title.Render(p.Name), th.Success.Render(fmt.Sprintf("$%d", p.Price))),
		"  " + th.Muted.Render(p.Ingredients),
	}
}
