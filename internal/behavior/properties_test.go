package behavior

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/alexisbeaulieu97/pagelet/internal/logger"
	"github.com/alexisbeaulieu97/pagelet/internal/page"
	"github.com/alexisbeaulieu97/pagelet/internal/schedule"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func freshSession() (*page.Document, *Controller) {
	doc := page.Default()
	ctrl := New(logger.Discard(), schedule.NewManual())
	ctrl.Init(doc)
	return doc, ctrl
}

var counterButtons = []string{CounterIncrementID, CounterDecrementID, CounterResetID, CounterDoubleID}

func TestCounterProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("display equals left-to-right arithmetic from zero", prop.ForAll(
		func(ops []int) bool {
			doc, _ := freshSession()
			display, _ := doc.ElementByID(CounterDisplayID)

			want := 0
			for _, op := range ops {
				button, _ := doc.ElementByID(counterButtons[op])
				doc.Click(button)
				switch op {
				case 0:
					want++
				case 1:
					want--
				case 2:
					want = 0
				case 3:
					want *= 2
				}
			}
			if len(ops) == 0 {
				return display.Text() == "0"
			}
			return display.Text() == strconv.Itoa(want)
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.Property("colour tracks the sign of every reachable value", prop.ForAll(
		func(ops []int) bool {
			doc, ctrl := freshSession()
			display, _ := doc.ElementByID(CounterDisplayID)
			for _, op := range ops {
				button, _ := doc.ElementByID(counterButtons[op])
				doc.Click(button)

				v := ctrl.Counter().Value()
				switch {
				case v > 0 && display.Color() != ColorPositive:
					return false
				case v < 0 && display.Color() != ColorNegative:
					return false
				case v == 0 && display.Color() != ColorDefault:
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}

func TestThemeProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("toggling twice is an involution", prop.ForAll(
		func(prefix int) bool {
			doc, _ := freshSession()
			toggle, _ := doc.ElementByID(ThemeToggleID)
			for i := 0; i < prefix; i++ {
				doc.Click(toggle)
			}

			label, dark := toggle.Text(), doc.Root.HasClass(DarkModeClass)
			doc.Click(toggle)
			doc.Click(toggle)
			return toggle.Text() == label && doc.Root.HasClass(DarkModeClass) == dark
		},
		gen.IntRange(1, 6),
	))

	properties.TestingRun(t)
}

func TestAccordionProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("toggling one item never changes another", prop.ForAll(
		func(clicks []int, probe int) bool {
			doc, ctrl := freshSession()
			questions := doc.QueryClass(QuestionClass)
			acc := ctrl.Accordion()

			for _, target := range clicks {
				before := make([]bool, acc.Len())
				for i := range before {
					before[i] = acc.Open(i)
				}
				doc.Click(questions[target])
				for i := range before {
					if i == target {
						if acc.Open(i) == before[i] {
							return false
						}
						continue
					}
					if acc.Open(i) != before[i] {
						return false
					}
				}
			}
			return acc.Open(probe) == questions[probe].NextSibling().HasClass(OpenClass)
		},
		gen.SliceOf(gen.IntRange(0, 2)),
		gen.IntRange(0, 2),
	))

	properties.TestingRun(t)
}

func TestTabsProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("exactly one matching button and panel after any click", prop.ForAll(
		func(clicks []int) bool {
			doc, _ := freshSession()
			buttons := doc.QueryClass(TabButtonClass)
			panels := doc.QueryClass(TabContentClass)

			for _, i := range clicks {
				doc.Click(buttons[i])

				activeButtons := activeOf(buttons)
				activePanels := activeOf(panels)
				if len(activeButtons) != 1 || len(activePanels) != 1 {
					return false
				}
				target, _ := activeButtons[0].Attr(TabTargetAttr)
				if target != activePanels[0].ID() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 2)),
	))

	properties.TestingRun(t)
}
