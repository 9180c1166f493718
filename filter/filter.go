package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/st3rn/readerctl/greader"
)

// ItemFilter is a compiled filter expression evaluated against stream items.
type ItemFilter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a filter expression. Expressions see the item as Item
// plus derived shorthands (Unread, Starred, Title, Feed, Published) and a
// set of helper functions, e.g.:
//
//	Unread && daysSince(Published) < 7
//	contains(Title, "golang") || hasTag("must-read")
func Compile(expression string) (*ItemFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(staticEnv()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &ItemFilter{program: program, expression: expression}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *ItemFilter) Expression() string {
	return f.expression
}

// Match evaluates the filter against an item. Evaluation errors count as
// no match.
func (f *ItemFilter) Match(item greader.Item) (bool, error) {
	result, err := expr.Run(f.program, itemEnv(item))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemTitle:  item.Title,
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemTitle:  item.Title,
			Err:        nil,
		}
	}
	return matched, nil
}

// Apply returns the items matching the filter, preserving order.
func (f *ItemFilter) Apply(items []greader.Item) ([]greader.Item, error) {
	var matched []greader.Item
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// staticEnv declares the names available at compile time.
func staticEnv() map[string]any {
	env := itemEnv(greader.Item{})
	return env
}

// itemEnv builds the evaluation environment for one item.
func itemEnv(item greader.Item) map[string]any {
	return map[string]any{
		"Item":      item,
		"Title":     item.Title,
		"Author":    item.Author,
		"Feed":      item.Origin.Title,
		"Unread":    !item.Read(),
		"Read":      item.Read(),
		"Starred":   item.Starred(),
		"Published": time.Unix(item.Published, 0),

		"hasTag": func(tag string) bool {
			canonical := greader.LabelStream(tag)
			for _, c := range item.Categories {
				if c == canonical || strings.EqualFold(greader.LabelName(c), tag) {
					return true
				}
			}
			return false
		},

		// Date helpers
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,

		"now": time.Now,
	}
}
