package prep

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidAction is returned when an operation is requested for a category
// that does not support it.
var ErrInvalidAction = errors.New("invalid action")

// ActionError describes an illegal category/operation pair.
type ActionError struct {
	Category  Category
	Operation Operation
}

func (e *ActionError) Error() string {
	expected := make([]string, 0, 4)
	for _, op := range e.Category.Operations() {
		expected = append(expected, string(op))
	}
	return fmt.Sprintf("%s: %q is not an operation for %s, expected one of %s",
		ErrInvalidAction, string(e.Operation), e.Category.Condition(), strings.Join(expected, ", "))
}

func (e *ActionError) Unwrap() error { return ErrInvalidAction }

// Action is an operation requested for one category.
type Action struct {
	Category  Category
	Operation Operation
}

// Validate returns an *ActionError if the operation is not legal for the
// category. The empty operation is always valid.
func (a Action) Validate() error {
	if a.Operation == None || a.Category.Allows(a.Operation) {
		return nil
	}
	return &ActionError{Category: a.Category, Operation: a.Operation}
}

// Apply rewrites tok when it belongs to the category. It reports whether
// the token changed.
func (a Action) Apply(tok *Token) (bool, error) {
	if a.Operation == None {
		return false, nil
	}
	if err := a.Validate(); err != nil {
		return false, err
	}
	if !tok.Is(a.Category) {
		return false, nil
	}

	switch a.Operation {
	case Remove:
		tok.Text = ""
	case Tag:
		tok.Text = a.Category.Tag()
	case Demojize:
		tok.Text = tok.classifier.emojis.Demojize(tok.Text)
	case Emojize:
		tok.Text = tok.classifier.emojis.Emojize(tok.Text)
	}
	return true, nil
}

// Actions maps each category to the operation requested for it.
// Categories that are absent or map to None are left alone.
type Actions map[Category]Operation

// Validate checks every requested operation, in precedence order.
func (as Actions) Validate() error {
	for _, cat := range Precedence {
		if err := (Action{Category: cat, Operation: as[cat]}).Validate(); err != nil {
			return err
		}
	}
	for cat := range as {
		if cat < Mention || cat > HTMLTag {
			return errors.Wrapf(ErrUnknownCategory, "%s", cat)
		}
	}
	return nil
}

// Apply runs the first operation that fires for tok, following Precedence.
// An illegal operation for a category stops the pass with its *ActionError.
func (as Actions) Apply(tok *Token) (bool, error) {
	for _, cat := range Precedence {
		op := as[cat]
		if op == None {
			continue
		}
		changed, err := (Action{Category: cat, Operation: op}).Apply(tok)
		if err != nil {
			return false, err
		}
		if changed {
			return true, nil
		}
	}
	return false, nil
}

// ParseActions builds Actions from category and operation names, as given
// on a command line or in a config file. Empty operations are skipped.
func ParseActions(named map[string]string) (Actions, error) {
	as := make(Actions, len(named))
	for name, opName := range named {
		op, err := ParseOperation(opName)
		if err != nil {
			return nil, err
		}
		if op == None {
			continue
		}
		cat, err := ParseCategory(name)
		if err != nil {
			return nil, err
		}
		as[cat] = op
	}
	if err := as.Validate(); err != nil {
		return nil, err
	}
	return as, nil
}
