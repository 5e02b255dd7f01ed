package views

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/CODE-SECX/English-Sikho/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Form is the state of an add/edit dialog. EditingID is empty when adding.
type Form[D any] struct {
	Open      bool
	EditingID string
	Draft     D
}

// Editing reports whether submitting updates an existing entry.
func (f Form[D]) Editing() bool { return f.EditingID != "" }

// checkDraft runs the draft's validate tags. Failures wrap
// common.ErrorValidation.
func checkDraft(d any) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}

func today(now func() time.Time) string {
	return now().Format(common.DateLayout)
}

// Confirm asks the user before a destructive action.
type Confirm func(prompt string) bool
