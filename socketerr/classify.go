package socketerr

import (
	"errors"
)

// Classifier elevates raw platform errors with a recognized result code to
// *Error. Each code is looked up only in the table for its Space. The zero
// value uses HResultTable and ErrnoTable.
type Classifier struct {
	// HResults maps HResultSpace codes, defaulting to HResultTable, if nil.
	HResults Table
	// Errnos maps ErrnoSpace codes, defaulting to ErrnoTable, if nil.
	Errnos Table
}

var defaultClassifier Classifier

// Classify uses the zero Classifier, see Classifier.Classify.
func Classify(err error) error {
	return defaultClassifier.Classify(err)
}

// Classify returns an *Error wrapping err, if the result code of err maps to
// a known Category. Otherwise, including if err has no result code, err is
// returned unchanged. A nil err returns nil, and errors already containing
// an *Error are returned unchanged.
func (x Classifier) Classify(err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	code, space, ok := CodeOf(err)
	if !ok {
		return err
	}
	category := x.table(space).Lookup(code)
	if !category.Known() {
		return err
	}
	return &Error{
		Err:      err,
		Code:     code,
		Space:    space,
		Category: category,
	}
}

func (x Classifier) table(space Space) Table {
	switch space {
	case HResultSpace:
		if x.HResults != nil {
			return x.HResults
		}
		return HResultTable()
	case ErrnoSpace:
		if x.Errnos != nil {
			return x.Errnos
		}
		return ErrnoTable()
	default:
		return MapTable(nil)
	}
}
