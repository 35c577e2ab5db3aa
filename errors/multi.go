package errors

import (
	"strings"
)

// multiErr collects independent failures, for example all invalid entries of
// a genesis file, so they can be reported at once.
type multiErr struct {
	errs []error
}

// Append combines errors into a single error. Nil values are skipped. When
// only one error remains it is returned as is, so Code and Is keep working on
// it directly.
func Append(errs ...error) error {
	var all []error
	for _, e := range errs {
		if errIsNil(e) {
			continue
		}
		if m, ok := e.(*multiErr); ok {
			all = append(all, m.errs...)
			continue
		}
		all = append(all, e)
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return &multiErr{errs: all}
}

func (m *multiErr) Error() string {
	msgs := make([]string, len(m.errs))
	for i, e := range m.errs {
		msgs[i] = e.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// Cause returns the first collected error. The code of a combined error is
// the code of its first member.
func (m *multiErr) Cause() error {
	return m.errs[0]
}

// Errors returns all errors combined in err, or err itself when it is not a
// combined error.
func Errors(err error) []error {
	if errIsNil(err) {
		return nil
	}
	if m, ok := err.(*multiErr); ok {
		return m.errs
	}
	return []error{err}
}
