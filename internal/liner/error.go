package liner

import "fmt"

type ErrEmptyPath struct{}

func (e ErrEmptyPath) Error() string {
	return "source path is empty"
}

type ErrNoFiles struct {
	Pattern string
}

func (e ErrNoFiles) Error() string {
	return fmt.Sprintf("no files match %q", e.Pattern)
}

type ErrStatus struct {
	URL  string
	Code int
}

func (e ErrStatus) Error() string {
	return fmt.Sprintf("get %s: unexpected status %d", e.URL, e.Code)
}

type ErrLineTooLong struct {
	No int
}

func (e ErrLineTooLong) Error() string {
	return fmt.Sprintf("line #%d exceeds the maximum line size", e.No)
}
