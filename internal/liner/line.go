package liner

import "fmt"

// Line is a single line of text together with its line number.
type Line struct {
	No      int
	Content string
}

// New returns an empty line with number 0.
func New() Line {
	return Line{
		No:      0,
		Content: "",
	}
}

func NewLine(no int, content string) Line {
	return Line{
		No:      no,
		Content: content,
	}
}

// AsTuple returns the line number and content unchanged.
func (l Line) AsTuple() (int, string) {
	return l.No, l.Content
}

func (l Line) String() string {
	return fmt.Sprintf("(%d, %q)", l.No, l.Content)
}
