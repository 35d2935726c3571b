package liner

import "strconv"

type LineType int

const (
	Normal LineType = iota
	Strange
)

func (t LineType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Strange:
		return "strange"
	default:
		return "LineType(" + strconv.Itoa(int(t)) + ")"
	}
}
