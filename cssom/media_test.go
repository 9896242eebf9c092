package cssom

import (
	"testing"

	tu "github.com/benoitkugler/cssom/utils/testutils"
)

func TestMediaText(t *testing.T) {
	for _, data := range [][2]string{
		{"", ""},
		{"all, screen", "all, screen"},
		{"ALL , Screen", "all, screen"},
		{"all, ;", "all, not all"},
		{"all and (color)", "(color)"},
		{"not all and (color)", "not all and (color)"},
		{"only screen and (color)", "only screen and (color)"},
		{"(color) and (hover)", "(color) and (hover)"},
		{"(color) OR (hover)", "(color) or (hover)"},
		{"(color) and (hover) or (grid)", "not all"},
		{"screen and (color) or (hover)", "not all"},
		{"not (color)", "not (color)"},
		{"only (color)", "not all"},
		{"and", "not all"},
		{"screen print", "not all"},
	} {
		ml := NewMediaList(data[0])
		tu.AssertEqual(t, ml.MediaText(), data[1])
	}
}

func TestMediaList(t *testing.T) {
	ml := NewMediaList("all, screen")
	tu.AssertEqual(t, ml.Length(), 2)
	item, ok := ml.Item(1)
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, item, "screen")
	_, ok = ml.Item(2)
	tu.AssertEqual(t, ok, false)

	ml.SetMediaText("")
	tu.AssertEqual(t, ml.Length(), 0)

	ml.AppendMedium("all, ;")
	tu.AssertEqual(t, ml.MediaText(), "")
	ml.AppendMedium(";")
	ml.AppendMedium(";")
	tu.AssertEqual(t, ml.MediaText(), "not all")
	ml.AppendMedium("all and (condition)")
	ml.AppendMedium("(condition)")
	tu.AssertEqual(t, ml.MediaText(), "not all, (condition)")
	ml.AppendMedium("all")
	ml.AppendMedium("all")
	tu.AssertEqual(t, ml.MediaText(), "not all, (condition), all")

	ml.SetMediaText("all, all, not all, (condition)")
	tu.AssertNoErr(t, ml.DeleteMedium("all, not all"))
	tu.AssertEqual(t, ml.Length(), 4)
	tu.AssertNoErr(t, ml.DeleteMedium("all"))
	tu.AssertEqual(t, ml.MediaText(), "not all, (condition)")
	tu.AssertNoErr(t, ml.DeleteMedium("all and (condition)"))
	tu.AssertEqual(t, ml.MediaText(), "not all")
	tu.AssertEqual(t, ml.DeleteMedium("all"), ErrMediumNotFound)
}
