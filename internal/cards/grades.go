package cards

// Grade is one of the fixed condition tiers a card can be priced at:
// raw, or one of three professional grading tiers.
type Grade int

const (
	Ungraded Grade = iota
	Grade7
	Grade8
	Grade9
)

// AllGrades lists every grade in the order the price table presents them.
var AllGrades = [...]Grade{Ungraded, Grade7, Grade8, Grade9}

// String returns the display label used in reports and on the source page.
func (g Grade) String() string {
	switch g {
	case Grade7:
		return "Grade 7"
	case Grade8:
		return "Grade 8"
	case Grade9:
		return "Grade 9"
	default:
		return "Ungraded"
	}
}

// CellID returns the id of the table cell holding this grade's price on the
// source page.
func (g Grade) CellID() string {
	switch g {
	case Grade7:
		return "complete_price"
	case Grade8:
		return "new_price"
	case Grade9:
		return "graded_price"
	default:
		return "used_price"
	}
}

// CSVCode returns the single-character grade code used in input files.
func (g Grade) CSVCode() string {
	switch g {
	case Grade7:
		return "7"
	case Grade8:
		return "8"
	case Grade9:
		return "9"
	default:
		return "u"
	}
}

// ParseGradeCode maps an input grade code to a Grade. Unrecognized or blank
// codes default to Ungraded; bad codes are an ingestion concern, never a
// pipeline error.
func ParseGradeCode(code string) Grade {
	switch code {
	case "7":
		return Grade7
	case "8":
		return Grade8
	case "9":
		return Grade9
	default:
		return Ungraded
	}
}
