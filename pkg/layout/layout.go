package layout

// Direction selects the axis a layout splits along.
type Direction int

const (
	// Vertical splits top to bottom.
	Vertical Direction = iota
	// Horizontal splits left to right.
	Horizontal
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindPercentage
	kindRatio
	kindMin
	kindMax
	kindFill
)

// Constraint determines how much space a layout element occupies.
// Construct values with Length, Percentage, Ratio, Min, Max, or Fill.
type Constraint struct {
	kind constraintKind
	val  int
	num  int
	den  int
}

// Length requests a fixed number of cells.
func Length(cells int) Constraint {
	return Constraint{kind: kindLength, val: cells}
}

// Percentage requests a percentage of the available space. Values above
// 100 are treated as 100.
func Percentage(pct int) Constraint {
	return Constraint{kind: kindPercentage, val: pct}
}

// Ratio requests num/den of the available space. A zero denominator
// yields zero cells.
func Ratio(num, den int) Constraint {
	return Constraint{kind: kindRatio, num: num, den: den}
}

// Min requests at least the given number of cells.
func Min(cells int) Constraint {
	return Constraint{kind: kindMin, val: cells}
}

// Max requests at most the given number of cells.
func Max(cells int) Constraint {
	return Constraint{kind: kindMax, val: cells}
}

// Fill shares space left over by the other constraints equally among
// all Fill elements.
func Fill(weight int) Constraint {
	return Constraint{kind: kindFill, val: weight}
}

// apply resolves the constraint against the given length.
func (c Constraint) apply(length int) int {
	switch c.kind {
	case kindLength:
		return min(length, c.val)
	case kindPercentage:
		p := min(c.val, 100)
		return length * p / 100
	case kindRatio:
		if c.den == 0 {
			return 0
		}
		return length * c.num / c.den
	case kindMin:
		return max(length, c.val)
	case kindMax:
		return min(length, c.val)
	default:
		return length
	}
}

// Layout divides a rectangular area into smaller regions.
type Layout struct {
	direction   Direction
	margin      int
	constraints []Constraint
}

// New creates a vertical layout with no margin and no constraints.
func New() Layout {
	return Layout{direction: Vertical}
}

// Direction sets the axis to split along.
func (l Layout) Direction(d Direction) Layout {
	l.direction = d
	return l
}

// Margin sets the margin applied to the area before splitting.
func (l Layout) Margin(margin int) Layout {
	l.margin = margin
	return l
}

// Constraints sets the constraints, one per resulting region.
func (l Layout) Constraints(constraints ...Constraint) Layout {
	l.constraints = append([]Constraint(nil), constraints...)
	return l
}

// Split divides the area according to the layout's constraints and
// returns one rectangle per constraint, in order. With no constraints
// it returns the margin-shrunk area as a single region.
//
// Sizing happens in three passes: fixed and proportional constraints
// first, then leftover space split among Fill elements, then Min and
// Max bounds enforced on the computed sizes. Percentage and Ratio are
// resolved against the original axis size, everything else against the
// space still remaining when it is reached.
func (l Layout) Split(area Rect) []Rect {
	area = area.Inner(l.margin)

	if len(l.constraints) == 0 {
		return []Rect{area}
	}

	var mainAxis, crossAxis int
	switch l.direction {
	case Horizontal:
		mainAxis, crossAxis = area.Width, area.Height
	default:
		mainAxis, crossAxis = area.Height, area.Width
	}

	sizes := make([]int, len(l.constraints))
	remaining := mainAxis
	fillCount := 0

	for i, c := range l.constraints {
		switch c.kind {
		case kindFill:
			fillCount++
		case kindPercentage, kindRatio:
			size := c.apply(mainAxis)
			sizes[i] = size
			remaining = max(0, remaining-size)
		default:
			size := c.apply(remaining)
			sizes[i] = size
			remaining = max(0, remaining-size)
		}
	}

	if fillCount > 0 {
		fillSize := remaining / fillCount
		fillRemainder := remaining % fillCount
		distributed := 0
		for i, c := range l.constraints {
			if c.kind != kindFill {
				continue
			}
			sizes[i] = fillSize
			if distributed < fillRemainder {
				sizes[i]++
				distributed++
			}
		}
	}

	for i, c := range l.constraints {
		switch c.kind {
		case kindMin:
			if sizes[i] < c.val {
				sizes[i] = c.val
			}
		case kindMax:
			if sizes[i] > c.val {
				sizes[i] = c.val
			}
		}
	}

	results := make([]Rect, 0, len(l.constraints))
	offset := 0
	for _, size := range sizes {
		var rect Rect
		switch l.direction {
		case Horizontal:
			rect = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: crossAxis}
		default:
			rect = Rect{X: area.X, Y: area.Y + offset, Width: crossAxis, Height: size}
		}
		results = append(results, rect)
		offset += size
	}

	return results
}
