package wicket

import "testing"

func TestBoxRowArrangement(t *testing.T) {
	short := NewBox(BoxDefinition{Width: 100, Height: 50})
	tall := NewBox(BoxDefinition{Width: 100, Height: 100})
	row := NewBoxRow(BoxLayoutDefinition{
		Spacing:   10,
		Alignment: CenterCenter,
	}, short, tall)

	if short.X != 0 || tall.X != 110 {
		t.Errorf("X positions = %v, %v, want 0, 110", short.X, tall.X)
	}
	// Center alignment against the tallest member.
	if short.Y != 25 || tall.Y != 0 {
		t.Errorf("Y positions = %v, %v, want 25, 0", short.Y, tall.Y)
	}
	if row.Width() != 210 || row.Height() != 100 {
		t.Errorf("row = %vx%v, want 210x100", row.Width(), row.Height())
	}
}

func TestBoxRowAlignmentVariants(t *testing.T) {
	short := NewBox(BoxDefinition{Width: 100, Height: 50})
	tall := NewBox(BoxDefinition{Width: 100, Height: 100})

	NewBoxRow(BoxLayoutDefinition{Alignment: CenterBottom}, short, tall)
	if short.Y != 0 {
		t.Errorf("bottom-aligned Y = %v, want 0", short.Y)
	}

	// Adding to a new row reparents automatically.
	NewBoxRow(BoxLayoutDefinition{Alignment: CenterTop}, short, tall)
	if short.Y != 50 {
		t.Errorf("top-aligned Y = %v, want 50", short.Y)
	}
}

func TestBoxColumnArrangement(t *testing.T) {
	narrow := NewBox(BoxDefinition{Width: 50, Height: 40})
	wide := NewBox(BoxDefinition{Width: 100, Height: 40})
	col := NewBoxColumn(BoxLayoutDefinition{
		Spacing:   10,
		Alignment: CenterCenter,
	}, narrow, wide)

	// Bottom to top.
	if narrow.Y != 0 || wide.Y != 50 {
		t.Errorf("Y positions = %v, %v, want 0, 50", narrow.Y, wide.Y)
	}
	if narrow.X != 25 || wide.X != 0 {
		t.Errorf("X positions = %v, %v, want 25, 0", narrow.X, wide.X)
	}
	if col.Width() != 100 || col.Height() != 90 {
		t.Errorf("column = %vx%v, want 100x90", col.Width(), col.Height())
	}
}

func TestLayoutInsertRemove(t *testing.T) {
	a := NewBox(BoxDefinition{Width: 50, Height: 50})
	b := NewBox(BoxDefinition{Width: 50, Height: 50})
	c := NewBox(BoxDefinition{Width: 50, Height: 50})
	row := NewBoxRow(BoxLayoutDefinition{Spacing: 10, Alignment: CenterCenter}, a, c)

	row.InsertBox(1, b)
	if boxes := row.Boxes(); boxes[0] != a || boxes[1] != b || boxes[2] != c {
		t.Fatal("insert did not preserve layout order")
	}
	if c.X != 120 {
		t.Errorf("c.X = %v after insert, want 120", c.X)
	}

	row.RemoveBox(b)
	if c.X != 60 {
		t.Errorf("c.X = %v after remove, want 60", c.X)
	}
	if b.Parent() != nil {
		t.Error("removed box should be detached")
	}

	assertPanics(t, "insert out of range", func() { row.InsertBox(5, b) })
	assertPanics(t, "remove non-member", func() { row.RemoveBox(b) })
}

func TestLayoutZeroSizeMeansDynamic(t *testing.T) {
	row := NewBoxRow(BoxLayoutDefinition{}, NewBox(BoxDefinition{Width: 30, Height: 30}))
	if row.Definition().Width != DynamicSize || row.Definition().Height != DynamicSize {
		t.Error("an unset layout size should become dynamic")
	}
	if row.Width() != 30 || row.Height() != 30 {
		t.Errorf("row = %vx%v, want 30x30", row.Width(), row.Height())
	}
}

func TestBuildRectangularGrid(t *testing.T) {
	boxes := make([]*Box, 5)
	for i := range boxes {
		boxes[i] = NewBox(BoxDefinition{Width: 50, Height: 50})
	}
	grid := BuildRectangularGrid(BoxLayoutDefinition{
		Spacing:    10,
		NumColumns: 2,
		Alignment:  CenterCenter,
	}, boxes)

	col, ok := grid.(*BoxColumn)
	if !ok {
		t.Fatalf("grid with NumColumns should be a column of rows, got %T", grid)
	}
	rows := col.Boxes()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if len(rows[0].Children()) != 2 || len(rows[2].Children()) != 1 {
		t.Error("rows should fill from the bottom-left, final row short")
	}
	// Rows stack bottom to top; the short last row is centered.
	if rows[0].Y != 0 || rows[1].Y != 60 || rows[2].Y != 120 {
		t.Errorf("row Y positions = %v, %v, %v", rows[0].Y, rows[1].Y, rows[2].Y)
	}
	if rows[2].X != 30 {
		t.Errorf("short row X = %v, want centered 30", rows[2].X)
	}
}

func TestBuildRectangularGridRowMajor(t *testing.T) {
	boxes := make([]*Box, 4)
	for i := range boxes {
		boxes[i] = NewBox(BoxDefinition{Width: 50, Height: 50})
	}
	grid := BuildRectangularGrid(BoxLayoutDefinition{
		Spacing:   10,
		NumRows:   2,
		Alignment: CenterCenter,
	}, boxes)

	row, ok := grid.(*BoxRow)
	if !ok {
		t.Fatalf("grid with NumRows should be a row of columns, got %T", grid)
	}
	if len(row.Boxes()) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(row.Boxes()))
	}
}

func TestBuildRectangularGridMaxElements(t *testing.T) {
	boxes := make([]*Box, 6)
	for i := range boxes {
		boxes[i] = NewBox(BoxDefinition{Width: 50, Height: 50})
	}
	// 2 columns x 2 rows holds only 4 boxes; the rest are dropped.
	grid := BuildRectangularGrid(BoxLayoutDefinition{
		NumColumns: 2,
		NumRows:    2,
		Alignment:  CenterCenter,
	}, boxes)
	if n := len(grid.Boxes()); n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}

	assertPanics(t, "shapeless grid", func() {
		BuildRectangularGrid(BoxLayoutDefinition{}, boxes)
	})
}

func TestCreateBoxLayoutSelector(t *testing.T) {
	mk := func() []*Box {
		return []*Box{NewBox(BoxDefinition{Width: 10, Height: 10})}
	}
	if _, ok := CreateBoxLayout(BoxLayoutDefinition{NumRows: 1}, mk()).(*BoxRow); !ok {
		t.Error("(0 columns, 1 row) should build a row")
	}
	if _, ok := CreateBoxLayout(BoxLayoutDefinition{NumColumns: 1}, mk()).(*BoxColumn); !ok {
		t.Error("(1 column, 0 rows) should build a column")
	}
	boxes := []*Box{
		NewBox(BoxDefinition{Width: 10, Height: 10}),
		NewBox(BoxDefinition{Width: 10, Height: 10}),
	}
	if _, ok := CreateBoxLayout(BoxLayoutDefinition{NumColumns: 2, NumRows: 1}, boxes).(*BoxColumn); !ok {
		t.Error("a multi-column shape should build a grid")
	}
}
