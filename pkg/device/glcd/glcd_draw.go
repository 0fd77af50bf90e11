package glcd

var cornerFields = []string{"x1", "y1", "x2", "y2"}

// corners validates and transforms a pair of corners into x1,y1,x2,y2 device bytes.
func (d *Display) corners(x1, y1, x2, y2 int) ([]byte, error) {
	bs, err := toBytes(cornerFields, x1, y1, x2, y2)
	if err != nil {
		return nil, err
	}
	if bs[1], err = d.pixelY(y1); err != nil {
		return nil, err
	}
	if bs[3], err = d.pixelY(y2); err != nil {
		return nil, err
	}
	return bs, nil
}

func (d *Display) setPixel(x, y int, on bool) error {
	bx, err := toByte("x", x)
	if err != nil {
		return err
	}
	by, err := d.pixelY(y)
	if err != nil {
		return err
	}
	return d.sendBytes(cmdPixel(bx, by, on))
}

func (d *Display) segment(op byte, x1, y1, x2, y2 int, on bool) error {
	c, err := d.corners(x1, y1, x2, y2)
	if err != nil {
		return err
	}
	return d.sendBytes(cmdSegment(op, c[0], c[1], c[2], c[3], on))
}

func (d *Display) circle(x, y, rad int, on bool) error {
	bx, err := toByte("x", x)
	if err != nil {
		return err
	}
	by, err := d.pixelY(y)
	if err != nil {
		return err
	}
	br, err := toByte("radius", rad)
	if err != nil {
		return err
	}
	return d.sendBytes(cmdCircle(bx, by, br, on))
}

func (d *Display) clearBlock(x1, y1, x2, y2 int) error {
	c, err := d.corners(x1, y1, x2, y2)
	if err != nil {
		return err
	}
	return d.sendBytes(cmdClearBlock(c[0], c[1], c[2], c[3]))
}

func (d *Display) SetPixel(x, y int, on bool) error {
	return d.do(func() error { return d.setPixel(x, y, on) })
}

func (d *Display) SetLine(x1, y1, x2, y2 int) error {
	return d.do(func() error { return d.segment(CmdLine, x1, y1, x2, y2, true) })
}

func (d *Display) ClearLine(x1, y1, x2, y2 int) error {
	return d.do(func() error { return d.segment(CmdLine, x1, y1, x2, y2, false) })
}

func (d *Display) SetBox(x1, y1, x2, y2 int) error {
	return d.do(func() error { return d.segment(CmdBox, x1, y1, x2, y2, true) })
}

func (d *Display) ClearBox(x1, y1, x2, y2 int) error {
	return d.do(func() error { return d.segment(CmdBox, x1, y1, x2, y2, false) })
}

func (d *Display) SetCircle(x, y, rad int) error {
	return d.do(func() error { return d.circle(x, y, rad, true) })
}

func (d *Display) ClearCircle(x, y, rad int) error {
	return d.do(func() error { return d.circle(x, y, rad, false) })
}

// ClearBlock blanks the area inside the rectangle.
func (d *Display) ClearBlock(x1, y1, x2, y2 int) error {
	return d.do(func() error { return d.clearBlock(x1, y1, x2, y2) })
}
