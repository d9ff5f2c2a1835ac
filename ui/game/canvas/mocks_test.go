package canvas

type mockContext struct {
	SetFontFunc        func(name string)
	SetLineWidthFunc   func(width float64)
	SetFillColorFunc   func(name string)
	SetStrokeColorFunc func(name string)
	SetGlobalAlphaFunc func(alpha float64)
	FillTextFunc       func(text string, x, y int)
	ClearRectFunc      func(x, y, width, height int)
	FillRectFunc       func(x, y, width, height int)
	StrokeRectFunc     func(x, y, width, height int)
}

func (ctx *mockContext) SetFont(name string) {
	if ctx.SetFontFunc != nil {
		ctx.SetFontFunc(name)
	}
}

func (ctx *mockContext) SetLineWidth(width float64) {
	if ctx.SetLineWidthFunc != nil {
		ctx.SetLineWidthFunc(width)
	}
}

func (ctx *mockContext) SetFillColor(name string) {
	if ctx.SetFillColorFunc != nil {
		ctx.SetFillColorFunc(name)
	}
}

func (ctx *mockContext) SetStrokeColor(name string) {
	if ctx.SetStrokeColorFunc != nil {
		ctx.SetStrokeColorFunc(name)
	}
}

func (ctx *mockContext) SetGlobalAlpha(alpha float64) {
	if ctx.SetGlobalAlphaFunc != nil {
		ctx.SetGlobalAlphaFunc(alpha)
	}
}

func (ctx *mockContext) FillText(text string, x, y int) {
	if ctx.FillTextFunc != nil {
		ctx.FillTextFunc(text, x, y)
	}
}

func (ctx *mockContext) ClearRect(x, y, width, height int) {
	if ctx.ClearRectFunc != nil {
		ctx.ClearRectFunc(x, y, width, height)
	}
}

func (ctx *mockContext) FillRect(x, y, width, height int) {
	if ctx.FillRectFunc != nil {
		ctx.FillRectFunc(x, y, width, height)
	}
}

func (ctx *mockContext) StrokeRect(x, y, width, height int) {
	if ctx.StrokeRectFunc != nil {
		ctx.StrokeRectFunc(x, y, width, height)
	}
}
