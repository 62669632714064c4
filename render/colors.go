package render

import "image/color"

var backgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var gridLineColor = color.NRGBA{R: 204, G: 204, B: 204, A: 255}
var aliveColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
