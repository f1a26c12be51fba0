package services

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bhoomikart/backend/internal/models"
)

// Derived wraps a computed display value. Display computation never fails a
// whole listing: when an input is bad the value degrades and Reason says how.
type Derived[T any] struct {
	Value    T
	Degraded bool
	Reason   string
}

func derivedOK[T any](v T) Derived[T] {
	return Derived[T]{Value: v}
}

func derivedDegraded[T any](reason string) Derived[T] {
	var zero T
	return Derived[T]{Value: zero, Degraded: true, Reason: reason}
}

// unitLabel pairs the area unit with the per-unit price suffix for one
// property type. An empty price suffix means the type has no per-unit price
// (whole-property pricing).
type unitLabel struct {
	area  string
	price string
}

var unitLabels = map[models.PropertyType]unitLabel{
	models.PropertyTypeAgriculture: {area: "acres", price: "/acre"},
	models.PropertyTypeOpenPlot:    {area: "sq yds", price: "/sq yd"},
	models.PropertyTypeFlat:        {area: "sq ft", price: "/sq ft"},
	models.PropertyTypeHouse:       {area: "sq yds"},
	models.PropertyTypeBuilding:    {area: "sq yds"},
	models.PropertyTypeCommercial:  {area: "sq ft", price: "/sq ft"},
}

// displayPrinter groups digits the en-IN-agnostic way ("1,234,567.89").
var displayPrinter = message.NewPrinter(language.English)

// PricePerUnitDisplay renders "₹<price/area><suffix>", e.g. "₹52,000.00/acre".
// Types priced per whole property yield a nil value without degrading; a zero
// area degrades instead of dividing.
func PricePerUnitDisplay(p *models.Property) Derived[*string] {
	labels, ok := unitLabels[p.PropertyType]
	if !ok {
		return derivedDegraded[*string](fmt.Sprintf("unknown property type %q", p.PropertyType))
	}
	if labels.price == "" {
		return derivedOK[*string](nil)
	}
	if p.Area == 0 {
		return derivedDegraded[*string]("zero area")
	}
	s := "₹" + displayPrinter.Sprintf("%.2f", p.Price/p.Area) + labels.price
	return derivedOK(&s)
}

// AreaDisplay renders the area with its unit, e.g. "2.50 acres".
func AreaDisplay(p *models.Property) Derived[*string] {
	labels, ok := unitLabels[p.PropertyType]
	if !ok {
		return derivedDegraded[*string](fmt.Sprintf("unknown property type %q", p.PropertyType))
	}
	s := displayPrinter.Sprintf("%.2f", p.Area) + " " + labels.area
	return derivedOK(&s)
}
