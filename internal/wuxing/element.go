package wuxing

import (
	"fmt"
	"strings"
)

// Element is one of the five classical phases.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

var elementNames = map[Element]string{
	Wood:  "WOOD",
	Fire:  "FIRE",
	Earth: "EARTH",
	Metal: "METAL",
	Water: "WATER",
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ELEMENT_%d", int(e))
}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool {
	return e >= Wood && e <= Water
}

// The generating cycle is a fixed 5-ring: wood→fire→earth→metal→water→wood.
// Both relations are constant lookup tables rather than modular arithmetic
// at call sites.
var nextInCycle = map[Element]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

// The overcoming relation pairs each element with the one that subdues it:
// metal chops wood, water quenches fire, wood breaks earth, fire melts
// metal, earth dams water. On the generating ring this is the element
// three steps ahead.
var overcomer = map[Element]Element{
	Wood:  Metal,
	Fire:  Water,
	Earth: Wood,
	Metal: Fire,
	Water: Earth,
}

// Next returns the element that follows e in the generating cycle.
func (e Element) Next() Element {
	return nextInCycle[e]
}

// Overcomer returns the element that overcomes e.
func (e Element) Overcomer() Element {
	return overcomer[e]
}

// Parse converts a case-insensitive element name to an Element.
func Parse(s string) (Element, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WOOD":
		return Wood, nil
	case "FIRE":
		return Fire, nil
	case "EARTH":
		return Earth, nil
	case "METAL":
		return Metal, nil
	case "WATER":
		return Water, nil
	}
	return Wood, fmt.Errorf("unknown element: %q", s)
}

// All lists the five elements in cycle order.
func All() []Element {
	return []Element{Wood, Fire, Earth, Metal, Water}
}
