package jsoncompare

import (
	"fmt"
)

func ExampleCompareJSON_customization() {
	expected := `{"id": "ignored", "created": "\\d{4}-\\d{2}-\\d{2}", "name": "widget"}`
	actual := `{"id": "5f2b9c", "created": "2021-06-01", "name": "gadget"}`

	comparator := NewCustomComparator(Strict, []Customization{
		NewCustomization("id", AnyValue),
		NewCustomization("created", NewRegexValueMatcher("")),
	})

	result, err := CompareJSON(expected, actual, OptionComparator(comparator))
	if err != nil {
		panic(err)
	}

	fmt.Println(result.Message())
	// Output: name: Expected: "widget" got: "gadget"
}

func ExampleArrayValueMatcher() {
	// every element of "rows" must look like the single expected element
	rows := NewArrayValueMatcher(NewDefaultComparator(Lenient))
	comparator := NewCustomComparator(Lenient, []Customization{
		NewCustomization("rows", rows),
	})

	result, err := CompareJSON(
		`{"rows": {"type": "row"}}`,
		`{"rows": [{"type": "row", "n": 1}, {"type": "header"}, {"type": "row", "n": 3}]}`,
		OptionComparator(comparator),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(result.Message())
	// Output: rows[1].type: Expected: "row" got: "header"
}

func ExampleNewArraySizeComparator() {
	result, err := CompareJSON(
		`{"items": [2, 6]}`,
		`{"items": ["only one"]}`,
		OptionComparator(NewArraySizeComparator(Lenient)),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(result.Message())
	// Output: items[]: Expected array size of 2 to 6 elements, got: 1 elements
}

func ExampleCompareYAML() {
	expected := []byte("name: widget\ntags: [a, b]\n")
	actual := []byte("tags:\n  - b\n  - a\nname: widget\nsize: 3\n")

	result, err := CompareYAML(expected, actual, OptionMode(Lenient))
	if err != nil {
		panic(err)
	}

	fmt.Println(result.Passed())
	// Output: true
}
