package valueobjects

import "strings"

type Category string

const (
	CategoryOrder     Category = "ORDER"
	CategoryPayment   Category = "PAYMENT"
	CategoryShipping  Category = "SHIPPING"
	CategoryAccount   Category = "ACCOUNT"
	CategoryProduct   Category = "PRODUCT"
	CategoryTechnical Category = "TECHNICAL"
	CategoryOther     Category = "OTHER"
)

var validCategories = map[Category]bool{
	CategoryOrder:     true,
	CategoryPayment:   true,
	CategoryShipping:  true,
	CategoryAccount:   true,
	CategoryProduct:   true,
	CategoryTechnical: true,
	CategoryOther:     true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

// NewCategory never fails: unrecognized values become OTHER.
func NewCategory(s string) Category {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return CategoryOther
	}
	return c
}
