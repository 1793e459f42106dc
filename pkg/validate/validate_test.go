package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bistro/pkg/validate"
)

type menuForm struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Category string  `json:"category" validate:"required,in=salad,pizza,soup,dessert,drinks,offered"`
	Price    float64 `json:"price" validate:"required,numeric,gt=0"`
	Image    string  `json:"image" validate:"nullable,max=10"`
}

func TestStructValidPayload(t *testing.T) {
	errs := validate.Struct(&menuForm{Name: "Pizza", Category: "pizza", Price: 12})
	assert.False(t, validate.HasErrors(errs), "errors: %v", errs)
}

func TestStructRequiredFields(t *testing.T) {
	errs := validate.Struct(&menuForm{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "price")
}

func TestStructInRule(t *testing.T) {
	errs := validate.Struct(&menuForm{Name: "Pizza", Category: "sushi", Price: 12})
	assert.Contains(t, errs, "category")
}

func TestStructGtRule(t *testing.T) {
	errs := validate.Struct(&menuForm{Name: "Pizza", Category: "pizza", Price: -1})
	assert.Contains(t, errs, "price")
}

func TestStructNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(&menuForm{Name: "Pizza", Category: "pizza", Price: 12, Image: ""})
	assert.NotContains(t, errs, "image")

	errs = validate.Struct(&menuForm{Name: "Pizza", Category: "pizza", Price: 12, Image: "this is way too long"})
	assert.Contains(t, errs, "image")
}

func TestStructEmailAndHexID(t *testing.T) {
	type form struct {
		Email  string `json:"email" validate:"required,email"`
		MenuID string `json:"menuId" validate:"required,hexid"`
	}

	errs := validate.Struct(&form{Email: "alice@example.com", MenuID: "64a0f8c2e1b2c3d4e5f60718"})
	assert.False(t, validate.HasErrors(errs), "errors: %v", errs)

	errs = validate.Struct(&form{Email: "not-an-email", MenuID: "xyz"})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "menuId")
}

func TestStructFieldNamesComeFromJSONTags(t *testing.T) {
	type form struct {
		TotalPrice float64 `json:"totalPrice" validate:"required,gt=0"`
	}

	errs := validate.Struct(&form{})
	assert.Contains(t, errs, "totalPrice")
}
