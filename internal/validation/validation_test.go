package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocery-app/internal/models"
)

func ptr[T any](v T) *T { return &v }

func issuesOf(t *testing.T, err error) []Issue {
	t.Helper()
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	return verr.Issues
}

func TestStruct_ValidGroceryItem(t *testing.T) {
	v := New()
	req := models.CreateGroceryItemRequest{Name: "Milk", Quantity: ptr(0), Unit: "liter", ExpiryDate: ptr("2025-05-01")}
	assert.NoError(t, v.Struct(req))
}

func TestStruct_NegativeQuantity(t *testing.T) {
	v := New()
	req := models.CreateGroceryItemRequest{Name: "Milk", Quantity: ptr(-1), Unit: "liter"}

	issues := issuesOf(t, v.Struct(req))

	require.Len(t, issues, 1)
	assert.Equal(t, CodeTooSmall, issues[0].Code)
	assert.Equal(t, []string{"quantity"}, issues[0].Path)
	assert.Equal(t, "Number must be greater than or equal to 0", issues[0].Message)
}

func TestStruct_MissingRequiredFields(t *testing.T) {
	v := New()

	issues := issuesOf(t, v.Struct(models.CreateShoppingItemRequest{}))

	var paths []string
	for _, is := range issues {
		assert.Equal(t, CodeInvalidType, is.Code)
		assert.Equal(t, "Required", is.Message)
		paths = append(paths, is.Path...)
	}
	assert.ElementsMatch(t, []string{"itemName", "quantity", "unit"}, paths)
}

func TestStruct_PatchRejectsEmptyString(t *testing.T) {
	v := New()

	issues := issuesOf(t, v.Struct(models.UpdateGroceryItemRequest{Name: ptr("")}))

	require.Len(t, issues, 1)
	assert.Equal(t, []string{"name"}, issues[0].Path)
	assert.Equal(t, CodeTooSmall, issues[0].Code)
}

func TestStruct_EmptyPatchIsValid(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(models.UpdateGroceryItemRequest{}))
	assert.NoError(t, v.Struct(models.UpdateShoppingItemRequest{}))
}

func TestStruct_InvalidExpiryDate(t *testing.T) {
	v := New()
	req := models.UpdateGroceryItemRequest{ExpiryDate: ptr("soon")}

	issues := issuesOf(t, v.Struct(req))

	require.Len(t, issues, 1)
	assert.Equal(t, CodeInvalidDate, issues[0].Code)
	assert.Equal(t, []string{"expiryDate"}, issues[0].Path)
}

func TestStruct_RecipeNestedPaths(t *testing.T) {
	v := New()
	rec := models.SampleRecipes()[1]
	rec.Ingredients = []string{"lettuce", ""}
	rec.ImageURL = "not a url"

	issues := issuesOf(t, v.Struct(rec))

	byPath := map[string]Issue{}
	for _, is := range issues {
		key := ""
		for _, p := range is.Path {
			key += "/" + p
		}
		byPath[key] = is
	}
	require.Contains(t, byPath, "/ingredients/1")
	assert.Equal(t, CodeInvalidType, byPath["/ingredients/1"].Code)
	require.Contains(t, byPath, "/imageUrl")
	assert.Equal(t, CodeInvalidString, byPath["/imageUrl"].Code)
}

func TestDecodeError_TypeMismatch(t *testing.T) {
	var req models.CreateGroceryItemRequest
	err := json.Unmarshal([]byte(`{"name":"Milk","quantity":"two","unit":"liter"}`), &req)

	verr := DecodeError(err)

	require.Len(t, verr.Issues, 1)
	assert.Equal(t, CodeInvalidType, verr.Issues[0].Code)
	assert.Equal(t, []string{"quantity"}, verr.Issues[0].Path)
}

func TestDecodeError_Syntax(t *testing.T) {
	var req models.CreateGroceryItemRequest
	err := json.Unmarshal([]byte(`{"name":`), &req)

	verr := DecodeError(err)

	require.Len(t, verr.Issues, 1)
	assert.Equal(t, CodeInvalidJSON, verr.Issues[0].Code)
	assert.Empty(t, verr.Issues[0].Path)
}

func TestError_WithPrefix(t *testing.T) {
	e := &Error{Issues: []Issue{{Code: CodeCustom, Path: []string{"name"}, Message: "bad"}}}

	prefixed := e.WithPrefix("recipes", "0")

	assert.Equal(t, []string{"recipes", "0", "name"}, prefixed.Issues[0].Path)
	assert.Equal(t, []string{"name"}, e.Issues[0].Path)
	assert.Equal(t, "validation failed: recipes.0.name: bad", prefixed.Error())
}

func TestPathFromNamespace(t *testing.T) {
	assert.Equal(t, []string{"quantity"}, pathFromNamespace("CreateGroceryItemRequest.quantity"))
	assert.Equal(t, []string{"instructions", "0"}, pathFromNamespace("InsertRecipe.instructions[0]"))
	assert.Empty(t, pathFromNamespace("InsertRecipe"))
}
