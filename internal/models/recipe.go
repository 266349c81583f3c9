package models

import "slices"

type Recipe struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Ingredients     []string `json:"ingredients"`
	Instructions    []string `json:"instructions"`
	ImageURL        string   `json:"imageUrl"`
	VideoURL        string   `json:"videoUrl,omitempty"`
	PreparationTime int      `json:"preparationTime"` // minutes
}

func (r Recipe) WithID(id int) Recipe {
	r.ID = id
	return r
}

// Clone returns a copy that shares no slices with r.
func (r Recipe) Clone() Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	return r
}

// InsertRecipe is the insertable recipe shape. It is also the schema of the
// YAML seed file.
type InsertRecipe struct {
	Name            string   `json:"name" yaml:"name" validate:"required"`
	Description     string   `json:"description" yaml:"description" validate:"required"`
	Ingredients     []string `json:"ingredients" yaml:"ingredients" validate:"required,min=1,dive,required"`
	Instructions    []string `json:"instructions" yaml:"instructions" validate:"required,min=1,dive,required"`
	ImageURL        string   `json:"imageUrl" yaml:"imageUrl" validate:"required,url"`
	VideoURL        string   `json:"videoUrl,omitempty" yaml:"videoUrl" validate:"omitempty,url"`
	PreparationTime int      `json:"preparationTime" yaml:"preparationTime" validate:"min=0"`
}

// Recipe copies the insertable fields so the caller's slices are not shared
// with the stored entity.
func (r InsertRecipe) Recipe() Recipe {
	return Recipe{
		Name:            r.Name,
		Description:     r.Description,
		Ingredients:     slices.Clone(r.Ingredients),
		Instructions:    slices.Clone(r.Instructions),
		ImageURL:        r.ImageURL,
		VideoURL:        r.VideoURL,
		PreparationTime: r.PreparationTime,
	}
}

// SampleRecipes are seeded on every boot unless a seed file replaces them.
func SampleRecipes() []InsertRecipe {
	return []InsertRecipe{
		{
			Name:            "Classic Pancakes",
			Description:     "Fluffy homemade pancakes perfect for breakfast",
			Ingredients:     []string{"2 cups flour", "2 eggs", "1 cup milk", "2 tbsp sugar"},
			Instructions:    []string{"Mix dry ingredients", "Add wet ingredients", "Cook on griddle"},
			ImageURL:        "https://images.unsplash.com/photo-1601315379734-425a469078de",
			VideoURL:        "https://youtube.com/watch?v=123",
			PreparationTime: 20,
		},
		{
			Name:            "Garden Salad",
			Description:     "Fresh and healthy garden salad",
			Ingredients:     []string{"lettuce", "tomatoes", "cucumber", "olive oil"},
			Instructions:    []string{"Wash vegetables", "Chop ingredients", "Mix and serve"},
			ImageURL:        "https://images.unsplash.com/photo-1512058454905-6b841e7ad132",
			VideoURL:        "https://youtube.com/watch?v=456",
			PreparationTime: 10,
		},
	}
}
