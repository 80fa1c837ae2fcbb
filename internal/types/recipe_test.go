package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeDecodesListFields(t *testing.T) {
	raw := `{"name":"Gin Fizz","ingredients":["2 oz gin","1 oz lemon"],"instructions":["Shake","Strain"],"garnish":"Lemon twist","glassType":"Highball"}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, Text("Gin Fizz"), r.Name)
	assert.True(t, r.Ingredients.IsList())
	assert.Equal(t, []string{"2 oz gin", "1 oz lemon"}, r.Ingredients.Items)
	assert.Equal(t, []string{"Shake", "Strain"}, r.Instructions.Items)
	assert.Equal(t, Text("Lemon twist"), r.Garnish)
	assert.Equal(t, Text("Highball"), r.GlassType)
}

func TestRecipeDecodesStringFields(t *testing.T) {
	raw := `{"name":"Negroni","ingredients":"1 oz gin, 1 oz Campari, 1 oz vermouth","instructions":"Stir with ice."}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.False(t, r.Ingredients.IsList())
	assert.Equal(t, "1 oz gin, 1 oz Campari, 1 oz vermouth", r.Ingredients.Text)
	assert.False(t, r.Instructions.IsList())
	assert.Equal(t, "Stir with ice.", r.Instructions.Text)
}

func TestTextListNonStringElements(t *testing.T) {
	var tl TextList
	require.NoError(t, json.Unmarshal([]byte(`["salt", 2, {"item":"lime"}]`), &tl))

	assert.True(t, tl.IsList())
	assert.Equal(t, []string{"salt", "2", `{"item":"lime"}`}, tl.Items)
}

func TestTextListObjectBecomesEntries(t *testing.T) {
	var tl TextList
	require.NoError(t, json.Unmarshal([]byte(`{"rum":"2 oz","lime juice":"1 oz","sugar":1}`), &tl))

	assert.True(t, tl.IsList())
	assert.Equal(t, []string{"rum: 2 oz", "lime juice: 1 oz", "sugar: 1"}, tl.Items)
}

func TestTextListScalars(t *testing.T) {
	var tl TextList
	require.NoError(t, json.Unmarshal([]byte(`3`), &tl))
	assert.False(t, tl.IsList())
	assert.Equal(t, "3", tl.Text)

	assert.Error(t, json.Unmarshal([]byte(`[1,`), &tl))
}

func TestRecipeDecodesLooseTextFields(t *testing.T) {
	raw := `{"name":["Rum","Sour"],"ingredients":{"rum":"2 oz","lemon":"1 oz"},"instructions":"Shake.","garnish":["mint sprig","lime wheel"],"glassType":{"type":"coupe","chilled":true}}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, Text("Rum, Sour"), r.Name)
	assert.Equal(t, []string{"rum: 2 oz", "lemon: 1 oz"}, r.Ingredients.Items)
	assert.Equal(t, Text("mint sprig, lime wheel"), r.Garnish)
	assert.Equal(t, Text("type: coupe, chilled: true"), r.GlassType)

	src, err := r.Source()
	require.NoError(t, err)
	assert.Equal(t, raw, string(src))
}

func TestTextScalars(t *testing.T) {
	var txt Text
	require.NoError(t, json.Unmarshal([]byte(`12.5`), &txt))
	assert.Equal(t, Text("12.5"), txt)

	require.NoError(t, json.Unmarshal([]byte(`null`), &txt))
	assert.Equal(t, Text(""), txt)
}

func TestTextListKeepsShapeOnEncode(t *testing.T) {
	list, err := json.Marshal(NewTextList("a", "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(list))

	empty, err := json.Marshal(NewTextList())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))

	text, err := json.Marshal(NewText("a and b"))
	require.NoError(t, err)
	assert.JSONEq(t, `"a and b"`, string(text))
}

func TestRecipeSourcePreservesUnknownKeys(t *testing.T) {
	raw := `{"name":"Mule","ingredients":["vodka"],"instructions":"Build","garnish":"Lime","glassType":"Copper mug","abv":"12%"}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	src, err := r.Source()
	require.NoError(t, err)
	assert.Equal(t, raw, string(src))
}

func TestRecipeSourceWithoutDecode(t *testing.T) {
	r := Recipe{
		Name:         "Daiquiri",
		Ingredients:  NewTextList("rum", "lime", "sugar"),
		Instructions: NewText("Shake and strain."),
		Garnish:      "Lime wheel",
		GlassType:    "Coupe",
	}

	src, err := r.Source()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Daiquiri","ingredients":["rum","lime","sugar"],"instructions":"Shake and strain.","garnish":"Lime wheel","glassType":"Coupe"}`, string(src))
}
