package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMarksActive(t *testing.T) {
	items := Build("/pinturas")
	require.Len(t, items, len(Main))
	for _, it := range items {
		assert.Equal(t, it.Href == "/pinturas", it.Active, it.Href)
	}

	items = Build("")
	assert.True(t, items[0].Active)
	assert.False(t, items[1].Active)
}

func TestBreadcrumbs(t *testing.T) {
	crumbs := Breadcrumbs("/tiempos-de-entrega")
	require.Len(t, crumbs, 2)
	assert.Equal(t, Crumb{Href: "/", LabelKey: "nav_home"}, crumbs[0])
	assert.Equal(t, Crumb{Href: "/tiempos-de-entrega", LabelKey: "nav_delivery", Label: "Tiempos de entrega", Active: true}, crumbs[1])

	home := Breadcrumbs("/")
	require.Len(t, home, 1)
	assert.True(t, home[0].Active)

	deep := Breadcrumbs("/pinturas/c3")
	require.Len(t, deep, 3)
	assert.Equal(t, "", deep[2].LabelKey)
	assert.Equal(t, "C3", deep[2].Label)
	assert.True(t, deep[2].Active)
}
