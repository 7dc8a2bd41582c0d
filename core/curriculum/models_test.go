package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

func testGraph() *Graph {
	concepts := []Concept{
		{ID: "c1", Name: "Counting", CurriculumID: null.StringFrom("cur1")},
		{ID: "c2", Name: "Addition", CurriculumID: null.StringFrom("cur1")},
		{ID: "c3", Name: "Multiplication", CurriculumID: null.StringFrom("cur1")},
		{ID: "c4", Name: "Sets", CurriculumID: null.StringFrom("cur2")},
	}
	relations := []Relation{
		{ID: 1, FromConceptID: "c1", ToConceptID: "c2", Type: RelationRequires},
		{ID: 2, FromConceptID: "c2", ToConceptID: "c3", Type: RelationRequires},
		{ID: 3, FromConceptID: "c1", ToConceptID: "c3", Type: RelationRequires},
	}
	return NewGraph(concepts, relations)
}

func TestGraphPrerequisites(t *testing.T) {
	g := testGraph()

	tests := []struct {
		name      string
		conceptID string
		want      []string
	}{
		{name: "no prerequisites", conceptID: "c1", want: nil},
		{name: "single", conceptID: "c2", want: []string{"c1"}},
		{name: "multiple", conceptID: "c3", want: []string{"c2", "c1"}},
		{name: "unknown concept", conceptID: "nope", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, c := range g.Prerequisites(tt.conceptID) {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGraphByCurriculum(t *testing.T) {
	g := testGraph()

	var names []string
	for _, c := range g.ByCurriculum("cur1") {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Addition", "Counting", "Multiplication"}, names)

	assert.Empty(t, g.ByCurriculum("nope"))
}
