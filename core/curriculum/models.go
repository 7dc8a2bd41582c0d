package curriculum

import (
	"sort"

	"github.com/volatiletech/null/v8"
)

// Relation types; the concept graph is queried, never mutated, by the client.
const (
	RelationRequires = "REQUIRES"
)

type Curriculum struct {
	ID          string      `json:"curriculum_id" validate:"required"`
	Name        string      `json:"curriculum_name" validate:"required"`
	Description null.String `json:"description,omitempty"`
}

type Concept struct {
	ID           string      `json:"concept_id" validate:"required"`
	CurriculumID null.String `json:"curriculum_id,omitempty"`
	Name         string      `json:"concept_name" validate:"required"`
	Description  null.String `json:"description,omitempty"`
}

type Relation struct {
	ID            int    `json:"relation_id" validate:"required"`
	FromConceptID string `json:"from_concept_id" validate:"required"`
	ToConceptID   string `json:"to_concept_id" validate:"required"`
	Type          string `json:"relation_type" validate:"required,oneof=REQUIRES"`
}

// Graph is a read-only view over the prerequisite directed graph.
type Graph struct {
	concepts  map[string]Concept
	relations []Relation
}

func NewGraph(concepts []Concept, relations []Relation) *Graph {
	byID := make(map[string]Concept, len(concepts))
	for _, c := range concepts {
		byID[c.ID] = c
	}
	return &Graph{concepts: byID, relations: relations}
}

// Prerequisites returns the concepts required before conceptID, in relation order.
func (g *Graph) Prerequisites(conceptID string) []Concept {
	var prereqs []Concept
	for _, rel := range g.relations {
		if rel.Type != RelationRequires || rel.ToConceptID != conceptID {
			continue
		}
		if c, ok := g.concepts[rel.FromConceptID]; ok {
			prereqs = append(prereqs, c)
		}
	}
	return prereqs
}

// ByCurriculum returns the concepts attached to the given curriculum,
// sorted by name.
func (g *Graph) ByCurriculum(curriculumID string) []Concept {
	var out []Concept
	for _, c := range g.concepts {
		if c.CurriculumID.Valid && c.CurriculumID.String == curriculumID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
