package backend

import (
	"context"

	"github.com/trezcool/lava/core/curriculum"
)

func (c *Client) Curriculums(ctx context.Context) ([]curriculum.Curriculum, error) {
	var currs []curriculum.Curriculum
	err := c.get(ctx, "curriculum.listCurriculums", "/curriculums", &currs)
	return currs, err
}

func (c *Client) Concepts(ctx context.Context) ([]curriculum.Concept, error) {
	var concepts []curriculum.Concept
	err := c.get(ctx, "curriculum.listConcepts", "/concepts", &concepts)
	return concepts, err
}

func (c *Client) ConceptRelations(ctx context.Context) ([]curriculum.Relation, error) {
	var rels []curriculum.Relation
	err := c.get(ctx, "curriculum.listConceptRelations", "/concept-relations", &rels)
	return rels, err
}
